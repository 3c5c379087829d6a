package game

import (
	"time"

	"github.com/rs/zerolog"
)

// Stats tracks a single session. It lives only as long as the process.
type Stats struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Score     int       `json:"score"`
	Ticks     int       `json:"ticks"`
	MaxLength int       `json:"maxLength"`
}

func NewStats(start time.Time, length int) *Stats {
	return &Stats{
		StartTime: start,
		MaxLength: length,
	}
}

// recordTick counts a tick and the snake length after it.
func (s *Stats) recordTick(length int) {
	s.Ticks++
	if length > s.MaxLength {
		s.MaxLength = length
	}
}

func (s *Stats) recordEat() {
	s.Score++
}

// Finish stamps the end time once; later calls keep the first value.
func (s *Stats) Finish(end time.Time) {
	if s.EndTime.IsZero() {
		s.EndTime = end
	}
}

// Duration is the elapsed session time, up to now if the session is still going.
func (s *Stats) Duration(now time.Time) time.Duration {
	if !s.EndTime.IsZero() {
		return s.EndTime.Sub(s.StartTime)
	}
	return now.Sub(s.StartTime)
}

func (s *Stats) MarshalZerologObject(e *zerolog.Event) {
	e.Int("score", s.Score).
		Int("ticks", s.Ticks).
		Int("maxLength", s.MaxLength).
		Dur("duration", s.Duration(time.Now()))
}
