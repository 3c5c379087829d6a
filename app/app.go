package app

import (
	"errors"
	"time"

	"gridsnake/ai"
	"gridsnake/game"

	"github.com/rs/zerolog"
)

// Frontend is a window or terminal that shows snapshots and reports keys.
type Frontend interface {
	// PollKeys returns the keys pressed since the last call, oldest first.
	PollKeys() []game.Key
	ShouldClose() bool
	Draw(snap game.Snapshot)
}

// Sounds plays effects; a nil Sounds is silent.
type Sounds interface {
	PlayEat()
	PlayGameOver()
}

// Summary is what Run reports when the loop stops.
type Summary struct {
	State game.State
	Err   error
	Stats game.Stats
}

type Runner struct {
	Game      *game.Game
	Frontend  Frontend
	Sounds    Sounds
	Autopilot *ai.Autopilot
	Clock     *game.TickClock
	Log       zerolog.Logger

	// Now defaults to time.Now.
	Now func() time.Time

	// Idle is slept between frames when the frontend does not pace itself.
	Idle time.Duration
}

func NewRunner(g *game.Game, fe Frontend, log zerolog.Logger) *Runner {
	now := time.Now
	return &Runner{
		Game:     g,
		Frontend: fe,
		Clock:    game.NewTickClock(g.Config.TickRate, now()),
		Now:      now,
		Log:      log,
	}
}

// Run loops until the frontend closes or the session terminates. Game over is
// not an error: the returned Summary carries the cause.
func (r *Runner) Run() Summary {
	for !r.Frontend.ShouldClose() {
		if r.Step() {
			break
		}
		if r.Idle > 0 {
			time.Sleep(r.Idle)
		}
	}
	r.Game.Close()

	sum := Summary{State: r.Game.State(), Err: r.Game.Err(), Stats: *r.Game.Stats}
	r.Log.Info().
		Str("state", sum.State.String()).
		Object("stats", r.Game.Stats).
		Msg("session summary")
	return sum
}

// Step handles one frame: input, at most one tick, then drawing. It reports
// true when the loop should stop.
func (r *Runner) Step() bool {
	for _, k := range r.Frontend.PollKeys() {
		if k == game.KeyQuit {
			r.Log.Debug().Msg("quit requested")
			return true
		}
		if r.Autopilot == nil {
			r.Game.OnKeyPress(k)
		}
	}

	if r.Clock.Due(r.Now()) {
		r.tick()
	}

	r.Frontend.Draw(r.Game.Snapshot())
	return r.Game.State() == game.StateTerminated
}

func (r *Runner) tick() {
	if r.Autopilot != nil {
		r.Game.OnKeyPress(r.Autopilot.Next(r.Game.Snapshot()))
	}

	res := r.Game.Update()

	if r.Autopilot != nil {
		r.Autopilot.Learn(r.Game.Snapshot(), res)
	}
	if r.Sounds == nil {
		return
	}
	switch {
	case errors.Is(res.Err, game.ErrSelfCollision), errors.Is(res.Err, game.ErrWallCollision):
		r.Sounds.PlayGameOver()
	case res.Ate:
		r.Sounds.PlayEat()
	}
}
