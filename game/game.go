package game

import (
	"errors"
	"fmt"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrSelfCollision = errors.New("self collision")
	ErrWallCollision = errors.New("wall collision")
)

// State is the session lifecycle: Running until a fatal collision.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	if s == StateTerminated {
		return "terminated"
	}
	return "running"
}

// TickResult reports the outcome of one Update.
type TickResult struct {
	Move manager.MoveResult
	Ate  bool

	// Err is ErrSelfCollision or ErrWallCollision when the tick ended the session.
	Err error
}

type Game struct {
	UUID   string
	Config types.Config
	Stats  *Stats

	snake *entity.Snake
	food  types.Point
	state State
	cause error

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	movementMgr  *manager.MovementManager

	rng manager.Intner
	now func() time.Time
	log zerolog.Logger
}

type Option func(*Game)

func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithRand replaces the food source, mainly for tests.
func WithRand(r manager.Intner) Option {
	return func(g *Game) { g.rng = r }
}

func WithSeed(seed uint64) Option {
	return func(g *Game) { g.rng = manager.NewRand(seed) }
}

func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

func NewGame(cfg types.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	g := &Game{
		UUID:   uuid.New().String(),
		Config: cfg,
		now:    time.Now,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = manager.NewRand(uint64(g.now().UnixNano()))
	}
	g.log = g.log.With().Str("session", g.UUID).Logger()

	g.collisionMgr = manager.NewCollisionManager(cfg.Grid)
	g.foodMgr = manager.NewFoodManager(cfg.Grid, g.rng, cfg.FoodAvoidsBody, g.collisionMgr)
	g.movementMgr = manager.NewMovementManager(cfg, g.collisionMgr)

	g.snake = entity.NewSnake(cfg.InitialBody, cfg.InitialDirection)
	g.Stats = NewStats(g.now(), g.snake.Len())
	if cfg.Food {
		g.food = g.foodMgr.Respawn(g.snake.Body)
	}

	g.log.Info().
		Str("variant", cfg.Name).
		Int("tickRate", cfg.TickRate).
		Str("boundary", cfg.Boundary.String()).
		Msg("session started")
	return g, nil
}

func (g *Game) State() State {
	return g.state
}

// Err returns the collision that terminated the session, if any.
func (g *Game) Err() error {
	return g.cause
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Point {
	return g.food
}

// SetFood places food directly. Used by tests and scripted scenarios.
func (g *Game) SetFood(p types.Point) {
	g.food = p
}

// Update advances the simulation by exactly one tick.
func (g *Game) Update() TickResult {
	if g.state == StateTerminated {
		return TickResult{Err: g.cause}
	}

	res := TickResult{Move: g.movementMgr.Advance(g.snake)}

	switch {
	case res.Move.SelfCollision:
		res.Err = ErrSelfCollision
	case res.Move.WallCollision:
		res.Err = ErrWallCollision
	}
	if res.Err != nil {
		g.terminate(res.Err)
		return res
	}

	if g.Config.Food && g.collisionMgr.IsFoodCollision(res.Move.Head, g.food) {
		res.Ate = true
		if g.Config.GrowOnEat {
			g.snake.Grow()
		}
		g.food = g.foodMgr.Respawn(g.snake.Body)
		g.Stats.recordEat()
		g.log.Debug().
			Int("x", res.Move.Head.X).
			Int("y", res.Move.Head.Y).
			Int("length", g.snake.Len()).
			Msg("food eaten")
	}

	g.Stats.recordTick(g.snake.Len())
	return res
}

func (g *Game) terminate(cause error) {
	g.state = StateTerminated
	g.cause = cause
	g.Stats.recordTick(g.snake.Len())
	g.Stats.Finish(g.now())
	head := g.snake.GetHead()
	g.log.Info().
		Err(cause).
		Int("x", head.X).
		Int("y", head.Y).
		Msg("session terminated")
}

// Close ends a still-running session, e.g. on window close.
func (g *Game) Close() {
	g.Stats.Finish(g.now())
}

// Snapshot is a read-only copy of what a renderer needs.
type Snapshot struct {
	Body      []types.Point
	Food      types.Point
	HasFood   bool
	Direction types.Point
	State     State
	Score     int
	Config    types.Config
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Body:      g.snake.Segments(),
		Food:      g.food,
		HasFood:   g.Config.Food,
		Direction: g.snake.Direction,
		State:     g.state,
		Score:     g.Stats.Score,
		Config:    g.Config,
	}
}
