package game

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"gridsnake/game/types"
)

func newTestGame(t *testing.T, variant string) *Game {
	t.Helper()
	cfg, err := types.Lookup(variant)
	if err != nil {
		t.Fatal(err)
	}
	g, err := NewGame(cfg, WithSeed(7))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestNewGameInitialState(t *testing.T) {
	g := newTestGame(t, "classic")

	want := []types.Point{{X: 4, Y: 4}, {X: 3, Y: 4}, {X: 2, Y: 4}}
	if got := g.GetSnake().Body; !reflect.DeepEqual(got, want) {
		t.Fatalf("body = %v, want %v", got, want)
	}
	if g.GetSnake().Direction != types.Right {
		t.Errorf("direction = %v, want right", g.GetSnake().Direction)
	}
	if g.State() != StateRunning {
		t.Errorf("state = %v, want running", g.State())
	}
	if !g.Config.Grid.Contains(g.GetFood()) {
		t.Errorf("initial food %v off the board", g.GetFood())
	}
	if g.UUID == "" {
		t.Error("missing session id")
	}
}

func TestNewGameRejectsBadConfig(t *testing.T) {
	cfg, _ := types.Lookup("classic")
	cfg.InitialBody = nil
	if _, err := NewGame(cfg); !errors.Is(err, types.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

// Scenario A
func TestUpdateMovesRight(t *testing.T) {
	g := newTestGame(t, "classic")
	g.SetFood(types.Point{X: 0, Y: 0})

	res := g.Update()

	if res.Err != nil {
		t.Fatalf("unexpected err %v", res.Err)
	}
	want := []types.Point{{X: 5, Y: 4}, {X: 4, Y: 4}, {X: 3, Y: 4}}
	if got := g.GetSnake().Body; !reflect.DeepEqual(got, want) {
		t.Fatalf("body = %v, want %v", got, want)
	}
}

// Scenario B
func TestKeyPressTurnsOnNextTick(t *testing.T) {
	g := newTestGame(t, "classic")
	g.SetFood(types.Point{X: 0, Y: 0})

	g.Update()
	if _, ok := g.OnKeyPress(KeyDown); !ok {
		t.Fatal("down key ignored")
	}
	if g.GetSnake().Direction != types.Right {
		t.Fatal("direction changed before the tick")
	}

	g.Update()
	if got := g.GetSnake().GetHead(); got != (types.Point{X: 5, Y: 5}) {
		t.Fatalf("head = %v, want (5,5)", got)
	}
	g.Update()
	if got := g.GetSnake().GetHead(); got != (types.Point{X: 5, Y: 6}) {
		t.Fatalf("head = %v, want (5,6)", got)
	}
}

// Scenario C
func TestReversalIgnoredAtCommit(t *testing.T) {
	g := newTestGame(t, "classic")
	g.SetFood(types.Point{X: 0, Y: 0})

	if _, ok := g.OnKeyPress(KeyLeft); !ok {
		t.Fatal("left key not buffered")
	}
	if g.GetSnake().Pending != types.Left {
		t.Fatalf("pending = %v, want left", g.GetSnake().Pending)
	}

	res := g.Update()

	if res.Move.Turned {
		t.Error("reversal reported as a turn")
	}
	if g.GetSnake().Direction != types.Right {
		t.Fatalf("direction = %v, want right", g.GetSnake().Direction)
	}
	if got := g.GetSnake().GetHead(); got != (types.Point{X: 5, Y: 4}) {
		t.Errorf("head = %v, want (5,4)", got)
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	g := newTestGame(t, "classic")
	for _, k := range []Key{KeyNone, KeyQuit} {
		if _, ok := g.OnKeyPress(k); ok {
			t.Errorf("key %v changed pending", k)
		}
	}
	if g.GetSnake().Pending != types.Right {
		t.Errorf("pending = %v, want right", g.GetSnake().Pending)
	}
}

// Scenario D
func TestEatingGrowsAndRespawns(t *testing.T) {
	g := newTestGame(t, "classic")
	g.SetFood(types.Point{X: 5, Y: 4})

	res := g.Update()

	if !res.Ate {
		t.Fatal("food not eaten")
	}
	if got := g.GetSnake().Len(); got != 4 {
		t.Fatalf("length = %d, want 4", got)
	}
	if tail := g.GetSnake().Body[3]; tail != types.Sentinel {
		t.Errorf("new tail = %v, want sentinel", tail)
	}
	if !g.Config.Grid.Contains(g.GetFood()) {
		t.Errorf("respawned food %v off the board", g.GetFood())
	}
	if g.Stats.Score != 1 {
		t.Errorf("score = %d, want 1", g.Stats.Score)
	}

	// The sentinel becomes the old tail on the next tick.
	g.SetFood(types.Point{X: 0, Y: 0})
	g.Update()
	want := []types.Point{{X: 6, Y: 4}, {X: 5, Y: 4}, {X: 4, Y: 4}, {X: 3, Y: 4}}
	if got := g.GetSnake().Body; !reflect.DeepEqual(got, want) {
		t.Fatalf("body = %v, want %v", got, want)
	}
}

func TestNoGrowthWithoutFood(t *testing.T) {
	g := newTestGame(t, "board")
	for i := 0; i < 5; i++ {
		if res := g.Update(); res.Ate {
			t.Fatal("ate in a variant without food")
		}
	}
	if got := g.GetSnake().Len(); got != 3 {
		t.Fatalf("length = %d, want 3", got)
	}
}

// Scenario E
func TestSelfCollisionTerminates(t *testing.T) {
	g := newTestGame(t, "classic")
	g.SetFood(types.Point{X: 0, Y: 0})
	s := g.GetSnake()
	s.Body = []types.Point{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 4}}
	s.Direction = types.Up
	s.Pending = types.Up

	res := g.Update()

	if !errors.Is(res.Err, ErrSelfCollision) {
		t.Fatalf("err = %v, want ErrSelfCollision", res.Err)
	}
	if g.State() != StateTerminated {
		t.Fatalf("state = %v, want terminated", g.State())
	}
	if !errors.Is(g.Err(), ErrSelfCollision) {
		t.Errorf("Err() = %v", g.Err())
	}

	body := g.GetSnake().Segments()
	res = g.Update()
	if !errors.Is(res.Err, ErrSelfCollision) {
		t.Errorf("later tick err = %v", res.Err)
	}
	if !reflect.DeepEqual(body, g.GetSnake().Body) {
		t.Error("snake moved after termination")
	}
	if _, ok := g.OnKeyPress(KeyDown); ok {
		t.Error("input accepted after termination")
	}
}

func TestSolidWallTerminates(t *testing.T) {
	cfg, _ := types.Lookup("classic")
	cfg.Boundary = types.BoundarySolid
	g, err := NewGame(cfg, WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	g.SetFood(types.Point{X: 0, Y: 0})
	g.OnKeyPress(KeyUp)

	var res TickResult
	for i := 0; i < 10 && g.State() == StateRunning; i++ {
		res = g.Update()
	}
	if !errors.Is(res.Err, ErrWallCollision) {
		t.Fatalf("err = %v, want ErrWallCollision", res.Err)
	}
	if got := g.GetSnake().GetHead(); got != (types.Point{X: 4, Y: 0}) {
		t.Errorf("head = %v, want (4,0)", got)
	}
}

func TestLengthNeverShrinks(t *testing.T) {
	g := newTestGame(t, "classic")
	keys := []Key{KeyDown, KeyLeft, KeyUp, KeyRight}
	prev := g.GetSnake().Len()
	for i := 0; i < 400 && g.State() == StateRunning; i++ {
		if i%7 == 0 {
			g.OnKeyPress(keys[(i/7)%len(keys)])
		}
		before := g.GetSnake().GetHead()
		dir := g.GetSnake().Pending
		if dir.IsReverse(g.GetSnake().Direction) {
			dir = g.GetSnake().Direction
		}

		res := g.Update()
		if res.Err != nil {
			break
		}

		if got := g.GetSnake().GetHead(); got != before.Add(dir) {
			t.Fatalf("tick %d: head = %v, want %v", i, got, before.Add(dir))
		}
		n := g.GetSnake().Len()
		if n < prev {
			t.Fatalf("tick %d: length shrank from %d to %d", i, prev, n)
		}
		if res.Ate && n != prev+1 {
			t.Fatalf("tick %d: ate but length %d -> %d", i, prev, n)
		}
		if !res.Ate && n != prev {
			t.Fatalf("tick %d: grew without eating", i)
		}
		prev = n
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t, "classic")
	snap := g.Snapshot()
	snap.Body[0] = types.Point{X: 99, Y: 99}

	if g.GetSnake().GetHead() == (types.Point{X: 99, Y: 99}) {
		t.Fatal("snapshot shares the body slice")
	}
	if !snap.HasFood || snap.Config.Name != "classic" {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestStatsDuration(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	now := start
	cfg, _ := types.Lookup("classic")
	g, err := NewGame(cfg, WithSeed(3), WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatal(err)
	}

	now = start.Add(3 * time.Second)
	g.Close()
	now = start.Add(10 * time.Second)
	g.Close()

	if got := g.Stats.Duration(now); got != 3*time.Second {
		t.Fatalf("duration = %v, want 3s", got)
	}
}
