package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownVariant = errors.New("unknown variant")
	ErrInvalidConfig  = errors.New("invalid config")
)

// Color is a renderer-agnostic RGB triple.
type Color struct {
	R, G, B uint8
}

var (
	Red   = Color{R: 255}
	Green = Color{G: 255}
	Blue  = Color{B: 255}
)

// Boundary selects what happens when the head leaves the grid.
type Boundary int

const (
	// BoundaryOpen lets the snake leave the visible area indefinitely.
	BoundaryOpen Boundary = iota
	// BoundaryWrap re-enters from the opposite edge.
	BoundaryWrap
	// BoundarySolid ends the session on contact.
	BoundarySolid
)

func (b Boundary) String() string {
	switch b {
	case BoundaryOpen:
		return "open"
	case BoundaryWrap:
		return "wrap"
	case BoundarySolid:
		return "solid"
	}
	return fmt.Sprintf("Boundary(%d)", int(b))
}

func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(s) {
	case "open", "":
		return BoundaryOpen, nil
	case "wrap":
		return BoundaryWrap, nil
	case "solid":
		return BoundarySolid, nil
	}
	return BoundaryOpen, fmt.Errorf("%w: boundary %q", ErrInvalidConfig, s)
}

// Config holds everything that used to differ between the game's iterations.
type Config struct {
	Name     string
	Grid     Grid
	TileSize int

	// TickRate is simulation ticks per second. Zero means the snake never moves.
	TickRate int

	InitialBody      []Point
	InitialDirection Point
	Food             bool
	GrowOnEat        bool
	SelfCollision    bool
	FoodAvoidsBody   bool
	Boundary         Boundary
	Background       Color
	SnakeColor       Color
	FoodColor        Color
}

// WindowSize is the pixel size of the whole board.
func (c Config) WindowSize() (int, int) {
	return c.Grid.Width * c.TileSize, c.Grid.Height * c.TileSize
}

func (c Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: tile size %d", ErrInvalidConfig, c.TileSize)
	}
	if c.TickRate < 0 {
		return fmt.Errorf("%w: tick rate %d", ErrInvalidConfig, c.TickRate)
	}
	if len(c.InitialBody) == 0 {
		return fmt.Errorf("%w: empty initial body", ErrInvalidConfig)
	}
	if !c.InitialDirection.IsDirection() {
		return fmt.Errorf("%w: initial direction %v", ErrInvalidConfig, c.InitialDirection)
	}
	if c.GrowOnEat && !c.Food {
		return fmt.Errorf("%w: growth needs food", ErrInvalidConfig)
	}
	return nil
}

func startBody(n int) []Point {
	body := make([]Point, n)
	for i := range body {
		body[i] = Point{X: 4 - i, Y: 4}
	}
	return body
}

// Variants lists the presets in the order the game grew them.
var Variants = []Config{
	{
		Name:             "square",
		Grid:             Grid{Width: 10, Height: 10},
		TileSize:         20,
		InitialBody:      startBody(1),
		InitialDirection: Right,
		Background:       Green,
		SnakeColor:       Red,
		FoodColor:        Blue,
	},
	{
		Name:             "move",
		Grid:             Grid{Width: 10, Height: 10},
		TileSize:         20,
		TickRate:         8,
		InitialBody:      startBody(1),
		InitialDirection: Right,
		Background:       Green,
		SnakeColor:       Red,
		FoodColor:        Blue,
	},
	{
		Name:             "body",
		Grid:             Grid{Width: 10, Height: 10},
		TileSize:         20,
		TickRate:         8,
		InitialBody:      startBody(3),
		InitialDirection: Right,
		Background:       Green,
		SnakeColor:       Red,
		FoodColor:        Blue,
	},
	{
		Name:             "board",
		Grid:             Grid{Width: 30, Height: 30},
		TileSize:         20,
		TickRate:         10,
		InitialBody:      startBody(3),
		InitialDirection: Right,
		Background:       Green,
		SnakeColor:       Red,
		FoodColor:        Blue,
	},
	{
		Name:             "classic",
		Grid:             Grid{Width: 30, Height: 30},
		TileSize:         20,
		TickRate:         12,
		InitialBody:      startBody(3),
		InitialDirection: Right,
		Food:             true,
		GrowOnEat:        true,
		SelfCollision:    true,
		Background:       Green,
		SnakeColor:       Red,
		FoodColor:        Blue,
	},
}

// Lookup returns a copy of the named preset.
func Lookup(name string) (Config, error) {
	for _, v := range Variants {
		if v.Name == name {
			v.InitialBody = append([]Point(nil), v.InitialBody...)
			return v, nil
		}
	}
	return Config{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

func VariantNames() []string {
	names := make([]string, len(Variants))
	for i, v := range Variants {
		names[i] = v.Name
	}
	return names
}
