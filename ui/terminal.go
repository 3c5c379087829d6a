package ui

import (
	"fmt"

	"gridsnake/game"
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
)

// cellWidth is how many terminal columns one grid cell spans, to keep cells roughly square.
const cellWidth = 2

// TerminalFrontend draws the board with tcell.
type TerminalFrontend struct {
	screen tcell.Screen
	events chan tcell.Event
	closed bool
}

// NewTerminalFrontend takes over the terminal. Pass nil to use the real one.
func NewTerminalFrontend(screen tcell.Screen) (*TerminalFrontend, error) {
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("new screen: %w", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()

	tf := &TerminalFrontend{
		screen: screen,
		events: make(chan tcell.Event, 100),
	}
	go tf.pollEvents()
	return tf, nil
}

func (tf *TerminalFrontend) pollEvents() {
	defer close(tf.events)
	for {
		ev := tf.screen.PollEvent()
		if ev == nil {
			return
		}
		tf.events <- ev
	}
}

// TerminalKey maps a tcell key event to a game key.
func TerminalKey(ev *tcell.EventKey) game.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.KeyUp
	case tcell.KeyDown:
		return game.KeyDown
	case tcell.KeyLeft:
		return game.KeyLeft
	case tcell.KeyRight:
		return game.KeyRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.KeyQuit
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return game.KeyQuit
		}
	}
	return game.KeyNone
}

func (tf *TerminalFrontend) PollKeys() []game.Key {
	var keys []game.Key
	for {
		select {
		case ev, ok := <-tf.events:
			if !ok {
				tf.closed = true
				return keys
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if k := TerminalKey(ev); k != game.KeyNone {
					keys = append(keys, k)
				}
			case *tcell.EventResize:
				tf.screen.Sync()
			}
		default:
			return keys
		}
	}
}

func (tf *TerminalFrontend) ShouldClose() bool {
	return tf.closed
}

func styleFor(c types.Color) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func (tf *TerminalFrontend) fillCell(p types.Point, style tcell.Style) {
	for dx := 0; dx < cellWidth; dx++ {
		tf.screen.SetContent(p.X*cellWidth+dx, p.Y, ' ', nil, style)
	}
}

// Draw paints the board in grid cells rather than pixels.
func (tf *TerminalFrontend) Draw(snap game.Snapshot) {
	grid := snap.Config.Grid
	tf.screen.Clear()

	bg := styleFor(snap.Config.Background)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			tf.fillCell(types.Point{X: x, Y: y}, bg)
		}
	}

	if snap.HasFood && grid.Contains(snap.Food) {
		tf.fillCell(snap.Food, styleFor(snap.Config.FoodColor))
	}
	body := styleFor(snap.Config.SnakeColor)
	for _, p := range snap.Body {
		if grid.Contains(p) {
			tf.fillCell(p, body)
		}
	}

	if snap.HasFood {
		label := fmt.Sprintf("Score: %d", snap.Score)
		for i, r := range label {
			tf.screen.SetContent(i, grid.Height, r, nil, tcell.StyleDefault)
		}
	}
	tf.screen.Show()
}

// Close restores the terminal.
func (tf *TerminalFrontend) Close() {
	tf.screen.Fini()
}
