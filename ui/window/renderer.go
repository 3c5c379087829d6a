package window

import (
	"fmt"

	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	targetFPS = 60
	fontSize  = 16
)

// Renderer owns the raylib window. It reads snapshots and never touches the game.
type Renderer struct {
	title string
}

// NewRenderer opens a window sized to the board.
func NewRenderer(cfg types.Config, title string) *Renderer {
	w, h := cfg.WindowSize()
	rl.InitWindow(int32(w), int32(h), title)
	rl.SetTargetFPS(targetFPS)

	return &Renderer{title: title}
}

func toColor(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

// windowKey maps a raylib key code to a game key.
func windowKey(k int32) game.Key {
	switch k {
	case rl.KeyUp:
		return game.KeyUp
	case rl.KeyDown:
		return game.KeyDown
	case rl.KeyLeft:
		return game.KeyLeft
	case rl.KeyRight:
		return game.KeyRight
	case rl.KeyQ:
		return game.KeyQuit
	}
	return game.KeyNone
}

// PollKeys drains raylib's key queue.
func (r *Renderer) PollKeys() []game.Key {
	var keys []game.Key
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		if gk := windowKey(k); gk != game.KeyNone {
			keys = append(keys, gk)
		}
	}
	return keys
}

// ShouldClose is true after the close button or Escape.
func (r *Renderer) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (r *Renderer) Draw(snap game.Snapshot) {
	rl.BeginDrawing()
	rl.ClearBackground(toColor(snap.Config.Background))

	for _, rect := range ui.Layout(snap) {
		rl.DrawRectangle(int32(rect.X), int32(rect.Y), int32(rect.W), int32(rect.H), toColor(rect.Color))
	}

	if snap.HasFood {
		rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), 5, 5, fontSize, rl.White)
	}
	rl.EndDrawing()
}

func (r *Renderer) Close() {
	rl.CloseWindow()
}
