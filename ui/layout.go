package ui

import (
	"gridsnake/game"
	"gridsnake/game/types"
)

// Rect is a filled tile in pixel space.
type Rect struct {
	X, Y, W, H int
	Color      types.Color
}

// TileRect positions a grid cell at cell * tile.
func TileRect(p types.Point, tile int, c types.Color) Rect {
	return Rect{X: p.X * tile, Y: p.Y * tile, W: tile, H: tile, Color: c}
}

// Layout turns a snapshot into the rectangles to draw, food first so the
// snake covers it when they share a cell. Cells off the board are kept; the
// frontend clips them.
func Layout(snap game.Snapshot) []Rect {
	tile := snap.Config.TileSize
	rects := make([]Rect, 0, len(snap.Body)+1)
	if snap.HasFood {
		rects = append(rects, TileRect(snap.Food, tile, snap.Config.FoodColor))
	}
	for _, p := range snap.Body {
		rects = append(rects, TileRect(p, tile, snap.Config.SnakeColor))
	}
	return rects
}
