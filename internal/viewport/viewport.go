// Package viewport computes the window of the world visible around the player.
package viewport

import (
	"github.com/vinser/tilewalk/internal/tile"
	"github.com/vinser/tilewalk/internal/walker"
)

const (
	// TileSize is the edge of one tile in world pixels.
	TileSize = 50
	// Size is the default side of the visible window in tiles.
	Size = 15
)

// Grid is the read-only world view the renderer needs.
type Grid interface {
	Bounds() (min, max int)
	TileAt(x, y int) (tile.Tile, error)
}

// VisibleTile is one tile to draw, positioned in world pixels.
type VisibleTile struct {
	X, Y   int
	Tile   tile.Tile
	PixelX int
	PixelY int
}

// Frame describes everything a render sink needs for one redraw.
type Frame struct {
	Tiles    []VisibleTile // row-major, ascending
	OffsetX  int           // camera translation in pixels
	OffsetY  int
	Size     int
	TileSize int
	Player   walker.Position
}

// ComputeVisibleTiles lists the tiles within size/2 of the player, clipped to
// the world, and the camera offset that centres the window on the player.
// The offset is derived from the unclipped window origin, so clipping at the
// world edge changes which tiles are listed but never moves the camera.
func ComputeVisibleTiles(g Grid, player walker.Position, size, tileSize int) Frame {
	half := size / 2
	lo, hi := g.Bounds()

	startX := max(lo, player.X-half)
	endX := min(hi, player.X+half)
	startY := max(lo, player.Y-half)
	endY := min(hi, player.Y+half)

	f := Frame{
		OffsetX:  -(player.X - half) * tileSize,
		OffsetY:  -(player.Y - half) * tileSize,
		Size:     size,
		TileSize: tileSize,
		Player:   player,
	}
	if endX >= startX && endY >= startY {
		f.Tiles = make([]VisibleTile, 0, (endX-startX+1)*(endY-startY+1))
	}
	for y := startY; y <= endY; y++ {
		for x := startX; x <= endX; x++ {
			t, err := g.TileAt(x, y)
			if err != nil {
				continue
			}
			f.Tiles = append(f.Tiles, VisibleTile{
				X:      x,
				Y:      y,
				Tile:   t,
				PixelX: x * tileSize,
				PixelY: y * tileSize,
			})
		}
	}
	return f
}

// Cell converts a tile's pixel position into a column and row of the window
// by applying the camera offset.
func (f Frame) Cell(t VisibleTile) (col, row int) {
	if f.TileSize == 0 {
		return 0, 0
	}
	return (t.PixelX + f.OffsetX) / f.TileSize, (t.PixelY + f.OffsetY) / f.TileSize
}

// PlayerCell returns the window cell holding the player.
func (f Frame) PlayerCell() (col, row int) {
	return f.Cell(VisibleTile{PixelX: f.Player.X * f.TileSize, PixelY: f.Player.Y * f.TileSize})
}

// Grid lays the frame out as size rows of size cells. Cells outside the world are nil.
func (f Frame) Grid() [][]*tile.Tile {
	rows := make([][]*tile.Tile, f.Size)
	for i := range rows {
		rows[i] = make([]*tile.Tile, f.Size)
	}
	for i := range f.Tiles {
		col, row := f.Cell(f.Tiles[i])
		if row < 0 || row >= f.Size || col < 0 || col >= f.Size {
			continue
		}
		rows[row][col] = &f.Tiles[i].Tile
	}
	return rows
}
