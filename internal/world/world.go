// Package world holds the generated terrain grid and answers tile lookups.
package world

import (
	"errors"
	"fmt"

	"github.com/vinser/tilewalk/internal/tile"
)

// ErrOutOfBounds is returned for lookups outside the generated extent.
var ErrOutOfBounds = errors.New("out of bounds")

// World is a square terrain grid centred on the origin.
// Coordinates range over [-mapSize, mapSize-1] on both axes.
type World struct {
	mapSize int
	side    int
	tiles   []tile.Tile // row-major, index = (y+mapSize)*side + (x+mapSize)
}

func newWorld(mapSize int) *World {
	side := 2 * mapSize
	return &World{
		mapSize: mapSize,
		side:    side,
		tiles:   make([]tile.Tile, side*side),
	}
}

// MapSize returns the half-extent of the world.
func (w *World) MapSize() int {
	return w.mapSize
}

// Bounds returns the smallest and largest coordinate valid on either axis.
func (w *World) Bounds() (min, max int) {
	return -w.mapSize, w.mapSize - 1
}

// Contains reports whether (x, y) lies inside the world.
func (w *World) Contains(x, y int) bool {
	return x >= -w.mapSize && x < w.mapSize && y >= -w.mapSize && y < w.mapSize
}

func (w *World) index(x, y int) int {
	return (y+w.mapSize)*w.side + (x + w.mapSize)
}

// TileAt returns the tile at the specified coordinates.
func (w *World) TileAt(x, y int) (tile.Tile, error) {
	if !w.Contains(x, y) {
		return tile.Grass, fmt.Errorf("tile (%d, %d): %w", x, y, ErrOutOfBounds)
	}
	return w.tiles[w.index(x, y)], nil
}

// Count returns how many cells hold the given tile.
func (w *World) Count(t tile.Tile) int {
	n := 0
	for _, c := range w.tiles {
		if c == t {
			n++
		}
	}
	return n
}

// Census returns the number of cells per terrain kind.
func (w *World) Census() map[tile.Tile]int {
	census := make(map[tile.Tile]int, len(tile.All))
	for _, c := range w.tiles {
		census[c]++
	}
	return census
}
