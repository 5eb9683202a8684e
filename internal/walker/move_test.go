package walker

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vinser/tilewalk/internal/tile"
	"github.com/vinser/tilewalk/internal/world"
)

// patchTerrain is grass everywhere inside [-size, size-1] except for patched cells.
type patchTerrain struct {
	size  int
	patch map[Position]tile.Tile
}

func (p patchTerrain) Contains(x, y int) bool {
	return x >= -p.size && x < p.size && y >= -p.size && y < p.size
}

func (p patchTerrain) TileAt(x, y int) (tile.Tile, error) {
	if !p.Contains(x, y) {
		return tile.Grass, errors.New("out of bounds")
	}
	if t, ok := p.patch[Position{x, y}]; ok {
		return t, nil
	}
	return tile.Grass, nil
}

func TestTryMove(t *testing.T) {
	terrain := patchTerrain{
		size: 50,
		patch: map[Position]tile.Tile{
			{1, 0}:  tile.Stone,
			{-1, 0}: tile.Water,
			{0, 1}:  tile.Dirt,
		},
	}
	origin := Position{}

	tests := []struct {
		name     string
		from     Position
		dir      Direction
		accepted bool
		want     Position
		reason   Reason
	}{
		{"stone blocks", origin, Right, false, origin, ReasonBlocked},
		{"water is passable", origin, Left, true, Position{-1, 0}, ReasonNone},
		{"dirt is passable", origin, Down, true, Position{0, 1}, ReasonNone},
		{"grass is passable", origin, Up, true, Position{0, -1}, ReasonNone},
		{"right edge", Position{49, 0}, Right, false, Position{49, 0}, ReasonOutOfBounds},
		{"left edge", Position{-50, 3}, Left, false, Position{-50, 3}, ReasonOutOfBounds},
		{"top edge", Position{3, -50}, Up, false, Position{3, -50}, ReasonOutOfBounds},
		{"bottom edge", Position{3, 49}, Down, false, Position{3, 49}, ReasonOutOfBounds},
		{"left edge inward", Position{-50, 3}, Right, true, Position{-49, 3}, ReasonNone},
		{"no direction", origin, No, false, origin, ReasonNoDirection},
		{"invalid direction", origin, Direction(9), false, origin, ReasonNoDirection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TryMove(terrain, tt.from, tt.dir)
			assert.Equal(t, tt.accepted, got.Accepted)
			assert.Equal(t, tt.want, got.Pos)
			assert.Equal(t, tt.reason, got.Reason)
		})
	}
}

func TestTryMoveOnGeneratedWorld(t *testing.T) {
	w := world.Generate(50, rand.New(rand.NewSource(3)))
	_, hi := w.Bounds()

	// Walk the full boundary: stepping outward is always rejected.
	for i := -50; i <= hi; i++ {
		for _, c := range []struct {
			from Position
			dir  Direction
		}{
			{Position{hi, i}, Right},
			{Position{-50, i}, Left},
			{Position{i, hi}, Down},
			{Position{i, -50}, Up},
		} {
			got := TryMove(w, c.from, c.dir)
			assert.False(t, got.Accepted)
			assert.Equal(t, ReasonOutOfBounds, got.Reason)
			assert.Equal(t, c.from, got.Pos)
		}
	}

	// Any accepted move lands on a passable tile.
	for _, d := range []Direction{Up, Down, Left, Right} {
		got := TryMove(w, Position{}, d)
		dx, dy := d.Delta()
		target, err := w.TileAt(dx, dy)
		assert.NoError(t, err)
		assert.Equal(t, target.Passable(), got.Accepted, d.String())
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{Up, 0, -1},
		{Down, 0, 1},
		{Left, -1, 0},
		{Right, 1, 0},
		{No, 0, 0},
	}
	for _, tt := range tests {
		dx, dy := tt.dir.Delta()
		assert.Equal(t, tt.dx, dx, tt.dir.String())
		assert.Equal(t, tt.dy, dy, tt.dir.String())
	}
}
