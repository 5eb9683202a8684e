package walker

import (
	"github.com/vinser/tilewalk/internal/tile"
)

// Terrain is the read-only view of the world a move is checked against.
type Terrain interface {
	Contains(x, y int) bool
	TileAt(x, y int) (tile.Tile, error)
}

// Reason tells why a move was not taken.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonNoDirection
	ReasonOutOfBounds
	ReasonBlocked
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonNoDirection:
		return "no direction"
	case ReasonOutOfBounds:
		return "out of bounds"
	case ReasonBlocked:
		return "blocked"
	}
	return "unknown"
}

// Result is the outcome of TryMove. Pos is the new position when Accepted
// and the unchanged starting position otherwise.
type Result struct {
	Pos      Position
	Accepted bool
	Reason   Reason
}

func reject(from Position, r Reason) Result {
	return Result{Pos: from, Reason: r}
}

// TryMove checks a one-tile step from `from` in direction d.
func TryMove(w Terrain, from Position, d Direction) Result {
	if !d.Cardinal() {
		return reject(from, ReasonNoDirection)
	}
	next := from.Add(d.Delta())
	if !w.Contains(next.X, next.Y) {
		return reject(from, ReasonOutOfBounds)
	}
	t, err := w.TileAt(next.X, next.Y)
	if err != nil {
		return reject(from, ReasonOutOfBounds)
	}
	if !t.Passable() {
		return reject(from, ReasonBlocked)
	}
	return Result{Pos: next, Accepted: true}
}
