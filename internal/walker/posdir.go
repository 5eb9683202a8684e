// Package walker validates single-step moves across the world grid.
package walker

import "fmt"

// Position represents coordinates on the map.
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Add returns p shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Direction represents movement direction.
type Direction int

const (
	No Direction = iota
	Up
	Down
	Left
	Right
)

// Delta returns the unit step for a cardinal direction and (0, 0) otherwise.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Cardinal reports whether d is one of the four unit directions.
func (d Direction) Cardinal() bool {
	return d >= Up && d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}
