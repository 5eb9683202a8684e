// Package tile defines the terrain kinds a world is made of.
package tile

// Tile represents a terrain kind of one world cell.
type Tile int

const (
	Grass Tile = iota
	Water
	Stone
	Dirt
)

// All lists every terrain kind in declaration order.
var All = []Tile{Grass, Water, Stone, Dirt}

// Passable reports whether a walker may step onto the tile.
// Only stone blocks movement, water is walkable.
func (t Tile) Passable() bool {
	return t != Stone
}

// Valid reports whether t is one of the declared terrain kinds.
func (t Tile) Valid() bool {
	return t >= Grass && t <= Dirt
}

func (t Tile) String() string {
	switch t {
	case Grass:
		return "grass"
	case Water:
		return "water"
	case Stone:
		return "stone"
	case Dirt:
		return "dirt"
	}
	return "unknown"
}
