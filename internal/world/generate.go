package world

import (
	"math/rand"
	"time"

	"github.com/vinser/tilewalk/internal/tile"
)

// Threshold is the exclusive upper bound of a sample range mapped to a tile.
type Threshold struct {
	Below float64
	Tile  tile.Tile
}

// Thresholds is the cumulative sample table used by Generate, weighted towards grass.
var Thresholds = []Threshold{
	{0.6, tile.Grass},
	{0.8, tile.Dirt},
	{0.9, tile.Water},
	{1.0, tile.Stone},
}

// Start is the coordinate that is always generated as grass.
var Start = struct{ X, Y int }{0, 0}

// Classify maps a uniform sample in [0, 1) to a terrain kind.
func Classify(sample float64) tile.Tile {
	for _, th := range Thresholds {
		if sample < th.Below {
			return th.Tile
		}
	}
	return tile.Stone
}

// Generate fills a world of half-extent mapSize with independently sampled tiles.
// If rng is nil a time-seeded source is used.
func Generate(mapSize int, rng *rand.Rand) *World {
	if mapSize < 1 {
		mapSize = 1
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	w := newWorld(mapSize)
	for y := -mapSize; y < mapSize; y++ {
		for x := -mapSize; x < mapSize; x++ {
			w.tiles[w.index(x, y)] = Classify(rng.Float64())
		}
	}
	// Ensure the starting position is grass
	w.tiles[w.index(Start.X, Start.Y)] = tile.Grass
	return w
}
