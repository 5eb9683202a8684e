// Package flags parses the command line of tilewalk.
package flags

import (
	"io"
	"time"
)

const (
	MapSize  = "map-size"
	Viewport = "viewport"
	TileSize = "tile-size"
	Cooldown = "cooldown"
	LogFile  = "log"
	NoMouse  = "no-mouse"
)

// Flags stores the parsed command-line options together with the names
// of the flags that were given explicitly.
type Flags struct {
	MapSize  int
	Viewport int
	TileSize int
	Cooldown time.Duration
	LogFile  string
	NoMouse  bool

	set map[string]bool
}

// IsSet reports whether the named flag appeared on the command line.
func (f *Flags) IsSet(name string) bool {
	return f.set[name]
}

// Parse parses args (without the program name). Usage and errors are written to out.
func Parse(name string, args []string, out io.Writer) (*Flags, error) {
	f := &Flags{set: make(map[string]bool)}

	fs := NewFlagSetWithVisit(name, out)
	fs.IntVar(&f.MapSize, MapSize, "m", 0, "World half-extent in tiles")
	fs.IntVar(&f.Viewport, Viewport, "v", 0, "Visible window side in tiles")
	fs.IntVar(&f.TileSize, TileSize, "t", 0, "Tile edge in world pixels")
	fs.DurationVar(&f.Cooldown, Cooldown, "c", 0, "Minimum time between moves, e.g. 500ms")
	fs.StringVar(&f.LogFile, LogFile, "l", "", "Write debug log to this file")
	fs.BoolVar(&f.NoMouse, NoMouse, "n", false, "Disable mouse support for on-screen buttons")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	for _, n := range []string{MapSize, Viewport, TileSize, Cooldown, LogFile, NoMouse} {
		if fs.IsCustom(n) {
			f.set[n] = true
		}
	}
	return f, nil
}
