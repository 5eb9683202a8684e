// Package config assembles runtime settings from defaults, a .env file,
// the process environment and command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/vinser/tilewalk/internal/controller"
	"github.com/vinser/tilewalk/internal/flags"
	"github.com/vinser/tilewalk/internal/viewport"
)

const (
	DefaultMapSize = 50

	EnvMapSize  = "TILEWALK_MAP_SIZE"
	EnvViewport = "TILEWALK_VIEWPORT"
	EnvTileSize = "TILEWALK_TILE_SIZE"
	EnvCooldown = "TILEWALK_COOLDOWN"
	EnvLogFile  = "TILEWALK_LOG"
	EnvMouse    = "TILEWALK_MOUSE"
)

// Config holds the settings of one run.
type Config struct {
	MapSize      int
	ViewportSize int
	TileSize     int
	Cooldown     time.Duration
	LogFile      string
	Mouse        bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		MapSize:      DefaultMapSize,
		ViewportSize: viewport.Size,
		TileSize:     viewport.TileSize,
		Cooldown:     controller.KeyCooldown,
		Mouse:        true,
	}
}

// Source describes where Load reads from.
type Source struct {
	DotEnv string                      // path of the .env file, ignored if missing
	Lookup func(string) (string, bool) // process environment
	Args   []string                    // command line without the program name
	Name   string                      // program name for usage output
	Out    io.Writer                   // usage and flag errors
}

// FromOS reads .env in the working directory, os environment and os.Args.
func FromOS() Source {
	return Source{
		DotEnv: ".env",
		Lookup: os.LookupEnv,
		Args:   os.Args[1:],
		Name:   os.Args[0],
		Out:    os.Stderr,
	}
}

// Load builds and validates a Config.
func Load(src Source) (Config, error) {
	cfg := Default()

	dotenv := map[string]string{}
	if src.DotEnv != "" {
		m, err := godotenv.Read(src.DotEnv)
		switch {
		case err == nil:
			dotenv = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return cfg, fmt.Errorf("read %s: %w", src.DotEnv, err)
		}
	}
	lookup := func(key string) (string, bool) {
		if src.Lookup != nil {
			if v, ok := src.Lookup(key); ok {
				return v, true
			}
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}

	out := src.Out
	if out == nil {
		out = io.Discard
	}
	fl, err := flags.Parse(src.Name, src.Args, out)
	if err != nil {
		return cfg, err
	}
	applyFlags(&cfg, fl)

	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvMapSize, &cfg.MapSize},
		{EnvViewport, &cfg.ViewportSize},
		{EnvTileSize, &cfg.TileSize},
	}
	for _, e := range ints {
		v, ok := lookup(e.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", e.key, err)
		}
		*e.dst = n
	}
	if v, ok := lookup(EnvCooldown); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCooldown, err)
		}
		cfg.Cooldown = d
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup(EnvMouse); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMouse, err)
		}
		cfg.Mouse = b
	}
	return nil
}

func applyFlags(cfg *Config, fl *flags.Flags) {
	if fl.IsSet(flags.MapSize) {
		cfg.MapSize = fl.MapSize
	}
	if fl.IsSet(flags.Viewport) {
		cfg.ViewportSize = fl.Viewport
	}
	if fl.IsSet(flags.TileSize) {
		cfg.TileSize = fl.TileSize
	}
	if fl.IsSet(flags.Cooldown) {
		cfg.Cooldown = fl.Cooldown
	}
	if fl.IsSet(flags.LogFile) {
		cfg.LogFile = fl.LogFile
	}
	if fl.IsSet(flags.NoMouse) {
		cfg.Mouse = !fl.NoMouse
	}
}

// Validate checks ranges. An even viewport is bumped to the next odd size
// so the player always sits on the centre cell.
func (c *Config) Validate() error {
	if c.MapSize < 1 {
		return fmt.Errorf("map size must be at least 1, got %d", c.MapSize)
	}
	if c.ViewportSize < 1 {
		return fmt.Errorf("viewport size must be at least 1, got %d", c.ViewportSize)
	}
	if c.ViewportSize%2 == 0 {
		c.ViewportSize++
	}
	if c.TileSize < 1 {
		return fmt.Errorf("tile size must be at least 1, got %d", c.TileSize)
	}
	if c.Cooldown < 0 {
		return fmt.Errorf("cooldown must not be negative, got %s", c.Cooldown)
	}
	return nil
}
