// Package controller turns movement intents into accepted moves.
//
// A Controller owns the player position and the cooldown clock. It is not safe
// for concurrent use: intents must be delivered from a single goroutine, which
// the Bubble Tea event loop guarantees.
package controller

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/vinser/tilewalk/internal/telemetry"
	"github.com/vinser/tilewalk/internal/viewport"
	"github.com/vinser/tilewalk/internal/walker"
)

// KeyCooldown is the minimum time between two accepted moves.
const KeyCooldown = 500 * time.Millisecond

// Terrain is the world as seen by the controller.
type Terrain interface {
	walker.Terrain
	viewport.Grid
}

// RenderSink receives a freshly computed frame after every accepted move.
type RenderSink interface {
	Render(viewport.Frame)
}

// CoordinateSink receives the formatted player coordinates.
type CoordinateSink interface {
	ShowCoordinates(string)
}

// Source identifies where an intent came from.
type Source int

const (
	Keyboard Source = iota
	Button
)

func (s Source) String() string {
	switch s {
	case Keyboard:
		return "keyboard"
	case Button:
		return "button"
	}
	return "unknown"
}

// Intent is a request to move one step.
type Intent struct {
	Dir    walker.Direction
	Source Source
	At     time.Time
}

// Reason extends walker reasons with the throttle outcome.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonThrottled
	ReasonNoDirection
	ReasonOutOfBounds
	ReasonBlocked
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonThrottled:
		return "throttled"
	case ReasonNoDirection:
		return "no direction"
	case ReasonOutOfBounds:
		return "out of bounds"
	case ReasonBlocked:
		return "blocked"
	}
	return "unknown"
}

func fromWalker(r walker.Reason) Reason {
	switch r {
	case walker.ReasonNoDirection:
		return ReasonNoDirection
	case walker.ReasonOutOfBounds:
		return ReasonOutOfBounds
	case walker.ReasonBlocked:
		return ReasonBlocked
	}
	return ReasonNone
}

// Outcome reports what happened to an intent. Pos is the player position after handling it.
type Outcome struct {
	Accepted bool
	Reason   Reason
	Pos      walker.Position
}

// Options configure a Controller. Non-positive sizes fall back to the viewport
// defaults and a negative cooldown falls back to KeyCooldown.
type Options struct {
	Cooldown     time.Duration
	ViewportSize int
	TileSize     int
	Start        walker.Position
}

// Controller is the single writer of player position and the cooldown clock.
type Controller struct {
	terrain      Terrain
	pos          walker.Position
	lastAccepted time.Time
	moved        bool
	cooldown     time.Duration
	size         int
	tileSize     int

	render RenderSink
	coords CoordinateSink
}

// New returns a controller placing the player at opts.Start. Sinks may be nil.
func New(t Terrain, opts Options, render RenderSink, coords CoordinateSink) *Controller {
	if opts.Cooldown < 0 {
		opts.Cooldown = KeyCooldown
	}
	if opts.ViewportSize <= 0 {
		opts.ViewportSize = viewport.Size
	}
	if opts.TileSize <= 0 {
		opts.TileSize = viewport.TileSize
	}
	return &Controller{
		terrain:  t,
		pos:      opts.Start,
		cooldown: opts.Cooldown,
		size:     opts.ViewportSize,
		tileSize: opts.TileSize,
		render:   render,
		coords:   coords,
	}
}

// Pos returns the current player position.
func (c *Controller) Pos() walker.Position {
	return c.pos
}

// LastAccepted returns the time of the last accepted move and whether one happened yet.
func (c *Controller) LastAccepted() (time.Time, bool) {
	return c.lastAccepted, c.moved
}

// Cooldown returns the configured throttle interval.
func (c *Controller) Cooldown() time.Duration {
	return c.cooldown
}

// Frame computes the current visible window.
func (c *Controller) Frame() viewport.Frame {
	return viewport.ComputeVisibleTiles(c.terrain, c.pos, c.size, c.tileSize)
}

// Start pushes the initial frame and coordinates to the sinks.
func (c *Controller) Start() {
	c.refresh()
}

// OnIntent applies an intent. Throttled and rejected intents change nothing;
// only an accepted move advances the cooldown clock.
func (c *Controller) OnIntent(ctx context.Context, in Intent) Outcome {
	_, span := telemetry.Tracer("controller").Start(ctx, "controller.intent")
	defer span.End()

	out := c.apply(in)

	span.SetAttributes(
		attribute.String("intent.direction", in.Dir.String()),
		attribute.String("intent.source", in.Source.String()),
		attribute.Bool("intent.accepted", out.Accepted),
		attribute.String("intent.reason", out.Reason.String()),
	)
	if out.Accepted {
		log.Printf("move %s via %s to %s", in.Dir, in.Source, out.Pos)
	} else {
		log.Printf("intent %s via %s dropped: %s", in.Dir, in.Source, out.Reason)
	}
	return out
}

func (c *Controller) apply(in Intent) Outcome {
	if c.moved && in.At.Sub(c.lastAccepted) < c.cooldown {
		return Outcome{Reason: ReasonThrottled, Pos: c.pos}
	}
	res := walker.TryMove(c.terrain, c.pos, in.Dir)
	if !res.Accepted {
		return Outcome{Reason: fromWalker(res.Reason), Pos: c.pos}
	}
	c.pos = res.Pos
	c.lastAccepted = in.At
	c.moved = true
	c.refresh()
	return Outcome{Accepted: true, Pos: c.pos}
}

func (c *Controller) refresh() {
	if c.render != nil {
		c.render.Render(c.Frame())
	}
	if c.coords != nil {
		c.coords.ShowCoordinates(FormatCoordinates(c.pos))
	}
}

// FormatCoordinates renders a position for the coordinate display.
func FormatCoordinates(p walker.Position) string {
	return fmt.Sprintf("Coordinates: %d, %d", p.X, p.Y)
}
