package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vinser/tilewalk/internal/config"
	"github.com/vinser/tilewalk/internal/controller"
	"github.com/vinser/tilewalk/internal/embeddata"
	"github.com/vinser/tilewalk/internal/model/about"
	"github.com/vinser/tilewalk/internal/model/play"
	"github.com/vinser/tilewalk/internal/model/quit"
	"github.com/vinser/tilewalk/internal/telemetry"
	"github.com/vinser/tilewalk/internal/tile"
	"github.com/vinser/tilewalk/internal/walker"
	"github.com/vinser/tilewalk/internal/world"
)

type status uint

const (
	statusPlay status = iota
	statusAbout
	statusQuitting
)

type Model struct {
	status status
	cfg    config.Config
	world  *world.World
	// models
	play  play.Model
	about about.Model
	quit  quit.Model
	// terminal size cache
	termWidth  int
	termHeight int
}

// New generates a world and places the player on its start tile.
func New(ctx context.Context, version string, cfg config.Config) Model {
	w := generateWorld(ctx, cfg.MapSize)
	opts := controller.Options{
		Cooldown:     cfg.Cooldown,
		ViewportSize: cfg.ViewportSize,
		TileSize:     cfg.TileSize,
		Start:        walker.Position{X: world.Start.X, Y: world.Start.Y},
	}
	title := fmt.Sprintf("tilewalk %s  World: %d×%d", version, 2*w.MapSize(), 2*w.MapSize())
	return Model{
		status: statusPlay,
		cfg:    cfg,
		world:  w,
		play:   play.New(w, opts, title, cfg.Mouse),
	}
}

func generateWorld(ctx context.Context, mapSize int) *world.World {
	_, span := telemetry.Tracer("world").Start(ctx, "world.generate")
	defer span.End()

	started := time.Now()
	w := world.Generate(mapSize, nil)
	census := w.Census()

	attrs := []attribute.KeyValue{
		attribute.Int("world.map_size", w.MapSize()),
		attribute.Int64("world.generation_ms", time.Since(started).Milliseconds()),
	}
	for _, t := range tile.All {
		attrs = append(attrs, attribute.Int("world.tiles."+t.String(), census[t]))
	}
	span.SetAttributes(attrs...)

	log.Printf("world generated: map size %d, %s", w.MapSize(), censusLine(census))
	return w
}

func censusLine(census map[tile.Tile]int) string {
	parts := make([]string, 0, len(tile.All))
	for _, t := range tile.All {
		parts = append(parts, fmt.Sprintf("%s %d", t, census[t]))
	}
	return strings.Join(parts, ", ")
}

// aboutContent appends the terrain census of the current world to the embedded help text.
func aboutContent(w *world.World) string {
	var b strings.Builder
	bytes, err := embeddata.ReadAboutMD()
	if err != nil {
		log.Printf("about page: %v", err)
	}
	b.Write(bytes)
	b.WriteString("\n## This world\n\n| Tile | Count |\n|------|-------|\n")
	for _, t := range tile.All {
		fmt.Fprintf(&b, "| %s | %d |\n", t, w.Count(t))
	}
	return b.String()
}

func (m Model) pageSize() (int, int) {
	width := m.cfg.ViewportSize * 2
	if width < 40 {
		width = 40
	}
	return width, m.cfg.ViewportSize + 5
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("tilewalk"), m.play.Init())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.status != statusQuitting && key.Matches(msg, m.play.Keys().Quit) {
			m.status = statusQuitting
			m.quit = m.newQuit()
			m.quit.SetSize(m.termWidth, m.termHeight)
			return m, m.quit.Init()
		}
	case tea.WindowSizeMsg:
		// Always remember the latest terminal size
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.play, cmd = m.play.Update(play.WindowSizeMsg{Width: msg.Width, Height: msg.Height})
		cmds = append(cmds, cmd)
		switch m.status {
		case statusAbout:
			m.about.SetSize(msg.Width, msg.Height)
		case statusQuitting:
			m.quit.SetSize(msg.Width, msg.Height)
		}
		cmds = append(cmds, tea.ClearScreen)
		return m, tea.Batch(cmds...)
	}

	switch m.status {
	case statusPlay:
		switch msg.(type) {
		case play.OpenAboutMsg:
			m.status = statusAbout
			width, height := m.pageSize()
			m.about = about.New(aboutContent(m.world), width, height)
			m.about.SetSize(m.termWidth, m.termHeight)
		default:
			m.play, cmd = m.play.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusAbout:
		switch msg.(type) {
		case about.CloseAboutMsg:
			m.status = statusPlay
		default:
			m.about, cmd = m.about.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusQuitting:
		switch msg.(type) {
		case quit.TimedoutMsg:
			return m, tea.Quit
		default:
			m.quit, cmd = m.quit.Update(msg)
		}
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) newQuit() quit.Model {
	width, height := m.pageSize()
	summary := fmt.Sprintf("You made %d moves.\n%s", m.play.Moves(), m.play.Coordinates())
	return quit.New(summary, width, height)
}

func (m Model) View() string {
	switch m.status {
	case statusPlay:
		return m.play.View()
	case statusAbout:
		return m.about.View()
	case statusQuitting:
		return m.quit.View()
	}
	return ""
}
