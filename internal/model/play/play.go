package play

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/tilewalk/internal/controller"
	"github.com/vinser/tilewalk/internal/render"
	"github.com/vinser/tilewalk/internal/style"
	"github.com/vinser/tilewalk/internal/tile"
	"github.com/vinser/tilewalk/internal/viewport"
	"github.com/vinser/tilewalk/internal/walker"
)

const (
	cellWidth    = 2 // terminal columns per tile
	headerRows   = 2 // top bar and title
	buttonGap    = 1
	playerSprite = "@@"
)

// TerminalDimensions holds the terminal size information
type TerminalDimensions struct {
	Width  int
	Height int
}

// WindowSizeMsg is a message sent when the terminal is resized.
type WindowSizeMsg struct {
	Width  int
	Height int
}

// OpenAboutMsg asks the application to show the about page.
type OpenAboutMsg struct{}

func openAboutCmd() tea.Cmd {
	return func() tea.Msg {
		return OpenAboutMsg{}
	}
}

// screen is the render and coordinate sink the controller draws into.
// It is shared by every copy of the model.
type screen struct {
	frame  viewport.Frame
	coords string
}

func (s *screen) Render(f viewport.Frame) {
	s.frame = f
}

func (s *screen) ShowCoordinates(c string) {
	s.coords = c
}

type Model struct {
	ctrl       *controller.Controller
	screen     *screen
	keys       KeyMap
	help       help.Model
	title      string
	mouse      bool
	tileStyles map[tile.Tile]lipgloss.Style
	terminal   TerminalDimensions
	moves      int
	last       controller.Outcome
	sb         *strings.Builder
	now        func() time.Time
}

// New returns a play model walking the given terrain. The controller is
// created here with the model's screen as both sinks and refreshed once.
func New(t controller.Terrain, opts controller.Options, title string, mouse bool) Model {
	s := &screen{}
	ctrl := controller.New(t, opts, s, s)

	styles := make(map[tile.Tile]lipgloss.Style, len(tile.All))
	for _, tl := range tile.All {
		styles[tl] = style.TileStyle(tl)
	}

	m := Model{
		ctrl:       ctrl,
		screen:     s,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		title:      title,
		mouse:      mouse,
		tileStyles: styles,
		sb:         &strings.Builder{},
		now:        time.Now,
	}
	ctrl.Start()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case WindowSizeMsg:
		m.terminal.Width = msg.Width
		m.terminal.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.About) {
			return m, openAboutCmd()
		}
		if d := m.keys.direction(msg); d != walker.No {
			m.intent(d, controller.Keyboard)
		}
	case tea.MouseMsg:
		if !m.mouse || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if d, ok := m.buttonAt(msg.X, msg.Y); ok {
			m.intent(d, controller.Button)
		}
	}
	return m, nil
}

func (m *Model) intent(d walker.Direction, src controller.Source) {
	m.last = m.ctrl.OnIntent(context.Background(), controller.Intent{
		Dir:    d,
		Source: src,
		At:     m.now(),
	})
	if m.last.Accepted {
		m.moves++
	}
}

// Keys returns the key bindings in use.
func (m Model) Keys() KeyMap {
	return m.keys
}

// Pos returns the player position.
func (m Model) Pos() walker.Position {
	return m.ctrl.Pos()
}

// Moves returns the number of accepted moves.
func (m Model) Moves() int {
	return m.moves
}

// LastOutcome returns how the most recent intent was handled.
func (m Model) LastOutcome() controller.Outcome {
	return m.last
}

// Coordinates returns the text shown by the coordinate display.
func (m Model) Coordinates() string {
	return m.screen.coords
}

// buttonSpan is the column range [from, to) of one on-screen button.
type buttonSpan struct {
	dir   walker.Direction
	label string
	from  int
	to    int
}

var buttons = []struct {
	dir   walker.Direction
	label string
}{
	{walker.Up, "↑"},
	{walker.Down, "↓"},
	{walker.Left, "←"},
	{walker.Right, "→"},
}

// layout holds screen positions shared by View and mouse hit-testing.
type layout struct {
	pad        int
	width      int
	coordsRow  int
	buttonsRow int
	buttons    []buttonSpan
}

func (m Model) layout() layout {
	size := m.screen.frame.Size
	mapWidth := size * cellWidth

	var spans []buttonSpan
	x := 0
	for _, b := range buttons {
		w := lipgloss.Width(style.Button.Render(b.label))
		spans = append(spans, buttonSpan{dir: b.dir, label: b.label, from: x, to: x + w})
		x += w + buttonGap
	}
	barWidth := x - buttonGap

	width := max(mapWidth, barWidth)
	pad := 0
	if m.terminal.Width > width {
		pad = (m.terminal.Width - width) / 2
	}
	for i := range spans {
		spans[i].from += pad
		spans[i].to += pad
	}
	return layout{
		pad:        pad,
		width:      width,
		coordsRow:  headerRows + size,
		buttonsRow: headerRows + size + 1,
		buttons:    spans,
	}
}

// buttonAt returns the direction of the on-screen button under the cell (x, y).
func (m Model) buttonAt(x, y int) (walker.Direction, bool) {
	l := m.layout()
	if y != l.buttonsRow {
		return walker.No, false
	}
	for _, b := range l.buttons {
		if x >= b.from && x < b.to {
			return b.dir, true
		}
	}
	return walker.No, false
}

// View returns the complete screen output.
func (m *Model) View() string {
	m.sb.Reset()
	l := m.layout()
	padString := strings.Repeat(" ", l.pad)

	m.sb.WriteString(render.TopBar(l.width, l.pad))
	m.sb.WriteString("\n")
	m.sb.WriteString(padString)
	m.sb.WriteString(style.Title.Render(m.title))
	m.sb.WriteString("\n")

	m.renderMap(padString)

	m.sb.WriteString(padString)
	m.sb.WriteString(style.Coordinates.Render(m.screen.coords))
	m.sb.WriteString("\n")

	m.sb.WriteString(padString)
	for i, b := range l.buttons {
		if i > 0 {
			m.sb.WriteString(strings.Repeat(" ", buttonGap))
		}
		m.sb.WriteString(style.Button.Render(b.label))
	}
	m.sb.WriteString("\n")

	m.sb.WriteString(padString)
	m.sb.WriteString(m.help.View(m.keys))
	m.sb.WriteString("\n")
	return m.sb.String()
}

// renderMap draws the frame row by row. Cells the frame does not cover stay blank.
func (m *Model) renderMap(padString string) {
	f := m.screen.frame
	playerCol, playerRow := f.PlayerCell()
	blank := strings.Repeat(" ", cellWidth)
	for r, row := range f.Grid() {
		m.sb.WriteString(padString)
		for c, t := range row {
			switch {
			case t == nil:
				m.sb.WriteString(blank)
			case r == playerRow && c == playerCol:
				m.sb.WriteString(style.Player.Inherit(m.tileStyles[*t]).Render(playerSprite))
			default:
				m.sb.WriteString(m.tileStyles[*t].Render(style.TileSprite(*t)))
			}
		}
		m.sb.WriteString("\n")
	}
}
