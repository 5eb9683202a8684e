package quit

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/tilewalk/internal/render"
)

const quitPeriod = 1500 * time.Millisecond

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	summary   string
	quitUntil time.Time
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

func New(summary string, width, height int) Model {
	if width < lipgloss.Width(summary) {
		width = lipgloss.Width(summary)
	}
	return Model{
		width:     width,
		height:    height,
		summary:   summary,
		quitUntil: time.Now().Add(quitPeriod),
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if time.Now().After(m.quitUntil) {
		return m, timedoutCmd()
	}
	return m, tick()
}

func (m Model) View() string {
	return render.Page("Bye!", "\n"+m.summary+"\n", "", m.width, m.height, m.termWidth, m.termHeight)
}
