package play

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinser/tilewalk/internal/controller"
	"github.com/vinser/tilewalk/internal/tile"
	"github.com/vinser/tilewalk/internal/walker"
)

type fakeTerrain struct {
	size  int
	patch map[walker.Position]tile.Tile
}

func (f fakeTerrain) Contains(x, y int) bool {
	return x >= -f.size && x < f.size && y >= -f.size && y < f.size
}

func (f fakeTerrain) Bounds() (int, int) {
	return -f.size, f.size - 1
}

func (f fakeTerrain) TileAt(x, y int) (tile.Tile, error) {
	if !f.Contains(x, y) {
		return tile.Grass, errors.New("out of bounds")
	}
	if t, ok := f.patch[walker.Position{X: x, Y: y}]; ok {
		return t, nil
	}
	return tile.Grass, nil
}

// clock is a manually advanced time source.
type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newModel(t *testing.T, terrain fakeTerrain, mouse bool) (Model, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	m := New(terrain, controller.Options{Cooldown: controller.KeyCooldown}, "tilewalk", mouse)
	m.now = c.now
	m, _ = m.Update(WindowSizeMsg{Width: 80, Height: 24})
	return m, c
}

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestNewShowsStartCoordinates(t *testing.T) {
	m, _ := newModel(t, fakeTerrain{size: 50}, true)
	assert.Equal(t, "Coordinates: 0, 0", m.Coordinates())
	assert.Equal(t, walker.Position{}, m.Pos())
}

func TestKeyboardMovesAreThrottled(t *testing.T) {
	m, c := newModel(t, fakeTerrain{size: 50}, true)

	m, _ = m.Update(keyMsg(tea.KeyRight))
	assert.Equal(t, walker.Position{X: 1}, m.Pos())
	assert.Equal(t, "Coordinates: 1, 0", m.Coordinates())

	c.advance(100 * time.Millisecond)
	m, _ = m.Update(runeMsg('s'))
	assert.Equal(t, controller.ReasonThrottled, m.LastOutcome().Reason)
	assert.Equal(t, walker.Position{X: 1}, m.Pos())

	c.advance(500 * time.Millisecond)
	m, _ = m.Update(runeMsg('s'))
	assert.Equal(t, walker.Position{X: 1, Y: 1}, m.Pos())
	assert.Equal(t, 2, m.Moves())
}

func TestStoneBlocksWithoutCooldown(t *testing.T) {
	terrain := fakeTerrain{size: 50, patch: map[walker.Position]tile.Tile{{X: -1, Y: 0}: tile.Stone, {X: 0, Y: -1}: tile.Water}}
	m, c := newModel(t, terrain, true)

	m, _ = m.Update(keyMsg(tea.KeyLeft))
	assert.Equal(t, controller.ReasonBlocked, m.LastOutcome().Reason)

	c.advance(10 * time.Millisecond)
	m, _ = m.Update(keyMsg(tea.KeyUp))
	assert.True(t, m.LastOutcome().Accepted)
	assert.Equal(t, walker.Position{Y: -1}, m.Pos())
}

func TestButtonsShareCooldownWithKeyboard(t *testing.T) {
	m, c := newModel(t, fakeTerrain{size: 50}, true)
	l := m.layout()
	require.Len(t, l.buttons, 4)

	down := l.buttons[1]
	require.Equal(t, walker.Down, down.dir)
	m, _ = m.Update(click(down.from, l.buttonsRow))
	assert.Equal(t, walker.Position{Y: 1}, m.Pos())

	c.advance(200 * time.Millisecond)
	m, _ = m.Update(keyMsg(tea.KeyDown))
	assert.Equal(t, controller.ReasonThrottled, m.LastOutcome().Reason)

	c.advance(400 * time.Millisecond)
	right := l.buttons[3]
	m, _ = m.Update(click(right.to-1, l.buttonsRow))
	assert.Equal(t, walker.Position{X: 1, Y: 1}, m.Pos())
}

func TestClicksOutsideButtonsAreIgnored(t *testing.T) {
	m, _ := newModel(t, fakeTerrain{size: 50}, true)
	l := m.layout()

	m, _ = m.Update(click(l.buttons[0].from, l.buttonsRow+1))
	m, _ = m.Update(click(l.buttons[0].from-1, l.buttonsRow))
	m, _ = m.Update(tea.MouseMsg{X: l.buttons[0].from, Y: l.buttonsRow, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Equal(t, walker.Position{}, m.Pos())
	assert.Zero(t, m.Moves())
}

func TestMouseDisabled(t *testing.T) {
	m, _ := newModel(t, fakeTerrain{size: 50}, false)
	l := m.layout()
	m, _ = m.Update(click(l.buttons[0].from, l.buttonsRow))
	assert.Equal(t, walker.Position{}, m.Pos())
}

func TestAboutKey(t *testing.T) {
	m, _ := newModel(t, fakeTerrain{size: 50}, true)
	_, cmd := m.Update(runeMsg('?'))
	require.NotNil(t, cmd)
	assert.IsType(t, OpenAboutMsg{}, cmd())
}

func TestView(t *testing.T) {
	m, _ := newModel(t, fakeTerrain{size: 50}, true)
	out := m.View()

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, headerRows+15+3)
	assert.Contains(t, lines[1], "tilewalk")
	assert.Contains(t, lines[headerRows+7], playerSprite)
	assert.Contains(t, lines[headerRows+15], "Coordinates: 0, 0")
	for _, b := range buttons {
		assert.Contains(t, lines[headerRows+16], b.label)
	}
}

func TestViewLeavesClippedCellsBlank(t *testing.T) {
	terrain := fakeTerrain{size: 50}
	m := New(terrain, controller.Options{Start: walker.Position{X: -50}}, "tilewalk", true)
	out := m.View()
	lines := strings.Split(out, "\n")

	// Seven columns left of the world edge stay blank on the player's row.
	row := lines[headerRows+7]
	assert.True(t, strings.HasPrefix(row, strings.Repeat(" ", 7*cellWidth)), "%q", row)
	assert.Contains(t, row, playerSprite)
}
