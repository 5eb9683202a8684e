package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/tilewalk/internal/tile"
)

var (
	// Page styles
	TopPattern = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))            // Pinkish-reddish purple
	Title      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	Footer     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	Coordinates = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")) // Green
	Button      = lipgloss.NewStyle().Padding(0, 1).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("238"))
	Player = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(GenerateHexColor(255, 255, 0)))
)

type RGB struct {
	R int
	G int
	B int
}

var RGBColor = map[string]RGB{
	"black": {0, 0, 0},
	"white": {255, 255, 255},
	"grass": {46, 139, 87},
	"water": {30, 100, 200},
	"stone": {128, 128, 128},
	"dirt":  {139, 90, 43},
}

// GenerateHexColor generates hexadcimal string for a given RGB values. r, g, b sould be in the range 0-255
// Format: #RRGGBB
func GenerateHexColor(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

const lightShift = 48

// lighten brightens a channel for glyph foregrounds drawn on the tile background.
func lighten(c int) int {
	c += lightShift
	if c > 255 {
		c = 255
	}
	return c
}

// TileStyle returns the background style of a terrain kind.
func TileStyle(t tile.Tile) lipgloss.Style {
	c, ok := RGBColor[t.String()]
	if !ok {
		c = RGBColor["black"]
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(GenerateHexColor(c.R, c.G, c.B))).
		Foreground(lipgloss.Color(GenerateHexColor(lighten(c.R), lighten(c.G), lighten(c.B))))
}

// TileSprite is the two-column glyph pair drawn for a terrain kind.
func TileSprite(t tile.Tile) string {
	switch t {
	case tile.Grass:
		return `""`
	case tile.Water:
		return "~~"
	case tile.Stone:
		return "##"
	case tile.Dirt:
		return ".."
	}
	return "  "
}
