package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/tilewalk/internal/style"
)

// Page renders page with title at the top, content block and footer at the botttom
// Style of content leave intact
func Page(title, renderedContent, footer string, width, height, termWidth, termHeight int) string {
	renderedTopPattern := style.TopPattern.Render(strings.Repeat("/", width))
	renderedTitle := style.Title.Render(title)
	renderedFooter := style.Footer.Render(footer)

	// Calculate available height for content after accounting for title and footer
	availableHeight := height - lipgloss.Height(renderedTopPattern) - lipgloss.Height(renderedTitle) - lipgloss.Height(renderedFooter)

	centeredContent := lipgloss.PlaceVertical(availableHeight, lipgloss.Center, renderedContent)

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		renderedTopPattern,
		renderedTitle,
		centeredContent,
		renderedFooter,
	)
	if termWidth > 0 && termHeight > 0 {
		return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// TopBar renders the slash pattern of the given width preceded by padding.
func TopBar(width, padding int) string {
	return strings.Repeat(" ", padding) + style.TopPattern.Render(strings.Repeat("/", width))
}
