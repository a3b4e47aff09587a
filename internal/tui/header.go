package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/hubtrack/internal/format"
)

// renderHeader renders the top header bar for the selected repository.
//
// Layout:
//   left:   namespace/repository
//   center: sample count
//   right:  "Latest: HH:MM:SS" of the most recent sample
func renderHeader(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	rt := app.current()
	s := rt.summary

	left := s.Namespace + "/" + s.Repository
	center := StyleDim.Render(fmt.Sprintf("%s samples", format.Number(int64(rt.window.Len()))))
	right := StyleDim.Render("Latest: " + s.LastUpdated.Format("15:04:05"))

	// Build row: left + padding + center + padding + right, filling innerWidth.
	// StyleHeader has Padding(0, 1) so inner content width = total width - 2.
	innerWidth := width - 2
	leftVW := lipgloss.Width(left)
	centerVW := lipgloss.Width(center)
	rightVW := lipgloss.Width(right)

	spacing := innerWidth - leftVW - centerVW - rightVW
	if spacing < 0 {
		spacing = 0
	}
	leftSpacing := spacing / 2
	rightSpacing := spacing - leftSpacing

	row := left +
		strings.Repeat(" ", leftSpacing) +
		center +
		strings.Repeat(" ", rightSpacing) +
		right

	return StyleHeader.Width(width).Render(row)
}
