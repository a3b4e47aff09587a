package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparkBlocks is the 8-level block character set for sparklines.
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline converts a slice of float64 values into a block sparkline
// string of exactly `width` characters, colored with the given lipgloss color.
//
// Levels are scaled between the minimum and maximum of the visible values:
// cumulative pull counts barely move relative to their absolute size, so a
// zero-based scale would flatten every series into a solid top band. The
// minimum maps to '▁' and the maximum to '█'.
//
// Rules:
//   - Empty values → return width spaces
//   - Flat series (min == max) → all '▁'
//   - Values longer than width → use last width values
//   - Fewer values than width → left-pad with spaces
func RenderSparkline(values []float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		return ""
	}

	if len(values) == 0 {
		return strings.Repeat(" ", width)
	}

	// Take last `width` values if the slice is longer.
	if len(values) > width {
		values = values[len(values)-width:]
	}

	minVal := slices.Min(values)
	maxVal := slices.Max(values)
	span := maxVal - minVal

	style := lipgloss.NewStyle().Foreground(color)

	var sb strings.Builder
	// Left-pad with spaces when fewer values than width.
	padLen := width - len(values)
	sb.WriteString(strings.Repeat(" ", padLen))

	for _, v := range values {
		var idx int
		if span > 0 {
			idx = int((v - minVal) / span * 7)
		}
		// Clamp to [0, 7].
		if idx < 0 {
			idx = 0
		}
		if idx > 7 {
			idx = 7
		}
		sb.WriteRune(sparkBlocks[idx])
	}

	return style.Render(sb.String())
}
