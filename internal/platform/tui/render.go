package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkharms/roadrush/internal/core"
)

// styleCache maps cell colors to lipgloss styles. Cells use a small set
// of fixed colors, so the cache stays tiny.
var styleCache = map[core.RGB]lipgloss.Style{}

// styleFor returns the lipgloss style for a cell color.
func styleFor(c core.RGB) lipgloss.Style {
	if s, ok := styleCache[c]; ok {
		return s
	}

	s := lipgloss.NewStyle()
	if !c.IsZero() {
		s = s.Foreground(lipgloss.Color(c.Hex()))
	}
	styleCache[c] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).FG

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
