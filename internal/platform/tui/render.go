package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-jump/internal/core"
)

// Theme maps screen colors to terminal styles. A Theme is read-only once
// built, so sessions can share one.
type Theme struct {
	styles []lipgloss.Style // indexed by core.Color; nil means unstyled
}

// DefaultTheme styles every color with its ANSI code.
func DefaultTheme() Theme {
	styles := make([]lipgloss.Style, 256)
	for i := range styles {
		styles[i] = lipgloss.NewStyle()
		if code, ok := core.Color(i).ANSI(); ok {
			styles[i] = styles[i].Foreground(lipgloss.Color(code))
		}
	}
	return Theme{styles: styles}
}

// MonoTheme renders every cell unstyled.
func MonoTheme() Theme {
	return Theme{}
}

// Render converts a Screen buffer to a styled string.
// Adjacent cells with the same color share one escape sequence.
func (t Theme) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			if t.styles == nil || color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(t.styles[color].Render(run.String()))
		}
	}
	return sb.String()
}

var defaultTheme = DefaultTheme()

// RenderScreen renders s with the default theme.
func RenderScreen(s *core.Screen) string {
	return defaultTheme.Render(s)
}
