package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tux-runner/internal/core"
)

type cellStyle struct {
	fg, bg core.Color
}

var (
	stylesMu sync.Mutex
	styles   = map[cellStyle]lipgloss.Style{}
)

// styleFor returns the lipgloss style for a foreground/background pair.
func styleFor(fg, bg core.Color) lipgloss.Style {
	stylesMu.Lock()
	defer stylesMu.Unlock()

	key := cellStyle{fg, bg}
	if s, ok := styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if code := fg.ANSI(); code != "" {
		s = s.Foreground(lipgloss.Color(code))
	}
	if code := bg.ANSI(); code != "" {
		s = s.Background(lipgloss.Color(code))
	}
	styles[key] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colors share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Background != start.Background {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(start.Color, start.Background).Render(run.String()))
		}
	}
	return sb.String()
}
