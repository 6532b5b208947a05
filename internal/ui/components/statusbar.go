package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Hint formats a single key hint such as "Submit [alt+f]".
func Hint(key, desc string) string {
	return hintDescStyle.Render(desc+" ") + hintKeyStyle.Render(key)
}

// StatusBar lays hints out in bordered segments, wrapping onto extra rows
// when they do not fit in width. Each row is centered.
func StatusBar(hints []string, width int) string {
	if len(hints) == 0 {
		return ""
	}
	segments := make([]string, len(hints))
	for i, h := range hints {
		segments[i] = segmentStyle.Render(h)
	}
	rows := wrapSegments(segments, width-2)
	if width <= 0 {
		return "  " + rows[0]
	}
	for i, row := range rows {
		rows[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
	}
	return strings.Join(rows, "\n")
}

func wrapSegments(segments []string, width int) []string {
	if width <= 0 {
		return []string{lipgloss.JoinHorizontal(lipgloss.Top, segments...)}
	}
	var rows []string
	var current []string
	used := 0
	for _, seg := range segments {
		w := lipgloss.Width(seg)
		if used > 0 && used+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current, used = nil, 0
		}
		current = append(current, seg)
		used += w
	}
	if len(current) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	}
	return rows
}
