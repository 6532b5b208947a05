package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

const (
	minBoxWidth = 40
	maxBoxWidth = 84
)

// boxWidth is about three quarters of the terminal, within fixed bounds.
func boxWidth(width int) int {
	if width <= 0 {
		return 0
	}
	w := width * 3 / 4
	if w < minBoxWidth {
		w = minBoxWidth
	}
	if w > maxBoxWidth {
		w = maxBoxWidth
	}
	if w > width {
		w = width
	}
	return w
}

// Box renders content inside a bordered box.
func Box(content string, width int) string {
	return boxBorder.Width(boxWidth(width)).Render(content)
}

// ActiveBox renders content inside a highlighted bordered box.
func ActiveBox(content string, width int) string {
	return boxBorderActive.Width(boxWidth(width)).Render(content)
}

// BoxContentWidth returns the inner width left after border and padding.
func BoxContentWidth(width int) int {
	inner := boxWidth(width) - 6
	if inner < 0 {
		return 0
	}
	return inner
}

// ClampTextWidth flattens text to one line and cuts it to width columns.
func ClampTextWidth(text string, width int) string {
	cleaned := SanitizeOneLine(text)
	if width <= 0 || lipgloss.Width(cleaned) <= width {
		return cleaned
	}
	return truncateRunes(cleaned, width)
}

// ErrorBox renders a red bordered box for errors.
func ErrorBox(title, message string, width int) string {
	body := errorBodyStyle.Render(SanitizeText(message))
	if title != "" {
		body = errorHeaderStyle.Render(title) + "\n\n" + body
	}
	return errorBorder.Width(boxWidth(width)).Render(body)
}

// TitledBox renders a box with its title set into the top border.
func TitledBox(title, content string, width int) string {
	return titled(title, content, width, boxBorder, palette.Border)
}

// TitledActiveBox is TitledBox with the highlighted border, used for the
// focused pane.
func TitledActiveBox(title, content string, width int) string {
	return titled(title, content, width, boxBorderActive, palette.Primary)
}

func titled(title, content string, width int, style lipgloss.Style, borderColor lipgloss.Color) string {
	boxed := style.Width(boxWidth(width)).Render(content)
	if title == "" {
		return boxed
	}
	lines := strings.Split(boxed, "\n")
	lineWidth := lipgloss.Width(lines[0])
	if lineWidth < 4 {
		return boxed
	}

	border := lipgloss.RoundedBorder()
	inner := lineWidth - 2
	label := truncateRunes(fmt.Sprintf(" %s ", SanitizeOneLine(title)), inner)
	left := 1
	right := inner - left - lipgloss.Width(label)
	if right < 0 {
		left, right = 0, inner-lipgloss.Width(label)
	}
	if right < 0 {
		right = 0
	}

	edge := lipgloss.NewStyle().Foreground(borderColor)
	lines[0] = edge.Render(border.TopLeft+strings.Repeat(border.Top, left)) +
		boxHeaderStyle.Render(label) +
		edge.Render(strings.Repeat(border.Top, right)+border.TopRight)
	return strings.Join(lines, "\n")
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max])
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// InfoRow renders a "label: value" line for detail views.
func InfoRow(label, value string) string {
	return boxMutedStyle.Render(SanitizeOneLine(label)+": ") + boxValueStyle.Render(SanitizeOneLine(value))
}

// TableRow is a single row in a key-value table.
type TableRow struct {
	Label string
	Value string
}

// Table renders aligned key-value rows inside a titled box.
func Table(title string, rows []TableRow, width int) string {
	if len(rows) == 0 {
		return ""
	}
	labelWidth := 0
	for _, r := range rows {
		if w := lipgloss.Width(SanitizeOneLine(r.Label)); w > labelWidth {
			labelWidth = w
		}
	}
	if labelWidth > 20 {
		labelWidth = 20
	}
	valueWidth := BoxContentWidth(width) - labelWidth - 2
	if valueWidth < 8 {
		valueWidth = 0
	}

	out := make([]string, len(rows))
	for i, r := range rows {
		label := boxLabelStyle.Render(padRight(ClampTextWidth(r.Label, labelWidth), labelWidth))
		out[i] = label + "  " + boxValueStyle.Render(ClampTextWidth(r.Value, valueWidth))
	}
	return TitledBox(title, strings.Join(out, "\n"), width)
}

// Indent adds left padding to every line of a multi-line string.
func Indent(s string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}
