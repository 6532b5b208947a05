package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableColumn is one column of a TableGrid. Width is the content width
// without separators; the last column absorbs any slack.
type TableColumn struct {
	Header string
	Width  int
	Align  lipgloss.Position
}

// FinishedMarker flags finished cards in a grid and is drawn highlighted.
const FinishedMarker = "✓"

const gridIndent = 2

// TableGrid renders rows under a header and a rule, highlighting activeRow
// (pass -1 for none). Every line is exactly tableWidth columns wide.
func TableGrid(columns []TableColumn, rows [][]string, tableWidth int, activeRow int) string {
	if tableWidth <= 0 {
		return ""
	}
	if len(columns) == 0 {
		return padRight("", tableWidth)
	}
	border := lipgloss.RoundedBorder()
	cols := fitColumns(columns, tableWidth-gridIndent)

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}
	out := []string{
		gridRow(cols, headers, border.Left, tableWidth, boxLabelStyle, gridLineStyle),
		gridRule(cols, border.Middle, border.Top, tableWidth),
	}
	for i, row := range rows {
		cellStyle, sepStyle := lipgloss.NewStyle(), gridLineStyle
		if i == activeRow {
			cellStyle, sepStyle = gridActiveRowStyle, gridActiveSepStyle
		}
		line := gridRow(cols, row, border.Left, tableWidth, cellStyle, sepStyle)
		out = append(out, strings.ReplaceAll(line, FinishedMarker, gridMarkerStyle.Render(FinishedMarker)))
	}
	return strings.Join(out, "\n")
}

func fitColumns(columns []TableColumn, width int) []TableColumn {
	cols := make([]TableColumn, len(columns))
	copy(cols, columns)
	used := len(cols) - 1
	for i := range cols {
		if cols[i].Width < 1 {
			cols[i].Width = 1
		}
		used += cols[i].Width
	}
	last := &cols[len(cols)-1]
	last.Width += width - used
	if last.Width < 1 {
		last.Width = 1
	}
	return cols
}

func gridRow(cols []TableColumn, cells []string, sep string, width int, cellStyle, sepStyle lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gridIndent))
	for i, col := range cols {
		if i > 0 {
			b.WriteString(sepStyle.Inline(true).Render(sep))
		}
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		b.WriteString(cellStyle.Inline(true).Render(gridCell(text, col.Width, col.Align)))
	}
	return padRight(b.String(), width)
}

func gridRule(cols []TableColumn, cross, horiz string, width int) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = strings.Repeat(horiz, col.Width)
	}
	line := strings.Repeat(" ", gridIndent) + strings.Join(parts, cross)
	return gridLineStyle.Inline(true).Render(padRight(line, width))
}

func gridCell(text string, width int, align lipgloss.Position) string {
	clamped := ClampTextWidth(text, width)
	pad := width - lipgloss.Width(clamped)
	if pad <= 0 {
		return clamped
	}
	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", pad) + clamped
	case lipgloss.Center:
		left := pad / 2
		return strings.Repeat(" ", left) + clamped + strings.Repeat(" ", pad-left)
	default:
		return clamped + strings.Repeat(" ", pad)
	}
}
