package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardColumns() []TableColumn {
	return []TableColumn{
		{Header: "ID", Width: 4, Align: lipgloss.Right},
		{Header: "", Width: 1, Align: lipgloss.Center},
		{Header: "Question", Width: 10},
	}
}

func TestTableGridLinesHaveTableWidth(t *testing.T) {
	rows := [][]string{
		{"42", FinishedMarker, "What is a group?"},
		{"43", "", "What is a ring?"},
	}
	out := TableGrid(cardColumns(), rows, 40, 1)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.Equal(t, 40, lipgloss.Width(line))
	}
	clean := SanitizeText(out)
	assert.Contains(t, clean, "Question")
	assert.Contains(t, clean, "What is a group?")
	assert.Contains(t, clean, "  42")
}

func TestTableGridClampsLongCells(t *testing.T) {
	rows := [][]string{{"1", "", strings.Repeat("q", 100)}}
	out := TableGrid(cardColumns(), rows, 30, -1)
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 30, lipgloss.Width(line))
	}
}

func TestTableGridDegenerateInputs(t *testing.T) {
	assert.Empty(t, TableGrid(cardColumns(), nil, 0, -1))
	assert.Equal(t, strings.Repeat(" ", 5), TableGrid(nil, nil, 5, -1))
}

func TestGridCellAlignment(t *testing.T) {
	assert.Equal(t, "  ab", gridCell("ab", 4, lipgloss.Right))
	assert.Equal(t, " ab ", gridCell("ab", 4, lipgloss.Center))
	assert.Equal(t, "ab  ", gridCell("ab", 4, lipgloss.Left))
}
