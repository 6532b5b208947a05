package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBoxWidthBounds(t *testing.T) {
	assert.Equal(t, 0, boxWidth(0))
	assert.Equal(t, 40, boxWidth(44))
	assert.Equal(t, 30, boxWidth(30))
	assert.Equal(t, 75, boxWidth(100))
	assert.Equal(t, 84, boxWidth(300))
}

func TestBoxContentWidth(t *testing.T) {
	assert.Equal(t, 69, BoxContentWidth(100))
	assert.Equal(t, 0, BoxContentWidth(0))
}

func TestTitledBoxPutsTitleInBorder(t *testing.T) {
	out := TitledBox("Question", "What is a group?", 80)
	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], " Question ")
	assert.Contains(t, out, "What is a group?")
	assert.Equal(t, lipgloss.Width(lines[1]), lipgloss.Width(lines[0]))
}

func TestTitledActiveBoxMatchesInactiveLayout(t *testing.T) {
	plain := SanitizeText(TitledBox("Topic", "math", 80))
	active := SanitizeText(TitledActiveBox("Topic", "math", 80))
	assert.Equal(t, plain, active)
}

func TestTitledBoxEmptyTitle(t *testing.T) {
	out := TitledBox("", "body", 60)
	assert.Contains(t, out, "body")
	assert.Contains(t, strings.Split(out, "\n")[0], "╭─")
}

func TestErrorBoxIncludesTitleAndMessage(t *testing.T) {
	out := ErrorBox("Error", "no topic selected", 80)
	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "no topic selected")
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "héll", truncateRunes("héllo", 4))
	assert.Equal(t, "abc", truncateRunes("abc", 10))
	assert.Equal(t, "", truncateRunes("abc", 0))
}

func TestClampTextWidthFlattens(t *testing.T) {
	assert.Equal(t, "a b", ClampTextWidth("a\n\tb", 0))
	assert.Equal(t, "What", ClampTextWidth("What is a ring?", 4))
}

func TestTableClampsLongValues(t *testing.T) {
	out := Table("Card", []TableRow{
		{Label: "Question", Value: strings.Repeat("x", 200)},
		{Label: "Topic", Value: "algebra"},
	}, 60)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 60)
	}
	assert.Contains(t, out, "algebra")
	assert.Empty(t, Table("Card", nil, 60))
}

func TestInfoRowSanitizes(t *testing.T) {
	out := SanitizeText(InfoRow("Que\nstion", "2+2\x1b[31m?"))
	assert.Equal(t, "Que stion: 2+2?", out)
}

func TestIndentPadsEveryLine(t *testing.T) {
	assert.Equal(t, "  a\n  b", Indent("a\nb", 2))
}
