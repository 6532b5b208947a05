package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/cardgraph/internal/domain"
	"github.com/gravitrone/cardgraph/internal/ui/components"
)

const previewMaxLines = 4

func previewBoxContentWidth(width int) int {
	if width <= 0 {
		return 0
	}
	contentWidth := width - PreviewBoxStyle.GetHorizontalFrameSize()
	if contentWidth < 10 {
		contentWidth = 10
	}
	return contentWidth
}

func renderPreviewBox(content string, width int) string {
	if width <= 0 {
		return ""
	}
	// lipgloss.Style.Width includes padding but excludes borders, so we only
	// subtract left/right border widths to hit the target outer width.
	borderW := PreviewBoxStyle.GetBorderLeftSize() + PreviewBoxStyle.GetBorderRightSize()
	inner := width - borderW
	if inner < 1 {
		inner = 1
	}
	return PreviewBoxStyle.Width(inner).Render(content)
}

// wrapPreviewText breaks text into lines no wider than width, keeping at
// most maxLines and marking the cut with an ellipsis.
func wrapPreviewText(text string, width, maxLines int) []string {
	text = components.SanitizeOneLine(text)
	if width <= 0 || text == "" {
		return nil
	}

	var out []string
	var line strings.Builder
	lineW := 0
	for _, r := range text {
		rw := lipgloss.Width(string(r))
		if rw < 1 {
			rw = 1
		}
		if lineW+rw > width && lineW > 0 {
			out = append(out, strings.TrimRight(line.String(), " "))
			line.Reset()
			lineW = 0
			if r == ' ' {
				continue
			}
		}
		line.WriteRune(r)
		lineW += rw
	}
	if line.Len() > 0 {
		out = append(out, strings.TrimRight(line.String(), " "))
	}
	if maxLines > 0 && len(out) > maxLines {
		out = out[:maxLines]
		last := components.ClampTextWidth(out[maxLines-1], width-1)
		out[maxLines-1] = last + "…"
	}
	return out
}

func renderPreviewRow(label, value string, width int) string {
	label = components.SanitizeOneLine(label)
	value = components.SanitizeOneLine(value)

	maxValue := width - lipgloss.Width(label) - 2 // ": "
	if maxValue < 4 {
		maxValue = 4
	}
	value = components.ClampTextWidth(value, maxValue)
	return MetaKeyStyle.Render(label) + MutedStyle.Render(": ") + MetaValueStyle.Render(value)
}

// renderCardPreview shows the selected card's full question and answer,
// which the table truncates.
func renderCardPreview(c domain.Card, topic string, width int) string {
	if width <= 0 {
		return ""
	}
	lines := []string{renderPreviewRow("Topic", topic, width)}
	status := "unfinished"
	if c.Status == domain.Finished {
		status = "finished"
	}
	lines = append(lines, renderPreviewRow("Status", status, width), "")

	lines = append(lines, MetaKeyStyle.Render("Question"))
	for _, l := range wrapPreviewText(c.Question, width, previewMaxLines) {
		lines = append(lines, NormalStyle.Render(l))
	}
	lines = append(lines, "", MetaKeyStyle.Render("Answer"))
	answer := wrapPreviewText(c.Answer, width, previewMaxLines)
	if len(answer) == 0 {
		answer = []string{MutedStyle.Render("(empty)")}
	}
	for _, l := range answer {
		lines = append(lines, NormalStyle.Render(l))
	}
	return padPreviewLines(lines, width)
}

func padPreviewLines(lines []string, width int) string {
	if width <= 0 || len(lines) == 0 {
		return ""
	}
	padded := make([]string, 0, len(lines))
	for _, line := range lines {
		if w := lipgloss.Width(line); w > width {
			// Rows clamp before styling, so this only strips stray escapes.
			line = components.ClampTextWidth(components.SanitizeText(line), width)
		}
		if w := lipgloss.Width(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		padded = append(padded, line)
	}
	return strings.Join(padded, "\n")
}
