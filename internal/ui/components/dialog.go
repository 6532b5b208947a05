package components

import "strings"

// ConfirmDialog renders a yes/no question.
func ConfirmDialog(title, message string) string {
	return dialog(title, boxMutedStyle.Render(SanitizeText(message)), "y: confirm | n: cancel")
}

// InputDialog renders a single-line prompt with a block cursor after input.
func InputDialog(title, input string) string {
	field := boxLabelStyle.UnsetBold().Render("> " + SanitizeOneLine(input) + "█")
	return dialog(title, field, "enter: submit | esc: cancel")
}

func dialog(title, body, hint string) string {
	parts := []string{
		boxHeaderStyle.Render(SanitizeOneLine(title)),
		body,
		boxMutedStyle.Render(hint),
	}
	return dialogStyle.Render(strings.Join(parts, "\n\n"))
}
