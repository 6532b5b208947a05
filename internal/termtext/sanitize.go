package termtext

import (
	"regexp"
	"strings"
	"unicode"
)

// escapePattern matches OSC sequences (hyperlinks, titles) and CSI sequences.
var escapePattern = regexp.MustCompile(`\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)|\x1b\[[0-9;?]*[ -/]*[@-~]`)

// SanitizeText strips terminal escapes, bidi overrides and control
// characters from card text before it is drawn. Line breaks and tabs
// survive; CRLF from pasted or imported text becomes LF.
func SanitizeText(input string) string {
	if input == "" {
		return input
	}
	cleaned := escapePattern.ReplaceAllString(input, "")
	cleaned = strings.ReplaceAll(cleaned, "\r\n", "\n")
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case unicode.Is(unicode.Bidi_Control, r), unicode.IsControl(r):
			return -1
		}
		return r
	}, cleaned)
}

// SanitizeOneLine is SanitizeText for table cells and labels: every run of
// whitespace collapses into one space.
func SanitizeOneLine(input string) string {
	return strings.Join(strings.Fields(SanitizeText(input)), " ")
}
