package components

import "github.com/gravitrone/cardgraph/internal/termtext"

// SanitizeText strips escapes and control characters before drawing.
func SanitizeText(input string) string { return termtext.SanitizeText(input) }

// SanitizeOneLine is SanitizeText for single-line cells and labels.
func SanitizeOneLine(input string) string { return termtext.SanitizeOneLine(input) }
