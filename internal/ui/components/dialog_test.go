package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmDialogIncludesTitleMessageAndHints(t *testing.T) {
	clean := SanitizeText(ConfirmDialog("Quit", "Discard the card you are writing?"))

	assert.Contains(t, clean, "Quit")
	assert.Contains(t, clean, "Discard the card")
	assert.Contains(t, clean, "y: confirm | n: cancel")
}

func TestInputDialogShowsCursorAfterInput(t *testing.T) {
	clean := SanitizeText(InputDialog("New topic", "linear\nalgebra"))

	assert.Contains(t, clean, "New topic")
	assert.Contains(t, clean, "> linear algebra█")
	assert.Contains(t, clean, "enter: submit | esc: cancel")
}
