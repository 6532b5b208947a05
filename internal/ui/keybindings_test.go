package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestIsQuitOnlyCtrlC(t *testing.T) {
	assert.True(t, isQuit(tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.False(t, isQuit(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}))
}

func TestIsEnter(t *testing.T) {
	assert.True(t, isEnter(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.False(t, isEnter(tea.KeyMsg{Type: tea.KeySpace}))
}

func TestIsBack(t *testing.T) {
	assert.True(t, isBack(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.False(t, isBack(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestIsUpDownAcceptVimKeys(t *testing.T) {
	assert.True(t, isDown(tea.KeyMsg{Type: tea.KeyDown}))
	assert.True(t, isDown(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}))
	assert.True(t, isUp(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}))
	assert.False(t, isDown(tea.KeyMsg{Type: tea.KeyUp}))
}

func TestPrintableKeys(t *testing.T) {
	assert.True(t, isPrintable(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'é'}}))
	assert.True(t, isPrintable(tea.KeyMsg{Type: tea.KeySpace}))
	assert.False(t, isPrintable(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}, Alt: true}))
	assert.False(t, isPrintable(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, " ", typed(tea.KeyMsg{Type: tea.KeySpace}))
	assert.Equal(t, "x", typed(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}))
}

func TestDropLastRune(t *testing.T) {
	assert.Equal(t, "caf", dropLastRune("café"))
	assert.Equal(t, "", dropLastRune(""))
}
