package ui

import tea "github.com/charmbracelet/bubbletea"

func isKey(msg tea.KeyMsg, keys ...string) bool {
	s := msg.String()
	for _, k := range keys {
		if s == k {
			return true
		}
	}
	return false
}

// isQuit only matches ctrl+c; "q" is handled per tab since the editor
// types it.
func isQuit(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyCtrlC
}

func isBack(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyEsc || isKey(msg, "esc", "ctrl+[")
}

func isUp(msg tea.KeyMsg) bool {
	return isKey(msg, "up", "k")
}

func isDown(msg tea.KeyMsg) bool {
	return isKey(msg, "down", "j")
}

func isEnter(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyEnter
}

// isPrintable reports typed or pasted text, including space.
func isPrintable(msg tea.KeyMsg) bool {
	if msg.Alt {
		return false
	}
	return (msg.Type == tea.KeyRunes && len(msg.Runes) > 0) || msg.Type == tea.KeySpace
}

// typed returns the text a printable key adds to an input buffer.
func typed(msg tea.KeyMsg) string {
	if msg.Type == tea.KeySpace {
		return " "
	}
	return string(msg.Runes)
}

// dropLastRune removes the final character of an input buffer.
func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
