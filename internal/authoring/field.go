package authoring

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// TextField is an editable text buffer for the question or the answer.
type TextField interface {
	Text() string
	SetText(text string)
	HandleKey(msg tea.KeyMsg)
	Focus()
	Blur()
	SetSize(width, height int)
	View() string
}

// FieldFactory builds an empty text field.
type FieldFactory func(placeholder string) TextField

type textArea struct {
	model textarea.Model
}

// NewTextField returns a multi-line text field backed by a bubbles textarea.
func NewTextField(placeholder string) TextField {
	m := textarea.New()
	m.Placeholder = placeholder
	m.ShowLineNumbers = false
	m.Prompt = ""
	m.CharLimit = 0
	m.Cursor.SetMode(cursor.CursorStatic)
	m.SetWidth(60)
	m.SetHeight(4)
	return &textArea{model: m}
}

func (f *textArea) Text() string { return f.model.Value() }

func (f *textArea) SetText(text string) { f.model.SetValue(text) }

func (f *textArea) HandleKey(msg tea.KeyMsg) {
	f.model, _ = f.model.Update(msg)
}

func (f *textArea) Focus() { f.model.Focus() }

func (f *textArea) Blur() { f.model.Blur() }

func (f *textArea) SetSize(width, height int) {
	if width > 0 {
		f.model.SetWidth(width)
	}
	if height > 0 {
		f.model.SetHeight(height)
	}
}

func (f *textArea) View() string { return f.model.View() }
