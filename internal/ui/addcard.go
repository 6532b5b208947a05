package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/cardgraph/internal/authoring"
	"github.com/gravitrone/cardgraph/internal/domain"
	"github.com/gravitrone/cardgraph/internal/suggest"
	"github.com/gravitrone/cardgraph/internal/ui/components"
)

const suggestTimeout = 30 * time.Second

// --- Messages ---

type cardSavedMsg struct{ finished bool }
type suggestionMsg struct {
	question string
	answer   string
	err      error
}

// --- Add Card Model ---

// AddCardModel hosts an authoring editor: it draws the prompt, the two text
// panes and the topic list, and turns alt+f / alt+u into submissions.
type AddCardModel struct {
	editor     *authoring.Editor
	writer     *authoring.Writer
	suggester  suggest.Suggester
	log        *slog.Logger
	err        string
	suggesting bool
	width      int
	height     int
}

func NewAddCardModel(editor *authoring.Editor, writer *authoring.Writer, suggester suggest.Suggester, log *slog.Logger) AddCardModel {
	return AddCardModel{editor: editor, writer: writer, suggester: suggester, log: log}
}

// SetEditor swaps in e, e.g. one opened from the Cards tab with a link
// context.
func (m *AddCardModel) SetEditor(e *authoring.Editor) {
	m.editor = e
	m.err = ""
	m.suggesting = false
	m.resize()
}

func (m *AddCardModel) setSize(width, height int) {
	m.width = width
	m.height = height
	m.resize()
}

func (m *AddCardModel) resize() {
	if m.width <= 0 {
		return
	}
	m.editor.SetSize(components.BoxContentWidth(m.leftWidth()), 4)
}

func (m AddCardModel) leftWidth() int {
	return m.width * 2 / 3
}

// editing reports whether the editor holds text that a quit would lose.
func (m AddCardModel) editing() bool {
	return strings.TrimSpace(m.editor.Question()) != "" || strings.TrimSpace(m.editor.Answer()) != ""
}

// pickerOpen reports whether the card finder owns the keyboard.
func (m AddCardModel) pickerOpen() bool {
	return m.editor.Focus() == authoring.FocusGraphPicker
}

func (m AddCardModel) Update(msg tea.Msg) (AddCardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case suggestionMsg:
		m.suggesting = false
		if msg.err != nil {
			m.err = fmt.Sprintf("suggestion failed: %v", msg.err)
			return m, nil
		}
		// The question changed while waiting; the answer no longer fits.
		if msg.question != m.editor.Question() {
			return m, nil
		}
		m.editor.SetAnswer(msg.answer)
		return m, nil

	case tea.KeyMsg:
		if !m.pickerOpen() {
			switch {
			case isKey(msg, "alt+f"):
				return m.submit(true)
			case isKey(msg, "alt+u"):
				return m.submit(false)
			case isKey(msg, "alt+g"):
				return m.suggest()
			}
		}
		m.err = ""
		if err := m.editor.HandleKey(msg); err != nil {
			m.err = err.Error()
		}
	}
	return m, nil
}

func (m AddCardModel) submit(finished bool) (AddCardModel, tea.Cmd) {
	fresh, err := m.writer.Submit(m.editor, finished)
	if err != nil {
		m.err = describeSubmitError(err)
		return m, nil
	}
	m.SetEditor(fresh)
	return m, func() tea.Msg { return cardSavedMsg{finished: finished} }
}

func describeSubmitError(err error) string {
	var lookup *authoring.LookupError
	var storage *authoring.StorageError
	switch {
	case errors.Is(err, authoring.ErrNoTopicSelected):
		return "Pick a topic first (alt+→ moves to the topic list)."
	case errors.As(err, &lookup) && errors.Is(err, domain.ErrNotFound):
		return "The linked card or source no longer exists: " + err.Error()
	case errors.As(err, &storage):
		return "Card was not saved: " + storage.Err.Error()
	}
	return err.Error()
}

func (m AddCardModel) suggest() (AddCardModel, tea.Cmd) {
	if m.suggester == nil {
		m.err = "Answer suggestions are off. Set gemini_api_key in the config to enable them."
		return m, nil
	}
	question := strings.TrimSpace(m.editor.Question())
	if question == "" {
		m.err = "Write a question before asking for an answer."
		return m, nil
	}
	if m.suggesting {
		return m, nil
	}
	m.suggesting = true
	m.err = ""
	s, log, asked := m.suggester, m.log, m.editor.Question()
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), suggestTimeout)
		defer cancel()
		answer, err := s.SuggestAnswer(ctx, question)
		if err != nil {
			log.Warn("answer suggestion failed", "error", err)
		}
		return suggestionMsg{question: asked, answer: answer, err: err}
	}
}

func (m AddCardModel) View() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(components.SanitizeOneLine(m.editor.Prompt())))
	b.WriteString("\n")

	if m.pickerOpen() {
		b.WriteString(components.TitledActiveBox(m.editor.PickerTitle(), m.editor.PickerView(), m.width))
		b.WriteString("\n")
		b.WriteString(MutedStyle.Render("type to search · ↑/↓ choose · enter link · esc cancel"))
		return b.String()
	}

	focus := m.editor.Focus()
	left := lipgloss.JoinVertical(lipgloss.Left,
		pane("Question", m.editor.QuestionView(), m.leftWidth(), focus == authoring.FocusQuestion),
		pane("Answer", m.answerView(), m.leftWidth(), focus == authoring.FocusAnswer),
	)
	right := pane("Topic", m.topicView(), m.width-m.leftWidth(), focus == authoring.FocusTopic)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(components.ErrorBox("Error", m.err, m.width))
	}
	return b.String()
}

func (m AddCardModel) answerView() string {
	if m.suggesting {
		return MutedStyle.Render("Asking for a suggestion...")
	}
	return m.editor.AnswerView()
}

func (m AddCardModel) topicView() string {
	switch cc := m.editor.Context().(type) {
	case authoring.ChildOfSource:
		return MutedStyle.Render(fmt.Sprintf("inherited from source #%d", cc.Source))
	case authoring.DependencyOf:
		return MutedStyle.Render(fmt.Sprintf("inherited from card #%d", cc.Cards[0]))
	case authoring.DependentOf:
		return MutedStyle.Render(fmt.Sprintf("inherited from card #%d", cc.Cards[0]))
	}
	return m.editor.TopicsView()
}

func pane(title, body string, width int, focused bool) string {
	if focused {
		return components.TitledActiveBox(title, body, width)
	}
	return components.TitledBox(title, body, width)
}
