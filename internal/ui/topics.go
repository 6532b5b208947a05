package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/cardgraph/internal/authoring"
	"github.com/gravitrone/cardgraph/internal/domain"
	"github.com/gravitrone/cardgraph/internal/ui/components"
)

// --- Messages ---

type topicsLoadedMsg struct{ topics []domain.Topic }
type topicCreatedMsg struct{ name string }
type sourceCreatedMsg struct{ title string }

type topicPrompt int

const (
	topicPromptNone topicPrompt = iota
	topicPromptRoot
	topicPromptChild
	topicPromptSource
)

// --- Topics Model ---

type TopicsModel struct {
	store   Store
	topics  []domain.Topic
	list    *components.List
	loading bool
	prompt  topicPrompt
	input   string
	err     string
	width   int
	height  int
}

func NewTopicsModel(store Store) TopicsModel {
	return TopicsModel{store: store, list: components.NewList(15)}
}

func (m TopicsModel) Init() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		topics, err := store.ListTopics()
		if err != nil {
			return errMsg{fmt.Errorf("load topics: %w", err)}
		}
		return topicsLoadedMsg{topics: topics}
	}
}

func (m TopicsModel) Update(msg tea.Msg) (TopicsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case topicsLoadedMsg:
		m.loading = false
		m.topics = msg.topics
		m.list.SetItems(authoring.TopicLabels(msg.topics))
		return m, nil
	case topicCreatedMsg, sourceCreatedMsg:
		m.loading = true
		return m, m.Init()
	case errMsg:
		m.loading = false
		return m, nil
	case tea.KeyMsg:
		if m.prompt != topicPromptNone {
			return m.handlePromptKeys(msg)
		}
		return m.handleListKeys(msg)
	}
	return m, nil
}

func (m TopicsModel) handleListKeys(msg tea.KeyMsg) (TopicsModel, tea.Cmd) {
	m.err = ""
	switch {
	case isDown(msg):
		m.list.Down()
	case isUp(msg):
		m.list.Up()
	case isKey(msg, "n"):
		m.openPrompt(topicPromptRoot)
	case isKey(msg, "a"):
		if _, ok := m.selected(); ok {
			m.openPrompt(topicPromptChild)
		}
	case isKey(msg, "s"):
		if _, ok := m.selected(); ok {
			m.openPrompt(topicPromptSource)
		}
	}
	return m, nil
}

func (m *TopicsModel) openPrompt(p topicPrompt) {
	m.prompt = p
	m.input = ""
}

func (m TopicsModel) handlePromptKeys(msg tea.KeyMsg) (TopicsModel, tea.Cmd) {
	switch {
	case isBack(msg):
		m.prompt = topicPromptNone
		m.input = ""
	case isEnter(msg):
		text := strings.TrimSpace(m.input)
		if text == "" {
			m.err = "Name cannot be empty."
			return m, nil
		}
		cmd := m.createCmd(m.prompt, text)
		m.prompt = topicPromptNone
		m.input = ""
		return m, cmd
	case isKey(msg, "backspace"):
		m.input = dropLastRune(m.input)
	case isKey(msg, "ctrl+u"):
		m.input = ""
	case isPrintable(msg):
		m.input += typed(msg)
	}
	return m, nil
}

func (m TopicsModel) createCmd(p topicPrompt, text string) tea.Cmd {
	store := m.store
	selected, _ := m.selected()
	return func() tea.Msg {
		switch p {
		case topicPromptSource:
			if _, err := store.CreateSource(text, selected.ID); err != nil {
				return errMsg{fmt.Errorf("create source: %w", err)}
			}
			return sourceCreatedMsg{title: text}
		case topicPromptChild:
			parent := selected.ID
			if _, err := store.CreateTopic(text, &parent); err != nil {
				return errMsg{fmt.Errorf("create topic: %w", err)}
			}
		default:
			if _, err := store.CreateTopic(text, nil); err != nil {
				return errMsg{fmt.Errorf("create topic: %w", err)}
			}
		}
		return topicCreatedMsg{name: text}
	}
}

func (m TopicsModel) selected() (domain.Topic, bool) {
	idx := m.list.Selected()
	if idx < 0 || idx >= len(m.topics) {
		return domain.Topic{}, false
	}
	return m.topics[idx], true
}

func (m TopicsModel) promptTitle() string {
	parent := ""
	if t, ok := m.selected(); ok {
		parent = components.SanitizeOneLine(t.Name)
	}
	switch m.prompt {
	case topicPromptChild:
		return "New topic under " + parent
	case topicPromptSource:
		return "New source in " + parent
	}
	return "New topic"
}

func (m TopicsModel) View() string {
	if m.prompt != topicPromptNone {
		out := components.Indent(components.InputDialog(m.promptTitle(), m.input), 1)
		if m.err != "" {
			out += "\n\n" + components.ErrorBox("Error", m.err, m.width)
		}
		return out
	}
	if m.loading && len(m.topics) == 0 {
		return MutedStyle.Render("Loading topics...")
	}
	if len(m.topics) == 0 {
		return components.TitledBox("Topics", MutedStyle.Render("No topics yet. Press n to create one."), m.width)
	}
	var b strings.Builder
	for i, label := range m.list.Visible() {
		if i > 0 {
			b.WriteString("\n")
		}
		if m.list.IsSelected(m.list.RelToAbs(i)) {
			b.WriteString(SelectedStyle.Render("> " + label))
		} else {
			b.WriteString(NormalStyle.Render("  " + label))
		}
	}
	return components.TitledBox(fmt.Sprintf("Topics (%d)", len(m.topics)), b.String(), m.width)
}
