package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/cardgraph/internal/authoring"
	"github.com/gravitrone/cardgraph/internal/domain"
	"github.com/gravitrone/cardgraph/internal/ui/components"
)

type sourcesLoadedMsg struct {
	sources []domain.Source
	topics  []domain.Topic
}

// --- Sources Model ---

// SourcesModel lists reading items; enter opens an editor for a card
// derived from the selected one.
type SourcesModel struct {
	store   Store
	sources []domain.Source
	topics  map[domain.TopicID]string
	list    *components.List
	loading bool
	width   int
	height  int
}

func NewSourcesModel(store Store) SourcesModel {
	return SourcesModel{store: store, list: components.NewList(15)}
}

func (m SourcesModel) Init() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		sources, err := store.ListSources()
		if err != nil {
			return errMsg{fmt.Errorf("load sources: %w", err)}
		}
		topics, err := store.ListTopics()
		if err != nil {
			return errMsg{fmt.Errorf("load topics: %w", err)}
		}
		return sourcesLoadedMsg{sources: sources, topics: topics}
	}
}

func (m SourcesModel) Update(msg tea.Msg) (SourcesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case sourcesLoadedMsg:
		m.loading = false
		m.sources = msg.sources
		labels := authoring.TopicLabels(msg.topics)
		m.topics = make(map[domain.TopicID]string, len(msg.topics))
		for i, t := range msg.topics {
			m.topics[t.ID] = labels[i]
		}
		titles := make([]string, len(m.sources))
		for i, s := range m.sources {
			titles[i] = s.Title
		}
		m.list.SetItems(titles)
		return m, nil
	case errMsg:
		m.loading = false
		return m, nil
	case tea.KeyMsg:
		switch {
		case isDown(msg):
			m.list.Down()
		case isUp(msg):
			m.list.Up()
		case isEnter(msg), isKey(msg, "c"):
			idx := m.list.Selected()
			if idx < len(m.sources) {
				cc := authoring.ChildOfSource{Source: m.sources[idx].ID}
				return m, func() tea.Msg { return openEditorMsg{context: cc} }
			}
		}
	}
	return m, nil
}

func (m SourcesModel) View() string {
	if m.loading && len(m.sources) == 0 {
		return MutedStyle.Render("Loading sources...")
	}
	if len(m.sources) == 0 {
		return components.TitledBox("Sources", MutedStyle.Render("No sources yet. Add one from the Topics tab with s."), m.width)
	}
	var b strings.Builder
	for i := range m.list.Visible() {
		abs := m.list.RelToAbs(i)
		s := m.sources[abs]
		line := components.SanitizeOneLine(s.Title) + "  " + MutedStyle.Render(m.topics[s.Topic])
		if i > 0 {
			b.WriteString("\n")
		}
		if m.list.IsSelected(abs) {
			b.WriteString(SelectedStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
	}
	return components.TitledBox(fmt.Sprintf("Sources (%d)", len(m.sources)), b.String(), m.width)
}
