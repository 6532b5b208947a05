package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/cardgraph/internal/authoring"
	"github.com/gravitrone/cardgraph/internal/domain"
	"github.com/gravitrone/cardgraph/internal/ui/components"
)

const cardsLimit = 500

// --- Messages ---

type cardsLoadedMsg struct {
	cards  []domain.Card
	topics []domain.Topic
}

type cardDetailMsg struct{ card domain.Card }

// openEditorMsg asks the app to open the Add card tab with a new context.
type openEditorMsg struct{ context authoring.CreationContext }

// --- Cards Model ---

type CardsModel struct {
	store     Store
	cards     []domain.Card
	topics    map[domain.TopicID]string
	list      *components.List
	loading   bool
	detail    *domain.Card
	filtering bool
	filterBuf string
	width     int
	height    int
}

func NewCardsModel(store Store) CardsModel {
	return CardsModel{
		store:  store,
		list:   components.NewList(15),
		topics: map[domain.TopicID]string{},
	}
}

func (m CardsModel) Init() tea.Cmd {
	return m.load(m.filterBuf)
}

func (m CardsModel) load(filter string) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		var (
			cards []domain.Card
			err   error
		)
		if q := strings.TrimSpace(filter); q != "" {
			cards, err = store.SearchCards(q, cardsLimit)
		} else {
			cards, err = store.ListCards(cardsLimit)
		}
		if err != nil {
			return errMsg{fmt.Errorf("load cards: %w", err)}
		}
		topics, err := store.ListTopics()
		if err != nil {
			return errMsg{fmt.Errorf("load topics: %w", err)}
		}
		return cardsLoadedMsg{cards: cards, topics: topics}
	}
}

func (m CardsModel) Update(msg tea.Msg) (CardsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case cardsLoadedMsg:
		m.loading = false
		m.cards = msg.cards
		m.topics = make(map[domain.TopicID]string, len(msg.topics))
		for _, t := range msg.topics {
			m.topics[t.ID] = t.Name
		}
		labels := make([]string, len(m.cards))
		for i, c := range m.cards {
			labels[i] = c.Question
		}
		m.list.SetItems(labels)
		return m, nil
	case cardDetailMsg:
		card := msg.card
		m.detail = &card
		return m, nil
	case errMsg:
		m.loading = false
		return m, nil
	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKeys(msg)
		}
		if m.detail != nil {
			return m.handleDetailKeys(msg)
		}
		return m.handleListKeys(msg)
	}
	return m, nil
}

func (m CardsModel) handleListKeys(msg tea.KeyMsg) (CardsModel, tea.Cmd) {
	switch {
	case isDown(msg):
		m.list.Down()
	case isUp(msg):
		m.list.Up()
	case isKey(msg, "home", "g"):
		m.list.Home()
	case isKey(msg, "end", "G"):
		m.list.End()
	case isEnter(msg):
		if card, ok := m.selected(); ok {
			return m, m.fetchDetail(card.ID)
		}
	case isKey(msg, "/"):
		m.filtering = true
	case isBack(msg):
		if m.filterBuf != "" {
			m.filterBuf = ""
			m.loading = true
			return m, m.load("")
		}
	case isKey(msg, "r"):
		m.loading = true
		return m, m.load(m.filterBuf)
	default:
		return m, m.linkCmd(msg)
	}
	return m, nil
}

// fetchDetail reads the card again so its graph edges are included.
func (m CardsModel) fetchDetail(id domain.CardID) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		card, err := store.FetchCard(id)
		if err != nil {
			return errMsg{fmt.Errorf("load card %d: %w", id, err)}
		}
		return cardDetailMsg{card: card}
	}
}

func (m CardsModel) handleDetailKeys(msg tea.KeyMsg) (CardsModel, tea.Cmd) {
	if isBack(msg) || isEnter(msg) {
		m.detail = nil
		return m, nil
	}
	return m, m.linkCmd(msg)
}

// linkCmd opens an editor linked to the selected card: d for a new
// dependency of it, t for a new dependent.
func (m CardsModel) linkCmd(msg tea.KeyMsg) tea.Cmd {
	card, ok := m.selected()
	if m.detail != nil {
		card, ok = *m.detail, true
	}
	if !ok {
		return nil
	}
	var cc authoring.CreationContext
	switch {
	case isKey(msg, "d"):
		cc = authoring.DependencyOf{Cards: []domain.CardID{card.ID}}
	case isKey(msg, "t"):
		cc = authoring.DependentOf{Cards: []domain.CardID{card.ID}}
	default:
		return nil
	}
	return func() tea.Msg { return openEditorMsg{context: cc} }
}

func (m CardsModel) handleFilterKeys(msg tea.KeyMsg) (CardsModel, tea.Cmd) {
	switch {
	case isEnter(msg):
		m.filtering = false
		m.loading = true
		return m, m.load(m.filterBuf)
	case isBack(msg):
		m.filtering = false
		m.filterBuf = ""
		m.loading = true
		return m, m.load("")
	case isKey(msg, "backspace"):
		m.filterBuf = dropLastRune(m.filterBuf)
	case isKey(msg, "ctrl+u"):
		m.filterBuf = ""
	case isPrintable(msg):
		m.filterBuf += typed(msg)
	}
	return m, nil
}

func (m CardsModel) selected() (domain.Card, bool) {
	idx := m.list.Selected()
	if idx < 0 || idx >= len(m.cards) {
		return domain.Card{}, false
	}
	return m.cards[idx], true
}

func (m CardsModel) View() string {
	if m.filtering {
		return components.Indent(components.InputDialog("Search questions", m.filterBuf), 1)
	}
	if m.detail != nil {
		return m.renderDetail(*m.detail)
	}
	return m.renderList()
}

func (m CardsModel) renderList() string {
	if m.loading && len(m.cards) == 0 {
		return MutedStyle.Render("Loading cards...")
	}
	title := "Cards"
	if m.filterBuf != "" {
		title = fmt.Sprintf("Cards matching %q", components.SanitizeOneLine(m.filterBuf))
	}
	if len(m.cards) == 0 {
		return components.TitledBox(title, MutedStyle.Render("No cards yet. Add one in the Add card tab."), m.width)
	}

	cols := []components.TableColumn{
		{Header: "ID", Width: 5, Align: lipgloss.Right},
		{Header: "", Width: 1, Align: lipgloss.Center},
		{Header: "Topic", Width: 14},
		{Header: "Question", Width: 20},
	}
	visible := m.list.Visible()
	rows := make([][]string, len(visible))
	active := -1
	for i := range visible {
		abs := m.list.RelToAbs(i)
		c := m.cards[abs]
		mark := ""
		if c.Status == domain.Finished {
			mark = components.FinishedMarker
		}
		rows[i] = []string{
			fmt.Sprintf("%d", c.ID),
			mark,
			m.topics[c.Topic],
			c.Question,
		}
		if m.list.IsSelected(abs) {
			active = i
		}
	}
	contentWidth := components.BoxContentWidth(m.width)
	count := MutedStyle.Render(fmt.Sprintf("%d cards", len(m.cards)))
	body := count + "\n\n" + components.TableGrid(cols, rows, contentWidth, active)
	if idx := m.list.Selected(); idx >= 0 && idx < len(m.cards) {
		c := m.cards[idx]
		preview := renderCardPreview(c, m.topics[c.Topic], previewBoxContentWidth(contentWidth))
		body += "\n\n" + renderPreviewBox(preview, contentWidth)
	}
	return components.TitledBox(title, body, m.width)
}

func (m CardsModel) renderDetail(c domain.Card) string {
	rows := []components.TableRow{
		{Label: "Question", Value: c.Question},
		{Label: "Answer", Value: c.Answer},
		{Label: "Topic", Value: m.topics[c.Topic]},
		{Label: "Status", Value: c.Status.String()},
	}
	if c.Finished != nil {
		rows = append(rows,
			components.TableRow{Label: "Due", Value: c.Finished.Due.Local().Format("2006-01-02 15:04")},
			components.TableRow{Label: "Stability", Value: fmt.Sprintf("%.2f", c.Finished.Stability)},
			components.TableRow{Label: "Difficulty", Value: fmt.Sprintf("%.2f", c.Finished.Difficulty)},
		)
	}
	if c.Source != nil {
		rows = append(rows, components.TableRow{Label: "Source", Value: fmt.Sprintf("#%d", *c.Source)})
	}
	rows = append(rows,
		components.TableRow{Label: "Depends on", Value: joinIDs(c.Dependencies)},
		components.TableRow{Label: "Needed by", Value: joinIDs(c.Dependents)},
	)
	return components.Table(fmt.Sprintf("Card #%d", c.ID), rows, m.width)
}

func joinIDs(ids []domain.CardID) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("#%d", id)
	}
	return strings.Join(parts, ", ")
}
