package authoring

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/cardgraph/internal/domain"
	"github.com/gravitrone/cardgraph/internal/termtext"
)

const (
	pickerPageSize    = 8
	pickerResultLimit = 50
)

// CardSearcher finds existing cards by question text.
type CardSearcher interface {
	SearchCards(query string, limit int) ([]domain.Card, error)
}

// cardPicker chooses the card a plain editor gets linked to.
type cardPicker struct {
	kind    domain.EdgeKind
	query   string
	results []domain.Card
	list    *termtext.List
	err     error
}

func newCardPicker(kind domain.EdgeKind, s CardSearcher) *cardPicker {
	p := &cardPicker{kind: kind, list: termtext.NewList(pickerPageSize)}
	p.search(s)
	return p
}

func (p *cardPicker) search(s CardSearcher) {
	cards, err := s.SearchCards(p.query, pickerResultLimit)
	p.err = err
	if err != nil {
		p.results = nil
		p.list.SetItems(nil)
		return
	}
	p.results = cards
	labels := make([]string, len(cards))
	for i, c := range cards {
		labels[i] = termtext.SanitizeOneLine(c.Question)
	}
	p.list.SetItems(labels)
}

type pickerOutcome int

const (
	pickerOpen pickerOutcome = iota
	pickerCancelled
	pickerPicked
)

// handleKey edits the query or moves the cursor. When a card is chosen it
// is returned with pickerPicked.
func (p *cardPicker) handleKey(msg tea.KeyMsg, s CardSearcher) (domain.Card, pickerOutcome) {
	switch msg.Type {
	case tea.KeyEsc:
		return domain.Card{}, pickerCancelled
	case tea.KeyEnter:
		if idx := p.list.Selected(); idx < len(p.results) {
			return p.results[idx], pickerPicked
		}
		return domain.Card{}, pickerOpen
	case tea.KeyUp:
		p.list.Up()
	case tea.KeyDown:
		p.list.Down()
	case tea.KeyBackspace:
		if p.query != "" {
			runes := []rune(p.query)
			p.query = string(runes[:len(runes)-1])
			p.search(s)
		}
	case tea.KeyCtrlU:
		p.query = ""
		p.search(s)
	case tea.KeyRunes, tea.KeySpace:
		p.query += string(msg.Runes)
		if msg.Type == tea.KeySpace && len(msg.Runes) == 0 {
			p.query += " "
		}
		p.search(s)
	}
	return domain.Card{}, pickerOpen
}

func (p *cardPicker) title() string {
	if p.kind == domain.Dependent {
		return "Link as dependent of"
	}
	return "Link as dependency for"
}

func (p *cardPicker) view() string {
	var b strings.Builder
	b.WriteString("Search: " + p.query + "█")
	if p.err != nil {
		b.WriteString("\n\nsearch failed: " + p.err.Error())
		return b.String()
	}
	if len(p.results) == 0 {
		b.WriteString("\n\n(no matching cards)")
		return b.String()
	}
	b.WriteString("\n")
	for i, label := range p.list.Visible() {
		b.WriteString("\n")
		if p.list.IsSelected(p.list.RelToAbs(i)) {
			b.WriteString("> " + label)
		} else {
			b.WriteString("  " + label)
		}
	}
	return b.String()
}
