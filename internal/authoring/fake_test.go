package authoring

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/cardgraph/internal/domain"
)

type fakeStore struct {
	topics    []domain.Topic
	cards     map[domain.CardID]domain.Card
	sources   map[domain.SourceID]domain.Source
	writes    []domain.PendingCard
	writeErr  error
	topicsErr error
	searchErr error
	nextID    domain.CardID
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		topics: []domain.Topic{
			{ID: 1, Name: "general"},
			{ID: 3, Name: "arithmetic"},
			{ID: 7, Name: "algebra"},
		},
		cards: map[domain.CardID]domain.Card{
			42: {ID: 42, Question: "What is a group?", Topic: 7},
			43: {ID: 43, Question: "What is a ring?", Topic: 3},
		},
		sources: map[domain.SourceID]domain.Source{
			5: {ID: 5, Title: "Introduction to Algorithms", Topic: 3},
		},
		nextID: 100,
	}
}

func (f *fakeStore) FetchCard(id domain.CardID) (domain.Card, error) {
	c, ok := f.cards[id]
	if !ok {
		return domain.Card{}, fmt.Errorf("card %d: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

func (f *fakeStore) FetchSourceTopic(id domain.SourceID) (domain.TopicID, error) {
	s, ok := f.sources[id]
	if !ok {
		return 0, fmt.Errorf("source %d: %w", id, domain.ErrNotFound)
	}
	return s.Topic, nil
}

func (f *fakeStore) FetchSourceTitle(id domain.SourceID, maxLen int) (string, error) {
	s, ok := f.sources[id]
	if !ok {
		return "", fmt.Errorf("source %d: %w", id, domain.ErrNotFound)
	}
	if r := []rune(s.Title); maxLen > 0 && len(r) > maxLen {
		return string(r[:maxLen]), nil
	}
	return s.Title, nil
}

func (f *fakeStore) ListTopics() ([]domain.Topic, error) {
	if f.topicsErr != nil {
		return nil, f.topicsErr
	}
	return append([]domain.Topic(nil), f.topics...), nil
}

func (f *fakeStore) SearchCards(query string, limit int) ([]domain.Card, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	var out []domain.Card
	for id := domain.CardID(0); id < 1000 && len(out) < limit; id++ {
		c, ok := f.cards[id]
		if ok && strings.Contains(strings.ToLower(c.Question), strings.ToLower(query)) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) WriteCardWithEdges(p domain.PendingCard) (domain.CardID, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	f.writes = append(f.writes, p)
	f.nextID++
	return f.nextID, nil
}

var errDiskFull = errors.New("disk full")

var fixedNow = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

func newTestWriter(s Store) *Writer {
	w := NewWriter(s, nil)
	w.now = func() time.Time { return fixedNow }
	return w
}

func newTestEditor(t *testing.T, s Store, cc CreationContext) *Editor {
	t.Helper()
	e, err := New(s, cc)
	require.NoError(t, err)
	return e
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func altKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: true}
}

func typeInto(t *testing.T, e *Editor, text string) {
	t.Helper()
	require.NoError(t, e.HandleKey(runes(text)))
}
