package ui

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/cardgraph/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	s, err := storage.Open(filepath.Join(t.TempDir(), "cards.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestApp(t *testing.T, s *storage.Store) App {
	t.Helper()
	app, err := NewApp(s, nil, nil, nil)
	require.NoError(t, err)
	return app
}

func update(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	model, cmd := a.Update(msg)
	out, ok := model.(App)
	require.True(t, ok)
	return out, cmd
}

// settle feeds the message produced by cmd back into the app.
func settle(t *testing.T, a App, cmd tea.Cmd) App {
	t.Helper()
	require.NotNil(t, cmd)
	a, _ = update(t, a, cmd())
	return a
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyAlt(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: true}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

type stubSuggester struct {
	answer string
	err    error
	asked  []string
}

func (s *stubSuggester) SuggestAnswer(_ context.Context, question string) (string, error) {
	s.asked = append(s.asked, question)
	return s.answer, s.err
}
