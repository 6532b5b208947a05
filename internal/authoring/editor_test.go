package authoring

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/cardgraph/internal/domain"
)

func TestNewEditorStartsOnQuestion(t *testing.T) {
	e := newTestEditor(t, newFakeStore(), Plain{})

	assert.Equal(t, FocusQuestion, e.Focus())
	assert.Equal(t, "Add new card", e.Prompt())
	assert.Equal(t, Plain{}, e.Context())
	assert.Empty(t, e.Question())
	assert.Empty(t, e.Answer())
	topic, ok := e.SelectedTopic()
	require.True(t, ok)
	assert.Equal(t, domain.TopicID(1), topic)
}

func TestNewEditorDanglingReferenceIsConstructionError(t *testing.T) {
	s := newFakeStore()
	for _, cc := range []CreationContext{
		ChildOfSource{Source: 77},
		DependencyOf{Cards: []domain.CardID{77}},
		DependentOf{Cards: []domain.CardID{77}},
		DependentOf{},
	} {
		e, err := New(s, cc)
		assert.Nil(t, e)
		var cerr *ConstructionError
		require.ErrorAs(t, err, &cerr, cc.String())
		assert.Equal(t, cc.String(), cerr.Context.String())
	}
}

func TestNewEditorChecksEveryLinkedCard(t *testing.T) {
	s := newFakeStore()
	for _, cc := range []CreationContext{
		DependencyOf{Cards: []domain.CardID{42, 404}},
		DependentOf{Cards: []domain.CardID{43, 42, 404}},
	} {
		e, err := New(s, cc)
		assert.Nil(t, e, cc.String())
		var cerr *ConstructionError
		require.ErrorAs(t, err, &cerr, cc.String())
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Contains(t, err.Error(), "404")
	}
}

func TestNewEditorRejectsRepeatedCard(t *testing.T) {
	e, err := New(newFakeStore(), DependencyOf{Cards: []domain.CardID{42, 42}})
	assert.Nil(t, e)
	var cerr *ConstructionError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, err.Error(), "more than once")
}

func TestNewEditorTopicLoadFailure(t *testing.T) {
	s := newFakeStore()
	s.topicsErr = errDiskFull
	_, err := New(s, Plain{})
	var cerr *ConstructionError
	require.ErrorAs(t, err, &cerr)
	assert.ErrorIs(t, err, errDiskFull)
}

func TestNavigationTable(t *testing.T) {
	want := map[Focus]map[Direction]Focus{
		FocusQuestion: {Up: FocusQuestion, Down: FocusAnswer, Left: FocusQuestion, Right: FocusTopic},
		FocusAnswer:   {Up: FocusQuestion, Down: FocusAnswer, Left: FocusAnswer, Right: FocusTopic},
		FocusTopic:    {Up: FocusTopic, Down: FocusTopic, Left: FocusQuestion, Right: FocusTopic},
	}
	for from, dirs := range want {
		for dir, to := range dirs {
			e := newTestEditor(t, newFakeStore(), Plain{})
			e.setFocus(from)
			e.Navigate(dir)
			assert.Equal(t, to, e.Focus(), "%s + %d", from, dir)
		}
	}
}

func TestNavigationKeys(t *testing.T) {
	e := newTestEditor(t, newFakeStore(), Plain{})

	require.NoError(t, e.HandleKey(tea.KeyMsg{Type: tea.KeyDown, Alt: true}))
	assert.Equal(t, FocusAnswer, e.Focus())

	require.NoError(t, e.HandleKey(altKey("l")))
	assert.Equal(t, FocusTopic, e.Focus())

	require.NoError(t, e.HandleKey(tea.KeyMsg{Type: tea.KeyLeft, Alt: true}))
	assert.Equal(t, FocusQuestion, e.Focus())
}

func TestTypingGoesToFocusedFieldOnly(t *testing.T) {
	e := newTestEditor(t, newFakeStore(), Plain{})

	typeInto(t, e, "2+2?")
	assert.Equal(t, "2+2?", e.Question())
	assert.Equal(t, FocusQuestion, e.Focus())

	e.Navigate(Down)
	typeInto(t, e, "4")
	assert.Equal(t, "2+2?", e.Question())
	assert.Equal(t, "4", e.Answer())
	assert.Equal(t, FocusAnswer, e.Focus())
}

func TestPlainArrowsDoNotChangeFocus(t *testing.T) {
	e := newTestEditor(t, newFakeStore(), Plain{})
	for _, k := range []tea.KeyType{tea.KeyUp, tea.KeyDown, tea.KeyLeft, tea.KeyRight, tea.KeyEnter} {
		require.NoError(t, e.HandleKey(tea.KeyMsg{Type: k}))
		assert.Equal(t, FocusQuestion, e.Focus())
	}
}

func TestTopicKeysMoveSelection(t *testing.T) {
	e := newTestEditor(t, newFakeStore(), Plain{})
	e.Navigate(Right)
	require.Equal(t, FocusTopic, e.Focus())

	require.NoError(t, e.HandleKey(tea.KeyMsg{Type: tea.KeyDown}))
	topic, ok := e.SelectedTopic()
	require.True(t, ok)
	assert.Equal(t, domain.TopicID(3), topic)
	assert.Equal(t, FocusTopic, e.Focus())
	assert.Contains(t, e.TopicsView(), "> arithmetic")
}

func TestGraphPickerLinksDependency(t *testing.T) {
	e := newTestEditor(t, newFakeStore(), Plain{})

	require.NoError(t, e.HandleKey(altKey("d")))
	assert.Equal(t, FocusGraphPicker, e.Focus())
	assert.Equal(t, "Link as dependency for", e.PickerTitle())

	typeInto(t, e, "ring")
	assert.Contains(t, e.PickerView(), "What is a ring?")
	assert.NotContains(t, e.PickerView(), "What is a group?")

	require.NoError(t, e.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, FocusQuestion, e.Focus())
	assert.Equal(t, DependencyOf{Cards: []domain.CardID{43}}, e.Context())
	assert.Equal(t, "Add new dependency for: What is a ring?", e.Prompt())
	assert.Empty(t, e.PickerView())
}

func TestGraphPickerLinksDependent(t *testing.T) {
	e := newTestEditor(t, newFakeStore(), Plain{})

	require.NoError(t, e.HandleKey(altKey("t")))
	require.NoError(t, e.HandleKey(tea.KeyMsg{Type: tea.KeyDown}))
	require.NoError(t, e.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}))

	assert.Equal(t, DependentOf{Cards: []domain.CardID{43}}, e.Context())
	assert.Equal(t, "Add new dependent of: What is a ring?", e.Prompt())
}

func TestGraphPickerIgnoresNavigationAndCancels(t *testing.T) {
	e := newTestEditor(t, newFakeStore(), Plain{})
	require.NoError(t, e.HandleKey(altKey("d")))

	require.NoError(t, e.HandleKey(tea.KeyMsg{Type: tea.KeyLeft, Alt: true}))
	assert.Equal(t, FocusGraphPicker, e.Focus())

	require.NoError(t, e.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, FocusQuestion, e.Focus())
	assert.Equal(t, Plain{}, e.Context())
}

func TestGraphPickerSearchError(t *testing.T) {
	s := newFakeStore()
	s.searchErr = errDiskFull
	e := newTestEditor(t, s, Plain{})

	require.NoError(t, e.HandleKey(altKey("d")))
	assert.Contains(t, e.PickerView(), "search failed")

	require.NoError(t, e.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, FocusGraphPicker, e.Focus())
}

func TestGraphPickerOnlyFromPlain(t *testing.T) {
	e := newTestEditor(t, newFakeStore(), ChildOfSource{Source: 5})
	require.NoError(t, e.HandleKey(altKey("d")))
	assert.NotEqual(t, FocusGraphPicker, e.Focus())
	assert.Equal(t, ChildOfSource{Source: 5}, e.Context())
}

func TestSetAnswerReplacesText(t *testing.T) {
	e := newTestEditor(t, newFakeStore(), Plain{})
	e.Navigate(Down)
	typeInto(t, e, "draft")
	e.SetAnswer("final")
	assert.Equal(t, "final", e.Answer())
}

func TestReloadTopicsPicksUpNewTopics(t *testing.T) {
	store := newFakeStore()
	e := newTestEditor(t, store, Plain{})
	store.topics = append([]domain.Topic{{ID: 9, Name: "geometry"}}, store.topics...)

	e.ReloadTopics()
	topic, ok := e.SelectedTopic()
	require.True(t, ok)
	assert.Equal(t, domain.TopicID(9), topic)
	assert.Contains(t, e.TopicsView(), "> geometry")
}
