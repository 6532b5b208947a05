package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppPaletteArrowKeysMoveSelection(t *testing.T) {
	app := newTestApp(t, openStore(t))

	app, _ = update(t, app, keyType(tea.KeyCtrlP))
	require.True(t, app.paletteOpen)
	assert.Equal(t, 0, app.paletteIndex)

	app, _ = update(t, app, keyType(tea.KeyDown))
	assert.Equal(t, 1, app.paletteIndex)
	app, _ = update(t, app, keyType(tea.KeyUp))
	app, _ = update(t, app, keyType(tea.KeyUp))
	assert.Equal(t, 0, app.paletteIndex)
}

func TestAppPaletteBackspaceAndNoMatches(t *testing.T) {
	app := newTestApp(t, openStore(t))

	app, _ = update(t, app, keyType(tea.KeyCtrlP))
	app, _ = update(t, app, keyRunes("zzz"))
	assert.Empty(t, app.paletteFiltered)
	assert.Contains(t, app.View(), "No matches.")

	app, cmd := update(t, app, keyType(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.True(t, app.paletteOpen)

	for range 3 {
		app, _ = update(t, app, keyType(tea.KeyBackspace))
	}
	assert.Len(t, app.paletteFiltered, len(defaultPaletteActions()))

	app, _ = update(t, app, keyType(tea.KeyEsc))
	assert.False(t, app.paletteOpen)
}

func TestAppPaletteNewTopicOpensPrompt(t *testing.T) {
	app := newTestApp(t, openStore(t))

	app, _ = update(t, app, keyType(tea.KeyCtrlP))
	app, _ = update(t, app, keyRunes("new topic"))
	require.NotEmpty(t, app.paletteFiltered)
	require.Equal(t, "topic:new", app.paletteFiltered[0].ID)

	app, _ = update(t, app, keyType(tea.KeyEnter))
	assert.Equal(t, tabTopics, app.tab)
	assert.Equal(t, topicPromptRoot, app.topics.prompt)
	assert.Contains(t, app.View(), "New topic")
}

func TestAppPaletteQuitWithDraftAsksFirst(t *testing.T) {
	app := newTestApp(t, openStore(t))
	app, _ = update(t, app, keyRunes("draft"))

	app, _ = update(t, app, keyType(tea.KeyCtrlP))
	app, _ = update(t, app, keyRunes("quit"))
	app, cmd := update(t, app, keyType(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.True(t, app.quitConfirm)
}
