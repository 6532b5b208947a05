package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/cardgraph/internal/ui/components"
)

func defaultPaletteActions() []paletteAction {
	return []paletteAction{
		{ID: "tab:add", Label: "Add card", Desc: "Write a new card"},
		{ID: "tab:cards", Label: "Cards", Desc: "Browse and link cards"},
		{ID: "tab:topics", Label: "Topics", Desc: "Browse topics"},
		{ID: "tab:sources", Label: "Sources", Desc: "Reading items"},
		{ID: "card:discard", Label: "Discard draft", Desc: "Start over with a plain card"},
		{ID: "topic:new", Label: "New topic", Desc: "Create a top-level topic"},
		{ID: "cards:search", Label: "Search cards", Desc: "Filter cards by question"},
		{ID: "quit", Label: "Quit", Desc: "Exit cardgraph"},
	}
}

func filterPalette(items []paletteAction, query string) []paletteAction {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	filtered := make([]paletteAction, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Label), q) || strings.Contains(strings.ToLower(item.Desc), q) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func (a *App) openPalette() {
	a.paletteOpen = true
	a.paletteQuery = ""
	a.paletteIndex = 0
	a.paletteFiltered = defaultPaletteActions()
}

func (a App) handlePaletteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isBack(msg):
		a.paletteOpen = false
	case isEnter(msg):
		if len(a.paletteFiltered) == 0 {
			return a, nil
		}
		action := a.paletteFiltered[a.paletteIndex]
		a.paletteOpen = false
		return a.runPaletteAction(action)
	case isKey(msg, "up"):
		if a.paletteIndex > 0 {
			a.paletteIndex--
		}
	case isKey(msg, "down"):
		if a.paletteIndex < len(a.paletteFiltered)-1 {
			a.paletteIndex++
		}
	case isKey(msg, "backspace"):
		a.paletteQuery = dropLastRune(a.paletteQuery)
		a.refilterPalette()
	case isPrintable(msg):
		a.paletteQuery += typed(msg)
		a.refilterPalette()
	}
	return a, nil
}

func (a *App) refilterPalette() {
	a.paletteFiltered = filterPalette(defaultPaletteActions(), a.paletteQuery)
	a.paletteIndex = 0
}

func (a App) runPaletteAction(action paletteAction) (tea.Model, tea.Cmd) {
	switch action.ID {
	case "tab:add":
		return a.switchTab(tabAdd)
	case "tab:cards":
		return a.switchTab(tabCards)
	case "tab:topics":
		return a.switchTab(tabTopics)
	case "tab:sources":
		return a.switchTab(tabSources)
	case "card:discard":
		return a.discardDraft()
	case "topic:new":
		a.topics.openPrompt(topicPromptRoot)
		return a.switchTab(tabTopics)
	case "cards:search":
		a.cards.filtering = true
		return a.switchTab(tabCards)
	case "quit":
		return a.quit()
	}
	return a, nil
}

func (a App) renderPalette() string {
	var b strings.Builder
	b.WriteString("  > " + components.SanitizeOneLine(a.paletteQuery))
	b.WriteString(AccentStyle.Render("█"))
	b.WriteString("\n\n")

	if len(a.paletteFiltered) == 0 {
		b.WriteString(MutedStyle.Render("No matches."))
	}
	for i, item := range a.paletteFiltered {
		line := fmt.Sprintf("%s  %s", item.Label, MutedStyle.Render(item.Desc))
		if i == a.paletteIndex {
			b.WriteString(SelectedStyle.Render("  > " + line))
		} else {
			b.WriteString(NormalStyle.Render("    " + line))
		}
		if i < len(a.paletteFiltered)-1 {
			b.WriteString("\n")
		}
	}
	return components.TitledBox("Command Palette", b.String(), a.width)
}
