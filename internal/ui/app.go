package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/cardgraph/internal/authoring"
	"github.com/gravitrone/cardgraph/internal/config"
	"github.com/gravitrone/cardgraph/internal/domain"
	"github.com/gravitrone/cardgraph/internal/logging"
	"github.com/gravitrone/cardgraph/internal/suggest"
	"github.com/gravitrone/cardgraph/internal/ui/components"
)

// --- Tab Constants ---

const (
	tabAdd = iota
	tabCards
	tabTopics
	tabSources
	tabCount
)

var tabNames = []string{"Add card", "Cards", "Topics", "Sources"}

// Store is the persistence the TUI reads and writes.
type Store interface {
	authoring.Store
	ListCards(limit int) ([]domain.Card, error)
	CreateTopic(name string, parent *domain.TopicID) (domain.TopicID, error)
	ListSources() ([]domain.Source, error)
	CreateSource(title string, topic domain.TopicID) (domain.SourceID, error)
}

// --- Messages ---

type errMsg struct{ err error }
type clearToastMsg struct{}

type appToast struct {
	level string
	text  string
}

type paletteAction struct {
	ID    string
	Label string
	Desc  string
}

// --- App Model ---

// App is the root TUI model that routes between tabs.
type App struct {
	store       Store
	config      *config.Config
	log         *slog.Logger
	tab         int
	tabNav      bool
	width       int
	height      int
	err         string
	helpOpen    bool
	quitConfirm bool
	// discardConfirm asks before a non-empty draft is thrown away.
	discardConfirm bool
	toast       *appToast

	paletteOpen     bool
	paletteQuery    string
	paletteIndex    int
	paletteFiltered []paletteAction

	add     AddCardModel
	cards   CardsModel
	topics  TopicsModel
	sources SourcesModel
}

// NewApp creates the root model with a plain editor on the Add card tab.
// suggester may be nil when answer suggestions are not configured.
func NewApp(store Store, cfg *config.Config, suggester suggest.Suggester, log *slog.Logger) (App, error) {
	if log == nil {
		log = logging.Discard()
	}
	if cfg == nil {
		def := config.Defaults()
		cfg = &def
	}
	ApplyTheme(cfg.Theme)

	editor, err := authoring.New(store, authoring.Plain{}, authoring.WithLogger(log))
	if err != nil {
		return App{}, err
	}
	writer := authoring.NewWriter(store, log)
	return App{
		store:   store,
		config:  cfg,
		log:     log,
		tab:     tabAdd,
		add:     NewAddCardModel(editor, writer, suggester, log),
		cards:   NewCardsModel(store),
		topics:  NewTopicsModel(store),
		sources: NewSourcesModel(store),
	}, nil
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.add.setSize(msg.Width, msg.Height)
		a.cards.width, a.cards.height = msg.Width, msg.Height
		a.topics.width, a.topics.height = msg.Width, msg.Height
		a.sources.width, a.sources.height = msg.Width, msg.Height
		return a, nil

	case errMsg:
		a.err = msg.err.Error()
		a.log.Error("ui operation failed", "tab", tabNames[a.tab], "error", msg.err)
		a.cards, _ = a.cards.Update(msg)
		a.topics, _ = a.topics.Update(msg)
		a.sources, _ = a.sources.Update(msg)
		return a, nil
	case clearToastMsg:
		a.toast = nil
		return a, nil

	case cardSavedMsg:
		text := "Card saved as unfinished."
		if msg.finished {
			text = "Card saved."
		}
		return a, a.setToast("success", text)
	case suggestionMsg:
		a.add, cmd = a.add.Update(msg)
		return a, cmd
	case openEditorMsg:
		return a.openEditor(msg.context)

	case cardsLoadedMsg, cardDetailMsg:
		a.cards, cmd = a.cards.Update(msg)
		return a, cmd
	case topicsLoadedMsg:
		a.topics, cmd = a.topics.Update(msg)
		return a, cmd
	case topicCreatedMsg:
		a.topics, cmd = a.topics.Update(msg)
		a.add.editor.ReloadTopics()
		return a, tea.Batch(cmd, a.setToast("success", fmt.Sprintf("Topic %q created.", msg.name)))
	case sourceCreatedMsg:
		a.topics, cmd = a.topics.Update(msg)
		return a, tea.Batch(cmd, a.setToast("success", fmt.Sprintf("Source %q created.", msg.title)))
	case sourcesLoadedMsg:
		a.sources, cmd = a.sources.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if a.quitConfirm {
			switch {
			case isKey(msg, "y"):
				return a, tea.Quit
			case isKey(msg, "n"), isBack(msg):
				a.quitConfirm = false
			}
			return a, nil
		}
		if a.discardConfirm {
			switch {
			case isKey(msg, "y"):
				a.discardConfirm = false
				return a.resetEditor()
			case isKey(msg, "n"), isBack(msg):
				a.discardConfirm = false
			}
			return a, nil
		}
		if a.helpOpen {
			if isBack(msg) || isKey(msg, "?") {
				a.helpOpen = false
			}
			return a, nil
		}
		if a.paletteOpen {
			return a.handlePaletteKeys(msg)
		}
		a.err = ""

		if isQuit(msg) {
			return a.quit()
		}
		if isKey(msg, "ctrl+p") {
			a.openPalette()
			return a, nil
		}

		if a.tabNav {
			switch {
			case isKey(msg, "left"):
				return a.switchTab((a.tab - 1 + tabCount) % tabCount)
			case isKey(msg, "right"):
				return a.switchTab((a.tab + 1) % tabCount)
			case isKey(msg, "down"), isEnter(msg):
				a.tabNav = false
				return a, nil
			case isKey(msg, "q"):
				return a.quit()
			case isKey(msg, "?"):
				a.helpOpen = true
				return a, nil
			}
			if idx, ok := tabIndexForKey(msg.String()); ok {
				return a.switchTab(idx)
			}
			// Any other key leaves tab nav so the active tab can handle it.
			a.tabNav = false
		} else if a.tab == tabAdd {
			if !a.add.pickerOpen() {
				switch {
				case isBack(msg):
					a.tabNav = true
					return a, nil
				case isKey(msg, "alt+x"):
					return a.discardDraft()
				}
			}
		} else if !a.capturingText() {
			switch {
			case isKey(msg, "q"):
				return a.quit()
			case isKey(msg, "?"):
				a.helpOpen = true
				return a, nil
			case isKey(msg, "up") && a.atListTop():
				a.tabNav = true
				return a, nil
			}
			if idx, ok := tabIndexForKey(msg.String()); ok {
				return a.switchTab(idx)
			}
		}
	}

	switch a.tab {
	case tabAdd:
		a.add, cmd = a.add.Update(msg)
	case tabCards:
		a.cards, cmd = a.cards.Update(msg)
	case tabTopics:
		a.topics, cmd = a.topics.Update(msg)
	case tabSources:
		a.sources, cmd = a.sources.Update(msg)
	}
	return a, cmd
}

func (a App) quit() (tea.Model, tea.Cmd) {
	if a.add.editing() {
		a.quitConfirm = true
		return a, nil
	}
	return a, tea.Quit
}

// capturingText reports whether the active list tab has an input open.
func (a App) capturingText() bool {
	switch a.tab {
	case tabCards:
		return a.cards.filtering
	case tabTopics:
		return a.topics.prompt != topicPromptNone
	}
	return false
}

func (a App) atListTop() bool {
	switch a.tab {
	case tabCards:
		return a.cards.detail == nil && a.cards.list.Selected() == 0
	case tabTopics:
		return a.topics.list.Selected() == 0
	case tabSources:
		return a.sources.list.Selected() == 0
	}
	return false
}

func (a App) openEditor(cc authoring.CreationContext) (tea.Model, tea.Cmd) {
	if a.add.editing() {
		a.err = "Finish or clear the card you are writing before starting a linked one."
		return a, nil
	}
	editor, err := authoring.New(a.store, cc, authoring.WithLogger(a.log))
	if err != nil {
		a.err = err.Error()
		return a, nil
	}
	a.add.SetEditor(editor)
	a.tab = tabAdd
	a.tabNav = false
	return a, nil
}

// discardDraft drops the current card, linked or not, and opens a plain
// editor. A draft holding text is only dropped after confirmation.
func (a App) discardDraft() (tea.Model, tea.Cmd) {
	if a.add.editing() {
		a.discardConfirm = true
		return a, nil
	}
	return a.resetEditor()
}

func (a App) resetEditor() (tea.Model, tea.Cmd) {
	editor, err := authoring.New(a.store, authoring.Plain{}, authoring.WithLogger(a.log))
	if err != nil {
		a.err = err.Error()
		return a, nil
	}
	a.log.Info("draft discarded", "context", a.add.editor.Context().String())
	a.add.SetEditor(editor)
	a.tab = tabAdd
	a.tabNav = false
	return a, a.setToast("info", "Draft discarded.")
}

func (a App) switchTab(newTab int) (tea.Model, tea.Cmd) {
	oldTab := a.tab
	a.tab = newTab
	if oldTab == newTab {
		return a, nil
	}
	return a, a.initTab(newTab)
}

func (a App) initTab(tab int) tea.Cmd {
	switch tab {
	case tabCards:
		return a.cards.Init()
	case tabTopics:
		return a.topics.Init()
	case tabSources:
		return a.sources.Init()
	}
	return nil
}

func (a App) View() string {
	banner := centerBlockUniform(RenderBanner(), a.width)
	tabs := centerBlockUniform(a.renderTabs(), a.width)

	var content string
	switch {
	case a.quitConfirm:
		content = components.Indent(components.ConfirmDialog("Quit", "Discard the card you are writing?"), 1)
	case a.discardConfirm:
		content = components.Indent(components.ConfirmDialog("Discard", "Throw away this card and start a plain one?"), 1)
	case a.helpOpen:
		content = a.renderHelp()
	case a.paletteOpen:
		content = a.renderPalette()
	default:
		switch a.tab {
		case tabAdd:
			content = a.add.View()
		case tabCards:
			content = a.cards.View()
		case tabTopics:
			content = a.topics.View()
		case tabSources:
			content = a.sources.View()
		}
	}
	content = centerBlockUniform(content, a.width)

	hints := components.StatusBar(a.statusHints(), a.width)

	feedback := ""
	if a.err != "" {
		feedback = "\n\n" + centerBlockUniform(components.ErrorBox("Error", a.err, a.width), a.width)
	} else if a.toast != nil {
		feedback = "\n\n" + centerBlockUniform(a.renderToast(), a.width)
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s%s", banner, tabs, content, hints, feedback)
}

func (a App) renderTabs() string {
	segments := make([]string, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		switch {
		case i == a.tab && a.tabNav:
			segments[i] = TabNavStyle.Render(label)
		case i == a.tab:
			segments[i] = TabActiveStyle.Render(label)
		default:
			segments[i] = TabInactiveStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, segments...)
}

func (a App) statusHints() []string {
	if a.quitConfirm || a.discardConfirm {
		return []string{components.Hint("y", "Confirm"), components.Hint("n", "Cancel")}
	}
	if a.helpOpen {
		return []string{components.Hint("esc", "Back")}
	}
	if a.paletteOpen {
		return []string{components.Hint("enter", "Run"), components.Hint("esc", "Close")}
	}
	if a.tabNav {
		return []string{
			components.Hint("←/→", "Tabs"),
			components.Hint("↓", "Enter"),
			components.Hint("?", "Help"),
			components.Hint("q", "Quit"),
		}
	}
	return a.statusHintsForTab()
}

func (a App) statusHintsForTab() []string {
	switch a.tab {
	case tabAdd:
		if a.add.pickerOpen() {
			return []string{components.Hint("enter", "Link"), components.Hint("esc", "Cancel")}
		}
		hints := []string{
			components.Hint("alt+←↑↓→", "Move"),
			components.Hint("alt+f", "Finished"),
			components.Hint("alt+u", "Unfinished"),
		}
		if _, plain := a.add.editor.Context().(authoring.Plain); plain {
			hints = append(hints,
				components.Hint("alt+d", "Dependency"),
				components.Hint("alt+t", "Dependent"),
			)
		}
		return append(hints,
			components.Hint("alt+g", "Suggest"),
			components.Hint("alt+x", "Discard"),
			components.Hint("esc", "Tabs"),
			components.Hint("ctrl+p", "Command"),
		)
	case tabCards:
		if a.cards.filtering {
			return []string{components.Hint("enter", "Search"), components.Hint("esc", "Clear")}
		}
		return []string{
			components.Hint("↑/↓", "Scroll"),
			components.Hint("enter", "Details"),
			components.Hint("d", "New dependency"),
			components.Hint("t", "New dependent"),
			components.Hint("/", "Search"),
			components.Hint("q", "Quit"),
		}
	case tabTopics:
		if a.topics.prompt != topicPromptNone {
			return []string{components.Hint("enter", "Create"), components.Hint("esc", "Cancel")}
		}
		return []string{
			components.Hint("↑/↓", "Scroll"),
			components.Hint("n", "New topic"),
			components.Hint("a", "Subtopic"),
			components.Hint("s", "New source"),
			components.Hint("q", "Quit"),
		}
	case tabSources:
		return []string{
			components.Hint("↑/↓", "Scroll"),
			components.Hint("enter", "New child card"),
			components.Hint("q", "Quit"),
		}
	}
	return nil
}

func (a App) renderHelp() string {
	hints := a.statusHintsForTab()
	lines := []string{MutedStyle.Render("esc to close"), ""}
	for _, hint := range hints {
		lines = append(lines, "  "+hint)
	}
	return components.Indent(components.TitledBox("Help", strings.Join(lines, "\n"), a.width), 1)
}

func (a *App) setToast(level, text string) tea.Cmd {
	a.toast = &appToast{level: level, text: components.SanitizeOneLine(text)}
	return tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

func (a App) renderToast() string {
	if a.toast == nil {
		return ""
	}
	switch a.toast.level {
	case "success":
		return components.TitledBox("Success", SuccessStyle.Render(a.toast.text), a.width)
	case "error":
		return components.ErrorBox("Error", a.toast.text, a.width)
	}
	return components.TitledBox("Info", a.toast.text, a.width)
}

func tabIndexForKey(key string) (int, bool) {
	if len(key) == 1 && key[0] >= '1' && int(key[0]-'1') < tabCount {
		return int(key[0] - '1'), true
	}
	return 0, false
}

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	pad := (width - maxWidth) / 2
	if maxWidth == 0 || pad <= 0 {
		return s
	}
	prefix := strings.Repeat(" ", pad)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
