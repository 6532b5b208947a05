package authoring

import (
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/cardgraph/internal/domain"
)

// Editor is the state of one card being authored: question and answer
// buffers, the topic list, the creation context and the focused region.
// An Editor is never reused after a successful submission; Writer.Submit
// hands back a fresh one instead.
type Editor struct {
	store    Store
	log      *slog.Logger
	newField FieldFactory

	context  CreationContext
	prompt   string
	focus    Focus
	question TextField
	answer   TextField
	topics   TopicSelector
	picker   *cardPicker
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the logger used for workflow events.
func WithLogger(log *slog.Logger) Option {
	return func(e *Editor) { e.log = log }
}

// WithFieldFactory replaces the textarea-backed question and answer fields.
func WithFieldFactory(f FieldFactory) Option {
	return func(e *Editor) { e.newField = f }
}

// WithTopicSelector uses sel instead of loading topics from the store.
func WithTopicSelector(sel TopicSelector) Option {
	return func(e *Editor) { e.topics = sel }
}

// New opens an editor for cc. Every card or source cc references must exist
// and no card may be listed twice; otherwise a *ConstructionError is
// returned and no editor is created.
func New(store Store, cc CreationContext, opts ...Option) (*Editor, error) {
	e := &Editor{
		store:    store,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		newField: NewTextField,
		context:  cc,
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := Validate(cc); err != nil {
		return nil, &ConstructionError{Context: cc, Err: err}
	}
	prompt, err := PromptLabel(cc, store)
	if err != nil {
		e.log.Error("editor prompt lookup failed", "context", cc.String(), "error", err)
		return nil, &ConstructionError{Context: cc, Err: err}
	}
	if err := checkLinkedCards(cc, store); err != nil {
		e.log.Error("linked card lookup failed", "context", cc.String(), "error", err)
		return nil, &ConstructionError{Context: cc, Err: err}
	}
	e.prompt = prompt

	if e.topics == nil {
		topics, err := NewTopicSelector(store, e.log)
		if err != nil {
			return nil, &ConstructionError{Context: cc, Err: err}
		}
		e.topics = topics
	}

	e.question = e.newField("Question")
	e.answer = e.newField("Answer")
	e.setFocus(FocusQuestion)
	return e, nil
}

// renew returns an empty plain editor sharing this editor's collaborators.
func (e *Editor) renew() *Editor {
	fresh := &Editor{
		store:    e.store,
		log:      e.log,
		newField: e.newField,
		context:  Plain{},
		prompt:   "Add new card",
		topics:   e.topics.Reset(),
		question: e.newField("Question"),
		answer:   e.newField("Answer"),
	}
	fresh.setFocus(FocusQuestion)
	return fresh
}

// Focus returns the region receiving key input.
func (e *Editor) Focus() Focus { return e.focus }

// Context returns what the card is being created for.
func (e *Editor) Context() CreationContext { return e.context }

// Prompt returns the screen header for the current context.
func (e *Editor) Prompt() string { return e.prompt }

func (e *Editor) Question() string { return e.question.Text() }

func (e *Editor) Answer() string { return e.answer.Text() }

// SetAnswer replaces the answer text, e.g. with a generated suggestion.
func (e *Editor) SetAnswer(text string) { e.answer.SetText(text) }

// SelectedTopic returns the topic list's highlighted topic.
func (e *Editor) SelectedTopic() (domain.TopicID, bool) { return e.topics.Selected() }

// QuestionView, AnswerView and TopicsView render the collaborators for the
// hosting screen.
func (e *Editor) QuestionView() string { return e.question.View() }

func (e *Editor) AnswerView() string { return e.answer.View() }

func (e *Editor) TopicsView() string { return e.topics.View() }

// PickerView renders the card finder, or "" when it is closed.
func (e *Editor) PickerView() string {
	if e.picker == nil {
		return ""
	}
	return e.picker.view()
}

// PickerTitle names the link the open card finder will create.
func (e *Editor) PickerTitle() string {
	if e.picker == nil {
		return ""
	}
	return e.picker.title()
}

// ReloadTopics rereads the topic table, e.g. after a topic was created
// elsewhere. The selection returns to the first topic.
func (e *Editor) ReloadTopics() {
	e.topics = e.topics.Reset()
}

// SetSize sizes the text fields.
func (e *Editor) SetSize(width, height int) {
	e.question.SetSize(width, height)
	e.answer.SetSize(width, height)
}

// Navigate moves focus per the navigation table.
func (e *Editor) Navigate(dir Direction) {
	e.setFocus(next(e.focus, dir))
}

func (e *Editor) setFocus(f Focus) {
	e.focus = f
	e.question.Blur()
	e.answer.Blur()
	switch f {
	case FocusQuestion:
		e.question.Focus()
	case FocusAnswer:
		e.answer.Focus()
	}
}

// HandleKey routes one key press. Navigation keys move focus; everything
// else goes to the focused field or list and leaves focus alone. In a plain
// editor alt+d and alt+t open the card finder to link the new card as a
// dependency or a dependent of an existing card.
func (e *Editor) HandleKey(msg tea.KeyMsg) error {
	if e.focus == FocusGraphPicker {
		return e.handlePickerKey(msg)
	}
	if dir, ok := DirectionForKey(msg); ok {
		e.Navigate(dir)
		return nil
	}
	if _, plain := e.context.(Plain); plain {
		switch msg.String() {
		case "alt+d":
			e.openPicker(domain.Dependency)
			return nil
		case "alt+t":
			e.openPicker(domain.Dependent)
			return nil
		}
	}

	switch e.focus {
	case FocusQuestion:
		e.question.HandleKey(msg)
	case FocusAnswer:
		e.answer.HandleKey(msg)
	case FocusTopic:
		e.topics.HandleKey(msg)
	}
	return nil
}

func (e *Editor) openPicker(kind domain.EdgeKind) {
	e.picker = newCardPicker(kind, e.store)
	e.setFocus(FocusGraphPicker)
}

func (e *Editor) handlePickerKey(msg tea.KeyMsg) error {
	card, outcome := e.picker.handleKey(msg, e.store)
	switch outcome {
	case pickerCancelled:
		e.picker = nil
		e.setFocus(FocusQuestion)
	case pickerPicked:
		var cc CreationContext = DependencyOf{Cards: []domain.CardID{card.ID}}
		if e.picker.kind == domain.Dependent {
			cc = DependentOf{Cards: []domain.CardID{card.ID}}
		}
		prompt, err := PromptLabel(cc, e.store)
		if err != nil {
			// Leave the finder open so the user can pick again.
			e.log.Error("link target lookup failed", "card", card.ID, "error", err)
			return &ConstructionError{Context: cc, Err: err}
		}
		e.context = cc
		e.prompt = prompt
		e.picker = nil
		e.setFocus(FocusQuestion)
		e.log.Debug("editor linked", "context", cc.String())
	}
	return nil
}
