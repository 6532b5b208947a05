package authoring

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gravitrone/cardgraph/internal/domain"
)

// Writer turns finished drafts into persisted cards.
type Writer struct {
	store Store
	log   *slog.Logger
	now   func() time.Time
}

// NewWriter returns a Writer backed by store. A nil logger discards output.
func NewWriter(store Store, log *slog.Logger) *Writer {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Writer{store: store, log: log, now: time.Now}
}

// Draft is a card described without an Editor, as the CLI and importer do.
// Topic is only consulted for Plain contexts.
type Draft struct {
	Context  CreationContext
	Question string
	Answer   string
	Topic    *domain.TopicID
	Finished bool
}

// Submit writes the card held by e. On success it returns a brand-new plain
// editor with empty fields, question focus and the default topic selection.
// On failure it returns e itself, untouched, with ErrNoTopicSelected,
// a *LookupError or a *StorageError.
func (w *Writer) Submit(e *Editor, finished bool) (*Editor, error) {
	pending, err := w.BuildPendingCard(e, finished)
	if err != nil {
		w.log.Warn("card submission rejected", "context", e.context.String(), "error", err)
		return e, err
	}
	id, err := w.store.WriteCardWithEdges(pending)
	if err != nil {
		w.log.Error("card write failed", "context", e.context.String(), "error", err)
		return e, &StorageError{Err: err}
	}
	w.log.Info("card created",
		"card", id,
		"context", e.context.String(),
		"topic", pending.Topic,
		"status", pending.Status.String(),
		"edges", len(pending.Edges))
	return e.renew(), nil
}

// BuildPendingCard assembles the card e would write without writing it.
func (w *Writer) BuildPendingCard(e *Editor, finished bool) (domain.PendingCard, error) {
	selected, ok := e.topics.Selected()
	var topic *domain.TopicID
	if ok {
		topic = &selected
	}
	return w.assemble(Draft{
		Context:  e.context,
		Question: e.question.Text(),
		Answer:   e.answer.Text(),
		Topic:    topic,
		Finished: finished,
	})
}

// WriteDraft resolves and writes d in one step.
func (w *Writer) WriteDraft(d Draft) (domain.CardID, error) {
	if err := Validate(d.Context); err != nil {
		return 0, &ConstructionError{Context: d.Context, Err: err}
	}
	if err := checkLinkedCards(d.Context, w.store); err != nil {
		return 0, &ConstructionError{Context: d.Context, Err: err}
	}
	pending, err := w.assemble(d)
	if err != nil {
		return 0, err
	}
	id, err := w.store.WriteCardWithEdges(pending)
	if err != nil {
		return 0, &StorageError{Err: err}
	}
	w.log.Info("card created", "card", id, "context", d.Context.String(), "topic", pending.Topic)
	return id, nil
}

func (w *Writer) assemble(d Draft) (domain.PendingCard, error) {
	topic, err := w.resolveTopic(d.Context, d.Topic)
	if err != nil {
		return domain.PendingCard{}, err
	}
	p := domain.PendingCard{
		Question: d.Question,
		Answer:   d.Answer,
		Topic:    topic,
		Source:   sourceFor(d.Context),
		Status:   domain.Unfinished,
		Edges:    edgesFor(d.Context),
	}
	if d.Finished {
		info := domain.DefaultFinishedInfo(w.now())
		p.Status = domain.Finished
		p.Finished = &info
	}
	return p, nil
}

// resolveTopic picks the card's topic. Linked cards always live in the topic
// of what they are linked to; selected only matters for plain cards.
func (w *Writer) resolveTopic(cc CreationContext, selected *domain.TopicID) (domain.TopicID, error) {
	switch c := cc.(type) {
	case Plain:
		if selected == nil {
			return 0, ErrNoTopicSelected
		}
		return *selected, nil
	case ChildOfSource:
		topic, err := w.store.FetchSourceTopic(c.Source)
		if err != nil {
			return 0, &LookupError{Context: cc, Err: err}
		}
		return topic, nil
	case DependencyOf:
		return w.topicOfFirst(cc, c.Cards)
	case DependentOf:
		return w.topicOfFirst(cc, c.Cards)
	default:
		panic(fmt.Sprintf("authoring: unknown creation context %T", cc))
	}
}

func (w *Writer) topicOfFirst(cc CreationContext, cards []domain.CardID) (domain.TopicID, error) {
	if len(cards) == 0 {
		return 0, &LookupError{Context: cc, Err: errNoCards}
	}
	card, err := w.store.FetchCard(cards[0])
	if err != nil {
		return 0, &LookupError{Context: cc, Err: err}
	}
	return card.Topic, nil
}
