package authoring

import (
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/cardgraph/internal/domain"
	"github.com/gravitrone/cardgraph/internal/termtext"
)

// TopicSelector is the navigable topic list beside the editor.
type TopicSelector interface {
	// Selected returns the highlighted topic, or false when there is none.
	Selected() (domain.TopicID, bool)
	HandleKey(msg tea.KeyMsg)
	// Reset returns a selector at its default selection.
	Reset() TopicSelector
	View() string
}

// TopicLister reads the topic table.
type TopicLister interface {
	ListTopics() ([]domain.Topic, error)
}

type topicList struct {
	source TopicLister
	log    *slog.Logger
	topics []domain.Topic
	list   *termtext.List
}

const topicPageSize = 12

// NewTopicSelector loads the topics from src and selects the first one.
func NewTopicSelector(src TopicLister, log *slog.Logger) (TopicSelector, error) {
	topics, err := src.ListTopics()
	if err != nil {
		return nil, err
	}
	return newTopicList(src, log, topics), nil
}

func newTopicList(src TopicLister, log *slog.Logger, topics []domain.Topic) *topicList {
	t := &topicList{
		source: src,
		log:    log,
		topics: topics,
		list:   termtext.NewList(topicPageSize),
	}
	t.list.SetItems(TopicLabels(topics))
	return t
}

func (t *topicList) Selected() (domain.TopicID, bool) {
	if len(t.topics) == 0 {
		return 0, false
	}
	return t.topics[t.list.Selected()].ID, true
}

func (t *topicList) HandleKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k":
		t.list.Up()
	case "down", "j":
		t.list.Down()
	case "home", "g":
		t.list.Home()
	case "end", "G":
		t.list.End()
	}
}

// Reset reloads the topic table. If the reload fails the current topics
// are kept and the selection still returns to the first entry.
func (t *topicList) Reset() TopicSelector {
	topics, err := t.source.ListTopics()
	if err != nil {
		t.log.Warn("reload topics failed, keeping previous list", "error", err)
		topics = t.topics
	}
	return newTopicList(t.source, t.log, topics)
}

func (t *topicList) View() string {
	if len(t.topics) == 0 {
		return "(no topics)"
	}
	var b strings.Builder
	for i, label := range t.list.Visible() {
		if i > 0 {
			b.WriteString("\n")
		}
		if t.list.IsSelected(t.list.RelToAbs(i)) {
			b.WriteString("> " + label)
		} else {
			b.WriteString("  " + label)
		}
	}
	return b.String()
}

// TopicLabels renders each topic with its parent path, e.g. "math/algebra".
func TopicLabels(topics []domain.Topic) []string {
	byID := make(map[domain.TopicID]domain.Topic, len(topics))
	for _, t := range topics {
		byID[t.ID] = t
	}
	labels := make([]string, len(topics))
	for i, t := range topics {
		parts := []string{termtext.SanitizeOneLine(t.Name)}
		seen := map[domain.TopicID]bool{t.ID: true}
		for p := t.Parent; p != nil && !seen[*p]; {
			parent, ok := byID[*p]
			if !ok {
				break
			}
			seen[parent.ID] = true
			parts = append([]string{termtext.SanitizeOneLine(parent.Name)}, parts...)
			p = parent.Parent
		}
		labels[i] = strings.Join(parts, "/")
	}
	return labels
}
