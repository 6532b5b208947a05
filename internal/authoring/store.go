package authoring

import "github.com/gravitrone/cardgraph/internal/domain"

// Lookup is the read side of storage needed to label and resolve contexts.
type Lookup interface {
	FetchCard(id domain.CardID) (domain.Card, error)
	FetchSourceTopic(id domain.SourceID) (domain.TopicID, error)
	FetchSourceTitle(id domain.SourceID, maxLen int) (string, error)
}

// Store is everything the workflow needs from persistence.
type Store interface {
	Lookup
	ListTopics() ([]domain.Topic, error)
	SearchCards(query string, limit int) ([]domain.Card, error)
	WriteCardWithEdges(p domain.PendingCard) (domain.CardID, error)
}
