// Package authoring implements the card creation workflow: what a new card
// is for, the editing state behind the add-card screen, and the submission
// that resolves inherited topics and writes the card with its graph edges.
package authoring

import (
	"errors"
	"fmt"

	"github.com/gravitrone/cardgraph/internal/domain"
)

// CreationContext says why a card is being created. The variants are
// Plain, ChildOfSource, DependencyOf and DependentOf; the set is closed.
type CreationContext interface {
	isCreationContext()
	String() string
}

// Plain creates a standalone card in the selected topic.
type Plain struct{}

// ChildOfSource creates a card derived from a reading item, in the item's topic.
type ChildOfSource struct {
	Source domain.SourceID
}

// DependencyOf creates a card every one of Cards depends on.
type DependencyOf struct {
	Cards []domain.CardID
}

// DependentOf creates a card that depends on every one of Cards.
type DependentOf struct {
	Cards []domain.CardID
}

func (Plain) isCreationContext()         {}
func (ChildOfSource) isCreationContext() {}
func (DependencyOf) isCreationContext()  {}
func (DependentOf) isCreationContext()   {}

func (Plain) String() string           { return "plain" }
func (c ChildOfSource) String() string { return fmt.Sprintf("child of source %d", c.Source) }
func (c DependencyOf) String() string  { return fmt.Sprintf("dependency of %v", c.Cards) }
func (c DependentOf) String() string   { return fmt.Sprintf("dependent of %v", c.Cards) }

var errNoCards = errors.New("at least one card id is required")

// Validate checks the shape of a context without touching storage: linked
// contexts need at least one card and no card twice.
func Validate(cc CreationContext) error {
	switch c := cc.(type) {
	case Plain, ChildOfSource:
		return nil
	case DependencyOf:
		return validateCards(c.Cards)
	case DependentOf:
		return validateCards(c.Cards)
	case nil:
		return errors.New("creation context is required")
	default:
		panic(fmt.Sprintf("authoring: unknown creation context %T", cc))
	}
}

func validateCards(cards []domain.CardID) error {
	if len(cards) == 0 {
		return errNoCards
	}
	seen := make(map[domain.CardID]bool, len(cards))
	for _, id := range cards {
		if seen[id] {
			return fmt.Errorf("card %d is listed more than once", id)
		}
		seen[id] = true
	}
	return nil
}

// checkLinkedCards fetches every card a linked context points at, so a
// dangling id fails before any text is typed rather than at write time.
func checkLinkedCards(cc CreationContext, l Lookup) error {
	var cards []domain.CardID
	switch c := cc.(type) {
	case DependencyOf:
		cards = c.Cards
	case DependentOf:
		cards = c.Cards
	}
	for _, id := range cards {
		if _, err := l.FetchCard(id); err != nil {
			return err
		}
	}
	return nil
}

// edgesFor returns the graph edges a card created in cc must carry.
func edgesFor(cc CreationContext) []domain.Edge {
	var (
		kind    domain.EdgeKind
		targets []domain.CardID
	)
	switch c := cc.(type) {
	case Plain, ChildOfSource:
		return nil
	case DependencyOf:
		kind, targets = domain.Dependency, c.Cards
	case DependentOf:
		kind, targets = domain.Dependent, c.Cards
	default:
		panic(fmt.Sprintf("authoring: unknown creation context %T", cc))
	}
	edges := make([]domain.Edge, 0, len(targets))
	for _, id := range targets {
		edges = append(edges, domain.Edge{Kind: kind, Target: id})
	}
	return edges
}

func sourceFor(cc CreationContext) *domain.SourceID {
	if c, ok := cc.(ChildOfSource); ok {
		id := c.Source
		return &id
	}
	return nil
}
