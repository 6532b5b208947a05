package domain

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a referenced card, topic or source does not exist.
var ErrNotFound = errors.New("not found")

type (
	CardID   int64
	TopicID  int64
	SourceID int64
)

// Status is the completion state of a card.
type Status int

const (
	Unfinished Status = iota
	Finished
)

func (s Status) String() string {
	if s == Finished {
		return "finished"
	}
	return "unfinished"
}

// FinishedInfo is the scheduling metadata carried by finished cards.
type FinishedInfo struct {
	Stability  float64
	Difficulty float64
	Due        time.Time
}

// DefaultFinishedInfo is the metadata a newly finished card starts with.
// The card is due immediately with one day of stability.
func DefaultFinishedInfo(now time.Time) FinishedInfo {
	return FinishedInfo{
		Stability:  1,
		Difficulty: 5,
		Due:        now.UTC(),
	}
}

// EdgeKind says how a new card relates to the card an edge points at.
type EdgeKind int

const (
	// Dependency: the new card is a prerequisite of the target.
	Dependency EdgeKind = iota
	// Dependent: the target is a prerequisite of the new card.
	Dependent
)

func (k EdgeKind) String() string {
	if k == Dependent {
		return "dependent"
	}
	return "dependency"
}

// Edge is a directed relation from a card being written to an existing card.
type Edge struct {
	Kind   EdgeKind
	Target CardID
}

// Card is a persisted question/answer unit.
type Card struct {
	ID       CardID
	Question string
	Answer   string
	Topic    TopicID
	Status   Status
	Finished *FinishedInfo
	Source   *SourceID

	// Dependencies are the cards this card requires; Dependents require this card.
	Dependencies []CardID
	Dependents   []CardID
}

// PendingCard is a card assembled at submission time and not yet written.
// At most one of Source and Edges is populated.
type PendingCard struct {
	Question string
	Answer   string
	Topic    TopicID
	Source   *SourceID
	Status   Status
	Finished *FinishedInfo
	Edges    []Edge
}
