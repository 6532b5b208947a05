package authoring

import (
	"errors"
	"fmt"
)

// ErrNoTopicSelected is returned when a plain card is submitted with no topic.
var ErrNoTopicSelected = errors.New("no topic selected")

// ConstructionError reports that an editor could not be opened for a context,
// usually because it references a card or source that does not exist.
type ConstructionError struct {
	Context CreationContext
	Err     error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("cannot add card (%s): %v", e.Context, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

// LookupError reports that the inherited topic of a context could not be read.
type LookupError struct {
	Context CreationContext
	Err     error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("resolve topic (%s): %v", e.Context, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// StorageError wraps a failed card write.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return "save card: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }
