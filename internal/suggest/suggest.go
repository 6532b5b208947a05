// Package suggest drafts answers for card questions with a language model.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyQuestion is returned when there is nothing to answer.
var ErrEmptyQuestion = errors.New("question is empty")

// ErrNoSuggestion is returned when the model produced no usable text.
var ErrNoSuggestion = errors.New("no suggestion returned")

// Suggester proposes an answer for a flashcard question.
type Suggester interface {
	SuggestAnswer(ctx context.Context, question string) (string, error)
}

// Prompt builds the model prompt for question.
func Prompt(question string) string {
	return fmt.Sprintf(
		"You are helping write a spaced-repetition flashcard.\n"+
			"Answer the question below briefly and precisely, in plain text "+
			"without markdown, in at most three sentences.\n\nQuestion: %s",
		strings.TrimSpace(question),
	)
}
