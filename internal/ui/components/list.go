package components

import "github.com/gravitrone/cardgraph/internal/termtext"

// List is the paged cursor list components render.
type List = termtext.List

// NewList creates a list showing pageSize rows at a time.
func NewList(pageSize int) *List { return termtext.NewList(pageSize) }
