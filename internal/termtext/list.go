package termtext

// List is a scrollable window over a slice of labels with a cursor.
type List struct {
	Items    []string
	Cursor   int
	Offset   int
	PageSize int
}

// NewList creates a list showing pageSize rows at a time.
func NewList(pageSize int) *List {
	if pageSize < 1 {
		pageSize = 1
	}
	return &List{PageSize: pageSize}
}

// SetItems replaces items and resets cursor.
func (l *List) SetItems(items []string) {
	l.Items = items
	l.Cursor = 0
	l.Offset = 0
}

// Len returns the number of items.
func (l *List) Len() int { return len(l.Items) }

// Down moves the cursor down one row, scrolling when it leaves the page.
func (l *List) Down() {
	l.SetCursor(l.Cursor + 1)
}

// Up moves the cursor up one row.
func (l *List) Up() {
	l.SetCursor(l.Cursor - 1)
}

// Home jumps to the first item.
func (l *List) Home() { l.SetCursor(0) }

// End jumps to the last item.
func (l *List) End() { l.SetCursor(len(l.Items) - 1) }

// SetCursor moves the cursor to idx, clamped to the items, and scrolls the
// page just enough to keep it visible.
func (l *List) SetCursor(idx int) {
	if len(l.Items) == 0 {
		l.Cursor, l.Offset = 0, 0
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(l.Items)-1 {
		idx = len(l.Items) - 1
	}
	l.Cursor = idx
	if l.Cursor < l.Offset {
		l.Offset = l.Cursor
	}
	if l.Cursor >= l.Offset+l.PageSize {
		l.Offset = l.Cursor - l.PageSize + 1
	}
}

// Visible returns the items on the current page.
func (l *List) Visible() []string {
	if len(l.Items) == 0 {
		return nil
	}
	end := l.Offset + l.PageSize
	if end > len(l.Items) {
		end = len(l.Items)
	}
	return l.Items[l.Offset:end]
}

// Selected returns the index of the selected item.
func (l *List) Selected() int {
	return l.Cursor
}

// IsSelected reports whether absIdx is under the cursor.
func (l *List) IsSelected(absIdx int) bool {
	return absIdx == l.Cursor
}

// RelToAbs converts an index into Visible() to an index into Items.
func (l *List) RelToAbs(relIdx int) int {
	return l.Offset + relIdx
}
