package authoring

import tea "github.com/charmbracelet/bubbletea"

// Focus is the editor region that receives key input.
type Focus int

const (
	FocusQuestion Focus = iota
	FocusAnswer
	FocusTopic
	FocusGraphPicker
)

func (f Focus) String() string {
	switch f {
	case FocusAnswer:
		return "answer"
	case FocusTopic:
		return "topic"
	case FocusGraphPicker:
		return "graph picker"
	default:
		return "question"
	}
}

// Direction is a navigation input between editor regions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

type move struct {
	from Focus
	dir  Direction
}

// transitions is the whole navigation table. Pairs not listed are no-ops.
var transitions = map[move]Focus{
	{FocusQuestion, Right}: FocusTopic,
	{FocusQuestion, Down}:  FocusAnswer,
	{FocusAnswer, Up}:      FocusQuestion,
	{FocusAnswer, Right}:   FocusTopic,
	{FocusTopic, Left}:     FocusQuestion,
}

// next returns the focus reached from f by moving in dir.
func next(f Focus, dir Direction) Focus {
	if to, ok := transitions[move{f, dir}]; ok {
		return to
	}
	return f
}

// navKeys move focus between regions. Plain arrows stay with the focused
// text area or list.
var navKeys = map[string]Direction{
	"alt+up":    Up,
	"alt+k":     Up,
	"alt+down":  Down,
	"alt+j":     Down,
	"alt+left":  Left,
	"alt+h":     Left,
	"alt+right": Right,
	"alt+l":     Right,
}

// DirectionForKey reports whether msg is a navigation key.
func DirectionForKey(msg tea.KeyMsg) (Direction, bool) {
	dir, ok := navKeys[msg.String()]
	return dir, ok
}
