package authoring

import "fmt"

// SourceTitleLen is how many runes of a source title the prompt shows.
const SourceTitleLen = 15

// PromptLabel returns the header shown above the editor for cc. Contexts
// that reference cards or sources read them through l; a missing
// reference is an error, never a fallback label.
func PromptLabel(cc CreationContext, l Lookup) (string, error) {
	switch c := cc.(type) {
	case Plain:
		return "Add new card", nil
	case DependencyOf:
		if len(c.Cards) == 0 {
			return "", errNoCards
		}
		card, err := l.FetchCard(c.Cards[0])
		if err != nil {
			return "", err
		}
		return "Add new dependency for: " + card.Question, nil
	case DependentOf:
		if len(c.Cards) == 0 {
			return "", errNoCards
		}
		card, err := l.FetchCard(c.Cards[0])
		if err != nil {
			return "", err
		}
		return "Add new dependent of: " + card.Question, nil
	case ChildOfSource:
		title, err := l.FetchSourceTitle(c.Source, SourceTitleLen)
		if err != nil {
			return "", err
		}
		return "Add new child of source: " + title, nil
	default:
		panic(fmt.Sprintf("authoring: unknown creation context %T", cc))
	}
}
