package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitrone/cardgraph/internal/authoring"
	"github.com/gravitrone/cardgraph/internal/domain"
)

// AddCmd returns the `cardgraph add` command, a non-interactive card editor.
func AddCmd() *cobra.Command {
	var (
		question     string
		answer       string
		topic        int64
		source       int64
		dependencyOf []int64
		dependentOf  []int64
		finished     bool
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a card without opening the TUI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := authoring.Draft{
				Context:  authoring.Plain{},
				Question: question,
				Answer:   answer,
				Finished: finished,
			}
			switch {
			case cmd.Flags().Changed("source"):
				d.Context = authoring.ChildOfSource{Source: domain.SourceID(source)}
			case len(dependencyOf) > 0:
				d.Context = authoring.DependencyOf{Cards: cardIDs(dependencyOf)}
			case len(dependentOf) > 0:
				d.Context = authoring.DependentOf{Cards: cardIDs(dependentOf)}
			}
			if cmd.Flags().Changed("topic") {
				id := domain.TopicID(topic)
				d.Topic = &id
			}

			return withEnv(cmd, func(env *Env) error {
				id, err := env.Writer().WriteDraft(d)
				if errors.Is(err, authoring.ErrNoTopicSelected) {
					return errors.New("a plain card needs --topic")
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created card %d\n", id)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&question, "question", "q", "", "card question")
	cmd.Flags().StringVarP(&answer, "answer", "a", "", "card answer")
	cmd.Flags().Int64Var(&topic, "topic", 0, "topic id (plain cards only)")
	cmd.Flags().Int64Var(&source, "source", 0, "add as a child of this source")
	cmd.Flags().Int64SliceVar(&dependencyOf, "dependency-of", nil, "card ids the new card is a dependency of")
	cmd.Flags().Int64SliceVar(&dependentOf, "dependent-of", nil, "card ids the new card depends on")
	cmd.Flags().BoolVar(&finished, "finished", false, "mark the card finished")
	_ = cmd.MarkFlagRequired("question")
	cmd.MarkFlagsMutuallyExclusive("source", "dependency-of", "dependent-of")
	return cmd
}

func cardIDs(ids []int64) []domain.CardID {
	out := make([]domain.CardID, len(ids))
	for i, id := range ids {
		out[i] = domain.CardID(id)
	}
	return out
}
