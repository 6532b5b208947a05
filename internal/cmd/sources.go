package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitrone/cardgraph/internal/domain"
)

// SourcesCmd returns the `cardgraph sources` command group.
func SourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Manage reading sources",
	}
	cmd.AddCommand(sourcesListCmd())
	cmd.AddCommand(sourcesAddCmd())
	return cmd
}

func sourcesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd, func(env *Env) error {
				sources, err := env.Store.ListSources()
				if err != nil {
					return fmt.Errorf("list sources: %w", err)
				}
				out := cmd.OutOrStdout()
				if len(sources) == 0 {
					fmt.Fprintln(out, "no sources yet")
					return nil
				}
				for _, s := range sources {
					fmt.Fprintf(out, "  %4d  %s  (topic %d)\n", s.ID, s.Title, s.Topic)
				}
				return nil
			})
		},
	}
}

func sourcesAddCmd() *cobra.Command {
	var topic int64
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a source under a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, func(env *Env) error {
				id, err := env.Store.CreateSource(args[0], domain.TopicID(topic))
				if err != nil {
					return fmt.Errorf("create source: %w", err)
				}
				env.Log.Info("source created", "source", id, "topic", topic)
				fmt.Fprintf(cmd.OutOrStdout(), "created source %d\n", id)
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&topic, "topic", 0, "topic id the source belongs to")
	_ = cmd.MarkFlagRequired("topic")
	return cmd
}
