package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitrone/cardgraph/internal/authoring"
	"github.com/gravitrone/cardgraph/internal/domain"
)

// TopicsCmd returns the `cardgraph topics` command group.
func TopicsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topics",
		Short: "Manage topics",
	}
	cmd.AddCommand(topicsListCmd())
	cmd.AddCommand(topicsAddCmd())
	return cmd
}

func topicsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List topics as a tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd, func(env *Env) error {
				topics, err := env.Store.ListTopics()
				if err != nil {
					return fmt.Errorf("list topics: %w", err)
				}
				out := cmd.OutOrStdout()
				if len(topics) == 0 {
					fmt.Fprintln(out, "no topics yet")
					return nil
				}
				for i, label := range authoring.TopicLabels(topics) {
					fmt.Fprintf(out, "  %4d  %s\n", topics[i].ID, label)
				}
				return nil
			})
		},
	}
}

func topicsAddCmd() *cobra.Command {
	var parent int64
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, func(env *Env) error {
				var parentID *domain.TopicID
				if cmd.Flags().Changed("parent") {
					id := domain.TopicID(parent)
					parentID = &id
				}
				id, err := env.Store.CreateTopic(args[0], parentID)
				if err != nil {
					return fmt.Errorf("create topic: %w", err)
				}
				env.Log.Info("topic created", "topic", id, "name", args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "created topic %d\n", id)
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&parent, "parent", 0, "parent topic id")
	return cmd
}
