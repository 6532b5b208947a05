package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitrone/cardgraph/internal/authoring"
	"github.com/gravitrone/cardgraph/internal/domain"
	"github.com/gravitrone/cardgraph/internal/importer"
)

// ImportCmd returns the `cardgraph import` command.
func ImportCmd() *cobra.Command {
	var (
		topic    int64
		source   int64
		finished bool
	)
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import Q:/A: cards from a text file",
		Long: "Import cards from a text file of blocks like\n\n" +
			"  Q: question\n  A: answer\n  ---\n\n" +
			"into a topic (--topic) or as children of a source (--source).",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := importer.Options{Finished: finished}
			switch {
			case cmd.Flags().Changed("source"):
				opts.Context = authoring.ChildOfSource{Source: domain.SourceID(source)}
			case cmd.Flags().Changed("topic"):
				id := domain.TopicID(topic)
				opts.Topic = &id
			default:
				return errors.New("one of --topic or --source is required")
			}

			entries, err := importer.ParseFile(args[0])
			if err != nil {
				return err
			}
			return withEnv(cmd, func(env *Env) error {
				res := importer.Import(env.Writer(), entries, opts)
				out := cmd.OutOrStdout()
				for _, e := range res.Errors {
					fmt.Fprintf(out, "  skipped: %v\n", e)
				}
				fmt.Fprintf(out, "imported %d of %d cards\n", len(res.Imported), len(entries))
				env.Log.Info("import finished",
					"file", args[0],
					"imported", len(res.Imported),
					"failed", len(res.Errors))
				if len(res.Imported) == 0 && len(res.Errors) > 0 {
					return fmt.Errorf("import failed: %w", res.Errors[0])
				}
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&topic, "topic", 0, "topic id for imported cards")
	cmd.Flags().Int64Var(&source, "source", 0, "import as children of this source")
	cmd.Flags().BoolVar(&finished, "finished", false, "mark imported cards finished")
	cmd.MarkFlagsMutuallyExclusive("topic", "source")
	return cmd
}
