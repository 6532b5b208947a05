package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gravitrone/cardgraph/internal/cmd"
	"github.com/gravitrone/cardgraph/internal/suggest"
	"github.com/gravitrone/cardgraph/internal/ui"
)

func main() {
	if err := newRoot().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "cardgraph",
		Short: "cardgraph - flashcards with a knowledge graph",
		Long:  "cardgraph: write question/answer cards, link them as dependencies of each other, and file them under topics and sources.",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runTUI(c)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.BindFlags(root)

	root.AddCommand(cmd.TopicsCmd())
	root.AddCommand(cmd.SourcesCmd())
	root.AddCommand(cmd.ImportCmd())
	root.AddCommand(cmd.AddCmd())
	return root
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runTUI(c *cobra.Command) error {
	if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
		return fmt.Errorf("the editor needs a terminal; use 'cardgraph add' for scripted input")
	}

	env, err := cmd.Open(c.Flags())
	if err != nil {
		return err
	}
	defer env.Close()

	var suggester suggest.Suggester
	if env.Config.SuggestionsEnabled() {
		g, err := suggest.NewGemini(context.Background(), env.Config.GeminiAPIKey, env.Config.GeminiModel)
		if err != nil {
			env.Log.Warn("answer suggestions disabled", "error", err)
		} else {
			suggester = g
		}
	}

	app, err := ui.NewApp(env.Store, env.Config, suggester, env.Log)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
