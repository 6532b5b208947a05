package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTUIWithoutTerminalReturnsError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	// go test never attaches a terminal to stdin.
	err := runTUI(newRoot())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cardgraph add")
}

func TestRootRegistersCommands(t *testing.T) {
	root := newRoot()
	for _, name := range []string{"topics", "sources", "import", "add"} {
		found, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, found.Name())
	}
	for _, flag := range []string{"db", "log-level", "log-file", "gemini-model", "theme"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestRootRejectsArgs(t *testing.T) {
	root := newRoot()
	root.SetArgs([]string{"stray"})
	root.SetOut(&bytes.Buffer{})
	assert.Error(t, root.Execute())
}

func TestMainHelpFlagDoesNotExit(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"cardgraph", "--help"}
	defer func() { os.Args = oldArgs }()

	// main() should return normally for help (no os.Exit).
	main()
}
