package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/cardgraph/internal/authoring"
	"github.com/gravitrone/cardgraph/internal/domain"
	"github.com/gravitrone/cardgraph/internal/storage"
)

// testHome points HOME at a temp dir and returns a database path inside it.
func testHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{"CARDGRAPH_DB_PATH", "CARDGRAPH_LOG_LEVEL", "CARDGRAPH_GEMINI_API_KEY"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return filepath.Join(home, "cards.db")
}

// run executes args against a fresh root mirroring the real one, so flag
// state never leaks between invocations.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := &cobra.Command{Use: "cardgraph", SilenceUsage: true, SilenceErrors: true}
	BindFlags(root)
	root.AddCommand(TopicsCmd(), SourcesCmd(), ImportCmd(), AddCmd())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func openDB(t *testing.T, path string) *storage.Store {
	t.Helper()
	store, err := storage.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestTopicsAddAndList(t *testing.T) {
	db := testHome(t)

	out, err := run(t, "--db", db, "topics", "add", "math")
	require.NoError(t, err)
	assert.Contains(t, out, "created topic 1")

	out, err = run(t, "--db", db, "topics", "add", "algebra", "--parent", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "created topic 2")

	out, err = run(t, "--db", db, "topics", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "math/algebra")
}

func TestTopicsListEmpty(t *testing.T) {
	db := testHome(t)

	out, err := run(t, "--db", db, "topics", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "no topics yet")
}

func TestDBPathFromEnv(t *testing.T) {
	db := testHome(t)
	t.Setenv("CARDGRAPH_DB_PATH", db)

	_, err := run(t, "topics", "add", "history")
	require.NoError(t, err)

	topics, err := openDB(t, db).ListTopics()
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "history", topics[0].Name)
}

func TestSourcesAddRequiresTopic(t *testing.T) {
	db := testHome(t)

	_, err := run(t, "--db", db, "sources", "add", "SICP")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "topic")
}

func TestSourcesAddAndList(t *testing.T) {
	db := testHome(t)

	_, err := run(t, "--db", db, "topics", "add", "cs")
	require.NoError(t, err)
	out, err := run(t, "--db", db, "sources", "add", "Structure and Interpretation", "--topic", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "created source 1")

	out, err = run(t, "--db", db, "sources", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Structure and Interpretation")
	assert.Contains(t, out, "(topic 1)")
}

func TestAddPlainNeedsTopic(t *testing.T) {
	db := testHome(t)

	_, err := run(t, "--db", db, "add", "-q", "What is a monad?")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--topic")
}

func TestAddLinkedCardInheritsTopic(t *testing.T) {
	db := testHome(t)

	_, err := run(t, "--db", db, "topics", "add", "math")
	require.NoError(t, err)
	_, err = run(t, "--db", db, "topics", "add", "art")
	require.NoError(t, err)

	out, err := run(t, "--db", db, "add", "-q", "What is a group?", "-a", "A monoid with inverses", "--topic", "1", "--finished")
	require.NoError(t, err)
	assert.Contains(t, out, "created card 1")

	// --topic is ignored for linked cards.
	out, err = run(t, "--db", db, "add", "-q", "What is a monoid?", "--dependency-of", "1", "--topic", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "created card 2")

	store := openDB(t, db)
	group, err := store.FetchCard(1)
	require.NoError(t, err)
	assert.Equal(t, domain.Finished, group.Status)
	assert.Equal(t, []domain.CardID{2}, group.Dependencies)

	monoid, err := store.FetchCard(2)
	require.NoError(t, err)
	assert.Equal(t, domain.TopicID(1), monoid.Topic)
	assert.Equal(t, domain.Unfinished, monoid.Status)
	assert.Equal(t, []domain.CardID{1}, monoid.Dependents)
}

func TestAddDependencyOfMissingCard(t *testing.T) {
	db := testHome(t)

	_, err := run(t, "--db", db, "add", "-q", "orphan", "--dependency-of", "42")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddDependencyOfChecksEveryCard(t *testing.T) {
	db := testHome(t)
	_, err := run(t, "--db", db, "topics", "add", "math")
	require.NoError(t, err)
	_, err = run(t, "--db", db, "add", "-q", "What is a group?", "--topic", "1")
	require.NoError(t, err)

	_, err = run(t, "--db", db, "add", "-q", "What is a monoid?", "--dependency-of", "1,999")
	require.Error(t, err)
	var cerr *authoring.ConstructionError
	assert.ErrorAs(t, err, &cerr)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	cards, err := openDB(t, db).ListCards(10)
	require.NoError(t, err)
	assert.Len(t, cards, 1)
}

func TestAddLinkFlagsAreExclusive(t *testing.T) {
	db := testHome(t)

	_, err := run(t, "--db", db, "add", "-q", "x", "--dependency-of", "1", "--dependent-of", "2")
	require.Error(t, err)
}

func TestImportIntoTopic(t *testing.T) {
	db := testHome(t)
	_, err := run(t, "--db", db, "topics", "add", "bio")
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "cards.txt")
	content := "Q: What is a cell?\nA: The unit of life\n---\nQ: What is DNA?\nA: A molecule\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0600))

	out, err := run(t, "--db", db, "import", file, "--topic", "1", "--finished")
	require.NoError(t, err)
	assert.Contains(t, out, "imported 2 of 2 cards")

	cards, err := openDB(t, db).ListCards(10)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	for _, c := range cards {
		assert.Equal(t, domain.Finished, c.Status)
	}
}

func TestImportAsSourceChildren(t *testing.T) {
	db := testHome(t)
	_, err := run(t, "--db", db, "topics", "add", "bio")
	require.NoError(t, err)
	_, err = run(t, "--db", db, "sources", "add", "Campbell Biology", "--topic", "1")
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "cards.txt")
	require.NoError(t, os.WriteFile(file, []byte("Q: What is ATP?\nA: Energy currency\n"), 0600))

	_, err = run(t, "--db", db, "import", file, "--source", "1")
	require.NoError(t, err)

	card, err := openDB(t, db).FetchCard(1)
	require.NoError(t, err)
	require.NotNil(t, card.Source)
	assert.Equal(t, domain.SourceID(1), *card.Source)
	assert.Equal(t, domain.TopicID(1), card.Topic)
}

func TestImportNeedsDestination(t *testing.T) {
	testHome(t)

	_, err := run(t, "import", "whatever.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--topic or --source")
}

func TestImportMissingSourceFails(t *testing.T) {
	db := testHome(t)
	file := filepath.Join(t.TempDir(), "cards.txt")
	require.NoError(t, os.WriteFile(file, []byte("Q: a\nA: b\n"), 0600))

	out, err := run(t, "--db", db, "import", file, "--source", "9")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, out, "skipped: line 1")
}

func TestUnknownSubcommand(t *testing.T) {
	testHome(t)

	_, err := run(t, "nope")
	require.Error(t, err)
}
