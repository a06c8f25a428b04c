package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/noxe/pkg/models"
	"github.com/mattsolo1/noxe/pkg/notedir"
)

func searchFixture(t *testing.T) []*models.Entry {
	t.Helper()
	root := t.TempDir()

	write := func(rel, content string) {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	write("Databases.md", "# Databases\n\nNotes about sqlite and postgres.\n")
	write("Cooking.md", "# Cooking\n\nRecipes and ingredients.\n")
	write("thesis/main.typ", "= Thesis\n\nDistributed consensus algorithms.\n")

	entries, err := notedir.WalkNotes(root, nil)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	return entries
}

func TestIndexSearch(t *testing.T) {
	entries := searchFixture(t)

	idx, err := NewIndex()
	require.NoError(t, err)
	defer idx.Close()

	require.NoError(t, idx.AddEntries(entries))

	results, err := idx.Search("sqlite", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Path, "Databases.md")
}

func TestIndexSearchDirNoteContent(t *testing.T) {
	entries := searchFixture(t)

	idx, err := NewIndex()
	require.NoError(t, err)
	defer idx.Close()

	require.NoError(t, idx.AddEntries(entries))

	// A dir-note hit reports the directory, not the main file inside it.
	results, err := idx.Search("consensus", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "thesis", filepath.Base(results[0].Path))
}

func TestIndexSearchNoMatches(t *testing.T) {
	entries := searchFixture(t)

	idx, err := NewIndex()
	require.NoError(t, err)
	defer idx.Close()

	require.NoError(t, idx.AddEntries(entries))

	results, err := idx.Search("nonexistentword", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestIndexSearchLimit(t *testing.T) {
	entries := searchFixture(t)

	idx, err := NewIndex()
	require.NoError(t, err)
	defer idx.Close()

	require.NoError(t, idx.AddEntries(entries))

	results, err := idx.Search("the", 1)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(results), 1)
}
