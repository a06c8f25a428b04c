package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mattsolo1/noxe/pkg/models"
)

func entry(rel string, mod time.Time) *models.Entry {
	name := rel
	if i := strings.LastIndex(rel, "/"); i >= 0 {
		name = rel[i+1:]
	}
	return &models.Entry{
		Rel:       rel,
		Name:      name,
		ModTime:   mod,
		CreatedAt: mod,
	}
}

func TestSortEntriesByName(t *testing.T) {
	now := time.Now()
	entries := []*models.Entry{
		entry("x/c.md", now),
		entry("y/a.md", now),
		entry("z/b.md", now),
	}

	SortEntries(entries, SortName)
	assert.Equal(t, []string{"a.md", "b.md", "c.md"},
		[]string{entries[0].Name, entries[1].Name, entries[2].Name})
}

func TestSortEntriesByModifiedNewestFirst(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	entries := []*models.Entry{
		entry("old.md", base),
		entry("new.md", base.Add(2*time.Hour)),
		entry("mid.md", base.Add(time.Hour)),
	}

	SortEntries(entries, SortModified)
	assert.Equal(t, "new.md", entries[0].Name)
	assert.Equal(t, "old.md", entries[2].Name)
}

func TestSortEntriesNoneKeepsOrder(t *testing.T) {
	now := time.Now()
	entries := []*models.Entry{entry("b.md", now), entry("a.md", now)}
	SortEntries(entries, SortNone)
	assert.Equal(t, "b.md", entries[0].Name)
}

func TestTruncate(t *testing.T) {
	now := time.Now()
	entries := []*models.Entry{entry("a.md", now), entry("b.md", now), entry("c.md", now)}

	assert.Len(t, Truncate(entries, 2), 2)
	assert.Len(t, Truncate(entries, 0), 3)
	assert.Len(t, Truncate(entries, 10), 3)
}

func TestPaths(t *testing.T) {
	now := time.Now()
	entries := []*models.Entry{entry("work/a.md", now), entry("b.md", now)}

	assert.Equal(t, []string{"work/a.md", "b.md"}, Paths(entries, false))
	assert.Equal(t, []string{"a.md", "b.md"}, Paths(entries, true))
}

func TestByCategory(t *testing.T) {
	now := time.Now()
	entries := []*models.Entry{
		entry("work/deep/Report.md", now),
		entry("home/Todo.md", now),
		entry("Loose.md", now),
	}

	var sb strings.Builder
	ByCategory(&sb, entries)
	out := sb.String()

	// Categories appear in sorted order ("U" < "d" < "h"), each with its
	// own tree.
	deepIdx := strings.Index(out, "deep")
	homeIdx := strings.Index(out, "home")
	uncatIdx := strings.Index(out, "Uncategorized")
	assert.True(t, deepIdx >= 0 && homeIdx >= 0 && uncatIdx >= 0, "output: %s", out)
	assert.Less(t, uncatIdx, deepIdx)
	assert.Less(t, deepIdx, homeIdx)
	assert.Contains(t, out, "Report.md")
	assert.Contains(t, out, "Loose.md")
}
