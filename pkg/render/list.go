package render

import (
	"io"
	"path/filepath"
	"sort"

	"github.com/mattsolo1/noxe/pkg/models"
)

// SortMode selects the ordering of a flat listing.
type SortMode string

const (
	SortNone     SortMode = ""
	SortName     SortMode = "name"
	SortCreated  SortMode = "created"  // newest first
	SortModified SortMode = "modified" // newest first
	SortCategory SortMode = "category"
)

// SortEntries orders entries in place. SortNone and SortCategory leave the
// discovery order untouched.
func SortEntries(entries []*models.Entry, mode SortMode) {
	switch mode {
	case SortName:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Name < entries[j].Name
		})
	case SortCreated:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		})
	case SortModified:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].ModTime.After(entries[j].ModTime)
		})
	}
}

// Truncate keeps only the first n entries; n <= 0 keeps everything.
func Truncate(entries []*models.Entry, n int) []*models.Entry {
	if n > 0 && len(entries) > n {
		return entries[:n]
	}
	return entries
}

// Paths projects entries to their root-relative paths, or to bare names
// when terse is set.
func Paths(entries []*models.Entry, terse bool) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if terse {
			out = append(out, e.Name)
		} else {
			out = append(out, e.Rel)
		}
	}
	return out
}

// ByCategory renders one tree per category, categories in sorted order.
// An entry's category is the lowest directory above it; entries at the
// root fall under "Uncategorized".
func ByCategory(w io.Writer, entries []*models.Entry) {
	groups := map[string][]string{}
	for _, e := range entries {
		category := "Uncategorized"
		if parent := filepath.Dir(e.Rel); parent != "." {
			category = filepath.Base(parent)
		}
		groups[category] = append(groups[category], filepath.Join(category, e.Name))
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		Tree(w, groups[name])
	}
}
