package notedir

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/noxe/pkg/models"
)

// Predicate filters entries by their final path component.
type Predicate func(name string) bool

// MatchAll accepts every entry.
func MatchAll(string) bool { return true }

// WalkOptions selects which entry kinds a walk emits and which top-level
// names it skips outright.
type WalkOptions struct {
	FileNotes  bool
	DirNotes   bool
	Categories bool

	// ExcludeNames are directory names skipped entirely (not emitted, not
	// descended into). Used to hide freshly created template directories
	// from a follow-up name search; threaded explicitly so no state leaks
	// between calls.
	ExcludeNames map[string]struct{}
}

// Walk traverses root depth-first in pre-order, classifies every entry
// below it (min-depth 1), and returns the entries whose kind was requested
// and whose name satisfies pred. Directory-note subtrees are never entered:
// the dir-note itself is the note and its interior is opaque. Traversal
// order is whatever the filesystem reports; callers that need determinism
// sort afterwards. Any I/O error aborts the whole walk.
func Walk(root string, opts WalkOptions, pred Predicate) ([]*models.Entry, error) {
	if pred == nil {
		pred = MatchAll
	}
	if err := statRoot(root); err != nil {
		return nil, err
	}

	var entries []*models.Entry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == root {
			return nil
		}
		if _, skip := opts.ExcludeNames[d.Name()]; skip && d.IsDir() {
			return fs.SkipDir
		}

		kind := Classify(path)
		logrus.WithFields(logrus.Fields{"path": path, "kind": kind}).Trace("classified entry")

		emit := func() error {
			if !pred(d.Name()) {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return err
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			entries = append(entries, &models.Entry{
				Path:      path,
				Rel:       rel,
				Name:      d.Name(),
				Kind:      kind,
				ModTime:   info.ModTime(),
				CreatedAt: info.ModTime(),
			})
			return nil
		}

		switch kind {
		case models.KindFileNote:
			if opts.FileNotes {
				return emit()
			}
		case models.KindDirNote:
			// The interior of a dir-note is payload, never enumerated.
			if opts.DirNotes {
				if err := emit(); err != nil {
					return err
				}
			}
			return fs.SkipDir
		case models.KindCategory:
			// Categories are transparent: emit if asked, keep descending.
			if opts.Categories {
				return emit()
			}
		case models.KindUnclassified:
			// Skipped, but traversal continues into unclassified directories.
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %q: %w", root, err)
	}
	return entries, nil
}

// WalkNotes is the common search configuration: file-notes and dir-notes,
// no categories.
func WalkNotes(root string, pred Predicate) ([]*models.Entry, error) {
	return Walk(root, WalkOptions{FileNotes: true, DirNotes: true}, pred)
}

// statRoot validates that root exists and is a directory.
func statRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("note directory %q: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("note directory %q is not a directory", root)
	}
	return nil
}
