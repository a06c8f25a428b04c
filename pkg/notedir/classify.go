// Package notedir implements the note directory model: classification of
// filesystem entries into file-notes, directory-notes and categories, a
// pruning tree walker, and name/path resolution of note references.
package notedir

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattsolo1/noxe/pkg/models"
)

// mainFileNames in priority order. When a directory carries both, main.typ
// wins, matching the default note type.
var mainFileNames = []string{"main.typ", "main.md"}

// Classify decides which Kind a path is. The decision depends only on the
// entry's own type and, for directories, its immediate children; it never
// looks at ancestors or traversal state.
func Classify(path string) models.Kind {
	info, err := os.Stat(path)
	if err != nil {
		return models.KindUnclassified
	}

	if info.IsDir() {
		if hasMainFile(path) {
			return models.KindDirNote
		}
		return models.KindCategory
	}

	if _, err := models.ParseNoteType(ext(path)); err == nil {
		return models.KindFileNote
	}
	return models.KindUnclassified
}

// MainFile returns the content file for a directory note, preferring
// main.typ over main.md when both exist. ErrNoMainFile when neither does.
func MainFile(dir string) (string, error) {
	for _, name := range mainFileNames {
		p := filepath.Join(dir, name)
		if isRegular(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w in %q", ErrNoMainFile, dir)
}

// NotePath maps an entry to the file holding its content: the entry itself
// for a file, its main file for a directory.
func NotePath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %q: %w", path, err)
	}
	if info.IsDir() {
		return MainFile(path)
	}
	return path, nil
}

// NoteTypeOf parses the note type from a content file's extension.
func NoteTypeOf(path string) (models.NoteType, error) {
	t, err := models.ParseNoteType(ext(path))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidNoteType, path)
	}
	return t, nil
}

func hasMainFile(dir string) bool {
	for _, name := range mainFileNames {
		if isRegular(filepath.Join(dir, name)) {
			return true
		}
	}
	return false
}

func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ext returns the path's extension without the leading dot.
func ext(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}
