package notedir

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/noxe/pkg/models"
)

// Chooser picks one candidate when a reference matches several notes.
// Candidates are presented 1-based in discovery order; implementations
// return the chosen entry or an error. The console implementation blocks
// on stdin, so automated callers inject their own.
type Chooser func(candidates []*models.Entry) (*models.Entry, error)

// Resolver maps user-typed note references to concrete entries under a
// fixed note directory root.
type Resolver struct {
	Root    string
	Choose  Chooser
	Exclude map[string]struct{}
}

// NewResolver returns a Resolver that prompts on the console for
// disambiguation.
func NewResolver(root string) *Resolver {
	return &Resolver{Root: root, Choose: ConsoleChooser(os.Stdin, os.Stderr)}
}

// Resolve maps reference to the path of a concrete note. A reference with
// more than one path component is taken as a filesystem path and validated
// directly; a bare name is searched case-insensitively among file-notes and
// dir-notes under the root.
func (r *Resolver) Resolve(reference string) (string, error) {
	if !isBareName(reference) {
		if _, err := os.Stat(reference); err != nil {
			return "", fmt.Errorf("%w: %q: %v", ErrNotFound, reference, err)
		}
		return reference, nil
	}

	// A bare name matches the entry name exactly or with its extension
	// stripped, so "Foo" finds Foo.md as well as a dir-note named Foo.
	matches, err := Walk(r.Root, WalkOptions{
		FileNotes:    true,
		DirNotes:     true,
		ExcludeNames: r.Exclude,
	}, func(name string) bool {
		if strings.EqualFold(name, reference) {
			return true
		}
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		return strings.EqualFold(stem, reference)
	})
	if err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{"reference": reference, "matches": len(matches)}).
		Debug("resolved note reference")

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: no note %q in %q", ErrNotFound, reference, r.Root)
	case 1:
		return matches[0].Path, nil
	default:
		choose := r.Choose
		if choose == nil {
			choose = ConsoleChooser(os.Stdin, os.Stderr)
		}
		entry, err := choose(matches)
		if err != nil {
			return "", err
		}
		return entry.Path, nil
	}
}

// ResolveNoteFile resolves a reference all the way to its content file:
// directory notes are mapped to their main file.
func (r *Resolver) ResolveNoteFile(reference string) (string, error) {
	path, err := r.Resolve(reference)
	if err != nil {
		return "", err
	}
	return NotePath(path)
}

// isBareName reports whether the reference is a single path component as
// typed; "./Foo.md" is a path, "Foo.md" a name.
func isBareName(reference string) bool {
	if reference == "" || reference == "." {
		return false
	}
	return !strings.ContainsRune(reference, '/') &&
		!strings.ContainsRune(reference, filepath.Separator)
}

// ConsoleChooser lists the candidates on w and reads a 1-based choice from
// in. Empty or unparseable input defaults to the first candidate; a number
// outside the listed range fails with ErrChoiceOutOfRange.
func ConsoleChooser(in io.Reader, w io.Writer) Chooser {
	return func(candidates []*models.Entry) (*models.Entry, error) {
		fmt.Fprintln(w, "Multiple matches found:")
		for i, c := range candidates {
			fmt.Fprintf(w, "%d. %s\n", i+1, c.Path)
		}
		fmt.Fprint(w, "Enter the number of the note (default is 1): ")

		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read choice: %w", err)
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			choice = 1
		}
		if choice < 1 || choice > len(candidates) {
			return nil, fmt.Errorf("%w: %d of %d", ErrChoiceOutOfRange, choice, len(candidates))
		}
		return candidates[choice-1], nil
	}
}
