package models

import (
	"fmt"
	"strings"
	"time"
)

// NoteType identifies the markup language of a note's content file.
type NoteType string

const (
	NoteTypeTypst    NoteType = "typ"
	NoteTypeMarkdown NoteType = "md"
)

// ParseNoteType maps a file extension (without the dot, any case) to a
// NoteType. Only "md" and "typ" are recognized.
func ParseNoteType(ext string) (NoteType, error) {
	switch strings.ToLower(ext) {
	case "typ":
		return NoteTypeTypst, nil
	case "md":
		return NoteTypeMarkdown, nil
	default:
		return "", fmt.Errorf("invalid note type %q", ext)
	}
}

func (t NoteType) String() string {
	return string(t)
}

// MainFileName returns the conventional main-file name for a directory note
// of this type, e.g. "main.typ".
func (t NoteType) MainFileName() string {
	return "main." + string(t)
}

// Kind classifies a filesystem entry inside the note directory.
type Kind string

const (
	// KindFileNote is a single file whose extension is a recognized note type.
	KindFileNote Kind = "file-note"
	// KindDirNote is a directory that directly contains a main.md or main.typ.
	// Its interior is opaque payload, never enumerated.
	KindDirNote Kind = "dir-note"
	// KindCategory is a plain grouping directory with no main file of its own.
	KindCategory Kind = "category"
	// KindUnclassified covers everything else; excluded from all note sets.
	KindUnclassified Kind = "unclassified"
)

// Entry is a classified filesystem entry discovered under the note
// directory root. Entries are computed fresh on every invocation; nothing
// is cached between runs.
type Entry struct {
	// Path is the absolute (or root-joined) path to the entry.
	Path string
	// Rel is the path relative to the note directory root.
	Rel string
	// Name is the final path component.
	Name string
	Kind Kind

	ModTime time.Time
	// CreatedAt mirrors ModTime: Go has no portable birth time, matching
	// how the rest of the tooling treats creation dates.
	CreatedAt time.Time
}

// IsNote reports whether the entry is a file-note or dir-note.
func (e *Entry) IsNote() bool {
	return e.Kind == KindFileNote || e.Kind == KindDirNote
}
