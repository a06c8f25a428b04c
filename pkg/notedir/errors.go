package notedir

import "errors"

var (
	// ErrNotFound is returned when a reference or query matches no note.
	ErrNotFound = errors.New("note not found")
	// ErrNoMainFile is returned when a directory was expected to be a note
	// but contains neither main.md nor main.typ.
	ErrNoMainFile = errors.New("no main file found")
	// ErrInvalidNoteType is returned when an extension cannot be mapped to
	// a recognized note type.
	ErrInvalidNoteType = errors.New("invalid note type")
	// ErrAlreadyExists is returned when a creation target is already on disk.
	ErrAlreadyExists = errors.New("note already exists")
	// ErrChoiceOutOfRange is returned when a disambiguation choice does not
	// name a listed candidate.
	ErrChoiceOutOfRange = errors.New("choice out of range")
)
