// Package service orchestrates the note-management operations behind the
// CLI commands: creation, preview/edit handoff, search and listing.
package service

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/noxe/pkg/frontmatter"
	"github.com/mattsolo1/noxe/pkg/models"
	"github.com/mattsolo1/noxe/pkg/notedir"
	"github.com/mattsolo1/noxe/pkg/search"
	"github.com/mattsolo1/noxe/pkg/template"
)

// Config holds service configuration.
type Config struct {
	// NoteDir is the note directory root scoping all traversal and
	// resolution; immutable for the invocation.
	NoteDir string
	Author  string
	// DefaultType is used when a note path carries no extension.
	DefaultType models.NoteType
	// TemplatePath optionally points at a YAML note template.
	TemplatePath string

	PreviewTypst    []string
	PreviewMarkdown []string
	Editor          []string
}

// Service is the core note service.
type Service struct {
	Config   *Config
	Resolver *notedir.Resolver

	run Runner
	now func() time.Time
}

// New creates a note service. The resolver prompts on the console; tests
// swap in their own Chooser and Runner.
func New(cfg *Config) *Service {
	if cfg.DefaultType == "" {
		cfg.DefaultType = models.NoteTypeTypst
	}
	return &Service{
		Config:   cfg,
		Resolver: notedir.NewResolver(cfg.NoteDir),
		run:      ExecRunner,
		now:      time.Now,
	}
}

type createOptions struct {
	noteType     models.NoteType
	singleFile   bool
	keywords     []string
	author       string
	withMetadata bool
	templatePath string
}

// CreateOption customizes note creation.
type CreateOption func(*createOptions)

// OfType overrides the note type.
func OfType(t models.NoteType) CreateOption {
	return func(o *createOptions) { o.noteType = t }
}

// AsSingleFile creates a file-note instead of a directory note.
func AsSingleFile() CreateOption {
	return func(o *createOptions) { o.singleFile = true }
}

// WithKeywords sets metadata keywords.
func WithKeywords(keywords []string) CreateOption {
	return func(o *createOptions) { o.keywords = keywords }
}

// WithAuthor overrides the configured author.
func WithAuthor(author string) CreateOption {
	return func(o *createOptions) { o.author = author }
}

// WithoutMetadata skips the generated metadata block.
func WithoutMetadata() CreateOption {
	return func(o *createOptions) { o.withMetadata = false }
}

// WithTemplateFile overrides the configured template file.
func WithTemplateFile(path string) CreateOption {
	return func(o *createOptions) { o.templatePath = path }
}

// CreateNote creates a note at notePath and returns the path of its main
// content file. An extension on notePath forces a single file of that
// type. Existing targets fail with ErrAlreadyExists before any mutation.
func (s *Service) CreateNote(notePath string, options ...CreateOption) (string, error) {
	opts := &createOptions{
		noteType:     s.Config.DefaultType,
		author:       s.Config.Author,
		withMetadata: true,
		templatePath: s.Config.TemplatePath,
	}
	for _, opt := range options {
		opt(opts)
	}

	// An extension implies a single-file note of the inferred type.
	if ext := strings.TrimPrefix(filepath.Ext(notePath), "."); ext != "" {
		if t, err := models.ParseNoteType(ext); err == nil {
			opts.noteType = t
			opts.singleFile = true
		}
	}

	name := strings.TrimSuffix(filepath.Base(notePath), filepath.Ext(notePath))
	if name == "" {
		return "", fmt.Errorf("cannot derive a note name from %q", notePath)
	}

	if _, err := os.Stat(notePath); err == nil {
		return "", fmt.Errorf("%w: %q", notedir.ErrAlreadyExists, notePath)
	}

	mainPath := notePath
	if !opts.singleFile {
		mainPath = filepath.Join(notePath, opts.noteType.MainFileName())
	}

	var content strings.Builder
	if opts.withMetadata {
		meta := &frontmatter.Metadata{
			Title:    frontmatter.DisplayTitle(name),
			Author:   opts.author,
			Keywords: opts.keywords,
			Date:     s.now(),
		}
		content.WriteString(meta.Build(opts.noteType))
	}

	tpl := template.Default()
	if opts.templatePath != "" {
		loaded, err := template.Load(opts.templatePath)
		if err != nil {
			return "", err
		}
		tpl = loaded
	}

	if !opts.singleFile {
		if err := os.MkdirAll(notePath, 0755); err != nil {
			return "", fmt.Errorf("create note directory %q: %w", notePath, err)
		}
		if err := tpl.Materialize(notePath); err != nil {
			return "", err
		}
		// Hide the skeleton directories from name searches made later in
		// this invocation.
		s.Resolver.Exclude = tpl.TopLevelDirs()
	}

	content.WriteString(tpl.MainBody(opts.noteType.MainFileName()))

	if err := os.WriteFile(mainPath, []byte(content.String()), 0644); err != nil {
		return "", fmt.Errorf("create main file %q: %w", mainPath, err)
	}

	logrus.WithFields(logrus.Fields{"path": notePath, "type": opts.noteType}).
		Debug("note created")
	return mainPath, nil
}

// PreviewNote resolves ref and hands the note's content file to the
// configured preview program for its type.
func (s *Service) PreviewNote(ref string) error {
	path, err := s.Resolver.ResolveNoteFile(ref)
	if err != nil {
		return err
	}
	noteType, err := notedir.NoteTypeOf(path)
	if err != nil {
		return err
	}

	var argv []string
	switch noteType {
	case models.NoteTypeTypst:
		argv = s.Config.PreviewTypst
		if len(argv) == 0 {
			argv = []string{"tinymist", "preview", "--root", filepath.Dir(path)}
		}
	case models.NoteTypeMarkdown:
		argv = s.Config.PreviewMarkdown
		if len(argv) == 0 {
			argv = []string{"glow"}
		}
	}

	return s.run(argv, path)
}

// EditNote resolves ref and opens the note's content file in the
// configured editor.
func (s *Service) EditNote(ref string) error {
	path, err := s.Resolver.ResolveNoteFile(ref)
	if err != nil {
		return err
	}

	argv := s.Config.Editor
	if len(argv) == 0 {
		argv = []string{"vim"}
	}
	return s.run(argv, path)
}

// SearchNames finds file-notes and dir-notes whose name matches query as a
// case-insensitive regular expression. Zero matches is an error.
func (s *Service) SearchNames(query string) ([]*models.Entry, error) {
	pattern, err := regexp.Compile("(?i)" + query)
	if err != nil {
		return nil, fmt.Errorf("invalid search query %q: %w", query, err)
	}

	entries, err := notedir.WalkNotes(s.Config.NoteDir, pattern.MatchString)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no note matching %q in %q", notedir.ErrNotFound, query, s.Config.NoteDir)
	}
	return entries, nil
}

// SearchContent builds a throwaway full-text index over every note's
// content and queries it. Nothing persists past the call.
func (s *Service) SearchContent(query string, limit int) ([]search.Result, error) {
	entries, err := notedir.WalkNotes(s.Config.NoteDir, nil)
	if err != nil {
		return nil, err
	}

	idx, err := search.NewIndex()
	if err != nil {
		return nil, err
	}
	defer idx.Close()

	if err := idx.AddEntries(entries); err != nil {
		return nil, err
	}
	results, err := idx.Search(query, limit)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: no note content matching %q in %q", notedir.ErrNotFound, query, s.Config.NoteDir)
	}
	return results, nil
}

// ListNotes returns every file-note and dir-note under the root, or every
// category when categories is set.
func (s *Service) ListNotes(categories bool) ([]*models.Entry, error) {
	opts := notedir.WalkOptions{FileNotes: true, DirNotes: true}
	if categories {
		opts = notedir.WalkOptions{Categories: true}
	}
	return notedir.Walk(s.Config.NoteDir, opts, nil)
}
