// Package search provides full-text content search over notes through an
// in-memory sqlite index. The index lives for a single invocation: it is
// built from a fresh walk and discarded when the process exits.
package search

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mattsolo1/noxe/pkg/models"
	"github.com/mattsolo1/noxe/pkg/notedir"
)

// Index is an in-memory full-text index over note contents.
type Index struct {
	db     *sql.DB
	useFTS bool
}

// Result is one content-search hit.
type Result struct {
	// Path is the note entry's path (the directory for dir-notes).
	Path string
	// Snippet is a short highlighted excerpt, empty without FTS5.
	Snippet string
}

// NewIndex opens an empty in-memory index, preferring FTS5 and falling
// back to LIKE matching when the module is unavailable.
func NewIndex() (*Index, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open search index: %w", err)
	}

	idx := &Index{db: db}
	if err := idx.init(); err != nil {
		db.Close()
		return nil, err
	}
	return idx, nil
}

func (idx *Index) init() error {
	idx.useFTS = idx.checkFTS5Support()

	if idx.useFTS {
		_, err := idx.db.Exec(`
			CREATE VIRTUAL TABLE notes_fts USING fts5(
				path UNINDEXED,
				content,
				tokenize = 'porter unicode61'
			)`)
		if err == nil {
			return nil
		}
		idx.useFTS = false
	}

	_, err := idx.db.Exec(`CREATE TABLE notes_plain (path TEXT PRIMARY KEY, content TEXT)`)
	if err != nil {
		return fmt.Errorf("create search schema: %w", err)
	}
	return nil
}

func (idx *Index) checkFTS5Support() bool {
	if _, err := idx.db.Exec("CREATE VIRTUAL TABLE fts5_probe USING fts5(content)"); err != nil {
		return false
	}
	_, _ = idx.db.Exec("DROP TABLE fts5_probe")
	return true
}

// Close releases the in-memory database.
func (idx *Index) Close() error {
	return idx.db.Close()
}

// AddEntries reads each entry's content file and indexes it. Dir-notes are
// indexed under the directory path but read from their main file.
func (idx *Index) AddEntries(entries []*models.Entry) error {
	for _, e := range entries {
		contentPath, err := notedir.NotePath(e.Path)
		if err != nil {
			// A dir-note cannot reach here without a main file; file-notes
			// resolve to themselves.
			return err
		}
		data, err := os.ReadFile(contentPath)
		if err != nil {
			return fmt.Errorf("read note %q: %w", contentPath, err)
		}
		if err := idx.add(e.Path, string(data)); err != nil {
			return err
		}
	}
	return nil
}

func (idx *Index) add(path, content string) error {
	var err error
	if idx.useFTS {
		_, err = idx.db.Exec("INSERT INTO notes_fts (path, content) VALUES (?, ?)", path, content)
	} else {
		_, err = idx.db.Exec("INSERT INTO notes_plain (path, content) VALUES (?, ?)", path, content)
	}
	if err != nil {
		return fmt.Errorf("index note %q: %w", path, err)
	}
	return nil
}

// Search returns up to limit notes whose content matches query, best first.
func (idx *Index) Search(query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 50
	}

	var (
		rows *sql.Rows
		err  error
	)
	if idx.useFTS {
		rows, err = idx.db.Query(`
			SELECT path, snippet(notes_fts, 1, '', '', '...', 16)
			FROM notes_fts
			WHERE notes_fts MATCH ?
			ORDER BY rank
			LIMIT ?`, query, limit)
	} else {
		rows, err = idx.db.Query(`
			SELECT path, ''
			FROM notes_plain
			WHERE content LIKE ?
			ORDER BY path
			LIMIT ?`, "%"+query+"%", limit)
	}
	if err != nil {
		return nil, fmt.Errorf("content search %q: %w", query, err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.Path, &r.Snippet); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
