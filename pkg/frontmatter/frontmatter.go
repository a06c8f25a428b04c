// Package frontmatter generates the metadata block placed at the top of a
// newly created note: YAML frontmatter for markdown, a #set document rule
// for typst.
package frontmatter

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mattsolo1/noxe/pkg/models"
)

// Metadata holds the fields written into a note's metadata block.
type Metadata struct {
	Title    string
	Author   string
	Keywords []string
	Date     time.Time
}

// Build renders the metadata block for the given note type.
func (m *Metadata) Build(noteType models.NoteType) string {
	if noteType == models.NoteTypeMarkdown {
		return m.markdown()
	}
	return m.typst()
}

func (m *Metadata) markdown() string {
	var sb strings.Builder

	sb.WriteString("---\n")
	sb.WriteString(fmt.Sprintf("title: %q\n", m.Title))
	if m.Author != "" {
		sb.WriteString(fmt.Sprintf("author: %q\n", m.Author))
	}
	if len(m.Keywords) > 0 {
		sb.WriteString(fmt.Sprintf("keywords: [%s]\n", strings.Join(m.Keywords, ", ")))
	}
	sb.WriteString(fmt.Sprintf("date: %q\n", m.Date.Format("2006-01-02 15:04:05")))
	sb.WriteString("---\n\n")

	return sb.String()
}

func (m *Metadata) typst() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("#set document(title: %q", m.Title))
	if m.Author != "" {
		sb.WriteString(fmt.Sprintf(", author: %q", m.Author))
	}
	if len(m.Keywords) > 0 {
		sb.WriteString(fmt.Sprintf(", keywords: (%s)", strings.Join(m.Keywords, ", ")))
	}
	d := m.Date
	sb.WriteString(fmt.Sprintf(
		", date: datetime(year: %d, month: %d, day: %d, hour: %d, minute: %d, second: %d))\n\n",
		d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute(), d.Second()))

	return sb.String()
}

// DisplayTitle turns a slug-style note name into a human title:
// "api-design_notes" becomes "Api Design Notes". Names that already
// contain spaces are left as typed.
func DisplayTitle(name string) string {
	if strings.ContainsRune(name, ' ') {
		return name
	}
	cleaned := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return cases.Title(language.English).String(cleaned)
}
