package frontmatter

import (
	"strings"
	"testing"
	"time"

	"github.com/mattsolo1/noxe/pkg/models"
)

var testDate = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func TestBuildMarkdown(t *testing.T) {
	tests := []struct {
		name string
		meta Metadata
		want string
	}{
		{
			name: "all fields",
			meta: Metadata{
				Title:    "Test Note",
				Author:   "Ada",
				Keywords: []string{"kw1", "kw2"},
				Date:     testDate,
			},
			want: "---\n" +
				"title: \"Test Note\"\n" +
				"author: \"Ada\"\n" +
				"keywords: [kw1, kw2]\n" +
				"date: \"2026-03-14 09:26:53\"\n" +
				"---\n\n",
		},
		{
			name: "title and date only",
			meta: Metadata{Title: "Bare", Date: testDate},
			want: "---\n" +
				"title: \"Bare\"\n" +
				"date: \"2026-03-14 09:26:53\"\n" +
				"---\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.meta.Build(models.NoteTypeMarkdown)
			if got != tt.want {
				t.Errorf("Build(md) =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestBuildTypst(t *testing.T) {
	meta := Metadata{
		Title:    "Test Note",
		Author:   "Ada",
		Keywords: []string{"kw1", "kw2"},
		Date:     testDate,
	}
	got := meta.Build(models.NoteTypeTypst)

	if !strings.HasPrefix(got, `#set document(title: "Test Note"`) {
		t.Errorf("missing document title: %q", got)
	}
	for _, part := range []string{
		`author: "Ada"`,
		"keywords: (kw1, kw2)",
		"date: datetime(year: 2026, month: 3, day: 14, hour: 9, minute: 26, second: 53))",
	} {
		if !strings.Contains(got, part) {
			t.Errorf("Build(typ) missing %q in %q", part, got)
		}
	}
}

func TestBuildTypstOmitsEmptyFields(t *testing.T) {
	meta := Metadata{Title: "Solo", Date: testDate}
	got := meta.Build(models.NoteTypeTypst)

	if strings.Contains(got, "author") || strings.Contains(got, "keywords") {
		t.Errorf("unexpected optional fields in %q", got)
	}
}

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"api-design", "Api Design"},
		{"multi_md", "Multi Md"},
		{"thesis", "Thesis"},
		{"Already Spaced name", "Already Spaced name"},
	}

	for _, tt := range tests {
		if got := DisplayTitle(tt.in); got != tt.want {
			t.Errorf("DisplayTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
