package render

import (
	"strings"
	"testing"
)

func TestTree(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  string
	}{
		{
			name:  "lexicographic order with glyphs",
			paths: []string{"b/x.md", "a/y.md", "a/z.md"},
			want: "    ├── a\n" +
				"    │   ├── y.md\n" +
				"    │   └── z.md\n" +
				"    └── b\n" +
				"        └── x.md\n",
		},
		{
			name:  "single path",
			paths: []string{"note.md"},
			want:  "    └── note.md\n",
		},
		{
			name:  "shared prefix is merged",
			paths: []string{"a/b/c.md", "a/b/d.md"},
			want: "    └── a\n" +
				"        └── b\n" +
				"            ├── c.md\n" +
				"            └── d.md\n",
		},
		{
			name:  "duplicate paths collapse",
			paths: []string{"a/x.md", "a/x.md"},
			want: "    └── a\n" +
				"        └── x.md\n",
		},
		{
			name:  "empty input prints nothing",
			paths: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			Tree(&sb, tt.paths)
			if got := sb.String(); got != tt.want {
				t.Errorf("Tree() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestTreeIsDeterministic(t *testing.T) {
	paths := []string{"m/1.md", "z/2.md", "a/3.md", "k/4.md"}

	var first strings.Builder
	Tree(&first, paths)
	for i := 0; i < 20; i++ {
		var again strings.Builder
		Tree(&again, paths)
		if again.String() != first.String() {
			t.Fatalf("rendering differed between runs:\n%s\nvs\n%s", first.String(), again.String())
		}
	}
}

func TestFlat(t *testing.T) {
	var sb strings.Builder
	Flat(&sb, []string{"a.md", "b/c.md"})
	want := "a.md\nb/c.md\n"
	if sb.String() != want {
		t.Errorf("Flat() = %q, want %q", sb.String(), want)
	}
}
