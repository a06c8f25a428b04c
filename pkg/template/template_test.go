package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTemplate = `
paths:
  images: {}
  chapter:
    intro.typ: "= Introduction"
  notes.txt: "scratch space"
"main.typ": "Typ body here"
"main.md": "Md body here"
`

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	tpl, err := Load(writeTemplate(t, sampleTemplate))
	require.NoError(t, err)

	assert.Equal(t, "Typ body here", tpl.MainTyp)
	assert.Equal(t, "Md body here", tpl.MainMd)

	images := tpl.Paths["images"]
	assert.True(t, images.IsDir)
	assert.Empty(t, images.Children)

	chapter := tpl.Paths["chapter"]
	require.True(t, chapter.IsDir)
	assert.Equal(t, "= Introduction", chapter.Children["intro.typ"].Body)

	notes := tpl.Paths["notes.txt"]
	assert.False(t, notes.IsDir)
	assert.Equal(t, "scratch space", notes.Body)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeTemplate(t, "paths: [not, a, mapping"))
	assert.ErrorIs(t, err, ErrParse)

	_, err = Load(writeTemplate(t, "paths:\n  bad: [1, 2]\n"))
	assert.ErrorIs(t, err, ErrParse, "sequence path entries are rejected")
}

func TestMaterialize(t *testing.T) {
	tpl, err := Load(writeTemplate(t, sampleTemplate))
	require.NoError(t, err)

	noteDir := filepath.Join(t.TempDir(), "note")
	require.NoError(t, os.MkdirAll(noteDir, 0755))
	require.NoError(t, tpl.Materialize(noteDir))

	assert.DirExists(t, filepath.Join(noteDir, "images"))
	assert.DirExists(t, filepath.Join(noteDir, "chapter"))

	intro, err := os.ReadFile(filepath.Join(noteDir, "chapter", "intro.typ"))
	require.NoError(t, err)
	assert.Equal(t, "= Introduction", string(intro))

	notes, err := os.ReadFile(filepath.Join(noteDir, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, "scratch space", string(notes))
}

func TestDefaultTemplate(t *testing.T) {
	tpl := Default()

	noteDir := filepath.Join(t.TempDir(), "note")
	require.NoError(t, os.MkdirAll(noteDir, 0755))
	require.NoError(t, tpl.Materialize(noteDir))

	assert.DirExists(t, filepath.Join(noteDir, "images"))
	assert.DirExists(t, filepath.Join(noteDir, "chapter"))
	assert.DirExists(t, filepath.Join(noteDir, "bibliography"))

	assert.Empty(t, tpl.MainBody("main.typ"))
	assert.Empty(t, tpl.MainBody("main.md"))
}

func TestTopLevelDirs(t *testing.T) {
	tpl, err := Load(writeTemplate(t, sampleTemplate))
	require.NoError(t, err)

	dirs := tpl.TopLevelDirs()
	assert.Contains(t, dirs, "images")
	assert.Contains(t, dirs, "chapter")
	assert.NotContains(t, dirs, "notes.txt")
}

func TestMainBody(t *testing.T) {
	tpl := &Template{MainTyp: "T", MainMd: "M"}
	assert.Equal(t, "T", tpl.MainBody("main.typ"))
	assert.Equal(t, "M", tpl.MainBody("main.md"))
	assert.Empty(t, tpl.MainBody("main.org"))
}
