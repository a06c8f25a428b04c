// Package template loads YAML note templates and materializes their
// directory skeletons on disk.
package template

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrParse marks a template file that could not be decoded.
var ErrParse = errors.New("malformed template")

// Content is one entry in a template's path map: either a nested directory
// (mapping) or a literal file body (scalar).
type Content struct {
	Children map[string]Content
	Body     string
	IsDir    bool
}

// UnmarshalYAML decodes the untagged directory-or-file union by node kind.
func (c *Content) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		c.IsDir = true
		return node.Decode(&c.Children)
	case yaml.ScalarNode:
		return node.Decode(&c.Body)
	default:
		return fmt.Errorf("template path entry must be a mapping or a string (line %d)", node.Line)
	}
}

// Template describes the initial layout of a directory note.
type Template struct {
	Paths   map[string]Content `yaml:"paths"`
	MainTyp string             `yaml:"main.typ"`
	MainMd  string             `yaml:"main.md"`
}

// Default returns the built-in skeleton: empty images, chapter and
// bibliography directories.
func Default() *Template {
	return &Template{
		Paths: map[string]Content{
			"images":       {IsDir: true},
			"chapter":      {IsDir: true},
			"bibliography": {IsDir: true},
		},
	}
}

// Load parses a template file.
func Load(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template %q: %w", path, err)
	}
	var tpl Template
	if err := yaml.Unmarshal(data, &tpl); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrParse, path, err)
	}
	return &tpl, nil
}

// MainBody returns the template body for the given main-file name, if any.
func (t *Template) MainBody(mainFileName string) string {
	switch mainFileName {
	case "main.typ":
		return t.MainTyp
	case "main.md":
		return t.MainMd
	default:
		return ""
	}
}

// TopLevelDirs lists the names of the template's top-level directories.
// The resolver excludes these from name search right after creation.
func (t *Template) TopLevelDirs() map[string]struct{} {
	dirs := make(map[string]struct{}, len(t.Paths))
	for name, content := range t.Paths {
		if content.IsDir {
			dirs[name] = struct{}{}
		}
	}
	return dirs
}

// Materialize creates the template's directories and files under noteDir.
// Parent directories for nested file paths are created as needed. Failures
// partway through leave already-created entries in place.
func (t *Template) Materialize(noteDir string) error {
	return materialize(noteDir, t.Paths)
}

func materialize(dir string, contents map[string]Content) error {
	for name, content := range contents {
		target := filepath.Join(dir, name)
		if content.IsDir {
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("create directory %q: %w", target, err)
			}
			if err := materialize(target, content.Children); err != nil {
				return err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("create parent directory for %q: %w", target, err)
		}
		if err := os.WriteFile(target, []byte(content.Body), 0644); err != nil {
			return fmt.Errorf("write file %q: %w", target, err)
		}
	}
	return nil
}
