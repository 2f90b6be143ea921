// Package taxonomy holds the fixed category to subcategory vocabulary used by
// listing search filters and listing creation.
//
// The table is loaded once at startup and never mutated afterwards.
package taxonomy

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	domainerrors "github.com/cubhub/cubhub-web/internal/errors"
)

//go:embed taxonomy.yaml
var defaultTable []byte

// Entry maps one category to its ordered subcategories.
type Entry struct {
	Name          string   `yaml:"name" json:"name"`
	Subcategories []string `yaml:"subcategories" json:"subcategories"`
}

// Table is an immutable, ordered category lookup.
type Table struct {
	entries []Entry
	index   map[string]int
}

// Default parses the embedded table.
func Default() (*Table, error) {
	return Parse(defaultTable)
}

// Load reads the table from path, or the embedded default when path is empty.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path) //#nosec G304 -- operator supplied path
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML table.
func Parse(data []byte) (*Table, error) {
	var entries []Entry
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&entries); err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeConfig, "decode taxonomy")
	}
	return New(entries)
}

// New builds a table from entries. Names and labels are trimmed. A category
// with no subcategories is kept with an empty sequence. Duplicate categories
// and categories listing themselves as a subcategory are rejected.
func New(entries []Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, domainerrors.Configf("taxonomy: category with empty name")
		}
		if _, dup := t.index[name]; dup {
			return nil, domainerrors.Configf("taxonomy: duplicate category %q", name)
		}

		subs := make([]string, 0, len(e.Subcategories))
		for _, s := range e.Subcategories {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			if s == name {
				return nil, domainerrors.Configf("taxonomy: category %q lists itself as a subcategory", name)
			}
			subs = append(subs, s)
		}

		t.index[name] = len(t.entries)
		t.entries = append(t.entries, Entry{Name: name, Subcategories: subs})
	}
	return t, nil
}

// Categories returns category names in display order.
func (t *Table) Categories() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	return names
}

// Subcategories returns a copy of the sequence for category.
// Lookup is case-sensitive; unknown categories yield an empty slice.
func (t *Table) Subcategories(category string) []string {
	i, ok := t.index[category]
	if !ok {
		return []string{}
	}
	return slices.Clone(t.entries[i].Subcategories)
}

// Has reports whether category is in the table.
func (t *Table) Has(category string) bool {
	_, ok := t.index[category]
	return ok
}

// Entries returns a deep copy of the table.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = Entry{Name: e.Name, Subcategories: slices.Clone(e.Subcategories)}
	}
	return out
}
