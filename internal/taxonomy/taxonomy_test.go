package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/cubhub/cubhub-web/internal/errors"
)

func TestDefault_Vocabulary(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Childcare Providers",
		"Tutors",
		"Nurseries & Preschools",
		"Holiday & Out of School Clubs",
		"Events",
		"Jobs",
		"Agencies",
	}, table.Categories())

	assert.Equal(t,
		[]string{"Pre-primary", "Primary", "Secondary", "Language", "Music", "Other"},
		table.Subcategories("Tutors"))
	assert.Equal(t,
		[]string{"Holiday Club", "After School Club", "Breakfast Club", "Sports", "Arts & Crafts", "STEM", "Other"},
		table.Subcategories("Holiday & Out of School Clubs"))
}

func TestSubcategories_Lookup(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	tests := []struct {
		name     string
		category string
		wantLen  int
	}{
		{"exact match", "Agencies", 4},
		{"case differs", "agencies", 0},
		{"unknown", "Pets", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subs := table.Subcategories(tt.category)
			assert.NotNil(t, subs)
			assert.Len(t, subs, tt.wantLen)
		})
	}
}

func TestSubcategories_ReturnsCopy(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	subs := table.Subcategories("Jobs")
	subs[0] = "Changed"

	assert.Equal(t, "Nanny", table.Subcategories("Jobs")[0])
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr bool
	}{
		{"valid", []Entry{{Name: "Tutors", Subcategories: []string{"Music"}}}, false},
		{"duplicate", []Entry{{Name: "Tutors"}, {Name: "Tutors"}}, true},
		{"self reference", []Entry{{Name: "Events", Subcategories: []string{"Free", "Events"}}}, true},
		{"blank name", []Entry{{Name: "  "}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew_DropsBlankSubcategories(t *testing.T) {
	table, err := New([]Entry{{Name: "Jobs", Subcategories: []string{" Nanny ", "", "  "}}})
	require.NoError(t, err)

	assert.Equal(t, []string{"Nanny"}, table.Subcategories("Jobs"))
}

func TestLoad_OverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	data := "- name: Clubs\n  subcategories: [Chess, Coding]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Clubs"}, table.Categories())
	assert.Equal(t, []string{"Chess", "Coding"}, table.Subcategories("Clubs"))
	assert.False(t, table.Has("Tutors"))
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("- name: Clubs\n  children: [Chess]\n"))
	assert.ErrorIs(t, err, domainerrors.ErrConfig)
}
