package domain

import (
	"encoding/json/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingFlags_Tags(t *testing.T) {
	tests := []struct {
		name  string
		flags ListingFlags
		want  []string
	}{
		{name: "none", flags: ListingFlags{}, want: nil},
		{name: "all in fixed order", flags: ListingFlags{SEN: true, DBS: true, Ofsted: true, FirstAid: true},
			want: []string{"DBS", "First Aid", "Ofsted Registered", "SEN"}},
		{name: "subset", flags: ListingFlags{SEN: true, FirstAid: true}, want: []string{"First Aid", "SEN"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.flags.Tags())
		})
	}
}

func TestSitter_Names(t *testing.T) {
	assert.Equal(t, "Amara Okafor", Sitter{FirstName: "Amara", LastName: "Okafor"}.FullName())
	assert.Equal(t, "Amara", Sitter{FirstName: "Amara"}.FullName())
	assert.Equal(t, "Okafor", Sitter{LastName: "Okafor"}.FullName())
	assert.Equal(t, "AO", Sitter{FirstName: "Amara", LastName: "Okafor"}.Initials())
	assert.Equal(t, "Ö", Sitter{LastName: "Östberg"}.Initials())
	assert.Empty(t, Sitter{}.Initials())
}

func TestBlogPost_IsNew(t *testing.T) {
	assert.True(t, (&BlogPost{}).IsNew())
	assert.False(t, (&BlogPost{ID: "42"}).IsNew())
}

func TestBlogPost_UnmarshalPublishDate(t *testing.T) {
	tests := []struct {
		name string
		date string
		want time.Time
	}{
		{name: "rfc3339", date: `"2025-03-01T09:30:00Z"`, want: time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)},
		{name: "offset", date: `"2025-03-01T10:30:00+01:00"`, want: time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)},
		{name: "no zone", date: `"2025-03-01T09:30:00"`, want: time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)},
		{name: "date only", date: `"2025-03-01"`, want: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{name: "empty", date: `""`},
		{name: "garbage", date: `"next tuesday"`},
		{name: "null", date: `null`},
		{name: "number", date: `1740821400`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p BlogPost
			err := json.Unmarshal([]byte(`{"id":"7","title":"Sleep","tags":["a"],"publishDate":`+tt.date+`}`), &p)
			require.NoError(t, err)
			assert.Equal(t, "7", p.ID)
			assert.Equal(t, "Sleep", p.Title)
			assert.Equal(t, []string{"a"}, p.Tags)
			assert.True(t, tt.want.Equal(p.PublishDate), "got %v", p.PublishDate)
		})
	}
}

func TestBlogPost_RoundTrip(t *testing.T) {
	in := BlogPost{ID: "7", Title: "Sleep", PublishDate: time.Date(2025, 3, 1, 9, 30, 15, 500, time.UTC)}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out BlogPost
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in.ID, out.ID)
	assert.True(t, in.PublishDate.Equal(out.PublishDate))

	data, err = json.Marshal(BlogPost{ID: "8"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "publishDate")
}

func TestEditSession(t *testing.T) {
	s := &EditSession{}
	assert.False(t, s.IsEditing())
	assert.Empty(t, s.EditingID())

	s.Editing = &BlogPost{ID: "42"}
	assert.True(t, s.IsEditing())
	assert.Equal(t, "42", s.EditingID())
}
