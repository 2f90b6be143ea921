// Package query normalizes filter form fields into the query string sent to
// the read services. A field is sent only when it constrains the result;
// omission means "no constraint" to every service.
package query

import (
	"net/url"
	"strings"
)

// Truthy is the token sent for a set boolean filter.
const Truthy = "1"

// Value is a single filter field.
type Value interface {
	// encode returns the values to send, or nothing when the field is unset.
	encode() []string
}

// Text is a free-text field, sent trimmed when non-blank.
type Text string

func (t Text) encode() []string {
	if s := strings.TrimSpace(string(t)); s != "" {
		return []string{s}
	}
	return nil
}

// Flag is a checkbox filter, sent as Truthy when set.
type Flag bool

func (f Flag) encode() []string {
	if f {
		return []string{Truthy}
	}
	return nil
}

// Multi is a repeatable field. Each entry is trimmed and blanks are dropped.
type Multi []string

func (m Multi) encode() []string {
	var out []string
	for _, s := range m {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Fields maps a query parameter name to its value.
type Fields map[string]Value

// Build returns the normalized query. No validation beyond trimming is done.
func Build(fields Fields) url.Values {
	q := url.Values{}
	for name, v := range fields {
		if v == nil {
			continue
		}
		if vals := v.encode(); len(vals) > 0 {
			q[name] = vals
		}
	}
	return q
}

// Listing query parameter names.
const (
	ParamCategory    = "category"
	ParamSubcategory = "subcategory"
	ParamTown        = "town"
	ParamQ           = "q"
	ParamDBS         = "dbs"
	ParamFirstAid    = "firstaid"
	ParamOfsted      = "ofsted"
	ParamSEN         = "sen"
	ParamID          = "id"
	ParamLocation    = "location"
	ParamPriceRange  = "priceRange"
	ParamSkills      = "skills"
	ParamVerified    = "verified"
)

// ListingFilter is the listing search form.
type ListingFilter struct {
	Category    string
	Subcategory string
	Town        string
	Q           string
	DBS         bool
	FirstAid    bool
	Ofsted      bool
	SEN         bool
}

// Query builds the listing service query.
func (f ListingFilter) Query() url.Values {
	return Build(Fields{
		ParamCategory:    Text(f.Category),
		ParamSubcategory: Text(f.Subcategory),
		ParamTown:        Text(f.Town),
		ParamQ:           Text(f.Q),
		ParamDBS:         Flag(f.DBS),
		ParamFirstAid:    Flag(f.FirstAid),
		ParamOfsted:      Flag(f.Ofsted),
		ParamSEN:         Flag(f.SEN),
	})
}

// SitterFilter is the sitter browse form.
type SitterFilter struct {
	Location   string
	PriceRange string
	Skills     []string
	Verified   []string
}

// Query builds the sitter service query.
func (f SitterFilter) Query() url.Values {
	return Build(Fields{
		ParamLocation:   Text(f.Location),
		ParamPriceRange: Text(f.PriceRange),
		ParamSkills:     Multi(f.Skills),
		ParamVerified:   Multi(f.Verified),
	})
}

// PostFilter is the blog search form.
type PostFilter struct {
	Q        string
	Category string
}

// Query builds the blog query.
func (f PostFilter) Query() url.Values {
	return Build(Fields{
		ParamQ:        Text(f.Q),
		ParamCategory: Text(f.Category),
	})
}
