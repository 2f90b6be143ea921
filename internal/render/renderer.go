// Package render turns listing, sitter and blog records into HTML fragments
// and pages.
//
// One generic Renderer serves every record kind. A Kind supplies the
// per-kind rules: text budget, ellipsis, badge cap, image fallback, count
// noun and the projection from a record to a Card.
package render

import (
	"bytes"
	"fmt"
	"html/template"
)

// Badge is a small label on a card.
type Badge struct {
	Label    string
	Verified bool
}

// Link is a card action.
type Link struct {
	Label    string
	Href     string
	External bool
}

// Card is the view model shared by every card template.
type Card struct {
	ID       string
	Title    string
	Href     string
	Meta     []string // joined with " • ", blanks dropped
	Image    string
	ImageAlt string
	// Placeholder is shown in the image slot when Image is empty. Empty
	// Placeholder renders a bare image slot.
	Placeholder string
	Text        string
	Byline      string
	// Verified badges are never capped.
	Verified []Badge
	Badges   []Badge
	// AllBadges keeps the uncapped set for consumers such as editors.
	AllBadges []Badge
	Stars     string
	Reviews   string
	Rate      string
	Links     []Link
	Saved     bool
	Class     string
}

// MetaLine joins the non-blank meta parts.
func (c Card) MetaLine() string {
	out := ""
	for _, m := range c.Meta {
		if m == "" {
			continue
		}
		if out != "" {
			out += " • "
		}
		out += m
	}
	return out
}

// Kind configures rendering for one record type.
type Kind[T any] struct {
	// Template is the card list template name.
	Template string
	// One and Many are the count nouns ("result", "results").
	One, Many string
	// CountPrefix precedes the count, e.g. "Showing".
	CountPrefix string
	// TextBudget truncates Card.Text; zero disables truncation.
	TextBudget int
	Ellipsis   string
	// BadgeCap limits displayed badges; zero hides badges, negative shows all.
	BadgeCap int
	// Placeholder fills Card.Placeholder when the projection left Image empty.
	Placeholder  string
	EmptyMessage string
	Project      func(T) Card
}

// Fragment is a rendered result list.
type Fragment struct {
	HTML         template.HTML
	Count        int
	CountMessage string
	Empty        bool
	EmptyMessage string
	Cards        []Card
}

// Renderer renders a slice of T with its Kind.
type Renderer[T any] struct {
	kind Kind[T]
	tmpl *Templates
}

// NewRenderer creates a renderer executing kind.Template from tmpl.
func NewRenderer[T any](tmpl *Templates, kind Kind[T]) *Renderer[T] {
	return &Renderer[T]{kind: kind, tmpl: tmpl}
}

// Kind returns the renderer configuration.
func (r *Renderer[T]) Kind() Kind[T] {
	return r.kind
}

// Cards projects items and applies truncation, badge caps and image fallback.
func (r *Renderer[T]) Cards(items []T) []Card {
	cards := make([]Card, 0, len(items))
	for _, item := range items {
		cards = append(cards, r.Card(item))
	}
	return cards
}

// Card projects a single item.
func (r *Renderer[T]) Card(item T) Card {
	c := r.kind.Project(item)
	c.Text = Truncate(c.Text, r.kind.TextBudget, r.kind.Ellipsis)
	c.AllBadges = c.Badges
	switch {
	case r.kind.BadgeCap == 0:
		c.Badges = nil
	case r.kind.BadgeCap > 0 && len(c.Badges) > r.kind.BadgeCap:
		c.Badges = c.Badges[:r.kind.BadgeCap:r.kind.BadgeCap]
	}
	if c.Image == "" && c.Placeholder == "" {
		c.Placeholder = r.kind.Placeholder
	}
	return c
}

// CountMessage formats the count line for n records.
func (r *Renderer[T]) CountMessage(n int) string {
	msg := Pluralize(n, r.kind.One, r.kind.Many)
	if r.kind.CountPrefix != "" {
		msg = r.kind.CountPrefix + " " + msg
	}
	return msg
}

// listData is passed to card list templates.
type listData struct {
	Cards        []Card
	Empty        bool
	EmptyMessage string
	CountMessage string
	Extra        any
}

// Render renders items. An empty slice yields the empty state and no cards.
func (r *Renderer[T]) Render(items []T) (Fragment, error) {
	return r.RenderWith(items, nil)
}

// RenderWith is Render with extra template data, such as the set of saved
// sitter ids.
func (r *Renderer[T]) RenderWith(items []T, extra any) (Fragment, error) {
	f := Fragment{
		Count:        len(items),
		CountMessage: r.CountMessage(len(items)),
		Empty:        len(items) == 0,
		EmptyMessage: r.kind.EmptyMessage,
		Cards:        r.Cards(items),
	}

	var buf bytes.Buffer
	err := r.tmpl.Fragment(&buf, r.kind.Template, listData{
		Cards:        f.Cards,
		Empty:        f.Empty,
		EmptyMessage: f.EmptyMessage,
		CountMessage: f.CountMessage,
		Extra:        extra,
	})
	if err != nil {
		return Fragment{}, fmt.Errorf("render %s: %w", r.kind.Template, err)
	}
	f.HTML = template.HTML(buf.String()) //nolint:gosec // produced by html/template
	return f, nil
}

// Failed returns the empty-state fragment used when a query failed.
func (r *Renderer[T]) Failed() Fragment {
	f, err := r.Render(nil)
	if err != nil {
		return Fragment{Empty: true, CountMessage: r.CountMessage(0), EmptyMessage: r.kind.EmptyMessage}
	}
	return f
}
