// Package form models the filter and editor form controls rendered by the
// web front end: dependent category selects, trimmed text fields, checkbox
// flags and comma separated tag inputs.
package form

// Sentinel labels for the "no selection" option.
const (
	SentinelAny    = "Any"     // search filters
	SentinelSelect = "Select…" // create and edit forms
)

// Option is one entry of a select control. The sentinel has an empty Value.
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// Select is a rendered select control.
type Select struct {
	Name    string   `json:"name"`
	Value   string   `json:"value"`
	Options []Option `json:"options"`
}

// Select marks value as selected when it is one of the options and reports
// whether it was found. An unknown value selects the first option.
func (s *Select) Select(value string) bool {
	found := false
	for i := range s.Options {
		s.Options[i].Selected = !found && s.Options[i].Value == value
		if s.Options[i].Selected {
			found = true
		}
	}
	if !found && len(s.Options) > 0 {
		s.Options[0].Selected = true
		value = s.Options[0].Value
	}
	s.Value = value
	return found
}

// Lookup resolves a category to its subcategories.
type Lookup interface {
	Categories() []string
	Subcategories(category string) []string
}

// Binder rebuilds subcategory selects from a taxonomy lookup.
// Each binder carries its own sentinel label.
type Binder struct {
	table    Lookup
	sentinel string
}

// NewBinder creates a binder whose sentinel option reads sentinel.
func NewBinder(table Lookup, sentinel string) *Binder {
	return &Binder{table: table, sentinel: sentinel}
}

// Sentinel returns the label of the "no selection" option.
func (b *Binder) Sentinel() string {
	return b.sentinel
}

// Options returns [sentinel] + the subcategories of category, nothing selected
// except the sentinel.
func (b *Binder) Options(category string) []Option {
	subs := b.table.Subcategories(category)
	opts := make([]Option, 0, len(subs)+1)
	opts = append(opts, Option{Label: b.sentinel, Selected: true})
	for _, s := range subs {
		opts = append(opts, Option{Value: s, Label: s})
	}
	return opts
}

// CategorySelect builds the parent control: [sentinel] + every category.
func (b *Binder) CategorySelect(name, selected string) *Select {
	cats := b.table.Categories()
	sel := &Select{Name: name, Options: make([]Option, 0, len(cats)+1)}
	sel.Options = append(sel.Options, Option{Label: b.sentinel})
	for _, c := range cats {
		sel.Options = append(sel.Options, Option{Value: c, Label: c})
	}
	sel.Select(selected)
	return sel
}

// Binding ties a category value to its dependent subcategory select.
type Binding struct {
	binder   *Binder
	category string
	sub      *Select
}

// Bind attaches sub to category and rebuilds it immediately.
func (b *Binder) Bind(category string, sub *Select) *Binding {
	bd := &Binding{binder: b, sub: sub}
	bd.Change(category)
	return bd
}

// Change sets a new category value, rebuilds the subcategory options and
// discards the previous subcategory selection.
func (bd *Binding) Change(category string) {
	bd.category = category
	bd.sub.Options = bd.binder.Options(category)
	bd.sub.Value = ""
}

// Restore re-selects a previously submitted subcategory when it is still
// valid for the bound category. It is used when a form is re-rendered from
// its own submission, not on category change.
func (bd *Binding) Restore(value string) bool {
	if value == "" {
		return false
	}
	return bd.sub.Select(value)
}

// Category returns the bound category value.
func (bd *Binding) Category() string {
	return bd.category
}

// Sub returns the dependent select.
func (bd *Binding) Sub() *Select {
	return bd.sub
}
