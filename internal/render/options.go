package render

import (
	"slices"

	"github.com/cubhub/cubhub-web/internal/domain"
	"github.com/cubhub/cubhub-web/internal/form"
)

// SitterSkills are the skill filters offered on the sitter page.
var SitterSkills = []string{
	"homework help",
	"cooking",
	"swimming",
	"arts and crafts",
	"special needs",
	"languages",
}

// PriceRanges are the hourly rate bands understood by the sitter service.
var PriceRanges = []form.Option{
	{Value: "0-10", Label: "Under £10"},
	{Value: "10-15", Label: "£10 to £15"},
	{Value: "15-20", Label: "£15 to £20"},
	{Value: "20+", Label: "£20 and over"},
}

var verifiedOrder = []string{
	domain.VerifiedDBS,
	domain.VerifiedFirstAid,
	domain.VerifiedReferences,
	domain.VerifiedQualified,
}

// SkillChoices marks the checked skills.
func SkillChoices(checked []string) []Choice {
	out := make([]Choice, 0, len(SitterSkills))
	for _, s := range SitterSkills {
		out = append(out, Choice{Value: s, Label: Capitalize(s), Checked: slices.Contains(checked, s)})
	}
	return out
}

// VerifiedChoices marks the checked verified features.
func VerifiedChoices(checked []string) []Choice {
	out := make([]Choice, 0, len(verifiedOrder))
	for _, v := range verifiedOrder {
		out = append(out, Choice{Value: v, Label: VerifiedLabel(v), Checked: slices.Contains(checked, v)})
	}
	return out
}

// PriceRangeSelect builds the rate band control with "Any" first.
func PriceRangeSelect(selected string) *form.Select {
	sel := &form.Select{Name: "priceRange", Options: make([]form.Option, 0, len(PriceRanges)+1)}
	sel.Options = append(sel.Options, form.Option{Label: form.SentinelAny})
	sel.Options = append(sel.Options, PriceRanges...)
	sel.Select(selected)
	return sel
}

// BlogCategories are the article categories offered by the blog forms.
var BlogCategories = []string{
	"Parenting Tips",
	"Child Development",
	"Health & Safety",
	"Education",
	"Activities",
	"Local News",
}

// BlogCategorySelect builds an article category control. A selected value the
// list doesn't know is kept as an extra option so editing never drops it.
func BlogCategorySelect(name, sentinel, selected string) *form.Select {
	sel := &form.Select{Name: name, Options: make([]form.Option, 0, len(BlogCategories)+2)}
	sel.Options = append(sel.Options, form.Option{Label: sentinel})
	for _, c := range BlogCategories {
		sel.Options = append(sel.Options, form.Option{Value: c, Label: c})
	}
	if selected != "" && !slices.Contains(BlogCategories, selected) {
		sel.Options = append(sel.Options, form.Option{Value: selected, Label: selected})
	}
	sel.Select(selected)
	return sel
}
