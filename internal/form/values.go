package form

import (
	"net/url"
	"strings"
)

// Values reads submitted form fields.
type Values url.Values

// Text returns the trimmed value of name.
func (v Values) Text(name string) string {
	return strings.TrimSpace(url.Values(v).Get(name))
}

// Checked reports whether the checkbox name was ticked. Browsers send "on"
// for a bare checkbox; the query token "1" and "true" are accepted too.
func (v Values) Checked(name string) bool {
	switch strings.ToLower(v.Text(name)) {
	case "on", "1", "true", "yes":
		return true
	default:
		return false
	}
}

// All returns every trimmed, non-empty value submitted for name.
func (v Values) All(name string) []string {
	var out []string
	for _, s := range url.Values(v)[name] {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ParseTags splits comma separated free text into tags. Entries are trimmed
// and blanks dropped; order is kept and duplicates are not removed.
func ParseTags(raw string) []string {
	tags := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}

// JoinTags is the inverse of ParseTags used to refill an editor.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
