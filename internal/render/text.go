package render

import (
	"html/template"
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/unicode/norm"
)

// Ellipses appended by truncation.
const (
	EllipsisChar = "…"
	EllipsisDots = "..."
)

var (
	lang    = language.BritishEnglish
	printer = message.NewPrinter(lang)
	upper   = cases.Upper(lang)
)

// Truncate cuts s to budget characters and appends ellipsis only when
// something was cut. Characters are counted after NFC normalization so a
// composed accent counts once. A budget of zero disables truncation.
func Truncate(s string, budget int, ellipsis string) string {
	if budget <= 0 {
		return s
	}
	s = norm.NFC.String(s)
	if utf8.RuneCountInString(s) <= budget {
		return s
	}
	r := []rune(s)
	return string(r[:budget]) + ellipsis
}

// Pluralize renders "<n> <noun>" choosing one at exactly 1 and many
// otherwise. Numbers are grouped ("1,204 results").
func Pluralize(n int, one, many string) string {
	noun := many
	if n == 1 {
		noun = one
	}
	return printer.Sprintf("%d %s", n, noun)
}

// StarCount turns a 0-5 rating into whole stars, never rounding up.
func StarCount(rating float64) int {
	if math.IsNaN(rating) || rating <= 0 {
		return 0
	}
	return int(math.Floor(math.Min(rating, 5)))
}

// Stars returns the star glyph repeated StarCount times.
func Stars(rating float64) string {
	return strings.Repeat("⭐", StarCount(rating))
}

// Capitalize upper-cases the first letter and leaves the rest alone:
// "homework help" -> "Homework help".
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsLetter(r) {
		return s
	}
	return upper.String(s[:size]) + s[size:]
}

var htmlTagPattern = regexp.MustCompile(`<(p|br|div|span|b|i|strong|em|a|ul|ol|li|h[1-6]|blockquote|img)[\s>/]`)

// containsHTML reports whether s looks like HTML markup.
func containsHTML(s string) bool {
	return htmlTagPattern.MatchString(strings.ToLower(s))
}

var whitespace = regexp.MustCompile(`\s+`)

// PlainText strips markup from s. Text without markup is returned as is.
func PlainText(s string) string {
	if s == "" || !containsHTML(s) {
		return s
	}
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			buf.WriteString(n.Data)
		case html.ElementNode:
			switch n.Data {
			case "p", "div", "br", "li", "h1", "h2", "h3", "h4", "h5", "h6":
				buf.WriteByte(' ')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.TrimSpace(whitespace.ReplaceAllString(buf.String(), " "))
}

// MarkdownText converts HTML bodies to Markdown so they read as plain text
// with line breaks. Text without markup is returned unchanged.
func MarkdownText(s string) string {
	if s == "" || !containsHTML(s) {
		return s
	}
	md, err := htmltomarkdown.ConvertString(s)
	if err != nil {
		return s
	}
	return strings.TrimSpace(md)
}

// LineBreaks escapes s and turns each newline into <br>.
func LineBreaks(s string) template.HTML {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = template.HTMLEscapeString(l)
	}
	return template.HTML(strings.Join(lines, "<br>")) //nolint:gosec // each line is escaped above
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slug turns a label into a CSS/URL friendly token: "Arts & Crafts" -> "arts-crafts".
func Slug(s string) string {
	s = norm.NFKD.String(s)
	s = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
	return strings.Trim(nonAlphanumeric.ReplaceAllString(s, "-"), "-")
}
