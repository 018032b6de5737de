// Package htmlsanitize cleans announcement content for display.
//
// Announcement bodies come from the CRM backend and may be plain text or
// HTML written in the backend's rich editor. PrepareForDisplay accepts
// either and returns markup that is safe to render unescaped; Excerpt
// returns a short plain-text preview for table cells.
package htmlsanitize

import (
	"html"
	"html/template"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugc    = bluemonday.UGCPolicy()
	strict = bluemonday.StrictPolicy()
)

// Sanitize removes scripts, event handlers, unsafe URLs and form elements,
// keeping ordinary formatting, links, images and tables.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return ugc.Sanitize(s)
}

// SanitizeToHTML is Sanitize typed for direct use in templates.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

// IsPlainText reports whether s contains no markup.
func IsPlainText(s string) bool {
	return !(strings.Contains(s, "<") && strings.Contains(s, ">"))
}

// PlainTextToHTML escapes s and wraps it in a paragraph, turning newlines
// into <br>.
func PlainTextToHTML(s string) string {
	if s == "" {
		return ""
	}
	escaped := template.HTMLEscapeString(s)
	return "<p>" + strings.ReplaceAll(escaped, "\n", "<br>") + "</p>"
}

// PrepareForDisplay returns safe markup for s, whether s is plain text or HTML.
func PrepareForDisplay(s string) template.HTML {
	if s == "" {
		return ""
	}
	if IsPlainText(s) {
		return template.HTML(PlainTextToHTML(s))
	}
	return SanitizeToHTML(s)
}

// Excerpt strips all markup from s, collapses whitespace and cuts the
// result to at most n runes, appending an ellipsis when cut.
func Excerpt(s string, n int) string {
	text := html.UnescapeString(strict.Sanitize(s))
	text = strings.Join(strings.Fields(text), " ")
	if n <= 0 || utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:n])) + "…"
}
