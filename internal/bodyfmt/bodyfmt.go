// Package bodyfmt turns upstream message fragments into HTML that is safe to
// mark as template.HTML.
package bodyfmt

import (
	"bytes"
	stdhtml "html"
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// bbcClass matches the classes the upstream BBC parser emits.
var bbcClass = regexp.MustCompile(`^(bbc_[a-z_]+|quoteheader|codeheader|spoiler|smiley|meaction)( [a-z_]+)*$`)

type Formatter struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *Formatter {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)

	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(bbcClass).OnElements("div", "span", "blockquote", "code", "pre", "cite", "img", "a", "ul", "ol", "table", "td")
	p.AllowAttrs("data-post", "data-topic").Matching(regexp.MustCompile(`^[0-9]+$`)).OnElements("a", "blockquote")
	p.AllowRelativeURLs(true)
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)

	return &Formatter{md: md, policy: p}
}

// Sanitize cleans an HTML fragment produced upstream (message bodies,
// signatures, board descriptions).
func (f *Formatter) Sanitize(fragment string) template.HTML {
	return template.HTML(f.policy.Sanitize(fragment))
}

// Markdown renders plain markdown text (moderator notes, report comments).
// Raw HTML in the input is dropped by goldmark and the result is sanitized.
func (f *Formatter) Markdown(text string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := f.md.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	return f.Sanitize(strings.TrimSpace(buf.String())), nil
}

// Excerpt returns the visible text of a fragment cut to at most n runes, for
// previews and tooltips.
func (f *Formatter) Excerpt(fragment string, n int) string {
	text := strings.Join(strings.Fields(bluemonday.StrictPolicy().Sanitize(fragment)), " ")
	text = stdhtml.UnescapeString(text)
	runes := []rune(text)
	if n <= 0 || len(runes) <= n {
		return text
	}
	return strings.TrimSpace(string(runes[:n])) + "..."
}
