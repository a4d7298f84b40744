package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/itchan-dev/forumview/internal/domain"
)

func add(a, b int) int { return a + b }
func sub(a, b int) int { return a - b }
func mul(a, b int) int { return a * b }

// percent returns part as a whole percentage of total, zero when total is zero.
func percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return (part*100 + total/2) / total
}

func dict(values ...any) (map[string]any, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("invalid dict call: number of arguments must be even")
	}
	m := make(map[string]any, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict keys must be strings")
		}
		m[key] = values[i+1]
	}
	return m, nil
}

// funcMap builds the functions for one page template set. set is filled in
// after parsing; boardPart executes sub-templates of that same set.
func (r *Renderer) funcMap(set **template.Template) template.FuncMap {
	locale := "en"
	if r.catalog.Has("lang_locale") {
		locale = r.catalog.Get("lang_locale")
	}
	printer := message.NewPrinter(language.Make(locale))

	return template.FuncMap{
		"add":     add,
		"sub":     sub,
		"mul":     mul,
		"percent": percent,
		"dict":    dict,
		"join":    strings.Join,
		"txt":     r.catalog.Get,
		"txtf":    r.catalog.Format,
		"number": func(n int) string {
			return printer.Sprintf("%d", n)
		},
		"safe":     r.body.Sanitize,
		"markdown": r.body.Markdown,
		"excerpt":  r.body.Excerpt,
		"boardPart": func(part string, b *domain.Board, common domain.Common) (template.HTML, error) {
			name, err := r.boardTypes.Lookup(b.Type).template(part)
			if err != nil {
				return "", err
			}
			var buf bytes.Buffer
			if err := (*set).ExecuteTemplate(&buf, name, map[string]any{"Board": b, "Common": common}); err != nil {
				return "", fmt.Errorf("board %d %s: %w", b.ID, part, err)
			}
			return template.HTML(buf.String()), nil
		},
	}
}
