package bodyfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	f := New()

	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "keeps basic formatting",
			input:    "<strong>bold</strong> and <em>italic</em>",
			contains: []string{"<strong>bold</strong>", "<em>italic</em>"},
		},
		{
			name:     "drops scripts",
			input:    `hello<script>alert(1)</script>`,
			contains: []string{"hello"},
			excludes: []string{"<script", "alert(1)"},
		},
		{
			name:     "drops event handlers",
			input:    `<img src="/a.png" onerror="alert(1)">`,
			excludes: []string{"onerror"},
		},
		{
			name:     "keeps bbc classes",
			input:    `<blockquote class="bbc_standard_quote"><cite>Quote</cite>text</blockquote>`,
			contains: []string{`class="bbc_standard_quote"`},
		},
		{
			name:     "drops foreign classes",
			input:    `<div class="evil-overlay">x</div>`,
			excludes: []string{"evil-overlay"},
		},
		{
			name:     "external links open in new tab without follow",
			input:    `<a href="https://example.com">out</a>`,
			contains: []string{`rel="nofollow noopener"`, `target="_blank"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(f.Sanitize(tt.input))
			for _, c := range tt.contains {
				assert.Contains(t, got, c)
			}
			for _, e := range tt.excludes {
				assert.NotContains(t, got, e)
			}
		})
	}
}

func TestMarkdown(t *testing.T) {
	f := New()

	got, err := f.Markdown("**ban** him\n~~maybe~~")
	require.NoError(t, err)
	assert.Contains(t, string(got), "<strong>ban</strong>")
	assert.Contains(t, string(got), "<del>maybe</del>")
	assert.Contains(t, string(got), "<br")

	got, err = f.Markdown("note <script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, string(got), "<script")
}

func TestExcerpt(t *testing.T) {
	f := New()

	assert.Equal(t, "Hello world & co", f.Excerpt("<p>Hello   <b>world</b> &amp; co</p>", 0))
	assert.Equal(t, "Hello...", f.Excerpt("<p>Hello world</p>", 6))
	assert.Equal(t, "short", f.Excerpt("short", 10))
}
