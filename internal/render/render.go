// Package render turns page view models into HTML. Each page is one template
// set: the shared layout (base.html), the shared fragments (partials.html) and
// the page's own file, executed against a TemplateData wrapper.
package render

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/itchan-dev/forumview/internal/bodyfmt"
	"github.com/itchan-dev/forumview/internal/domain"
	internal_errors "github.com/itchan-dev/forumview/internal/errors"
	"github.com/itchan-dev/forumview/internal/lang"
	"github.com/itchan-dev/forumview/internal/logger"
)

type Page string

const (
	PageBoardIndex   Page = "boardindex"
	PageMessageIndex Page = "messageindex"
	PageDisplay      Page = "display"
	PagePost         Page = "post"
	PageCalendar     Page = "calendar"
	PageEventPost    Page = "event_post"
	PageModCenter    Page = "moderation"
	PageThemes       Page = "themes"
)

const (
	baseTemplate     = "base.html"
	partialsTemplate = "partials.html"
)

//go:embed templates/*.html
var embedded embed.FS

// TemplateData wraps page-specific data with common template data.
// Templates access page data via .Data and common data via .Common.
type TemplateData struct {
	Data   any
	Common domain.Common
}

type extraTemplates struct {
	fsys     fs.FS
	patterns []string
}

type Renderer struct {
	mu    sync.RWMutex
	pages map[Page]*template.Template

	catalog    *lang.Catalog
	body       *bodyfmt.Formatter
	boardTypes *BoardTypes
	extra      []extraTemplates
	validate   *validator.Validate
}

type Option func(*Renderer)

func WithCatalog(c *lang.Catalog) Option {
	return func(r *Renderer) { r.catalog = c }
}

func WithFormatter(f *bodyfmt.Formatter) Option {
	return func(r *Renderer) { r.body = f }
}

func WithBoardTypes(bt *BoardTypes) Option {
	return func(r *Renderer) { r.boardTypes = bt }
}

// WithTemplates parses extra template files into every page set, after the
// built-in ones, so they can add board type renderers or override fragments.
func WithTemplates(fsys fs.FS, patterns ...string) Option {
	return func(r *Renderer) { r.extra = append(r.extra, extraTemplates{fsys, patterns}) }
}

// New parses the embedded templates.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{validate: validator.New(validator.WithRequiredStructEnabled())}
	for _, opt := range opts {
		opt(r)
	}
	if r.catalog == nil {
		c, err := lang.Load(lang.Fallback, "")
		if err != nil {
			return nil, fmt.Errorf("load default language: %w", err)
		}
		r.catalog = c
	}
	if r.body == nil {
		r.body = bodyfmt.New()
	}
	if r.boardTypes == nil {
		r.boardTypes = NewBoardTypes()
	}

	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return nil, err
	}
	if err := r.Reload(sub); err != nil {
		return nil, err
	}
	return r, nil
}

// BoardTypes exposes the registry so callers can register new board types.
func (r *Renderer) BoardTypes() *BoardTypes {
	return r.boardTypes
}

// Reload re-parses every page from fsys. On error the current templates stay.
func (r *Renderer) Reload(fsys fs.FS) error {
	pages := make(map[Page]*template.Template, len(pageFiles))
	for page, file := range pageFiles {
		var set *template.Template
		t, err := template.New(baseTemplate).Funcs(r.funcMap(&set)).ParseFS(fsys, baseTemplate, partialsTemplate, file)
		if err != nil {
			return fmt.Errorf("parse %s: %w", page, err)
		}
		for _, x := range r.extra {
			if t, err = t.ParseFS(x.fsys, x.patterns...); err != nil {
				return fmt.Errorf("parse %s extra templates: %w", page, err)
			}
		}
		set = t
		pages[page] = t
	}

	r.mu.Lock()
	r.pages = pages
	r.mu.Unlock()
	return nil
}

// StartReloader re-parses templates from dir every interval until ctx is done.
// Used in development so template edits show up without a restart.
func (r *Renderer) StartReloader(ctx context.Context, dir string, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := r.Reload(os.DirFS(dir)); err != nil {
					logger.Log.Error("template reload failed", "dir", dir, "error", err)
				}
			}
		}
	}()
}

// Pages lists the renderable pages in name order.
func (r *Renderer) Pages() []Page {
	out := make([]Page, 0, len(pageFiles))
	for p := range pageFiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Render executes page against common and data and writes the markup to w.
// Nothing is written when rendering fails.
func (r *Renderer) Render(w io.Writer, page Page, common domain.Common, data any) error {
	start := time.Now()

	r.mu.RLock()
	tmpl, ok := r.pages[page]
	r.mu.RUnlock()
	if !ok {
		renderErrorsTotal.WithLabelValues("unknown", "unknown_page").Inc()
		return fmt.Errorf("%w: %q", internal_errors.ErrUnknownPage, page)
	}

	if !pageAccepts(page, data) {
		renderErrorsTotal.WithLabelValues(string(page), "data_mismatch").Inc()
		return fmt.Errorf("%w: %s got %T", internal_errors.ErrDataMismatch, page, data)
	}
	if err := r.validate.Struct(common); err != nil {
		renderErrorsTotal.WithLabelValues(string(page), "invalid_common").Inc()
		return fmt.Errorf("%s: invalid common data: %w", page, err)
	}
	if err := r.validate.Struct(data); err != nil {
		renderErrorsTotal.WithLabelValues(string(page), "invalid_data").Inc()
		return fmt.Errorf("%s: invalid page data: %w", page, err)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, TemplateData{Data: data, Common: common}); err != nil {
		logger.Log.Error("error executing template", "page", page, "error", err)
		renderErrorsTotal.WithLabelValues(string(page), "execute").Inc()
		return fmt.Errorf("render %s: %w", page, err)
	}

	renderDuration.WithLabelValues(string(page)).Observe(time.Since(start).Seconds())
	renderedBytes.WithLabelValues(string(page)).Add(float64(buf.Len()))
	logger.Log.Debug("page rendered", "page", page, "bytes", buf.Len(), "duration", time.Since(start))

	_, err := buf.WriteTo(w)
	return err
}
