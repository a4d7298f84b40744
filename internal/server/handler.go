package server

import (
	"bytes"
	_ "embed"
	"errors"
	"html/template"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/itchan-dev/forumview/internal/domain"
	internal_errors "github.com/itchan-dev/forumview/internal/errors"
	"github.com/itchan-dev/forumview/internal/fixtures"
	"github.com/itchan-dev/forumview/internal/logger"
	mw "github.com/itchan-dev/forumview/internal/middleware"
	"github.com/itchan-dev/forumview/internal/render"
	"github.com/itchan-dev/forumview/internal/xslt"
)

//go:embed sample_export.xml
var sampleExport []byte

type PageRenderer interface {
	Render(w io.Writer, page render.Page, common domain.Common, data any) error
}

type FixtureSource interface {
	Names() ([]string, error)
	Load(name string) (*fixtures.Fixture, error)
}

type Handler struct {
	renderer  PageRenderer
	fixtures  FixtureSource
	scriptURL string
}

func NewHandler(renderer PageRenderer, source FixtureSource, scriptURL string) *Handler {
	return &Handler{renderer: renderer, fixtures: source, scriptURL: scriptURL}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

type indexEntry struct {
	Name        string
	Title       string
	Description string
	Page        render.Page
	Err         string
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>Fixtures</title>
</head>
<body>
	<h1>Fixtures</h1>
	<table class="table_grid" id="fixtures">
		<thead><tr><th>Fixture</th><th>Page</th><th>Description</th></tr></thead>
		<tbody>
		{{- range .}}
			<tr id="fixture_{{.Name}}">
				<td><a href="/preview/{{.Name}}">{{.Title}}</a></td>
				<td>{{.Page}}</td>
				<td>{{if .Err}}<span class="error">{{.Err}}</span>{{else}}{{.Description}}{{end}}</td>
			</tr>
		{{- end}}
		</tbody>
	</table>
	<p><a href="/export/sample.xml">Sample profile export</a> | <a href="/export/profile.xsl">Export stylesheet</a></p>
</body>
</html>
`))

// Index lists every fixture. Broken fixtures stay in the list with their
// parse error so they can be fixed from the browser.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	names, err := h.fixtures.Names()
	if err != nil {
		logger.Log.Error("listing fixtures", "error", err, "request_id", mw.GetRequestID(r))
		writeErrorAndStatusCode(w, err)
		return
	}

	entries := make([]indexEntry, 0, len(names))
	for _, name := range names {
		f, err := h.fixtures.Load(name)
		if err != nil {
			entries = append(entries, indexEntry{Name: name, Title: name, Err: err.Error()})
			continue
		}
		entries = append(entries, indexEntry{
			Name:        name,
			Title:       f.Title,
			Description: f.Description,
			Page:        f.Page,
		})
	}

	buf := new(bytes.Buffer)
	if err := indexTmpl.Execute(buf, entries); err != nil {
		logger.Log.Error("error executing template", "template", "index", "error", err)
		writeErrorAndStatusCode(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	log := logger.Log.With("fixture", name, "request_id", mw.GetRequestID(r))

	f, err := h.fixtures.Load(name)
	if errors.Is(err, internal_errors.ErrFixtureNotFound) {
		writeErrorAndStatusCode(w, &internal_errors.ErrorWithStatusCode{Message: "fixture not found", StatusCode: http.StatusNotFound})
		return
	}
	if err != nil {
		log.Error("loading fixture", "error", err)
		writeErrorAndStatusCode(w, &internal_errors.ErrorWithStatusCode{Message: "fixture is invalid: " + err.Error(), StatusCode: http.StatusUnprocessableEntity})
		return
	}

	buf := new(bytes.Buffer)
	if err := h.renderer.Render(buf, f.Page, f.Common, f.Data); err != nil {
		log.Error("rendering fixture", "page", f.Page, "error", err)
		writeErrorAndStatusCode(w, &internal_errors.ErrorWithStatusCode{Message: "failed to render fixture", StatusCode: http.StatusInternalServerError})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (h *Handler) ExportStylesheet(w http.ResponseWriter, r *http.Request) {
	out, err := xslt.Generate(xslt.DefaultExport(h.scriptURL))
	if err != nil {
		logger.Log.Error("generating export stylesheet", "error", err)
		writeErrorAndStatusCode(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/xsl; charset=utf-8")
	w.Write(out)
}

// ExportSample serves a profile export that carries its own stylesheet, so
// opening it in a browser shows the rendered page.
func (h *Handler) ExportSample(w http.ResponseWriter, r *http.Request) {
	buf := new(bytes.Buffer)
	err := xslt.Embed(buf, xslt.DefaultExport(h.scriptURL), xslt.Document{
		Root:       "forum:export",
		Namespaces: []xslt.Namespace{xslt.ExportNamespace},
		Body:       sampleExport,
	})
	if err != nil {
		logger.Log.Error("embedding export stylesheet", "error", err)
		writeErrorAndStatusCode(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func writeErrorAndStatusCode(w http.ResponseWriter, err error) {
	var e *internal_errors.ErrorWithStatusCode
	if errors.As(err, &e) {
		http.Error(w, e.Message, e.StatusCode)
		return
	}
	// default error is 500
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
