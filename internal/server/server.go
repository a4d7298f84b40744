// Package server is the preview server: it renders fixtures through the page
// templates and serves the XSLT profile export.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/itchan-dev/forumview/internal/config"
	mw "github.com/itchan-dev/forumview/internal/middleware"
	"github.com/itchan-dev/forumview/internal/middleware/metrics"
)

// New creates the preview router.
func New(cfg config.Server, h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chi_middleware.Recoverer)
	r.Use(mw.RequestID)
	r.Use(metrics.Middleware)
	r.Use(chi_middleware.Compress(5, "text/html", "text/plain", "text/xsl", "application/xml"))

	r.Get("/healthz", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(mw.SecurityHeadersWithCSP(cfg.SecureCookies, mw.PreviewCSP))
		r.Get("/", h.Index)
		r.Get("/preview/{name}", h.Preview)
	})

	r.Route("/export", func(r chi.Router) {
		// go-chi/cors allows every origin when none are listed
		if len(cfg.AllowedOrigins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: cfg.AllowedOrigins,
				AllowedMethods: []string{"GET", "OPTIONS"},
				MaxAge:         300,
			}))
		}
		r.Use(mw.SecurityHeadersWithCSP(cfg.SecureCookies, mw.ExportCSP))
		r.Get("/profile.xsl", h.ExportStylesheet)
		r.Get("/sample.xml", h.ExportSample)
	})

	return r
}
