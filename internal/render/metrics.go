package render

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	renderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "forumview_render_duration_seconds",
			Help:    "Page render duration in seconds",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		},
		[]string{"page"},
	)

	renderErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forumview_render_errors_total",
			Help: "Total number of failed page renders",
		},
		[]string{"page", "reason"},
	)

	renderedBytes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forumview_rendered_bytes_total",
			Help: "Total bytes of markup produced",
		},
		[]string{"page"},
	)
)
