package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "splitter",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served, by route, method and status code.",
	}, []string{"route", "method", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "splitter",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	tokensCounted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "splitter",
		Name:      "tokens_counted_total",
		Help:      "Tokens counted across token-count requests.",
	})

	sectionsExported = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "splitter",
		Name:      "sections_exported_total",
		Help:      "Sections exported, by export mode.",
	}, []string{"mode"})
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, tokensCounted, sectionsExported)
}

// withMetrics records request count and latency per route. The status for a
// failed request comes from the returned error, because the error handler
// writes the response only after this middleware unwinds.
func withMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		route := c.Path()
		if route == "" {
			route = c.Request().URL.Path
		}
		status := c.Response().Status
		if err != nil {
			status = http.StatusInternalServerError
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
		}
		httpRequests.WithLabelValues(route, c.Request().Method, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		return err
	}
}
