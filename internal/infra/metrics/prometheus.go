// Package metrics exposes credential service and HTTP metrics through Prometheus.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"accounts/internal/domain/service"
)

const namespace = "accounts"

// Prom holds every collector the service registers.
type Prom struct {
	Authentications *prometheus.CounterVec
	UserCreations   *prometheus.CounterVec
	HashDuration    prometheus.Histogram

	RequestsTotal    *prometheus.CounterVec
	RequestsDuration *prometheus.HistogramVec
	InFlight         *prometheus.GaugeVec
}

// NewRegistry returns a registry preloaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

func NewProm(reg prometheus.Registerer) *Prom {
	p := &Prom{
		Authentications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "credential",
				Name:      "authentications_total",
				Help:      "Authentication attempts by outcome.",
			},
			[]string{"outcome"},
		),
		UserCreations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "credential",
				Name:      "user_creations_total",
				Help:      "User creation attempts by outcome.",
			},
			[]string{"outcome"},
		),
		HashDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "credential",
				Name:      "hash_duration_seconds",
				Help:      "Time spent deriving password digests.",
				// bcrypt at cost 10-14 sits between ~50ms and ~1s
				Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
		),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		RequestsDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distributions.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"method", "route", "status"},
		),
		InFlight: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_in_flight_requests",
				Help:      "Current number of in-flight HTTP requests.",
			},
			[]string{"method", "route"},
		),
	}
	reg.MustRegister(p.Authentications, p.UserCreations, p.HashDuration, p.RequestsTotal, p.RequestsDuration, p.InFlight)

	return p
}

// NewCredentialMetrics adapts p to the domain metrics contract.
func NewCredentialMetrics(p *Prom) service.CredentialMetrics {
	return p
}

func (p *Prom) ObserveAuthentication(outcome string) {
	p.Authentications.WithLabelValues(outcome).Inc()
}

func (p *Prom) ObserveUserCreation(outcome string) {
	p.UserCreations.WithLabelValues(outcome).Inc()
}

func (p *Prom) ObserveHashDuration(elapsed time.Duration) {
	p.HashDuration.Observe(elapsed.Seconds())
}

// Middleware records request count, latency and in-flight requests per route template.
func (p *Prom) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}

		method := c.Request().Method
		p.InFlight.WithLabelValues(method, route).Inc()
		defer p.InFlight.WithLabelValues(method, route).Dec()

		err := next(c)
		if err != nil {
			// let the error handler write the status before it is read
			c.Error(err)
		}

		status := strconv.Itoa(c.Response().Status)
		p.RequestsTotal.WithLabelValues(method, route, status).Inc()
		p.RequestsDuration.WithLabelValues(method, route, status).Observe(time.Since(start).Seconds())

		return nil
	}
}
