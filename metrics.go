package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	reg      *prometheus.Registry
	lookups  *prometheus.CounterVec
	upstream *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rainline",
			Name:      "cache_lookups_total",
			Help:      "Fetch cache lookups by resource and result (hit, miss, shared).",
		}, []string{"resource", "result"}),
		upstream: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rainline",
			Name:      "upstream_requests_total",
			Help:      "Upstream API requests by resource and outcome.",
		}, []string{"resource", "outcome"}),
	}
	m.reg.MustRegister(m.lookups, m.upstream)
	return m
}

func (m *Metrics) CacheHit(resource string)    { m.lookups.WithLabelValues(resource, "hit").Inc() }
func (m *Metrics) CacheMiss(resource string)   { m.lookups.WithLabelValues(resource, "miss").Inc() }
func (m *Metrics) SharedFetch(resource string) { m.lookups.WithLabelValues(resource, "shared").Inc() }

func (m *Metrics) UpstreamDone(resource string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.upstream.WithLabelValues(resource, outcome).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
