package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Reconciliation pass names used as the "pass" label value.
const (
	PassPropagate = "propagate"
	PassShrink    = "shrink"
	PassRenumber  = "renumber"
	PassGrow      = "grow"
)

// Metrics bundles the prometheus collectors for nodewire. A nil *Metrics is
// valid and records nothing, so callers never have to branch.
type Metrics struct {
	ReconcilePasses *prometheus.CounterVec
	LinksRejected   prometheus.Counter
	TemplateSyncs   *prometheus.CounterVec
	HTTPRequests    *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ReconcilePasses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nodewire_reconcile_passes_total",
				Help: "Reconciliation passes that mutated a node, by pass.",
			},
			[]string{"pass"},
		),
		LinksRejected: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "nodewire_links_rejected_total",
				Help: "Links torn down because the origin type was undetermined.",
			},
		),
		TemplateSyncs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nodewire_template_syncs_total",
				Help: "FormatString template sync round trips, by status.",
			},
			[]string{"status"},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nodewire_http_requests_total",
				Help: "HTTP requests served, by route and status code.",
			},
			[]string{"route", "code"},
		),
	}
	reg.MustRegister(m.ReconcilePasses, m.LinksRejected, m.TemplateSyncs, m.HTTPRequests)
	return m
}

// Pass records one executed reconciliation pass.
func (m *Metrics) Pass(name string) {
	if m == nil {
		return
	}
	m.ReconcilePasses.WithLabelValues(name).Inc()
}

// RejectLink records one torn-down wildcard-origin link.
func (m *Metrics) RejectLink() {
	if m == nil {
		return
	}
	m.LinksRejected.Inc()
}

// Sync records one template sync attempt with the given status.
func (m *Metrics) Sync(status string) {
	if m == nil {
		return
	}
	m.TemplateSyncs.WithLabelValues(status).Inc()
}

// Request records one served HTTP request.
func (m *Metrics) Request(route string, code int) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}
