package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const DefaultNamespace = "beatbox"

// Metrics owns a private registry. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry       *prometheus.Registry
	httpRequests   *prometheus.CounterVec
	httpDurations  *prometheus.HistogramVec
	ledgerCalls    *prometheus.CounterVec
	ledgerDuration *prometheus.HistogramVec
	checkouts      *prometheus.CounterVec
	settlements    *prometheus.CounterVec
}

func New(namespace string) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests processed.",
		}, []string{"route", "method", "status"}),
		httpDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		ledgerCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_rpc_calls_total",
			Help:      "Ledger JSON-RPC calls by method and outcome.",
		}, []string{"method", "outcome"}),
		ledgerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ledger_rpc_duration_seconds",
			Help:      "Ledger JSON-RPC latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_transactions_total",
			Help:      "Checkout transactions built, by mode and outcome.",
		}, []string{"mode", "outcome"}),
		settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlement_outcomes_total",
			Help:      "Terminal settlement poller outcomes.",
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(
		m.httpRequests, m.httpDurations,
		m.ledgerCalls, m.ledgerDuration,
		m.checkouts, m.settlements,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveHTTP(route, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDurations.WithLabelValues(route, method).Observe(d.Seconds())
}

func (m *Metrics) ObserveLedgerCall(method, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.ledgerCalls.WithLabelValues(method, outcome).Inc()
	m.ledgerDuration.WithLabelValues(method).Observe(d.Seconds())
}

func (m *Metrics) CheckoutBuilt(mode, outcome string) {
	if m == nil {
		return
	}
	m.checkouts.WithLabelValues(mode, outcome).Inc()
}

func (m *Metrics) SettlementFinished(outcome string) {
	if m == nil {
		return
	}
	m.settlements.WithLabelValues(outcome).Inc()
}
