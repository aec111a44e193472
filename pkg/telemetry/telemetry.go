package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa os coletores expostos em /metrics
type Metrics struct {
	IntegrationRequests        *prometheus.CounterVec
	IntegrationRequestDuration *prometheus.HistogramVec
	AggregationFailures        *prometheus.CounterVec
	CredentialRemovals         *prometheus.CounterVec

	registry *prometheus.Registry
}

func NewMetrics(namespace string) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		IntegrationRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "integration_requests_total",
				Help:      "Total de chamadas às APIs das plataformas",
			},
			[]string{"platform", "status"},
		),
		IntegrationRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "integration_request_duration_seconds",
				Help:      "Duração das chamadas às APIs das plataformas",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
			},
			[]string{"platform"},
		),
		AggregationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "aggregation_platform_failures_total",
				Help:      "Plataformas que contribuíram com zero por falha na agregação",
			},
			[]string{"platform"},
		),
		CredentialRemovals: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "credential_removals_total",
				Help:      "Credenciais removidas por expiração, 401 ou desconexão",
			},
			[]string{"platform", "reason"},
		),
	}

	registry.MustRegister(
		m.IntegrationRequests,
		m.IntegrationRequestDuration,
		m.AggregationFailures,
		m.CredentialRemovals,
	)

	return m
}

// Handler devolve o handler Prometheus deste registro
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordIntegrationRequest registra uma chamada externa. status 0 significa falha de rede.
func (m *Metrics) RecordIntegrationRequest(platform string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	label := "network_error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.IntegrationRequests.WithLabelValues(platform, label).Inc()
	m.IntegrationRequestDuration.WithLabelValues(platform).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordAggregationFailure(platform string) {
	if m == nil {
		return
	}
	m.AggregationFailures.WithLabelValues(platform).Inc()
}

func (m *Metrics) RecordCredentialRemoval(platform, reason string) {
	if m == nil {
		return
	}
	m.CredentialRemovals.WithLabelValues(platform, reason).Inc()
}
