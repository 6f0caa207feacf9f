package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Latência das páginas servidas pelo painel.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "path", "status"},
	)

	// Latência das chamadas à API remota.
	APICallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_call_duration_seconds",
			Help:    "Upstream API call duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "path", "status"},
	)

	// Contagem de mutações por desfecho (success/blocked/error).
	OperacoesCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "operacoes_count",
			Help: "Mutating operations issued, by outcome",
		},
		[]string{"entidade", "acao", "resultado"},
	)
)

func RecordHTTPRequestDuration(method, path, status string, d time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(d.Seconds())
}

func RecordAPICallDuration(method, path, status string, d time.Duration) {
	APICallDuration.WithLabelValues(method, path, status).Observe(d.Seconds())
}

func IncrementOperacao(entidade, acao, resultado string) {
	OperacoesCount.WithLabelValues(entidade, acao, resultado).Inc()
}
