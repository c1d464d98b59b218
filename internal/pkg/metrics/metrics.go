package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics agrupa as métricas da aplicação.
type Metrics struct {
	// Total de requisições HTTP (method, path, status_code)
	HTTPRequestsTotal *prometheus.CounterVec

	// Latência das requisições HTTP (method, path)
	HTTPRequestDuration *prometheus.HistogramVec

	// Total de tentativas de inscrição (status: sucesso, ja_inscrito, sem_vagas, erro)
	InscricoesTotal *prometheus.CounterVec

	// Quantidade atual de inscrições registradas no banco
	InscricoesRegistradas prometheus.Gauge

	// Quantidade atual de eventos cadastrados
	EventosCadastrados prometheus.Gauge
}

// New cria uma instância de Metrics registrada no registry padrão.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registra as métricas no registry informado.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		InscricoesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inscricoes_total",
				Help: "Total number of enrollment attempts",
			},
			[]string{"status"},
		),
		InscricoesRegistradas: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "inscricoes_registradas",
				Help: "Current number of enrollments in the store",
			},
		),
		EventosCadastrados: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "eventos_cadastrados",
				Help: "Current number of events in the store",
			},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.InscricoesTotal,
		m.InscricoesRegistradas,
		m.EventosCadastrados,
	)

	return m
}

// Instância padrão das métricas.
var defaultMetrics *Metrics

// Init inicializa a instância padrão.
func Init() *Metrics {
	defaultMetrics = New()
	return defaultMetrics
}

// Get devolve a instância padrão.
func Get() *Metrics {
	return defaultMetrics
}
