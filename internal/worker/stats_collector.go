package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rodrigues-yn/Gestao-de-eventos/internal/pkg/logger"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/pkg/metrics"
)

// ContadorEventos conta os eventos cadastrados.
type ContadorEventos interface {
	CountAll(ctx context.Context) (int, error)
}

// ContadorInscricoes conta as inscrições registradas.
type ContadorInscricoes interface {
	CountAll(ctx context.Context) (int, error)
}

// StatsCollector atualiza periodicamente os gauges de eventos e inscrições.
type StatsCollector struct {
	eventos    ContadorEventos
	inscricoes ContadorInscricoes
	metrics    *metrics.Metrics
	interval   time.Duration
	stopCh     chan struct{}
	doneCh     chan struct{}
	stopOnce   sync.Once
}

// NewStatsCollector cria um novo coletor de estatísticas.
func NewStatsCollector(
	eventos ContadorEventos,
	inscricoes ContadorInscricoes,
	m *metrics.Metrics,
	interval time.Duration,
) *StatsCollector {
	return &StatsCollector{
		eventos:    eventos,
		inscricoes: inscricoes,
		metrics:    m,
		interval:   interval,
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
	}
}

// Start inicia o coletor.
func (s *StatsCollector) Start(ctx context.Context) {
	logger.Info("coletor de estatísticas iniciado",
		zap.Duration("interval", s.interval),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer close(s.doneCh)

	s.coletar(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Info("coletor de estatísticas parado (contexto cancelado)")
			return
		case <-s.stopCh:
			logger.Info("coletor de estatísticas parado (sinal recebido)")
			return
		case <-ticker.C:
			s.coletar(ctx)
		}
	}
}

// Stop encerra o coletor e aguarda o loop terminar.
// Chamadas repetidas são seguras.
func (s *StatsCollector) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	<-s.doneCh
}

// coletar lê as contagens e atualiza os gauges.
func (s *StatsCollector) coletar(ctx context.Context) {
	log := logger.Get()

	totalEventos, err := s.eventos.CountAll(ctx)
	if err != nil {
		log.Error("falha ao contar eventos", zap.Error(err))
	} else {
		s.metrics.EventosCadastrados.Set(float64(totalEventos))
	}

	totalInscricoes, err := s.inscricoes.CountAll(ctx)
	if err != nil {
		log.Error("falha ao contar inscrições", zap.Error(err))
	} else {
		s.metrics.InscricoesRegistradas.Set(float64(totalInscricoes))
	}

	log.Debug("estatísticas coletadas",
		zap.Int("eventos", totalEventos),
		zap.Int("inscricoes", totalInscricoes),
	)
}
