package application

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/evento"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/inscricao"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/transaction"
	redisinfra "github.com/rodrigues-yn/Gestao-de-eventos/internal/infrastructure/redis"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/pkg/logger"
)

// vagasCacheTTL é o tempo de vida da contagem de vagas ocupadas no cache.
const vagasCacheTTL = 30 * time.Second

type EventoService struct {
	eventoRepo    evento.Repository
	inscricaoRepo inscricao.Repository
	txManager     transaction.Manager
	cache         VagasCache
}

func NewEventoService(er evento.Repository, ir inscricao.Repository, tm transaction.Manager, cache VagasCache) *EventoService {
	return &EventoService{eventoRepo: er, inscricaoRepo: ir, txManager: tm, cache: cache}
}

type CriarEventoInput struct {
	Nome        string
	Data        time.Time
	Local       string
	NumeroVagas int
	Descricao   string
}

// CriarEvento valida e persiste um novo evento.
// Não há verificação de vagas na criação: a capacidade só é comparada
// contra inscrições futuras.
func (s *EventoService) CriarEvento(ctx context.Context, input CriarEventoInput) (*evento.Evento, error) {
	e := evento.NewEvento(input.Nome, input.Data, input.Local, input.NumeroVagas, input.Descricao)
	if err := e.Validar(); err != nil {
		return nil, err
	}
	if err := s.eventoRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// BuscarEvento busca um evento pelo ID.
func (s *EventoService) BuscarEvento(ctx context.Context, id string) (*evento.Evento, error) {
	return s.eventoRepo.GetByID(ctx, id)
}

// ListarEventos retorna todos os eventos ordenados por data ascendente.
func (s *EventoService) ListarEventos(ctx context.Context) ([]*evento.Evento, error) {
	return s.eventoRepo.List(ctx)
}

type AtualizarEventoInput struct {
	ID          string
	Nome        *string
	Data        *time.Time
	Local       *string
	NumeroVagas *int
	Descricao   *string
}

// AtualizarEvento aplica somente os campos enviados sobre o evento existente,
// revalida a entidade mesclada e persiste.
func (s *EventoService) AtualizarEvento(ctx context.Context, input AtualizarEventoInput) (*evento.Evento, error) {
	e, err := s.eventoRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Nome != nil {
		e.Nome = *input.Nome
	}
	if input.Data != nil {
		e.Data = *input.Data
	}
	if input.Local != nil {
		e.Local = *input.Local
	}
	if input.NumeroVagas != nil {
		e.NumeroVagas = *input.NumeroVagas
	}
	if input.Descricao != nil {
		e.Descricao = *input.Descricao
	}

	if err := e.Validar(); err != nil {
		return nil, err
	}
	if err := s.eventoRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// RemoverEvento remove o evento e todas as suas inscrições.
// A cascata roda numa única transação: primeiro as inscrições, depois o evento.
func (s *EventoService) RemoverEvento(ctx context.Context, id string) error {
	if _, err := s.eventoRepo.GetByID(ctx, id); err != nil {
		return err
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.inscricaoRepo.DeleteByEvento(ctx, tx, id); err != nil {
		return err
	}
	if err := s.eventoRepo.Delete(ctx, tx, id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidarCache(ctx, id)
	return nil
}

// ListarParticipantes retorna os participantes inscritos no evento,
// cada um anotado com o ID e a data da inscrição.
func (s *EventoService) ListarParticipantes(ctx context.Context, eventoID string) ([]*evento.ParticipanteInscrito, error) {
	return s.eventoRepo.ListParticipantes(ctx, eventoID)
}

// VerificarVagas calcula o status de ocupação do evento.
// A contagem de inscrições passa pelo cache quando disponível.
func (s *EventoService) VerificarVagas(ctx context.Context, eventoID string) (*evento.StatusVagas, error) {
	e, err := s.eventoRepo.GetByID(ctx, eventoID)
	if err != nil {
		return nil, err
	}

	ocupadas, err := s.contarInscricoes(ctx, eventoID)
	if err != nil {
		return nil, err
	}

	return evento.NovoStatusVagas(e, ocupadas), nil
}

func (s *EventoService) contarInscricoes(ctx context.Context, eventoID string) (int, error) {
	if s.cache != nil {
		count, err := s.cache.GetVagasOcupadas(ctx, eventoID)
		if err == nil {
			logger.Debug("cache de vagas: hit", zap.String("evento_id", eventoID), zap.Int("ocupadas", count))
			return count, nil
		}
		if !errors.Is(err, redisinfra.ErrCacheMiss) {
			logger.Warn("cache de vagas: erro de leitura", zap.Error(err))
		}
	}

	count, err := s.inscricaoRepo.CountByEvento(ctx, eventoID)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		if cacheErr := s.cache.SetVagasOcupadas(ctx, eventoID, count, vagasCacheTTL); cacheErr != nil {
			logger.Warn("cache de vagas: erro de escrita", zap.Error(cacheErr))
		}
	}

	return count, nil
}

func (s *EventoService) invalidarCache(ctx context.Context, eventoID string) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, eventoID); err != nil {
			logger.Warn("cache de vagas: erro ao invalidar", zap.Error(err))
		}
	}
}
