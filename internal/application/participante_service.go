package application

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/inscricao"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/participante"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/transaction"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/pkg/logger"
)

type ParticipanteService struct {
	participanteRepo participante.Repository
	inscricaoRepo    inscricao.Repository
	txManager        transaction.Manager
	cache            VagasCache
}

func NewParticipanteService(pr participante.Repository, ir inscricao.Repository, tm transaction.Manager, cache VagasCache) *ParticipanteService {
	return &ParticipanteService{participanteRepo: pr, inscricaoRepo: ir, txManager: tm, cache: cache}
}

type CriarParticipanteInput struct {
	Nome  string
	Email string
}

// CriarParticipante valida, verifica a unicidade do email e persiste.
// O banco também tem UNIQUE no email, então um corredor concorrente
// ainda esbarra em ErrEmailJaCadastrado vindo do repositório.
func (s *ParticipanteService) CriarParticipante(ctx context.Context, input CriarParticipanteInput) (*participante.Participante, error) {
	p := participante.NewParticipante(input.Nome, input.Email)
	if err := p.Validar(); err != nil {
		return nil, err
	}

	_, err := s.participanteRepo.GetByEmail(ctx, p.Email)
	if err == nil {
		return nil, participante.ErrEmailJaCadastrado
	}
	if !errors.Is(err, participante.ErrParticipanteNaoEncontrado) {
		return nil, err
	}

	if err := s.participanteRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// BuscarParticipante busca um participante pelo ID.
func (s *ParticipanteService) BuscarParticipante(ctx context.Context, id string) (*participante.Participante, error) {
	return s.participanteRepo.GetByID(ctx, id)
}

// ListarParticipantes retorna todos os participantes ordenados por nome.
func (s *ParticipanteService) ListarParticipantes(ctx context.Context) ([]*participante.Participante, error) {
	return s.participanteRepo.List(ctx)
}

type AtualizarParticipanteInput struct {
	ID    string
	Nome  *string
	Email *string
}

// AtualizarParticipante aplica somente os campos enviados, revalida e persiste.
// Se o email mudar, a unicidade é verificada excluindo o próprio participante.
func (s *ParticipanteService) AtualizarParticipante(ctx context.Context, input AtualizarParticipanteInput) (*participante.Participante, error) {
	p, err := s.participanteRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Nome != nil {
		p.Nome = *input.Nome
	}
	if input.Email != nil {
		existente, err := s.participanteRepo.GetByEmail(ctx, *input.Email)
		if err == nil && existente.ID != input.ID {
			return nil, participante.ErrEmailDeOutroParticipante
		}
		if err != nil && !errors.Is(err, participante.ErrParticipanteNaoEncontrado) {
			return nil, err
		}
		p.Email = *input.Email
	}

	if err := p.Validar(); err != nil {
		return nil, err
	}
	if err := s.participanteRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// RemoverParticipante remove o participante e todas as suas inscrições
// numa única transação: primeiro as inscrições, depois o participante.
// Cada evento em que ele estava inscrito tem a contagem de vagas
// invalidada no cache após o commit.
func (s *ParticipanteService) RemoverParticipante(ctx context.Context, id string) error {
	if _, err := s.participanteRepo.GetByID(ctx, id); err != nil {
		return err
	}

	eventos, err := s.participanteRepo.ListEventos(ctx, id)
	if err != nil {
		return err
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.inscricaoRepo.DeleteByParticipante(ctx, tx, id); err != nil {
		return err
	}
	if err := s.participanteRepo.Delete(ctx, tx, id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	for _, e := range eventos {
		s.invalidarCache(ctx, e.ID)
	}
	return nil
}

func (s *ParticipanteService) invalidarCache(ctx context.Context, eventoID string) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, eventoID); err != nil {
			logger.Warn("cache de vagas: erro ao invalidar", zap.Error(err))
		}
	}
}

// ListarEventos retorna os eventos em que o participante está inscrito,
// cada um anotado com o ID e a data da inscrição.
func (s *ParticipanteService) ListarEventos(ctx context.Context, participanteID string) ([]*participante.EventoInscrito, error) {
	return s.participanteRepo.ListEventos(ctx, participanteID)
}
