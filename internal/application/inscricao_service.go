package application

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/evento"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/inscricao"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/participante"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/transaction"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/pkg/logger"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/pkg/metrics"
)

type InscricaoService struct {
	eventoRepo       evento.Repository
	participanteRepo participante.Repository
	inscricaoRepo    inscricao.Repository
	txManager        transaction.Manager
	cache            VagasCache
	metrics          *metrics.Metrics
}

func NewInscricaoService(
	er evento.Repository,
	pr participante.Repository,
	ir inscricao.Repository,
	tm transaction.Manager,
	cache VagasCache,
	m *metrics.Metrics,
) *InscricaoService {
	return &InscricaoService{
		eventoRepo:       er,
		participanteRepo: pr,
		inscricaoRepo:    ir,
		txManager:        tm,
		cache:            cache,
		metrics:          m,
	}
}

// ResultadoInscricao é o retorno da admissão: a inscrição criada junto
// com os registros completos de evento e participante.
type ResultadoInscricao struct {
	Mensagem     string
	Inscricao    *inscricao.Inscricao
	Evento       *evento.Evento
	Participante *participante.Participante
}

// Inscrever executa o procedimento de admissão:
// existência do evento e do participante, duplicidade e capacidade.
// Duplicidade e capacidade são verificadas dentro de uma única transação
// com a linha do evento travada (FOR UPDATE); a restrição UNIQUE de
// (evento_id, participante_id) fecha qualquer corrida restante.
func (s *InscricaoService) Inscrever(ctx context.Context, eventoID, participanteID string) (*ResultadoInscricao, error) {
	ev, err := s.eventoRepo.GetByID(ctx, eventoID)
	if err != nil {
		s.contabilizar(statusPorErro(err))
		return nil, err
	}

	p, err := s.participanteRepo.GetByID(ctx, participanteID)
	if err != nil {
		s.contabilizar(statusPorErro(err))
		return nil, err
	}

	insc := inscricao.NewInscricao(eventoID, participanteID)
	if err := insc.Validar(); err != nil {
		s.contabilizar("erro")
		return nil, err
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		s.contabilizar("erro")
		return nil, err
	}
	defer tx.Rollback()

	evTravado, err := s.eventoRepo.GetByIDForUpdate(ctx, tx, eventoID)
	if err != nil {
		s.contabilizar(statusPorErro(err))
		return nil, err
	}

	_, err = s.inscricaoRepo.GetByEventoEParticipante(ctx, tx, eventoID, participanteID)
	if err == nil {
		s.contabilizar("ja_inscrito")
		return nil, inscricao.ErrJaInscrito
	}
	if !errors.Is(err, inscricao.ErrInscricaoNaoEncontrada) {
		s.contabilizar("erro")
		return nil, err
	}

	ocupadas, err := s.inscricaoRepo.CountByEventoTx(ctx, tx, eventoID)
	if err != nil {
		s.contabilizar("erro")
		return nil, err
	}
	if !evTravado.TemVagasDisponiveis(ocupadas) {
		s.contabilizar("sem_vagas")
		return nil, inscricao.ErrSemVagas
	}

	if err := s.inscricaoRepo.Create(ctx, tx, insc); err != nil {
		s.contabilizar(statusPorErro(err))
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		s.contabilizar("erro")
		return nil, err
	}

	s.invalidarCache(ctx, eventoID)
	s.contabilizar("sucesso")

	logger.Info("inscrição realizada",
		zap.String("inscricao_id", insc.ID),
		zap.String("evento_id", eventoID),
		zap.String("participante_id", participanteID),
	)

	return &ResultadoInscricao{
		Mensagem:     "Inscrição realizada com sucesso",
		Inscricao:    insc,
		Evento:       ev,
		Participante: p,
	}, nil
}

// Cancelar remove a inscrição pelo ID.
func (s *InscricaoService) Cancelar(ctx context.Context, inscricaoID string) error {
	insc, err := s.inscricaoRepo.GetByID(ctx, inscricaoID)
	if err != nil {
		return err
	}
	if err := s.inscricaoRepo.DeleteByID(ctx, inscricaoID); err != nil {
		return err
	}
	s.invalidarCache(ctx, insc.EventoID)
	return nil
}

// CancelarPorEventoParticipante remove a inscrição do par (evento, participante).
func (s *InscricaoService) CancelarPorEventoParticipante(ctx context.Context, eventoID, participanteID string) error {
	if err := s.inscricaoRepo.DeleteByEventoEParticipante(ctx, eventoID, participanteID); err != nil {
		return err
	}
	s.invalidarCache(ctx, eventoID)
	return nil
}

// ListarTodas lista todas as inscrições com evento e participante,
// ordenadas por data de inscrição decrescente.
func (s *InscricaoService) ListarTodas(ctx context.Context) ([]*inscricao.Detalhe, error) {
	return s.inscricaoRepo.ListDetalhes(ctx)
}

func (s *InscricaoService) invalidarCache(ctx context.Context, eventoID string) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, eventoID); err != nil {
			logger.Warn("cache de vagas: erro ao invalidar", zap.Error(err))
		}
	}
}

func (s *InscricaoService) contabilizar(status string) {
	if s.metrics != nil {
		s.metrics.InscricoesTotal.WithLabelValues(status).Inc()
	}
}

func statusPorErro(err error) string {
	switch {
	case errors.Is(err, evento.ErrEventoNaoEncontrado),
		errors.Is(err, participante.ErrParticipanteNaoEncontrado):
		return "nao_encontrado"
	case errors.Is(err, inscricao.ErrJaInscrito):
		return "ja_inscrito"
	case errors.Is(err, inscricao.ErrSemVagas):
		return "sem_vagas"
	default:
		return "erro"
	}
}
