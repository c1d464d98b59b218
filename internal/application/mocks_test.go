package application

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/evento"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/inscricao"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/participante"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/transaction"
)

// MockEventoRepository é o mock de evento.Repository.
type MockEventoRepository struct {
	mock.Mock
}

func (m *MockEventoRepository) Create(ctx context.Context, e *evento.Evento) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventoRepository) GetByID(ctx context.Context, id string) (*evento.Evento, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*evento.Evento), args.Error(1)
}

func (m *MockEventoRepository) GetByIDForUpdate(ctx context.Context, tx transaction.Tx, id string) (*evento.Evento, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*evento.Evento), args.Error(1)
}

func (m *MockEventoRepository) List(ctx context.Context) ([]*evento.Evento, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*evento.Evento), args.Error(1)
}

func (m *MockEventoRepository) Update(ctx context.Context, e *evento.Evento) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventoRepository) Delete(ctx context.Context, tx transaction.Tx, id string) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

func (m *MockEventoRepository) ListParticipantes(ctx context.Context, eventoID string) ([]*evento.ParticipanteInscrito, error) {
	args := m.Called(ctx, eventoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*evento.ParticipanteInscrito), args.Error(1)
}

func (m *MockEventoRepository) CountAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockParticipanteRepository é o mock de participante.Repository.
type MockParticipanteRepository struct {
	mock.Mock
}

func (m *MockParticipanteRepository) Create(ctx context.Context, p *participante.Participante) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParticipanteRepository) GetByID(ctx context.Context, id string) (*participante.Participante, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*participante.Participante), args.Error(1)
}

func (m *MockParticipanteRepository) GetByEmail(ctx context.Context, email string) (*participante.Participante, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*participante.Participante), args.Error(1)
}

func (m *MockParticipanteRepository) List(ctx context.Context) ([]*participante.Participante, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*participante.Participante), args.Error(1)
}

func (m *MockParticipanteRepository) Update(ctx context.Context, p *participante.Participante) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParticipanteRepository) Delete(ctx context.Context, tx transaction.Tx, id string) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

func (m *MockParticipanteRepository) ListEventos(ctx context.Context, participanteID string) ([]*participante.EventoInscrito, error) {
	args := m.Called(ctx, participanteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*participante.EventoInscrito), args.Error(1)
}

// MockInscricaoRepository é o mock de inscricao.Repository.
type MockInscricaoRepository struct {
	mock.Mock
}

func (m *MockInscricaoRepository) Create(ctx context.Context, tx transaction.Tx, i *inscricao.Inscricao) error {
	args := m.Called(ctx, tx, i)
	return args.Error(0)
}

func (m *MockInscricaoRepository) GetByID(ctx context.Context, id string) (*inscricao.Inscricao, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inscricao.Inscricao), args.Error(1)
}

func (m *MockInscricaoRepository) GetByEventoEParticipante(ctx context.Context, tx transaction.Tx, eventoID, participanteID string) (*inscricao.Inscricao, error) {
	args := m.Called(ctx, tx, eventoID, participanteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inscricao.Inscricao), args.Error(1)
}

func (m *MockInscricaoRepository) CountByEvento(ctx context.Context, eventoID string) (int, error) {
	args := m.Called(ctx, eventoID)
	return args.Int(0), args.Error(1)
}

func (m *MockInscricaoRepository) CountByEventoTx(ctx context.Context, tx transaction.Tx, eventoID string) (int, error) {
	args := m.Called(ctx, tx, eventoID)
	return args.Int(0), args.Error(1)
}

func (m *MockInscricaoRepository) CountAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockInscricaoRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInscricaoRepository) DeleteByEventoEParticipante(ctx context.Context, eventoID, participanteID string) error {
	args := m.Called(ctx, eventoID, participanteID)
	return args.Error(0)
}

func (m *MockInscricaoRepository) DeleteByEvento(ctx context.Context, tx transaction.Tx, eventoID string) error {
	args := m.Called(ctx, tx, eventoID)
	return args.Error(0)
}

func (m *MockInscricaoRepository) DeleteByParticipante(ctx context.Context, tx transaction.Tx, participanteID string) error {
	args := m.Called(ctx, tx, participanteID)
	return args.Error(0)
}

func (m *MockInscricaoRepository) ListDetalhes(ctx context.Context) ([]*inscricao.Detalhe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inscricao.Detalhe), args.Error(1)
}

// MockTx é o mock de transaction.Tx.
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTx) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

// MockTxManager é o mock de transaction.Manager.
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) Begin(ctx context.Context) (transaction.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(transaction.Tx), args.Error(1)
}

// novaTxMock devolve um MockTx já preparado para Commit e Rollback.
func novaTxMock() *MockTx {
	tx := new(MockTx)
	tx.On("Commit").Return(nil)
	tx.On("Rollback").Return(nil)
	return tx
}

// MockVagasCache é o mock de VagasCache.
type MockVagasCache struct {
	mock.Mock
}

func (m *MockVagasCache) GetVagasOcupadas(ctx context.Context, eventoID string) (int, error) {
	args := m.Called(ctx, eventoID)
	return args.Int(0), args.Error(1)
}

func (m *MockVagasCache) SetVagasOcupadas(ctx context.Context, eventoID string, count int, ttl time.Duration) error {
	args := m.Called(ctx, eventoID, count, ttl)
	return args.Error(0)
}

func (m *MockVagasCache) Invalidate(ctx context.Context, eventoID string) error {
	args := m.Called(ctx, eventoID)
	return args.Error(0)
}
