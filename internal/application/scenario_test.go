package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/evento"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/inscricao"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/participante"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/transaction"
)

// memoriaStore guarda o estado compartilhado dos repositórios em memória.
// O mutex faz o papel do FOR UPDATE: a transação de admissão roda serializada.
type memoriaStore struct {
	mu            sync.Mutex
	eventos       map[string]*evento.Evento
	participantes map[string]*participante.Participante
	inscricoes    map[string]*inscricao.Inscricao
}

func novaMemoriaStore() *memoriaStore {
	return &memoriaStore{
		eventos:       make(map[string]*evento.Evento),
		participantes: make(map[string]*participante.Participante),
		inscricoes:    make(map[string]*inscricao.Inscricao),
	}
}

func (s *memoriaStore) novoID() string {
	return uuid.NewString()
}

type memoriaTx struct {
	store *memoriaStore
	done  bool
}

func (t *memoriaTx) Commit() error {
	if !t.done {
		t.done = true
		t.store.mu.Unlock()
	}
	return nil
}

// Rollback após Commit é um no-op, igual ao defer tx.Rollback() real.
func (t *memoriaTx) Rollback() error {
	if !t.done {
		t.done = true
		t.store.mu.Unlock()
	}
	return nil
}

type memoriaTxManager struct{ store *memoriaStore }

func (m *memoriaTxManager) Begin(ctx context.Context) (transaction.Tx, error) {
	m.store.mu.Lock()
	return &memoriaTx{store: m.store}, nil
}

type memoriaEventoRepo struct{ store *memoriaStore }

func (r *memoriaEventoRepo) Create(ctx context.Context, e *evento.Evento) error {
	e.ID = r.store.novoID()
	r.store.eventos[e.ID] = e
	return nil
}

func (r *memoriaEventoRepo) GetByID(ctx context.Context, id string) (*evento.Evento, error) {
	e, ok := r.store.eventos[id]
	if !ok {
		return nil, evento.ErrEventoNaoEncontrado
	}
	copia := *e
	return &copia, nil
}

func (r *memoriaEventoRepo) GetByIDForUpdate(ctx context.Context, tx transaction.Tx, id string) (*evento.Evento, error) {
	return r.GetByID(ctx, id)
}

func (r *memoriaEventoRepo) List(ctx context.Context) ([]*evento.Evento, error) {
	eventos := make([]*evento.Evento, 0, len(r.store.eventos))
	for _, e := range r.store.eventos {
		copia := *e
		eventos = append(eventos, &copia)
	}
	return eventos, nil
}

func (r *memoriaEventoRepo) Update(ctx context.Context, e *evento.Evento) error {
	if _, ok := r.store.eventos[e.ID]; !ok {
		return evento.ErrEventoNaoEncontrado
	}
	copia := *e
	r.store.eventos[e.ID] = &copia
	return nil
}

func (r *memoriaEventoRepo) Delete(ctx context.Context, tx transaction.Tx, id string) error {
	if _, ok := r.store.eventos[id]; !ok {
		return evento.ErrEventoNaoEncontrado
	}
	delete(r.store.eventos, id)
	return nil
}

func (r *memoriaEventoRepo) ListParticipantes(ctx context.Context, eventoID string) ([]*evento.ParticipanteInscrito, error) {
	var inscritos []*evento.ParticipanteInscrito
	for _, i := range r.store.inscricoes {
		if i.EventoID != eventoID {
			continue
		}
		p := r.store.participantes[i.ParticipanteID]
		inscritos = append(inscritos, &evento.ParticipanteInscrito{
			InscricaoID:   i.ID,
			DataInscricao: i.DataInscricao,
			ID:            p.ID,
			Nome:          p.Nome,
			Email:         p.Email,
		})
	}
	return inscritos, nil
}

func (r *memoriaEventoRepo) CountAll(ctx context.Context) (int, error) {
	return len(r.store.eventos), nil
}

type memoriaParticipanteRepo struct{ store *memoriaStore }

func (r *memoriaParticipanteRepo) Create(ctx context.Context, p *participante.Participante) error {
	p.ID = r.store.novoID()
	r.store.participantes[p.ID] = p
	return nil
}

func (r *memoriaParticipanteRepo) GetByID(ctx context.Context, id string) (*participante.Participante, error) {
	p, ok := r.store.participantes[id]
	if !ok {
		return nil, participante.ErrParticipanteNaoEncontrado
	}
	copia := *p
	return &copia, nil
}

func (r *memoriaParticipanteRepo) GetByEmail(ctx context.Context, email string) (*participante.Participante, error) {
	for _, p := range r.store.participantes {
		if p.Email == email {
			copia := *p
			return &copia, nil
		}
	}
	return nil, participante.ErrParticipanteNaoEncontrado
}

func (r *memoriaParticipanteRepo) List(ctx context.Context) ([]*participante.Participante, error) {
	participantes := make([]*participante.Participante, 0, len(r.store.participantes))
	for _, p := range r.store.participantes {
		copia := *p
		participantes = append(participantes, &copia)
	}
	return participantes, nil
}

func (r *memoriaParticipanteRepo) Update(ctx context.Context, p *participante.Participante) error {
	if _, ok := r.store.participantes[p.ID]; !ok {
		return participante.ErrParticipanteNaoEncontrado
	}
	copia := *p
	r.store.participantes[p.ID] = &copia
	return nil
}

func (r *memoriaParticipanteRepo) Delete(ctx context.Context, tx transaction.Tx, id string) error {
	if _, ok := r.store.participantes[id]; !ok {
		return participante.ErrParticipanteNaoEncontrado
	}
	delete(r.store.participantes, id)
	return nil
}

func (r *memoriaParticipanteRepo) ListEventos(ctx context.Context, participanteID string) ([]*participante.EventoInscrito, error) {
	var eventos []*participante.EventoInscrito
	for _, i := range r.store.inscricoes {
		if i.ParticipanteID != participanteID {
			continue
		}
		e := r.store.eventos[i.EventoID]
		eventos = append(eventos, &participante.EventoInscrito{
			InscricaoID:   i.ID,
			DataInscricao: i.DataInscricao,
			ID:            e.ID,
			Nome:          e.Nome,
			Data:          e.Data,
			Local:         e.Local,
			NumeroVagas:   e.NumeroVagas,
			Descricao:     e.Descricao,
		})
	}
	return eventos, nil
}

type memoriaInscricaoRepo struct{ store *memoriaStore }

func (r *memoriaInscricaoRepo) Create(ctx context.Context, tx transaction.Tx, i *inscricao.Inscricao) error {
	for _, existente := range r.store.inscricoes {
		if existente.EventoID == i.EventoID && existente.ParticipanteID == i.ParticipanteID {
			return inscricao.ErrJaInscrito
		}
	}
	i.ID = r.store.novoID()
	copia := *i
	r.store.inscricoes[i.ID] = &copia
	return nil
}

func (r *memoriaInscricaoRepo) GetByID(ctx context.Context, id string) (*inscricao.Inscricao, error) {
	i, ok := r.store.inscricoes[id]
	if !ok {
		return nil, inscricao.ErrInscricaoNaoEncontrada
	}
	copia := *i
	return &copia, nil
}

func (r *memoriaInscricaoRepo) GetByEventoEParticipante(ctx context.Context, tx transaction.Tx, eventoID, participanteID string) (*inscricao.Inscricao, error) {
	for _, i := range r.store.inscricoes {
		if i.EventoID == eventoID && i.ParticipanteID == participanteID {
			copia := *i
			return &copia, nil
		}
	}
	return nil, inscricao.ErrInscricaoNaoEncontrada
}

func (r *memoriaInscricaoRepo) contarPorEvento(eventoID string) int {
	count := 0
	for _, i := range r.store.inscricoes {
		if i.EventoID == eventoID {
			count++
		}
	}
	return count
}

func (r *memoriaInscricaoRepo) CountByEvento(ctx context.Context, eventoID string) (int, error) {
	return r.contarPorEvento(eventoID), nil
}

func (r *memoriaInscricaoRepo) CountByEventoTx(ctx context.Context, tx transaction.Tx, eventoID string) (int, error) {
	return r.contarPorEvento(eventoID), nil
}

func (r *memoriaInscricaoRepo) CountAll(ctx context.Context) (int, error) {
	return len(r.store.inscricoes), nil
}

func (r *memoriaInscricaoRepo) DeleteByID(ctx context.Context, id string) error {
	if _, ok := r.store.inscricoes[id]; !ok {
		return inscricao.ErrInscricaoNaoEncontrada
	}
	delete(r.store.inscricoes, id)
	return nil
}

func (r *memoriaInscricaoRepo) DeleteByEventoEParticipante(ctx context.Context, eventoID, participanteID string) error {
	for id, i := range r.store.inscricoes {
		if i.EventoID == eventoID && i.ParticipanteID == participanteID {
			delete(r.store.inscricoes, id)
			return nil
		}
	}
	return inscricao.ErrInscricaoNaoEncontrada
}

func (r *memoriaInscricaoRepo) DeleteByEvento(ctx context.Context, tx transaction.Tx, eventoID string) error {
	for id, i := range r.store.inscricoes {
		if i.EventoID == eventoID {
			delete(r.store.inscricoes, id)
		}
	}
	return nil
}

func (r *memoriaInscricaoRepo) DeleteByParticipante(ctx context.Context, tx transaction.Tx, participanteID string) error {
	for id, i := range r.store.inscricoes {
		if i.ParticipanteID == participanteID {
			delete(r.store.inscricoes, id)
		}
	}
	return nil
}

func (r *memoriaInscricaoRepo) ListDetalhes(ctx context.Context) ([]*inscricao.Detalhe, error) {
	var detalhes []*inscricao.Detalhe
	for _, i := range r.store.inscricoes {
		e := r.store.eventos[i.EventoID]
		p := r.store.participantes[i.ParticipanteID]
		detalhes = append(detalhes, &inscricao.Detalhe{
			ID:            i.ID,
			DataInscricao: i.DataInscricao,
			Evento:        inscricao.EventoResumo{ID: e.ID, Nome: e.Nome, Data: e.Data, Local: e.Local},
			Participante:  inscricao.ParticipanteResumo{ID: p.ID, Nome: p.Nome, Email: p.Email},
		})
	}
	return detalhes, nil
}

func setupServicosEmMemoria() (*EventoService, *ParticipanteService, *InscricaoService) {
	store := novaMemoriaStore()
	eventoRepo := &memoriaEventoRepo{store: store}
	participanteRepo := &memoriaParticipanteRepo{store: store}
	inscricaoRepo := &memoriaInscricaoRepo{store: store}
	txManager := &memoriaTxManager{store: store}

	eventoService := NewEventoService(eventoRepo, inscricaoRepo, txManager, nil)
	participanteService := NewParticipanteService(participanteRepo, inscricaoRepo, txManager, nil)
	inscricaoService := NewInscricaoService(eventoRepo, participanteRepo, inscricaoRepo, txManager, nil, nil)
	return eventoService, participanteService, inscricaoService
}

// TestScenario_FluxoCompletoDeInscricao percorre o ciclo inteiro:
// criação do evento e dos participantes, lotação, cancelamento e reinscrição.
func TestScenario_FluxoCompletoDeInscricao(t *testing.T) {
	eventoService, participanteService, inscricaoService := setupServicosEmMemoria()
	ctx := context.Background()

	// 1. Evento com uma única vaga
	ev, err := eventoService.CriarEvento(ctx, CriarEventoInput{
		Nome:        "Meetup de Go",
		Data:        time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
		Local:       "Coworking Centro",
		NumeroVagas: 1,
	})
	require.NoError(t, err)
	require.NotEmpty(t, ev.ID)

	// 2. Dois participantes
	maria, err := participanteService.CriarParticipante(ctx, CriarParticipanteInput{
		Nome:  "Maria Silva",
		Email: "maria@example.com",
	})
	require.NoError(t, err)

	joao, err := participanteService.CriarParticipante(ctx, CriarParticipanteInput{
		Nome:  "João Souza",
		Email: "joao@example.com",
	})
	require.NoError(t, err)

	// 3. Maria ocupa a única vaga
	resultado, err := inscricaoService.Inscrever(ctx, ev.ID, maria.ID)
	require.NoError(t, err)
	assert.Equal(t, "Inscrição realizada com sucesso", resultado.Mensagem)

	// 4. Maria de novo: duplicada
	_, err = inscricaoService.Inscrever(ctx, ev.ID, maria.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, inscricao.ErrJaInscrito)

	// 5. João esbarra na lotação
	_, err = inscricaoService.Inscrever(ctx, ev.ID, joao.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, inscricao.ErrSemVagas)

	status, err := eventoService.VerificarVagas(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, status.VagasDisponiveis)
	assert.False(t, status.TemVagas)

	// 6. Maria cancela e a vaga volta
	err = inscricaoService.Cancelar(ctx, resultado.Inscricao.ID)
	require.NoError(t, err)

	status, err = eventoService.VerificarVagas(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, status.VagasDisponiveis)
	assert.True(t, status.TemVagas)

	// 7. Agora João entra
	resultado, err = inscricaoService.Inscrever(ctx, ev.ID, joao.ID)
	require.NoError(t, err)
	assert.Equal(t, joao.ID, resultado.Inscricao.ParticipanteID)

	inscritos, err := eventoService.ListarParticipantes(ctx, ev.ID)
	require.NoError(t, err)
	require.Len(t, inscritos, 1)
	assert.Equal(t, "João Souza", inscritos[0].Nome)
}

// TestScenario_RemocaoEmCascata remove evento e participante e confere
// que as inscrições somem junto.
func TestScenario_RemocaoEmCascata(t *testing.T) {
	eventoService, participanteService, inscricaoService := setupServicosEmMemoria()
	ctx := context.Background()

	ev, err := eventoService.CriarEvento(ctx, CriarEventoInput{
		Nome:        "Workshop de Testes",
		Data:        time.Date(2026, 12, 5, 0, 0, 0, 0, time.UTC),
		Local:       "Auditório",
		NumeroVagas: 10,
	})
	require.NoError(t, err)

	maria, err := participanteService.CriarParticipante(ctx, CriarParticipanteInput{
		Nome:  "Maria Silva",
		Email: "maria@example.com",
	})
	require.NoError(t, err)

	_, err = inscricaoService.Inscrever(ctx, ev.ID, maria.ID)
	require.NoError(t, err)

	// Remover o evento leva a inscrição junto
	err = eventoService.RemoverEvento(ctx, ev.ID)
	require.NoError(t, err)

	detalhes, err := inscricaoService.ListarTodas(ctx)
	require.NoError(t, err)
	assert.Empty(t, detalhes)

	// O participante sobrevive à remoção do evento
	_, err = participanteService.BuscarParticipante(ctx, maria.ID)
	require.NoError(t, err)

	eventos, err := participanteService.ListarEventos(ctx, maria.ID)
	require.NoError(t, err)
	assert.Empty(t, eventos)
}
