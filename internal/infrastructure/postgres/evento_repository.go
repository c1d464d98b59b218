package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/evento"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/transaction"
)

// eventoRow representa uma linha da tabela eventos.
type eventoRow struct {
	ID          string    `db:"id"`
	Nome        string    `db:"nome"`
	Data        time.Time `db:"data"`
	Local       string    `db:"local"`
	NumeroVagas int       `db:"numero_vagas"`
	Descricao   *string   `db:"descricao"`
}

// toEntity converte a linha na entidade Evento.
func (r *eventoRow) toEntity() *evento.Evento {
	var descricao string
	if r.Descricao != nil {
		descricao = *r.Descricao
	}
	return &evento.Evento{
		ID:          r.ID,
		Nome:        r.Nome,
		Data:        r.Data,
		Local:       r.Local,
		NumeroVagas: r.NumeroVagas,
		Descricao:   descricao,
	}
}

// participanteInscritoRow representa a junção de inscrição com participante.
type participanteInscritoRow struct {
	InscricaoID   string    `db:"inscricao_id"`
	DataInscricao time.Time `db:"data_inscricao"`
	ID            string    `db:"id"`
	Nome          string    `db:"nome"`
	Email         string    `db:"email"`
}

// EventoRepository é a implementação PostgreSQL do repositório de eventos.
type EventoRepository struct {
	db *sqlx.DB
}

// NewEventoRepository cria um EventoRepository.
func NewEventoRepository(db *sqlx.DB) *EventoRepository {
	return &EventoRepository{db: db}
}

// Create insere um novo evento.
func (r *EventoRepository) Create(ctx context.Context, e *evento.Evento) error {
	query := `
		INSERT INTO eventos (nome, data, local, numero_vagas, descricao)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var descricao *string
	if e.Descricao != "" {
		descricao = &e.Descricao
	}

	err := r.db.QueryRowContext(ctx, query,
		e.Nome, e.Data, e.Local, e.NumeroVagas, descricao,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("erro ao inserir evento no banco: %w", err)
	}
	return nil
}

// GetByID busca um evento pelo ID.
func (r *EventoRepository) GetByID(ctx context.Context, id string) (*evento.Evento, error) {
	query := `SELECT id, nome, data, local, numero_vagas, descricao FROM eventos WHERE id = $1`

	var row eventoRow
	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, evento.ErrEventoNaoEncontrado
		}
		return nil, fmt.Errorf("erro ao buscar evento: %w", err)
	}
	return row.toEntity(), nil
}

// GetByIDForUpdate busca o evento travando a linha dentro da transação.
func (r *EventoRepository) GetByIDForUpdate(ctx context.Context, tx transaction.Tx, id string) (*evento.Evento, error) {
	query := `SELECT id, nome, data, local, numero_vagas, descricao FROM eventos WHERE id = $1 FOR UPDATE`

	sqlxTx := UnwrapTx(tx)
	if sqlxTx == nil {
		return nil, fmt.Errorf("transação inválida")
	}

	var row eventoRow
	err := sqlxTx.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, evento.ErrEventoNaoEncontrado
		}
		return nil, fmt.Errorf("erro ao buscar evento: %w", err)
	}
	return row.toEntity(), nil
}

// List retorna todos os eventos ordenados por data ascendente.
func (r *EventoRepository) List(ctx context.Context) ([]*evento.Evento, error) {
	query := `SELECT id, nome, data, local, numero_vagas, descricao FROM eventos ORDER BY data ASC`

	var rows []eventoRow
	err := r.db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar eventos: %w", err)
	}

	eventos := make([]*evento.Evento, len(rows))
	for i, row := range rows {
		eventos[i] = row.toEntity()
	}
	return eventos, nil
}

// Update persiste o evento já mesclado e validado.
func (r *EventoRepository) Update(ctx context.Context, e *evento.Evento) error {
	query := `
		UPDATE eventos
		SET nome = $1, data = $2, local = $3, numero_vagas = $4, descricao = $5
		WHERE id = $6
	`
	var descricao *string
	if e.Descricao != "" {
		descricao = &e.Descricao
	}

	result, err := r.db.ExecContext(ctx, query,
		e.Nome, e.Data, e.Local, e.NumeroVagas, descricao, e.ID,
	)
	if err != nil {
		return fmt.Errorf("erro ao atualizar evento: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar resultado da atualização: %w", err)
	}
	if rowsAffected == 0 {
		return evento.ErrEventoNaoEncontrado
	}
	return nil
}

// Delete remove o evento dentro da transação de remoção em cascata.
func (r *EventoRepository) Delete(ctx context.Context, tx transaction.Tx, id string) error {
	query := `DELETE FROM eventos WHERE id = $1`

	sqlxTx := UnwrapTx(tx)
	if sqlxTx == nil {
		return fmt.Errorf("transação inválida")
	}

	result, err := sqlxTx.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("erro ao remover evento: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar resultado da remoção: %w", err)
	}
	if rowsAffected == 0 {
		return evento.ErrEventoNaoEncontrado
	}
	return nil
}

// ListParticipantes retorna os participantes inscritos no evento.
func (r *EventoRepository) ListParticipantes(ctx context.Context, eventoID string) ([]*evento.ParticipanteInscrito, error) {
	query := `
		SELECT ep.id AS inscricao_id, ep.data_inscricao, p.id, p.nome, p.email
		FROM evento_participante ep
		JOIN participantes p ON p.id = ep.participante_id
		WHERE ep.evento_id = $1
		ORDER BY ep.data_inscricao ASC
	`

	var rows []participanteInscritoRow
	err := r.db.SelectContext(ctx, &rows, query, eventoID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar participantes: %w", err)
	}

	participantes := make([]*evento.ParticipanteInscrito, len(rows))
	for i, row := range rows {
		participantes[i] = &evento.ParticipanteInscrito{
			InscricaoID:   row.InscricaoID,
			DataInscricao: row.DataInscricao,
			ID:            row.ID,
			Nome:          row.Nome,
			Email:         row.Email,
		}
	}
	return participantes, nil
}

// CountAll conta os eventos cadastrados.
func (r *EventoRepository) CountAll(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM eventos`

	var count int
	err := r.db.GetContext(ctx, &count, query)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar eventos: %w", err)
	}
	return count, nil
}

var _ evento.Repository = (*EventoRepository)(nil)
