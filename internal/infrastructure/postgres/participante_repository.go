package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/participante"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/transaction"
)

// participanteRow representa uma linha da tabela participantes.
type participanteRow struct {
	ID    string `db:"id"`
	Nome  string `db:"nome"`
	Email string `db:"email"`
}

func (r *participanteRow) toEntity() *participante.Participante {
	return &participante.Participante{
		ID:    r.ID,
		Nome:  r.Nome,
		Email: r.Email,
	}
}

// eventoInscritoRow representa a junção de inscrição com evento.
type eventoInscritoRow struct {
	InscricaoID   string    `db:"inscricao_id"`
	DataInscricao time.Time `db:"data_inscricao"`
	ID            string    `db:"id"`
	Nome          string    `db:"nome"`
	Data          time.Time `db:"data"`
	Local         string    `db:"local"`
	NumeroVagas   int       `db:"numero_vagas"`
	Descricao     *string   `db:"descricao"`
}

// ParticipanteRepository é a implementação PostgreSQL do repositório de participantes.
type ParticipanteRepository struct {
	db *sqlx.DB
}

// NewParticipanteRepository cria um ParticipanteRepository.
func NewParticipanteRepository(db *sqlx.DB) *ParticipanteRepository {
	return &ParticipanteRepository{db: db}
}

// Create insere um novo participante.
// A restrição UNIQUE de email vira ErrEmailJaCadastrado.
func (r *ParticipanteRepository) Create(ctx context.Context, p *participante.Participante) error {
	query := `
		INSERT INTO participantes (nome, email)
		VALUES ($1, $2)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, p.Nome, p.Email).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return participante.ErrEmailJaCadastrado
		}
		return fmt.Errorf("erro ao inserir participante no banco: %w", err)
	}
	return nil
}

// GetByID busca um participante pelo ID.
func (r *ParticipanteRepository) GetByID(ctx context.Context, id string) (*participante.Participante, error) {
	query := `SELECT id, nome, email FROM participantes WHERE id = $1`

	var row participanteRow
	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, participante.ErrParticipanteNaoEncontrado
		}
		return nil, fmt.Errorf("erro ao buscar participante: %w", err)
	}
	return row.toEntity(), nil
}

// GetByEmail busca um participante pelo email.
func (r *ParticipanteRepository) GetByEmail(ctx context.Context, email string) (*participante.Participante, error) {
	query := `SELECT id, nome, email FROM participantes WHERE email = $1`

	var row participanteRow
	err := r.db.GetContext(ctx, &row, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, participante.ErrParticipanteNaoEncontrado
		}
		return nil, fmt.Errorf("erro ao buscar participante por email: %w", err)
	}
	return row.toEntity(), nil
}

// List retorna todos os participantes ordenados por nome.
func (r *ParticipanteRepository) List(ctx context.Context) ([]*participante.Participante, error) {
	query := `SELECT id, nome, email FROM participantes ORDER BY nome ASC`

	var rows []participanteRow
	err := r.db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar participantes: %w", err)
	}

	participantes := make([]*participante.Participante, len(rows))
	for i, row := range rows {
		participantes[i] = row.toEntity()
	}
	return participantes, nil
}

// Update persiste o participante já mesclado e validado.
func (r *ParticipanteRepository) Update(ctx context.Context, p *participante.Participante) error {
	query := `UPDATE participantes SET nome = $1, email = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, p.Nome, p.Email, p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return participante.ErrEmailDeOutroParticipante
		}
		return fmt.Errorf("erro ao atualizar participante: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar resultado da atualização: %w", err)
	}
	if rowsAffected == 0 {
		return participante.ErrParticipanteNaoEncontrado
	}
	return nil
}

// Delete remove o participante dentro da transação de remoção em cascata.
func (r *ParticipanteRepository) Delete(ctx context.Context, tx transaction.Tx, id string) error {
	query := `DELETE FROM participantes WHERE id = $1`

	sqlxTx := UnwrapTx(tx)
	if sqlxTx == nil {
		return fmt.Errorf("transação inválida")
	}

	result, err := sqlxTx.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("erro ao remover participante: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar resultado da remoção: %w", err)
	}
	if rowsAffected == 0 {
		return participante.ErrParticipanteNaoEncontrado
	}
	return nil
}

// ListEventos retorna os eventos em que o participante está inscrito.
func (r *ParticipanteRepository) ListEventos(ctx context.Context, participanteID string) ([]*participante.EventoInscrito, error) {
	query := `
		SELECT ep.id AS inscricao_id, ep.data_inscricao,
		       e.id, e.nome, e.data, e.local, e.numero_vagas, e.descricao
		FROM evento_participante ep
		JOIN eventos e ON e.id = ep.evento_id
		WHERE ep.participante_id = $1
		ORDER BY ep.data_inscricao ASC
	`

	var rows []eventoInscritoRow
	err := r.db.SelectContext(ctx, &rows, query, participanteID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar eventos: %w", err)
	}

	eventos := make([]*participante.EventoInscrito, len(rows))
	for i, row := range rows {
		var descricao string
		if row.Descricao != nil {
			descricao = *row.Descricao
		}
		eventos[i] = &participante.EventoInscrito{
			InscricaoID:   row.InscricaoID,
			DataInscricao: row.DataInscricao,
			ID:            row.ID,
			Nome:          row.Nome,
			Data:          row.Data,
			Local:         row.Local,
			NumeroVagas:   row.NumeroVagas,
			Descricao:     descricao,
		}
	}
	return eventos, nil
}

var _ participante.Repository = (*ParticipanteRepository)(nil)
