package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/inscricao"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/transaction"
)

// inscricaoRow representa uma linha da tabela evento_participante.
type inscricaoRow struct {
	ID             string    `db:"id"`
	EventoID       string    `db:"evento_id"`
	ParticipanteID string    `db:"participante_id"`
	DataInscricao  time.Time `db:"data_inscricao"`
}

func (r *inscricaoRow) toEntity() *inscricao.Inscricao {
	return &inscricao.Inscricao{
		ID:             r.ID,
		EventoID:       r.EventoID,
		ParticipanteID: r.ParticipanteID,
		DataInscricao:  r.DataInscricao,
	}
}

// detalheRow representa a junção de inscrição com evento e participante.
type detalheRow struct {
	ID                string    `db:"id"`
	DataInscricao     time.Time `db:"data_inscricao"`
	EventoID          string    `db:"evento_id"`
	EventoNome        string    `db:"evento_nome"`
	EventoData        time.Time `db:"evento_data"`
	EventoLocal       string    `db:"evento_local"`
	ParticipanteID    string    `db:"participante_id"`
	ParticipanteNome  string    `db:"participante_nome"`
	ParticipanteEmail string    `db:"participante_email"`
}

// InscricaoRepository é a implementação PostgreSQL do repositório de inscrições.
type InscricaoRepository struct {
	db *sqlx.DB
}

// NewInscricaoRepository cria um InscricaoRepository.
func NewInscricaoRepository(db *sqlx.DB) *InscricaoRepository {
	return &InscricaoRepository{db: db}
}

// Create insere a inscrição dentro da transação de admissão.
func (r *InscricaoRepository) Create(ctx context.Context, tx transaction.Tx, i *inscricao.Inscricao) error {
	query := `
		INSERT INTO evento_participante (evento_id, participante_id, data_inscricao)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	sqlxTx := UnwrapTx(tx)
	if sqlxTx == nil {
		return fmt.Errorf("transação inválida")
	}

	err := sqlxTx.QueryRowContext(ctx, query,
		i.EventoID, i.ParticipanteID, i.DataInscricao,
	).Scan(&i.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return inscricao.ErrJaInscrito
		}
		return fmt.Errorf("erro ao criar inscrição: %w", err)
	}
	return nil
}

// GetByID busca uma inscrição pelo ID.
func (r *InscricaoRepository) GetByID(ctx context.Context, id string) (*inscricao.Inscricao, error) {
	query := `SELECT id, evento_id, participante_id, data_inscricao FROM evento_participante WHERE id = $1`

	var row inscricaoRow
	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, inscricao.ErrInscricaoNaoEncontrada
		}
		return nil, fmt.Errorf("erro ao buscar inscrição: %w", err)
	}
	return row.toEntity(), nil
}

// GetByEventoEParticipante busca a inscrição do par dentro da transação.
func (r *InscricaoRepository) GetByEventoEParticipante(ctx context.Context, tx transaction.Tx, eventoID, participanteID string) (*inscricao.Inscricao, error) {
	query := `
		SELECT id, evento_id, participante_id, data_inscricao
		FROM evento_participante
		WHERE evento_id = $1 AND participante_id = $2
	`
	sqlxTx := UnwrapTx(tx)
	if sqlxTx == nil {
		return nil, fmt.Errorf("transação inválida")
	}

	var row inscricaoRow
	err := sqlxTx.GetContext(ctx, &row, query, eventoID, participanteID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, inscricao.ErrInscricaoNaoEncontrada
		}
		return nil, fmt.Errorf("erro ao buscar inscrição: %w", err)
	}
	return row.toEntity(), nil
}

// CountByEvento conta as inscrições de um evento.
func (r *InscricaoRepository) CountByEvento(ctx context.Context, eventoID string) (int, error) {
	query := `SELECT COUNT(*) FROM evento_participante WHERE evento_id = $1`

	var count int
	err := r.db.GetContext(ctx, &count, query, eventoID)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar inscrições: %w", err)
	}
	return count, nil
}

// CountByEventoTx conta as inscrições do evento dentro da transação de admissão.
func (r *InscricaoRepository) CountByEventoTx(ctx context.Context, tx transaction.Tx, eventoID string) (int, error) {
	query := `SELECT COUNT(*) FROM evento_participante WHERE evento_id = $1`

	sqlxTx := UnwrapTx(tx)
	if sqlxTx == nil {
		return 0, fmt.Errorf("transação inválida")
	}

	var count int
	err := sqlxTx.GetContext(ctx, &count, query, eventoID)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar inscrições: %w", err)
	}
	return count, nil
}

// CountAll conta todas as inscrições registradas.
func (r *InscricaoRepository) CountAll(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM evento_participante`

	var count int
	err := r.db.GetContext(ctx, &count, query)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar inscrições: %w", err)
	}
	return count, nil
}

// DeleteByID remove a inscrição pelo ID.
func (r *InscricaoRepository) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM evento_participante WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("erro ao remover inscrição: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar resultado da remoção: %w", err)
	}
	if rowsAffected == 0 {
		return inscricao.ErrInscricaoNaoEncontrada
	}
	return nil
}

// DeleteByEventoEParticipante remove a inscrição do par (evento, participante).
func (r *InscricaoRepository) DeleteByEventoEParticipante(ctx context.Context, eventoID, participanteID string) error {
	query := `DELETE FROM evento_participante WHERE evento_id = $1 AND participante_id = $2`

	result, err := r.db.ExecContext(ctx, query, eventoID, participanteID)
	if err != nil {
		return fmt.Errorf("erro ao remover inscrição: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar resultado da remoção: %w", err)
	}
	if rowsAffected == 0 {
		return inscricao.ErrInscricaoNaoEncontrada
	}
	return nil
}

// DeleteByEvento remove todas as inscrições de um evento.
func (r *InscricaoRepository) DeleteByEvento(ctx context.Context, tx transaction.Tx, eventoID string) error {
	query := `DELETE FROM evento_participante WHERE evento_id = $1`

	sqlxTx := UnwrapTx(tx)
	if sqlxTx == nil {
		return fmt.Errorf("transação inválida")
	}

	if _, err := sqlxTx.ExecContext(ctx, query, eventoID); err != nil {
		return fmt.Errorf("erro ao remover inscrições do evento: %w", err)
	}
	return nil
}

// DeleteByParticipante remove todas as inscrições de um participante.
func (r *InscricaoRepository) DeleteByParticipante(ctx context.Context, tx transaction.Tx, participanteID string) error {
	query := `DELETE FROM evento_participante WHERE participante_id = $1`

	sqlxTx := UnwrapTx(tx)
	if sqlxTx == nil {
		return fmt.Errorf("transação inválida")
	}

	if _, err := sqlxTx.ExecContext(ctx, query, participanteID); err != nil {
		return fmt.Errorf("erro ao remover inscrições do participante: %w", err)
	}
	return nil
}

// ListDetalhes lista todas as inscrições com evento e participante.
func (r *InscricaoRepository) ListDetalhes(ctx context.Context) ([]*inscricao.Detalhe, error) {
	query := `
		SELECT ep.id, ep.data_inscricao,
		       e.id AS evento_id, e.nome AS evento_nome, e.data AS evento_data, e.local AS evento_local,
		       p.id AS participante_id, p.nome AS participante_nome, p.email AS participante_email
		FROM evento_participante ep
		JOIN eventos e ON e.id = ep.evento_id
		JOIN participantes p ON p.id = ep.participante_id
		ORDER BY ep.data_inscricao DESC
	`

	var rows []detalheRow
	err := r.db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar inscrições: %w", err)
	}

	detalhes := make([]*inscricao.Detalhe, len(rows))
	for i, row := range rows {
		detalhes[i] = &inscricao.Detalhe{
			ID:            row.ID,
			DataInscricao: row.DataInscricao,
			Evento: inscricao.EventoResumo{
				ID:    row.EventoID,
				Nome:  row.EventoNome,
				Data:  row.EventoData,
				Local: row.EventoLocal,
			},
			Participante: inscricao.ParticipanteResumo{
				ID:    row.ParticipanteID,
				Nome:  row.ParticipanteNome,
				Email: row.ParticipanteEmail,
			},
		}
	}
	return detalhes, nil
}

var _ inscricao.Repository = (*InscricaoRepository)(nil)
