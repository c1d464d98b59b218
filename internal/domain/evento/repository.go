package evento

import (
	"context"
	"time"

	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/transaction"
)

// ParticipanteInscrito é um participante anotado com os dados da sua inscrição no evento.
type ParticipanteInscrito struct {
	InscricaoID   string
	DataInscricao time.Time
	ID            string
	Nome          string
	Email         string
}

// Repository é a interface do repositório de eventos.
type Repository interface {
	// Create insere um novo evento e preenche o ID gerado.
	Create(ctx context.Context, e *Evento) error

	// GetByID busca um evento pelo ID.
	GetByID(ctx context.Context, id string) (*Evento, error)

	// GetByIDForUpdate busca o evento dentro da transação travando a linha
	// (usado pelo procedimento de admissão de inscrições).
	GetByIDForUpdate(ctx context.Context, tx transaction.Tx, id string) (*Evento, error)

	// List retorna todos os eventos ordenados por data ascendente.
	List(ctx context.Context) ([]*Evento, error)

	// Update persiste o evento já mesclado e validado.
	Update(ctx context.Context, e *Evento) error

	// Delete remove o evento dentro da transação de remoção em cascata.
	Delete(ctx context.Context, tx transaction.Tx, id string) error

	// ListParticipantes retorna os participantes inscritos no evento.
	ListParticipantes(ctx context.Context, eventoID string) ([]*ParticipanteInscrito, error)

	// CountAll conta os eventos cadastrados.
	CountAll(ctx context.Context) (int, error)
}
