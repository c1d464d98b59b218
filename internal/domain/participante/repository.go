package participante

import (
	"context"
	"time"

	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/transaction"
)

// EventoInscrito é um evento anotado com os dados da inscrição do participante.
type EventoInscrito struct {
	InscricaoID   string
	DataInscricao time.Time
	ID            string
	Nome          string
	Data          time.Time
	Local         string
	NumeroVagas   int
	Descricao     string
}

// Repository é a interface do repositório de participantes.
type Repository interface {
	// Create insere um novo participante e preenche o ID gerado.
	Create(ctx context.Context, p *Participante) error

	// GetByID busca um participante pelo ID.
	GetByID(ctx context.Context, id string) (*Participante, error)

	// GetByEmail busca um participante pelo email.
	// Retorna ErrParticipanteNaoEncontrado quando não há cadastro com o email.
	GetByEmail(ctx context.Context, email string) (*Participante, error)

	// List retorna todos os participantes ordenados por nome.
	List(ctx context.Context) ([]*Participante, error)

	// Update persiste o participante já mesclado e validado.
	Update(ctx context.Context, p *Participante) error

	// Delete remove o participante dentro da transação de remoção em cascata.
	Delete(ctx context.Context, tx transaction.Tx, id string) error

	// ListEventos retorna os eventos em que o participante está inscrito.
	ListEventos(ctx context.Context, participanteID string) ([]*EventoInscrito, error)
}
