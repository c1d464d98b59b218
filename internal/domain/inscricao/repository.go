package inscricao

import (
	"context"

	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/transaction"
)

// Repository é a interface do repositório de inscrições.
type Repository interface {
	// Create insere a inscrição dentro da transação de admissão e preenche o ID.
	// A violação da restrição UNIQUE (evento_id, participante_id) é traduzida
	// para ErrJaInscrito.
	Create(ctx context.Context, tx transaction.Tx, i *Inscricao) error

	// GetByID busca uma inscrição pelo ID.
	GetByID(ctx context.Context, id string) (*Inscricao, error)

	// GetByEventoEParticipante busca a inscrição do par dentro da transação.
	// Retorna ErrInscricaoNaoEncontrada quando o par não está inscrito.
	GetByEventoEParticipante(ctx context.Context, tx transaction.Tx, eventoID, participanteID string) (*Inscricao, error)

	// CountByEvento conta as inscrições de um evento.
	CountByEvento(ctx context.Context, eventoID string) (int, error)

	// CountByEventoTx conta as inscrições do evento dentro da transação de admissão.
	CountByEventoTx(ctx context.Context, tx transaction.Tx, eventoID string) (int, error)

	// CountAll conta todas as inscrições registradas.
	CountAll(ctx context.Context) (int, error)

	// DeleteByID remove a inscrição pelo ID.
	DeleteByID(ctx context.Context, id string) error

	// DeleteByEventoEParticipante remove a inscrição do par (evento, participante).
	DeleteByEventoEParticipante(ctx context.Context, eventoID, participanteID string) error

	// DeleteByEvento remove todas as inscrições de um evento (cascata da remoção).
	DeleteByEvento(ctx context.Context, tx transaction.Tx, eventoID string) error

	// DeleteByParticipante remove todas as inscrições de um participante.
	DeleteByParticipante(ctx context.Context, tx transaction.Tx, participanteID string) error

	// ListDetalhes lista todas as inscrições com evento e participante,
	// ordenadas por data de inscrição decrescente.
	ListDetalhes(ctx context.Context) ([]*Detalhe, error)
}
