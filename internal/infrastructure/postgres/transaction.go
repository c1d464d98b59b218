package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/transaction"
)

// TxWrapper adapta sqlx.Tx para a interface transaction.Tx.
type TxWrapper struct {
	*sqlx.Tx
}

// Commit confirma a transação.
func (t *TxWrapper) Commit() error {
	return t.Tx.Commit()
}

// Rollback desfaz a transação.
func (t *TxWrapper) Rollback() error {
	return t.Tx.Rollback()
}

// TxManager implementa transaction.Manager sobre sqlx.DB.
type TxManager struct {
	db *sqlx.DB
}

// NewTxManager cria um TxManager.
func NewTxManager(db *sqlx.DB) *TxManager {
	return &TxManager{db: db}
}

// Begin inicia uma nova transação.
func (m *TxManager) Begin(ctx context.Context) (transaction.Tx, error) {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &TxWrapper{Tx: tx}, nil
}

// UnwrapTx extrai o sqlx.Tx de uma transaction.Tx.
// Usado pelas implementações dos repositórios.
func UnwrapTx(tx transaction.Tx) *sqlx.Tx {
	if wrapper, ok := tx.(*TxWrapper); ok {
		return wrapper.Tx
	}
	return nil
}

var _ transaction.Manager = (*TxManager)(nil)
