package transaction

import "context"

// Tx representa uma transação em andamento.
// A abstração evita que o domínio dependa da infraestrutura (sqlx etc).
type Tx interface {
	// Commit confirma a transação.
	Commit() error
	// Rollback desfaz a transação.
	Rollback() error
}

// Manager abre novas transações.
type Manager interface {
	// Begin inicia uma nova transação.
	Begin(ctx context.Context) (Tx, error)
}
