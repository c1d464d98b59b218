package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/rodrigues-yn/Gestao-de-eventos/internal/config"
)

// NewConnection abre a conexão com o PostgreSQL.
func NewConnection(cfg *config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no banco de dados: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

// Ping verifica a conexão com o banco.
func Ping(ctx context.Context, db *sqlx.DB) error {
	return db.PingContext(ctx)
}
