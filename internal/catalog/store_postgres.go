package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is the subset of pgx execution methods shared by [pgxpool.Pool]
// and [pgx.Tx]. The repositories run against it so the same implementation
// serves both pooled one-off queries and transactional unit-of-work calls.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// PostgresUnitOfWork implements [UnitOfWork] on a pgx connection pool. Each
// Run call opens one transaction, binds all three repositories to it, and
// commits only when fn returns nil.
type PostgresUnitOfWork struct {
	pool *pgxpool.Pool
}

// NewPostgresUnitOfWork constructs a PostgreSQL backed unit of work.
func NewPostgresUnitOfWork(pool *pgxpool.Pool) *PostgresUnitOfWork {
	return &PostgresUnitOfWork{pool: pool}
}

// Run executes fn inside a single transaction.
func (uow *PostgresUnitOfWork) Run(ctx context.Context, fn func(s Stores) error) error {
	transaction, err := uow.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}

	// Reclaims the connection if fn errors or panics. Rollback after a
	// successful commit is a harmless no-op.
	defer transaction.Rollback(ctx)

	if err := fn(newStores(transaction)); err != nil {
		return err
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: failed to commit transaction: %w", err)
	}

	return nil
}

// newStores binds the three repositories to one execution target.
func newStores(db querier) Stores {
	return Stores{
		Authors:   &authorRepository{db: db},
		Books:     &bookRepository{db: db},
		Relations: &relationRepository{db: db},
	}
}
