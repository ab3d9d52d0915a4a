package drivers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/lib/pq"
	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
)

const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
)

// Define context key for transactions
type contextKey int

const (
	CtxTxKey contextKey = iota
)

// Executor interface for both DB and Tx
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// PostgresStorage implements storage.Storage with transaction support
type PostgresStorage struct {
	db  *sql.DB
	dsn string
}

func NewPostgresStorage(db *sql.DB, dsn string) *PostgresStorage {
	return &PostgresStorage{db: db, dsn: dsn}
}

// getExecutor returns current transaction or main DB
func (s *PostgresStorage) getExecutor(ctx context.Context) Executor {
	if tx, ok := ctx.Value(CtxTxKey).(*sql.Tx); ok {
		return tx
	}
	return s.db
}

// WithTransaction executes a function within a database transaction.
// Nested calls reuse the outer transaction.
func (s *PostgresStorage) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	if _, ok := ctx.Value(CtxTxKey).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	txCtx := context.WithValue(ctx, CtxTxKey, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Migrate applies every pending migration found in mpath.
func (s *PostgresStorage) Migrate(mpath string) error {
	migr, err := migrate.New(fmt.Sprintf("file://%s", mpath), s.dsn)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}
	defer migr.Close()

	if err := migr.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation
}

// deleteByID runs a single-row delete and reports notFound when nothing was
// removed.
func (s *PostgresStorage) deleteByID(ctx context.Context, table string, id int64, notFound error) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table)

	result, err := s.getExecutor(ctx).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}

// periodFilter builds the common "shift date within period, optionally for
// some ids" condition. The date column is always bound to $1 and $2.
func periodFilter(dateColumn, idColumn string, from, to models.Date, ids []int64) (string, []interface{}) {
	var b strings.Builder
	args := []interface{}{from, to}

	fmt.Fprintf(&b, " WHERE %s BETWEEN $1 AND $2", dateColumn)
	if ids != nil {
		fmt.Fprintf(&b, " AND %s = ANY($3)", idColumn)
		args = append(args, pq.Array(ids))
	}

	return b.String(), args
}
