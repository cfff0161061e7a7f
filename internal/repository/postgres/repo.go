package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/pkg/apperr"
)

type key string

const keyDbTx key = "db_tx"

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// executor is satisfied by both *sqlx.DB and *sqlx.Tx; Chk picks whichever
// the current context carries.
type executor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

func (r *Repository) Chk(ctx context.Context) executor {
	if tx, ok := ctx.Value(keyDbTx).(*sqlx.Tx); ok {
		return tx
	}
	return r.connection
}

// WithTx runs cb inside a single database transaction. Everything the
// callback does through Chk(ctx) commits or rolls back as one unit.
func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	tx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return storeErr("failed to begin transaction", err)
	}

	ctx = context.WithValue(ctx, keyDbTx, tx)

	if err := cb(ctx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return storeErr("failed to commit transaction", err)
	}

	return nil
}

// Postgres aborts one side of a deadlock (40P01) and rejects serialization
// conflicts (40001); both are safe for the caller to retry.
func transientStoreFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}
	return errors.Is(err, context.DeadlineExceeded)
}

func storeErr(msg string, err error) error {
	if transientStoreFailure(err) {
		return apperr.TransientStore(msg, err)
	}
	return fmt.Errorf("%s: %v", msg, err)
}
