package postgres

import (
	"context"
	"database/sql"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/lib/pq"
	"github.com/pacsflow/pacsflow/ent"
	"github.com/pacsflow/pacsflow/internal/config"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/logger"
)

// IClient is the interface for the postgres client used by repositories.
// Querier returns the transactional client when the context carries an open
// transaction and the base client otherwise.
type IClient interface {
	Querier(ctx context.Context) *ent.Client
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	Close() error
}

type txKey struct{}

// Client implements IClient over an ent client.
type Client struct {
	entClient *ent.Client
	logger    *logger.Logger
}

// NewClient creates a new postgres client over an existing ent client.
func NewClient(entClient *ent.Client, logger *logger.Logger) IClient {
	return &Client{
		entClient: entClient,
		logger:    logger,
	}
}

// NewEntClient opens an ent client for the given DSN. The underlying
// database/sql pool connects lazily, so a malformed or unreachable DSN only
// surfaces at first query.
func NewEntClient(dsn string, cfg *config.PostgresConfig) (*ent.Client, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to open postgres connection").
			Mark(ierr.ErrDatabase)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	drv := entsql.OpenDB(dialect.Postgres, db)
	return ent.NewClient(ent.Driver(drv)), nil
}

// Querier returns the client to run queries with, honouring any transaction
// stored in the context by WithTx.
func (c *Client) Querier(ctx context.Context) *ent.Client {
	if tx, ok := ctx.Value(txKey{}).(*ent.Tx); ok {
		return tx.Client()
	}
	return c.entClient
}

// WithTx runs fn inside a transaction. Nested calls reuse the transaction
// already present in the context.
func (c *Client) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*ent.Tx); ok {
		return fn(ctx)
	}

	tx, err := c.entClient.Tx(ctx)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to start transaction").
			Mark(ierr.ErrDatabase)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			c.logger.Errorw("failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to commit transaction").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

// Close closes the underlying ent client.
func (c *Client) Close() error {
	return c.entClient.Close()
}
