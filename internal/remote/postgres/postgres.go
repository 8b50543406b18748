// Package postgres stores remote documents in a PostgreSQL table.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/budget-tracker/backend/internal/remote"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store keeps documents in the documents table, keyed by collection and ID.
type Store struct {
	Pool *pgxpool.Pool
}

var _ remote.Store = (*Store)(nil)

// New connects to the database and creates the schema if needed.
func New(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	s := &Store{Pool: pool}
	if err := s.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Migrate creates the documents table.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			id TEXT NOT NULL,
			data JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (collection, id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create documents table: %w", err)
	}

	return nil
}

// ReplaceCollection replaces the collection in a single transaction.
func (s *Store) ReplaceCollection(ctx context.Context, collection string, docs []remote.Document) error {
	collection = remote.Join(collection)

	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return unavailable(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `DELETE FROM documents WHERE collection = $1`, collection)
	if err != nil {
		return unavailable(err)
	}

	for _, d := range docs {
		_, err = tx.Exec(ctx,
			`INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)`,
			collection, d.ID, []byte(d.Data),
		)
		if err != nil {
			return unavailable(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return unavailable(err)
	}

	return nil
}

func (s *Store) ListCollection(ctx context.Context, collection string) ([]remote.Document, error) {
	rows, err := s.Pool.Query(ctx,
		`SELECT id, data FROM documents WHERE collection = $1 ORDER BY id ASC`,
		remote.Join(collection),
	)
	if err != nil {
		return nil, unavailable(err)
	}
	defer rows.Close()

	docs := []remote.Document{}
	for rows.Next() {
		var (
			id   string
			data []byte
		)
		if err := rows.Scan(&id, &data); err != nil {
			return nil, unavailable(err)
		}
		docs = append(docs, remote.Document{ID: id, Data: data})
	}

	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}

	return docs, nil
}

func (s *Store) PutDocument(ctx context.Context, path string, data json.RawMessage) error {
	collection, id, err := remote.Split(path)
	if err != nil {
		return err
	}

	_, err = s.Pool.Exec(ctx,
		`INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)
		 ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		collection, id, []byte(data),
	)
	if err != nil {
		return unavailable(err)
	}

	return nil
}

func (s *Store) GetDocument(ctx context.Context, path string) (json.RawMessage, error) {
	collection, id, err := remote.Split(path)
	if err != nil {
		return nil, err
	}

	var data []byte
	err = s.Pool.QueryRow(ctx,
		`SELECT data FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, remote.ErrNotFound
	}
	if err != nil {
		return nil, unavailable(err)
	}

	return data, nil
}

func (s *Store) Close() error {
	s.Pool.Close()
	return nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", remote.ErrUnavailable, err)
}
