package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/epeers/company-accounts/internal/entity"
)

const uniqueViolation = "23505"

// PostgresStore is a DocumentStore keeping documents as JSONB rows keyed by
// (collection, id)
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to pgURL and ensures the documents table exists
func NewPostgresStore(ctx context.Context, pgURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, pgURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			id         TEXT NOT NULL,
			body       JSONB NOT NULL,
			created    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (collection, id)
		)
	`
	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create documents table: %w", err)
	}
	return nil
}

// Close closes the connection pool
func (s *PostgresStore) Close(_ context.Context) error {
	s.pool.Close()
	return nil
}

// Insert stores doc, failing with ErrDuplicateKey if the id is taken
func (s *PostgresStore) Insert(ctx context.Context, collection string, doc entity.Entity) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	query := `
		INSERT INTO documents (collection, id, body, created, updated)
		VALUES ($1, $2, $3::jsonb, NOW(), NOW())
	`
	_, err = s.pool.Exec(ctx, query, collection, doc.DocumentID(), string(body))
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicateKey
	}
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}
	return nil
}

// FindByID decodes the document stored under id into out
func (s *PostgresStore) FindByID(ctx context.Context, collection, id string, out entity.Entity) error {
	query := `
		SELECT body
		FROM documents
		WHERE collection = $1 AND id = $2
	`
	var body []byte
	err := s.pool.QueryRow(ctx, query, collection, id).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}
	return json.Unmarshal(body, out)
}

// Update replaces an existing document
func (s *PostgresStore) Update(ctx context.Context, collection string, doc entity.Entity) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	query := `
		UPDATE documents
		SET body = $3::jsonb, updated = NOW()
		WHERE collection = $1 AND id = $2
	`
	return s.exec(ctx, "update document", query, collection, doc.DocumentID(), string(body))
}

// Delete removes the document stored under id
func (s *PostgresStore) Delete(ctx context.Context, collection, id string) error {
	query := `DELETE FROM documents WHERE collection = $1 AND id = $2`
	return s.exec(ctx, "delete document", query, collection, id)
}

// SetLink adds or replaces one entry of the document's links map
func (s *PostgresStore) SetLink(ctx context.Context, collection, id, name, link string) error {
	query := `
		UPDATE documents
		SET body = jsonb_set(
				body,
				'{data,links}',
				COALESCE(body->'data'->'links', '{}'::jsonb) || jsonb_build_object($3::text, $4::text)
			),
			updated = NOW()
		WHERE collection = $1 AND id = $2
	`
	return s.exec(ctx, "set link", query, collection, id, name, link)
}

// RemoveLink deletes one entry of the document's links map
func (s *PostgresStore) RemoveLink(ctx context.Context, collection, id, name string) error {
	query := `
		UPDATE documents
		SET body = body #- ARRAY['data', 'links', $3::text], updated = NOW()
		WHERE collection = $1 AND id = $2
	`
	return s.exec(ctx, "remove link", query, collection, id, name)
}

func (s *PostgresStore) exec(ctx context.Context, op, query string, args ...any) error {
	result, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
