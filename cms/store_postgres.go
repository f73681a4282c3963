package cms

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/wcc-platform/contentschema/page"
)

const createPagesTable = `CREATE TABLE IF NOT EXISTS pages (
	id         text PRIMARY KEY,
	content    jsonb NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
)`

// PostgresStore persists page documents in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres opens a connection pool for dsn and checks it is reachable.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	connector, err := pq.NewConnector(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	db := sql.OpenDB(connector)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}
	return db, nil
}

// NewPostgres constructs a PostgreSQL-backed page store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the pages table when it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createPagesTable); err != nil {
		return fmt.Errorf("create pages table: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, t page.Type) ([]byte, error) {
	var content []byte
	err := s.db.QueryRowContext(ctx, `SELECT content FROM pages WHERE id = $1`, t.ID()).Scan(&content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find page %s: %w", t.ID(), err)
	}
	return content, nil
}

func (s *PostgresStore) Save(ctx context.Context, t page.Type, content []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (id, content, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET content = EXCLUDED.content, updated_at = EXCLUDED.updated_at`,
		t.ID(), string(content))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Class() == "22" {
			return fmt.Errorf("save page %s: rejected by database: %s: %w", t.ID(), pqErr.Message, err)
		}
		return fmt.Errorf("save page %s: %w", t.ID(), err)
	}
	return nil
}
