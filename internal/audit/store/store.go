package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/audit"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectEntryColumns = `
	id, actor_id, action, entity_type, entity_id, metadata, created_at
`

func scanEntry(s scanner) (*audit.Entry, error) {
	var e audit.Entry

	var metadata []byte

	if err := s.Scan(&e.ID, &e.ActorID, &e.Action, &e.EntityType, &e.EntityID, &metadata, &e.CreatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(metadata, &e.Metadata); err != nil {
		return nil, fmt.Errorf("decoding audit metadata: %w", err)
	}

	return &e, nil
}

func (s *Store) CreateEntry(ctx context.Context, e *audit.Entry) error {
	metadata := e.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	encoded, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("encoding audit metadata: %w", err)
	}

	query := `
		INSERT INTO audit_logs (actor_id, action, entity_type, entity_id, metadata)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err = s.db.QueryRowContext(ctx, query, e.ActorID, e.Action, e.EntityType, e.EntityID, encoded).
		Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating audit entry: %w", err)
	}

	return nil
}

func (s *Store) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]*audit.Entry, error) {
	query := `SELECT ` + selectEntryColumns + `
		FROM audit_logs
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("listing audit entries: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func (s *Store) ListRecent(ctx context.Context, limit int) ([]*audit.Entry, error) {
	query := `SELECT ` + selectEntryColumns + `
		FROM audit_logs
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing audit entries: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func collectEntries(rows *sql.Rows) ([]*audit.Entry, error) {
	var entries []*audit.Entry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}
