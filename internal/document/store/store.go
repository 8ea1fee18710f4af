package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/document"
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

const selectDocumentColumns = `
	id, business_id, file_name, file_url, document_type, verified, verified_by, verified_at, created_at
`

func scanDocument(s scanner) (*document.Document, error) {
	var d document.Document

	var typeStr string

	if err := s.Scan(
		&d.ID, &d.BusinessID, &d.FileName, &d.FileURL, &typeStr,
		&d.Verified, &d.VerifiedBy, &d.VerifiedAt, &d.CreatedAt,
	); err != nil {
		return nil, err
	}

	d.DocumentType = document.Type(typeStr)

	return &d, nil
}

func (s *Store) CreateDocument(ctx context.Context, d *document.Document) error {
	query := `
		INSERT INTO documents (business_id, file_name, file_url, document_type, verified, verified_by, verified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		d.BusinessID, d.FileName, d.FileURL, d.DocumentType, d.Verified, d.VerifiedBy, d.VerifiedAt,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating document: %w", err)
	}

	return nil
}

func (s *Store) GetDocument(ctx context.Context, id uuid.UUID) (*document.Document, error) {
	query := `SELECT ` + selectDocumentColumns + ` FROM documents WHERE id = $1`

	d, err := scanDocument(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, document.ErrNotFound
		}

		return nil, fmt.Errorf("getting document: %w", err)
	}

	return d, nil
}

func (s *Store) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*document.Document, error) {
	query := `SELECT ` + selectDocumentColumns + `
		FROM documents
		WHERE business_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []*document.Document

	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}

		docs = append(docs, d)
	}

	return docs, rows.Err()
}

func (s *Store) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return document.ErrNotFound
	}

	return nil
}

func (s *Store) SetVerified(ctx context.Context, id uuid.UUID, verifiedBy *uuid.UUID, verifiedAt *time.Time) error {
	query := `
		UPDATE documents
		SET verified = $1, verified_by = $2, verified_at = $3
		WHERE id = $4
	`

	_, err := s.db.ExecContext(ctx, query, verifiedBy != nil, verifiedBy, verifiedAt, id)
	if err != nil {
		return fmt.Errorf("updating verification: %w", err)
	}

	return nil
}
