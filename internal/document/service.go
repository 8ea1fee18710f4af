package document

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/auth"
	"github.com/hfaria/ventura/internal/business"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=document
type Repository interface {
	CreateDocument(ctx context.Context, d *Document) error
	GetDocument(ctx context.Context, id uuid.UUID) (*Document, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*Document, error)
	DeleteDocument(ctx context.Context, id uuid.UUID) error
	SetVerified(ctx context.Context, id uuid.UUID, verifiedBy *uuid.UUID, verifiedAt *time.Time) error
}

// BusinessSource resolves the business a document belongs to.
type BusinessSource interface {
	GetBusiness(ctx context.Context, id uuid.UUID) (*business.Business, error)
}

// GrantChecker answers whether an investor holds a visibility grant.
type GrantChecker interface {
	Has(ctx context.Context, investorID, businessID uuid.UUID) (bool, error)
}

// FileStore persists uploaded file content and returns its public URL.
type FileStore interface {
	Save(fileName string, r io.Reader) (fileURL string, err error)
	Remove(fileURL string) error
}

type Auditor interface {
	Record(ctx context.Context, actorID uuid.UUID, action, entityType string, entityID uuid.UUID, metadata map[string]any) error
}

type Service struct {
	repo       Repository
	businesses BusinessSource
	grants     GrantChecker
	files      FileStore
	auditor    Auditor
}

func NewService(repo Repository, businesses BusinessSource, grants GrantChecker, files FileStore, auditor Auditor) *Service {
	return &Service{repo: repo, businesses: businesses, grants: grants, files: files, auditor: auditor}
}

// Upload stores a file for a business. Only the owner may upload.
func (s *Service) Upload(ctx context.Context, actor *auth.SessionUser, businessID uuid.UUID, fileName string, docType Type, r io.Reader) (*Document, error) {
	b, err := s.businesses.GetBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	if actor.Role != auth.RoleBusinessOwner || !auth.IsOwner(actor.ID, b.OwnerID) {
		return nil, ErrForbidden
	}

	if _, err := ParseType(string(docType)); err != nil {
		return nil, err
	}

	fileURL, err := s.files.Save(fileName, r)
	if err != nil {
		return nil, fmt.Errorf("storing file: %w", err)
	}

	d := &Document{
		BusinessID:   businessID,
		FileName:     fileName,
		FileURL:      fileURL,
		DocumentType: docType,
	}
	if err := s.repo.CreateDocument(ctx, d); err != nil {
		return nil, err
	}

	if err := s.auditor.Record(ctx, actor.ID, "upload_document", "Document", d.ID,
		map[string]any{"businessId": businessID.String(), "documentType": string(docType)}); err != nil {
		slog.Warn("upload audit failed", "document_id", d.ID, "error", err)
	}

	return d, nil
}

// List applies the business access rule: owner, admin, or an investor
// holding a grant on an approved business.
func (s *Service) List(ctx context.Context, viewer *auth.SessionUser, businessID uuid.UUID) ([]*Document, error) {
	b, err := s.businesses.GetBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	switch viewer.Role {
	case auth.RoleAdmin:
	case auth.RoleBusinessOwner:
		if !auth.IsOwner(viewer.ID, b.OwnerID) {
			return nil, ErrForbidden
		}
	case auth.RoleInvestor:
		if b.Status != business.StatusApproved {
			return nil, ErrForbidden
		}

		ok, err := s.grants.Has(ctx, viewer.ID, businessID)
		if err != nil {
			return nil, fmt.Errorf("checking grant: %w", err)
		}

		if !ok {
			return nil, ErrForbidden
		}
	default:
		return nil, ErrForbidden
	}

	return s.repo.ListByBusiness(ctx, businessID)
}

// Delete removes a document. Owner only; the document must belong to
// the business.
func (s *Service) Delete(ctx context.Context, actor *auth.SessionUser, businessID, docID uuid.UUID) error {
	b, err := s.businesses.GetBusiness(ctx, businessID)
	if err != nil {
		return err
	}

	if actor.Role != auth.RoleBusinessOwner || !auth.IsOwner(actor.ID, b.OwnerID) {
		return ErrForbidden
	}

	d, err := s.repo.GetDocument(ctx, docID)
	if err != nil {
		return err
	}

	if d.BusinessID != businessID {
		return ErrNotFound
	}

	if err := s.repo.DeleteDocument(ctx, docID); err != nil {
		return err
	}

	if err := s.files.Remove(d.FileURL); err != nil {
		slog.Warn("removing stored file failed", "document_id", docID, "error", err)
	}

	if err := s.auditor.Record(ctx, actor.ID, "delete_document", "Document", docID,
		map[string]any{"businessId": businessID.String()}); err != nil {
		slog.Warn("delete audit failed", "document_id", docID, "error", err)
	}

	return nil
}

// SetVerified marks a document verified or clears the verification.
// Admin only (enforced at the HTTP layer; actorID is the verifier).
func (s *Service) SetVerified(ctx context.Context, actorID, docID uuid.UUID, verified bool) (*Document, error) {
	d, err := s.repo.GetDocument(ctx, docID)
	if err != nil {
		return nil, err
	}

	if verified {
		now := time.Now()
		d.VerifiedBy = &actorID
		d.VerifiedAt = &now
	} else {
		d.VerifiedBy = nil
		d.VerifiedAt = nil
	}

	d.Verified = verified

	if err := s.repo.SetVerified(ctx, docID, d.VerifiedBy, d.VerifiedAt); err != nil {
		return nil, err
	}

	return d, nil
}

// RecordAgreement implements investment.AgreementRecorder: it files the
// generated agreement as a pre-verified document on the business.
func (s *Service) RecordAgreement(ctx context.Context, businessID, investmentID, investorID uuid.UUID) error {
	now := time.Now()

	d := &Document{
		BusinessID:   businessID,
		FileName:     fmt.Sprintf("investment-agreement-%s.html", investmentID),
		FileURL:      fmt.Sprintf("/api/investments/%s/agreement", investmentID),
		DocumentType: TypeAgreement,
		Verified:     true,
		VerifiedBy:   &investorID,
		VerifiedAt:   &now,
	}

	return s.repo.CreateDocument(ctx, d)
}
