package document

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/business"
	"github.com/hfaria/ventura/internal/document"
	"github.com/hfaria/ventura/internal/http/response"
	"github.com/hfaria/ventura/internal/http/session"
)

const maxUploadBytes = 16 << 20

type Handler struct {
	svc *document.Service
}

func NewHandler(svc *document.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts under /businesses/{id}/documents.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.upload)
	r.Delete("/{docID}", h.delete)
}

type documentResponse struct {
	ID           uuid.UUID     `json:"id"`
	BusinessID   uuid.UUID     `json:"business_id"`
	FileName     string        `json:"file_name"`
	FileURL      string        `json:"file_url"`
	DocumentType document.Type `json:"document_type"`
	Verified     bool          `json:"verified"`
	VerifiedBy   *uuid.UUID    `json:"verified_by,omitempty"`
	VerifiedAt   *time.Time    `json:"verified_at,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

func toResponse(d *document.Document) documentResponse {
	return documentResponse{
		ID:           d.ID,
		BusinessID:   d.BusinessID,
		FileName:     d.FileName,
		FileURL:      d.FileURL,
		DocumentType: d.DocumentType,
		Verified:     d.Verified,
		VerifiedBy:   d.VerifiedBy,
		VerifiedAt:   d.VerifiedAt,
		CreatedAt:    d.CreatedAt,
	}
}

func toResponseList(docs []*document.Document) []documentResponse {
	resp := make([]documentResponse, len(docs))
	for i, d := range docs {
		resp[i] = toResponse(d)
	}

	return resp
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	businessID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid business id")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Fail(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	docType, err := document.ParseType(r.FormValue("document_type"))
	if err != nil {
		response.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	d, err := h.svc.Upload(r.Context(), session.User(r.Context()), businessID, header.Filename, docType, file)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, http.StatusCreated, toResponse(d))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	businessID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid business id")
		return
	}

	docs, err := h.svc.List(r.Context(), session.User(r.Context()), businessID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, http.StatusOK, toResponseList(docs))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	businessID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid business id")
		return
	}

	docID, err := uuid.Parse(chi.URLParam(r, "docID"))
	if err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid document id")
		return
	}

	if err := h.svc.Delete(r.Context(), session.User(r.Context()), businessID, docID); err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, http.StatusOK, map[string]any{"deleted": true})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, business.ErrNotFound), errors.Is(err, document.ErrNotFound):
		response.Fail(w, http.StatusNotFound, "not found")
	case errors.Is(err, document.ErrForbidden), errors.Is(err, business.ErrForbidden):
		response.Fail(w, http.StatusForbidden, "not allowed")
	default:
		response.Internal(w, err)
	}
}
