package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/audit"
	"github.com/hfaria/ventura/internal/document"
	"github.com/hfaria/ventura/internal/http/response"
	"github.com/hfaria/ventura/internal/http/session"
	"github.com/hfaria/ventura/internal/investment"
)

type investmentResponse struct {
	ID            uuid.UUID         `json:"id"`
	InvestorID    uuid.UUID         `json:"investor_id"`
	BusinessID    uuid.UUID         `json:"business_id"`
	Amount        int64             `json:"amount"`
	Status        investment.Status `json:"status"`
	BusinessName  string            `json:"business_name,omitempty"`
	InvestorName  string            `json:"investor_name,omitempty"`
	InvestorEmail string            `json:"investor_email,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

func (h *Handler) listInvestments(w http.ResponseWriter, r *http.Request) {
	invs, err := h.investments.ListAll(r.Context())
	if err != nil {
		response.Internal(w, err)
		return
	}

	resp := make([]investmentResponse, len(invs))
	for i, inv := range invs {
		resp[i] = investmentResponse{
			ID:            inv.ID,
			InvestorID:    inv.InvestorID,
			BusinessID:    inv.BusinessID,
			Amount:        inv.Amount,
			Status:        inv.Status,
			BusinessName:  inv.BusinessName,
			InvestorName:  inv.InvestorName,
			InvestorEmail: inv.InvestorEmail,
			CreatedAt:     inv.CreatedAt,
		}
	}

	response.OK(w, http.StatusOK, resp)
}

type verifyDocumentRequest struct {
	Verified bool `json:"verified"`
}

func (h *Handler) verifyDocument(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid document id")
		return
	}

	var req verifyDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	admin := session.User(r.Context())

	d, err := h.documents.SetVerified(r.Context(), admin.ID, id, req.Verified)
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			response.Fail(w, http.StatusNotFound, "document not found")
			return
		}

		response.Internal(w, err)

		return
	}

	response.OK(w, http.StatusOK, map[string]any{
		"id":          d.ID,
		"verified":    d.Verified,
		"verified_by": d.VerifiedBy,
		"verified_at": d.VerifiedAt,
	})
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	o, err := h.stats.Overview(r.Context())
	if err != nil {
		response.Internal(w, err)
		return
	}

	response.OK(w, http.StatusOK, map[string]any{
		"total_users":        o.TotalUsers,
		"total_owners":       o.TotalOwners,
		"total_investors":    o.TotalInvestors,
		"total_businesses":   o.TotalBusinesses,
		"pending_businesses": o.PendingBusinesses,
		"total_investments":  o.TotalInvestments,
		"total_invested":     o.TotalInvested,
	})
}

func (h *Handler) analytics(w http.ResponseWriter, r *http.Request) {
	a, err := h.stats.Analytics(r.Context())
	if err != nil {
		response.Internal(w, err)
		return
	}

	response.OK(w, http.StatusOK, a)
}

type auditEntryResponse struct {
	ID         uuid.UUID      `json:"id"`
	ActorID    uuid.UUID      `json:"actor_id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   uuid.UUID      `json:"entity_id"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

func (h *Handler) listAudit(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	entityType := q.Get("entityType")
	entityIDStr := q.Get("entityId")

	if entityType != "" && entityIDStr != "" {
		entityID, err := uuid.Parse(entityIDStr)
		if err != nil {
			response.Fail(w, http.StatusBadRequest, "invalid entityId")
			return
		}

		es, err := h.audit.ListByEntity(r.Context(), entityType, entityID)
		if err != nil {
			response.Internal(w, err)
			return
		}

		response.OK(w, http.StatusOK, toAuditResponse(es))

		return
	}

	limit, _ := strconv.Atoi(q.Get("limit"))

	es, err := h.audit.ListRecent(r.Context(), limit)
	if err != nil {
		response.Internal(w, err)
		return
	}

	response.OK(w, http.StatusOK, toAuditResponse(es))
}

func toAuditResponse(es []*audit.Entry) []auditEntryResponse {
	resp := make([]auditEntryResponse, len(es))
	for i, e := range es {
		resp[i] = auditEntryResponse{
			ID:         e.ID,
			ActorID:    e.ActorID,
			Action:     e.Action,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Metadata:   e.Metadata,
			CreatedAt:  e.CreatedAt,
		}
	}

	return resp
}
