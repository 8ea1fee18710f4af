package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/business"
	"github.com/hfaria/ventura/internal/http/response"
	"github.com/hfaria/ventura/internal/http/session"
)

type businessResponse struct {
	ID                  uuid.UUID       `json:"id"`
	OwnerID             uuid.UUID       `json:"owner_id"`
	OwnerName           string          `json:"owner_name,omitempty"`
	OwnerEmail          string          `json:"owner_email,omitempty"`
	Name                string          `json:"name"`
	Category            string          `json:"category,omitempty"`
	Status              business.Status `json:"status"`
	MinInvestmentAmount int64           `json:"min_investment_amount"`
	MaxInvestmentAmount int64           `json:"max_investment_amount"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func toBusinessResponse(b *business.Business) businessResponse {
	return businessResponse{
		ID:                  b.ID,
		OwnerID:             b.OwnerID,
		OwnerName:           b.OwnerName,
		OwnerEmail:          b.OwnerEmail,
		Name:                b.Name,
		Category:            b.Category,
		Status:              b.Status,
		MinInvestmentAmount: b.MinInvestmentAmount,
		MaxInvestmentAmount: b.MaxInvestmentAmount,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

func (h *Handler) listBusinesses(w http.ResponseWriter, r *http.Request) {
	filter := business.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		status, err := business.ParseStatus(s)
		if err != nil {
			response.Fail(w, http.StatusBadRequest, err.Error())
			return
		}

		filter.Status = new(status)
	}

	bs, err := h.businesses.ListAll(r.Context(), filter)
	if err != nil {
		response.Internal(w, err)
		return
	}

	resp := make([]businessResponse, len(bs))
	for i, b := range bs {
		resp[i] = toBusinessResponse(b)
	}

	response.OK(w, http.StatusOK, resp)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateBusinessStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid business id")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	admin := session.User(r.Context())

	b, err := h.businesses.UpdateStatus(r.Context(), admin.ID, id, business.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, business.ErrNotFound):
			response.Fail(w, http.StatusNotFound, "business not found")
		case errors.Is(err, business.ErrValidation):
			response.Fail(w, http.StatusBadRequest, err.Error())
		default:
			response.Internal(w, err)
		}

		return
	}

	response.OK(w, http.StatusOK, toBusinessResponse(b))
}
