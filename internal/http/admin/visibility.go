package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/http/response"
	"github.com/hfaria/ventura/internal/http/session"
	"github.com/hfaria/ventura/internal/visibility"
)

type grantResponse struct {
	ID             uuid.UUID `json:"id"`
	InvestorID     uuid.UUID `json:"investor_id"`
	BusinessID     uuid.UUID `json:"business_id"`
	InvestorName   string    `json:"investor_name,omitempty"`
	InvestorEmail  string    `json:"investor_email,omitempty"`
	BusinessName   string    `json:"business_name,omitempty"`
	BusinessStatus string    `json:"business_status,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func toGrantResponse(g *visibility.Grant) grantResponse {
	return grantResponse{
		ID:             g.ID,
		InvestorID:     g.InvestorID,
		BusinessID:     g.BusinessID,
		InvestorName:   g.InvestorName,
		InvestorEmail:  g.InvestorEmail,
		BusinessName:   g.BusinessName,
		BusinessStatus: g.BusinessStatus,
		CreatedAt:      g.CreatedAt,
	}
}

func (h *Handler) listGrants(w http.ResponseWriter, r *http.Request) {
	grants, err := h.visibility.ListAll(r.Context())
	if err != nil {
		response.Internal(w, err)
		return
	}

	resp := make([]grantResponse, len(grants))
	for i, g := range grants {
		resp[i] = toGrantResponse(g)
	}

	response.OK(w, http.StatusOK, resp)
}

type createGrantRequest struct {
	InvestorID uuid.UUID `json:"investor_id"`
	BusinessID uuid.UUID `json:"business_id"`
}

func (h *Handler) createGrant(w http.ResponseWriter, r *http.Request) {
	var req createGrantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	admin := session.User(r.Context())

	g, err := h.visibility.Grant(r.Context(), admin.ID, req.InvestorID, req.BusinessID)
	if err != nil {
		switch {
		case errors.Is(err, visibility.ErrInvalidInvestor):
			response.Fail(w, http.StatusBadRequest, "target user is not an investor")
		case errors.Is(err, visibility.ErrNotFound):
			response.Fail(w, http.StatusNotFound, "business not found")
		case errors.Is(err, visibility.ErrDuplicate):
			response.Fail(w, http.StatusConflict, "business already assigned to this investor")
		default:
			response.Internal(w, err)
		}

		return
	}

	response.OK(w, http.StatusCreated, toGrantResponse(g))
}
