package investment

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/auth"
	"github.com/hfaria/ventura/internal/business"
	"github.com/hfaria/ventura/internal/http/response"
	"github.com/hfaria/ventura/internal/http/session"
	"github.com/hfaria/ventura/internal/investment"
)

type Handler struct {
	svc *investment.Service
}

func NewHandler(svc *investment.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}/agreement", h.agreement)
}

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

func toResponse(inv *investment.Investment) investmentResponse {
	return investmentResponse{
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

func toResponseList(invs []*investment.Investment) []investmentResponse {
	resp := make([]investmentResponse, len(invs))
	for i, inv := range invs {
		resp[i] = toResponse(inv)
	}

	return resp
}

type createInvestmentRequest struct {
	BusinessID uuid.UUID `json:"business_id"`
	Amount     int64     `json:"amount"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	user := session.User(r.Context())
	if err := auth.Authorize(user, auth.RoleInvestor); err != nil {
		response.Fail(w, http.StatusForbidden, "only investors can invest")
		return
	}

	var req createInvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inv, err := h.svc.Create(r.Context(), user.ID, req.BusinessID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrNotFound):
			response.Fail(w, http.StatusNotFound, "business not found")
		case errors.Is(err, investment.ErrNotInvestable):
			response.Fail(w, http.StatusBadRequest, "business is not approved for investments")
		case errors.Is(err, investment.ErrNoAccess):
			response.Fail(w, http.StatusForbidden, "no access to this business")
		case errors.Is(err, investment.ErrInvalidAmount):
			response.Fail(w, http.StatusBadRequest, err.Error())
		default:
			response.Internal(w, err)
		}

		return
	}

	response.OK(w, http.StatusCreated, toResponse(inv))
}

// list serves investors their own investments and owners the
// investments made into their businesses.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	user := session.User(r.Context())

	var (
		invs []*investment.Investment
		err  error
	)

	switch user.Role {
	case auth.RoleInvestor:
		invs, err = h.svc.ListForInvestor(r.Context(), user.ID)
	case auth.RoleBusinessOwner:
		invs, err = h.svc.ListForOwner(r.Context(), user.ID)
	case auth.RoleAdmin:
		invs, err = h.svc.ListAll(r.Context())
	default:
		response.Fail(w, http.StatusForbidden, "insufficient permissions")
		return
	}

	if err != nil {
		response.Internal(w, err)
		return
	}

	response.OK(w, http.StatusOK, toResponseList(invs))
}

// agreement serves the rendered HTML document, not the JSON envelope.
func (h *Handler) agreement(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid investment id")
		return
	}

	html, err := h.svc.Agreement(r.Context(), session.User(r.Context()), id)
	if err != nil {
		switch {
		case errors.Is(err, investment.ErrNotFound), errors.Is(err, business.ErrNotFound):
			response.Fail(w, http.StatusNotFound, "investment not found")
		case errors.Is(err, investment.ErrNoAccess):
			response.Fail(w, http.StatusForbidden, "no access to this agreement")
		default:
			response.Internal(w, err)
		}

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(html); err != nil {
		return
	}
}
