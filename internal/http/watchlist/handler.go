package watchlist

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
	"github.com/hfaria/ventura/internal/watchlist"
)

type Handler struct {
	svc *watchlist.Service
}

func NewHandler(svc *watchlist.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.add)
	r.Delete("/", h.remove)
}

type entryResponse struct {
	ID             uuid.UUID `json:"id"`
	BusinessID     uuid.UUID `json:"business_id"`
	BusinessName   string    `json:"business_name,omitempty"`
	BusinessStatus string    `json:"business_status,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func toResponse(e *watchlist.Entry) entryResponse {
	return entryResponse{
		ID:             e.ID,
		BusinessID:     e.BusinessID,
		BusinessName:   e.BusinessName,
		BusinessStatus: e.BusinessStatus,
		CreatedAt:      e.CreatedAt,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.List(r.Context(), session.User(r.Context()).ID)
	if err != nil {
		response.Internal(w, err)
		return
	}

	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toResponse(e)
	}

	response.OK(w, http.StatusOK, resp)
}

type addRequest struct {
	BusinessID uuid.UUID `json:"business_id"`
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.svc.Add(r.Context(), session.User(r.Context()).ID, req.BusinessID)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrNotFound):
			response.Fail(w, http.StatusNotFound, "business not found")
		case errors.Is(err, business.ErrForbidden):
			response.Fail(w, http.StatusForbidden, "no access to this business")
		default:
			response.Internal(w, err)
		}

		return
	}

	response.OK(w, http.StatusCreated, toResponse(e))
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	businessID, err := uuid.Parse(r.URL.Query().Get("businessId"))
	if err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid businessId")
		return
	}

	if err := h.svc.Remove(r.Context(), session.User(r.Context()).ID, businessID); err != nil {
		if errors.Is(err, watchlist.ErrNotFound) {
			response.Fail(w, http.StatusNotFound, "watchlist entry not found")
			return
		}

		response.Internal(w, err)

		return
	}

	response.OK(w, http.StatusOK, map[string]any{"removed": true})
}
