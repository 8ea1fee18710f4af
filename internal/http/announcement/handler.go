package announcement

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/announcement"
	"github.com/hfaria/ventura/internal/business"
	"github.com/hfaria/ventura/internal/http/response"
	"github.com/hfaria/ventura/internal/http/session"
)

type Handler struct {
	svc *announcement.Service
}

func NewHandler(svc *announcement.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.publish)
}

type announcementResponse struct {
	ID         uuid.UUID `json:"id"`
	BusinessID uuid.UUID `json:"business_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

func toResponse(a *announcement.Announcement) announcementResponse {
	return announcementResponse{
		ID:         a.ID,
		BusinessID: a.BusinessID,
		Title:      a.Title,
		Content:    a.Content,
		CreatedAt:  a.CreatedAt,
	}
}

type publishRequest struct {
	BusinessID uuid.UUID `json:"business_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
}

func (h *Handler) publish(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.svc.Publish(r.Context(), session.User(r.Context()), req.BusinessID, req.Title, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrNotFound):
			response.Fail(w, http.StatusNotFound, "business not found")
		case errors.Is(err, business.ErrForbidden):
			response.Fail(w, http.StatusForbidden, "only the owner can post announcements")
		case errors.Is(err, announcement.ErrValidation):
			response.Fail(w, http.StatusBadRequest, err.Error())
		default:
			response.Internal(w, err)
		}

		return
	}

	response.OK(w, http.StatusCreated, toResponse(a))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	businessID, err := uuid.Parse(r.URL.Query().Get("businessId"))
	if err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid businessId")
		return
	}

	as, err := h.svc.List(r.Context(), session.User(r.Context()), businessID)
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

	resp := make([]announcementResponse, len(as))
	for i, a := range as {
		resp[i] = toResponse(a)
	}

	response.OK(w, http.StatusOK, resp)
}
