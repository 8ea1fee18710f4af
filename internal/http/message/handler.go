package message

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
	"github.com/hfaria/ventura/internal/message"
)

type Handler struct {
	svc *message.Service
}

func NewHandler(svc *message.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.send)
}

type messageResponse struct {
	ID          uuid.UUID `json:"id"`
	BusinessID  uuid.UUID `json:"business_id"`
	SenderID    uuid.UUID `json:"sender_id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	SenderName  string    `json:"sender_name"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

func toResponse(m *message.Message) messageResponse {
	return messageResponse{
		ID:          m.ID,
		BusinessID:  m.BusinessID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		SenderName:  m.SenderName,
		Content:     m.Content,
		CreatedAt:   m.CreatedAt,
	}
}

type sendRequest struct {
	BusinessID  uuid.UUID  `json:"business_id"`
	RecipientID *uuid.UUID `json:"recipient_id,omitempty"`
	Content     string     `json:"content"`
}

func (h *Handler) send(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := h.svc.Send(r.Context(), session.User(r.Context()), req.BusinessID, req.RecipientID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrNotFound):
			response.Fail(w, http.StatusNotFound, "business not found")
		case errors.Is(err, business.ErrForbidden):
			response.Fail(w, http.StatusForbidden, "no access to this conversation")
		case errors.Is(err, message.ErrValidation):
			response.Fail(w, http.StatusBadRequest, err.Error())
		default:
			response.Internal(w, err)
		}

		return
	}

	response.OK(w, http.StatusCreated, toResponse(m))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	businessID, err := uuid.Parse(r.URL.Query().Get("businessId"))
	if err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid businessId")
		return
	}

	ms, err := h.svc.List(r.Context(), session.User(r.Context()), businessID)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrNotFound):
			response.Fail(w, http.StatusNotFound, "business not found")
		case errors.Is(err, business.ErrForbidden):
			response.Fail(w, http.StatusForbidden, "no access to this conversation")
		default:
			response.Internal(w, err)
		}

		return
	}

	resp := make([]messageResponse, len(ms))
	for i, m := range ms {
		resp[i] = toResponse(m)
	}

	response.OK(w, http.StatusOK, resp)
}
