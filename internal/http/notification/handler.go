package notification

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/http/response"
	"github.com/hfaria/ventura/internal/http/session"
	"github.com/hfaria/ventura/internal/notification"
)

type Handler struct {
	svc *notification.Service
}

func NewHandler(svc *notification.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Patch("/", h.markRead)
}

type notificationResponse struct {
	ID        uuid.UUID         `json:"id"`
	Kind      notification.Kind `json:"type"`
	Message   string            `json:"message"`
	Data      map[string]any    `json:"data,omitempty"`
	Read      bool              `json:"read"`
	CreatedAt time.Time         `json:"created_at"`
}

type listResponse struct {
	Notifications []notificationResponse `json:"notifications"`
	Unread        int                    `json:"unread"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	user := session.User(r.Context())

	ns, err := h.svc.ListForUser(r.Context(), user.ID)
	if err != nil {
		response.Internal(w, err)
		return
	}

	unread, err := h.svc.CountUnread(r.Context(), user.ID)
	if err != nil {
		response.Internal(w, err)
		return
	}

	resp := listResponse{Notifications: make([]notificationResponse, len(ns)), Unread: unread}
	for i, n := range ns {
		resp.Notifications[i] = notificationResponse{
			ID:        n.ID,
			Kind:      n.Kind,
			Message:   n.Message,
			Data:      n.Data,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}

	response.OK(w, http.StatusOK, resp)
}

type markReadRequest struct {
	ID  *uuid.UUID `json:"id,omitempty"`
	All bool       `json:"all,omitempty"`
}

func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
	var req markReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user := session.User(r.Context())

	switch {
	case req.All:
		if err := h.svc.MarkAllRead(r.Context(), user.ID); err != nil {
			response.Internal(w, err)
			return
		}
	case req.ID != nil:
		if err := h.svc.MarkRead(r.Context(), user.ID, *req.ID); err != nil {
			if errors.Is(err, notification.ErrNotFound) {
				response.Fail(w, http.StatusNotFound, "notification not found")
				return
			}

			response.Internal(w, err)

			return
		}
	default:
		response.Fail(w, http.StatusBadRequest, "id or all is required")
		return
	}

	response.OK(w, http.StatusOK, map[string]any{"updated": true})
}
