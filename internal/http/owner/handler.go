package owner

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hfaria/ventura/internal/http/response"
	"github.com/hfaria/ventura/internal/http/session"
	"github.com/hfaria/ventura/internal/stats"
)

// Handler serves the business-owner analytics surface.
type Handler struct {
	stats *stats.Service
}

func NewHandler(statistics *stats.Service) *Handler {
	return &Handler{stats: statistics}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/analytics", h.analytics)
}

func (h *Handler) analytics(w http.ResponseWriter, r *http.Request) {
	user := session.User(r.Context())

	a, err := h.stats.OwnerAnalytics(r.Context(), user.ID)
	if err != nil {
		response.Internal(w, err)
		return
	}

	response.OK(w, http.StatusOK, a)
}
