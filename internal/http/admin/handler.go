package admin

import (
	"github.com/go-chi/chi/v5"

	"github.com/hfaria/ventura/internal/audit"
	"github.com/hfaria/ventura/internal/business"
	"github.com/hfaria/ventura/internal/document"
	"github.com/hfaria/ventura/internal/importer"
	"github.com/hfaria/ventura/internal/investment"
	"github.com/hfaria/ventura/internal/stats"
	"github.com/hfaria/ventura/internal/user"
	"github.com/hfaria/ventura/internal/visibility"
)

// Handler bundles the admin-only surface. The /api/admin subtree is
// role-fenced at the router, so handlers here trust the session role.
type Handler struct {
	users       *user.Service
	imports     *importer.Service
	businesses  *business.Service
	visibility  *visibility.Service
	investments *investment.Service
	documents   *document.Service
	stats       *stats.Service
	audit       *audit.Service
}

func NewHandler(
	users *user.Service,
	imports *importer.Service,
	businesses *business.Service,
	grants *visibility.Service,
	investments *investment.Service,
	documents *document.Service,
	statistics *stats.Service,
	auditLog *audit.Service,
) *Handler {
	return &Handler{
		users:       users,
		imports:     imports,
		businesses:  businesses,
		visibility:  grants,
		investments: investments,
		documents:   documents,
		stats:       statistics,
		audit:       auditLog,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Post("/", h.createUser)
		r.Post("/import", h.importUsers)
		r.Patch("/{id}", h.updateUser)
		r.Delete("/{id}", h.deleteUser)
		r.Patch("/{id}/reset-password", h.resetPassword)
	})

	r.Get("/businesses", h.listBusinesses)
	r.Patch("/businesses/{id}/status", h.updateBusinessStatus)

	r.Get("/visibility", h.listGrants)
	r.Post("/visibility", h.createGrant)

	r.Get("/investments", h.listInvestments)

	r.Patch("/documents/{id}/verify", h.verifyDocument)

	r.Get("/stats", h.overview)
	r.Get("/analytics", h.analytics)
	r.Get("/audit", h.listAudit)
}
