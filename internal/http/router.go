package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hfaria/ventura/internal/auth"
	adminapi "github.com/hfaria/ventura/internal/http/admin"
	announcementapi "github.com/hfaria/ventura/internal/http/announcement"
	authapi "github.com/hfaria/ventura/internal/http/auth"
	businessapi "github.com/hfaria/ventura/internal/http/business"
	documentapi "github.com/hfaria/ventura/internal/http/document"
	investmentapi "github.com/hfaria/ventura/internal/http/investment"
	investorapi "github.com/hfaria/ventura/internal/http/investor"
	messageapi "github.com/hfaria/ventura/internal/http/message"
	notificationapi "github.com/hfaria/ventura/internal/http/notification"
	ownerapi "github.com/hfaria/ventura/internal/http/owner"
	"github.com/hfaria/ventura/internal/http/session"
	watchlistapi "github.com/hfaria/ventura/internal/http/watchlist"
)

func New(
	tokens session.TokenParser,
	uploadsDir string,
	authH *authapi.Handler,
	businessH *businessapi.Handler,
	documentH *documentapi.Handler,
	investorH *investorapi.Handler,
	investmentH *investmentapi.Handler,
	watchlistH *watchlistapi.Handler,
	messageH *messageapi.Handler,
	announcementH *announcementapi.Handler,
	notificationH *notificationapi.Handler,
	adminH *adminapi.Handler,
	ownerH *ownerapi.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			authH.PublicRoutes(r)

			r.Group(func(r chi.Router) {
				r.Use(session.RequireAuth(tokens))
				authH.Routes(r)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(session.RequireAuth(tokens))

			r.Route("/businesses", func(r chi.Router) {
				businessH.Routes(r)
				r.Route("/{id}/documents", documentH.Routes)
			})

			r.Route("/investments", investmentH.Routes)
			r.Route("/messages", messageH.Routes)
			r.Route("/announcements", announcementH.Routes)
			r.Route("/notifications", notificationH.Routes)

			r.Route("/investor", func(r chi.Router) {
				r.Use(session.RequireRole(auth.RoleInvestor))
				investorH.Routes(r)
			})

			r.Route("/watchlist", func(r chi.Router) {
				r.Use(session.RequireRole(auth.RoleInvestor))
				watchlistH.Routes(r)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(session.RequireRole(auth.RoleAdmin))
				adminH.Routes(r)
			})

			r.Route("/owner", func(r chi.Router) {
				r.Use(session.RequireRole(auth.RoleBusinessOwner))
				ownerH.Routes(r)
			})
		})
	})

	return router
}
