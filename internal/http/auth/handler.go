package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/auth"
	"github.com/hfaria/ventura/internal/http/response"
	"github.com/hfaria/ventura/internal/http/session"
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(r chi.Router) {
	r.Post("/login", h.login)
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/me", h.me)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  auth.Role `json:"role"`
}

type loginResponse struct {
	Token string          `json:"token"`
	User  sessionResponse `json:"user"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		response.Fail(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			response.Fail(w, http.StatusUnauthorized, "invalid email or password")
		case errors.Is(err, auth.ErrAccountDisabled):
			response.Fail(w, http.StatusForbidden, "account is deactivated")
		default:
			response.Internal(w, err)
		}

		return
	}

	response.OK(w, http.StatusOK, loginResponse{
		Token: token,
		User:  toSession(user),
	})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	response.OK(w, http.StatusOK, toSession(session.User(r.Context())))
}

func toSession(u *auth.SessionUser) sessionResponse {
	return sessionResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}
