package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/auth"
	"github.com/hfaria/ventura/internal/http/response"
	"github.com/hfaria/ventura/internal/user"
)

const maxImportBytes = 8 << 20

// userResponse never carries the password hash.
type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      auth.Role `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u *user.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		response.Internal(w, err)
		return
	}

	resp := make([]userResponse, len(users))
	for i, u := range users {
		resp[i] = toUserResponse(u)
	}

	response.OK(w, http.StatusOK, resp)
}

type createUserRequest struct {
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Role     auth.Role `json:"role"`
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.users.Create(r.Context(), user.CreateParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		h.writeUserError(w, err)
		return
	}

	response.OK(w, http.StatusCreated, toUserResponse(u))
}

func (h *Handler) importUsers(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportBytes); err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.Fail(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	report, err := h.imports.Import(r.Context(), file)
	if err != nil {
		response.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	response.OK(w, http.StatusOK, report)
}

type updateUserRequest struct {
	Name     *string    `json:"name,omitempty"`
	Email    *string    `json:"email,omitempty"`
	Role     *auth.Role `json:"role,omitempty"`
	IsActive *bool      `json:"is_active,omitempty"`
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.users.Update(r.Context(), id, user.UpdatePatch{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.writeUserError(w, err)
		return
	}

	response.OK(w, http.StatusOK, toUserResponse(u))
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		h.writeUserError(w, err)
		return
	}

	response.OK(w, http.StatusOK, map[string]any{"deleted": true})
}

type resetPasswordRequest struct {
	Password string `json:"password"`
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.users.ResetPassword(r.Context(), id, req.Password); err != nil {
		h.writeUserError(w, err)
		return
	}

	response.OK(w, http.StatusOK, map[string]any{"updated": true})
}

func (h *Handler) writeUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, user.ErrNotFound):
		response.Fail(w, http.StatusNotFound, "user not found")
	case errors.Is(err, user.ErrEmailTaken):
		response.Fail(w, http.StatusConflict, "email already in use")
	case errors.Is(err, user.ErrValidation):
		response.Fail(w, http.StatusBadRequest, err.Error())
	default:
		response.Internal(w, err)
	}
}
