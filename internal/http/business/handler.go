package business

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/auth"
	"github.com/hfaria/ventura/internal/business"
	"github.com/hfaria/ventura/internal/http/response"
	"github.com/hfaria/ventura/internal/http/session"
)

type Handler struct {
	svc *business.Service
}

func NewHandler(svc *business.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
}

type createBusinessRequest struct {
	Name                     string   `json:"name"`
	Description              string   `json:"description"`
	Category                 string   `json:"category"`
	Latitude                 float64  `json:"latitude"`
	Longitude                float64  `json:"longitude"`
	MinInvestmentAmount      int64    `json:"min_investment_amount"`
	MaxInvestmentAmount      int64    `json:"max_investment_amount"`
	ExpectedReturnPercentage *float64 `json:"expected_return_percentage"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	user := session.User(r.Context())
	if err := auth.Authorize(user, auth.RoleBusinessOwner); err != nil {
		response.Fail(w, http.StatusForbidden, "only business owners can create listings")
		return
	}

	var req createBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.svc.Create(r.Context(), user.ID, business.CreateParams{
		Name:                     req.Name,
		Description:              req.Description,
		Category:                 req.Category,
		Latitude:                 req.Latitude,
		Longitude:                req.Longitude,
		MinInvestmentAmount:      req.MinInvestmentAmount,
		MaxInvestmentAmount:      req.MaxInvestmentAmount,
		ExpectedReturnPercentage: req.ExpectedReturnPercentage,
	})
	if err != nil {
		if errors.Is(err, business.ErrValidation) {
			response.Fail(w, http.StatusBadRequest, err.Error())
			return
		}

		response.Internal(w, err)

		return
	}

	response.OK(w, http.StatusCreated, toResponse(b))
}

// list serves owners their own listings and admins everything.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	user := session.User(r.Context())

	switch user.Role {
	case auth.RoleBusinessOwner:
		bs, err := h.svc.ListForOwner(r.Context(), user.ID)
		if err != nil {
			response.Internal(w, err)
			return
		}

		response.OK(w, http.StatusOK, toResponseList(bs))
	case auth.RoleAdmin:
		filter := business.ListFilter{}

		if s := r.URL.Query().Get("status"); s != "" {
			status, err := business.ParseStatus(s)
			if err != nil {
				response.Fail(w, http.StatusBadRequest, err.Error())
				return
			}

			filter.Status = new(status)
		}

		bs, err := h.svc.ListAll(r.Context(), filter)
		if err != nil {
			response.Internal(w, err)
			return
		}

		response.OK(w, http.StatusOK, toResponseList(bs))
	default:
		response.Fail(w, http.StatusForbidden, "insufficient permissions")
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid business id")
		return
	}

	b, err := h.svc.Get(r.Context(), session.User(r.Context()), id)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrNotFound):
			response.Fail(w, http.StatusNotFound, "business not found")
		case errors.Is(err, business.ErrForbidden):
			response.Fail(w, http.StatusForbidden, "not allowed to view this business")
		default:
			response.Internal(w, err)
		}

		return
	}

	response.OK(w, http.StatusOK, toResponse(b))
}

type updateBusinessRequest struct {
	Name                     *string  `json:"name,omitempty"`
	Description              *string  `json:"description,omitempty"`
	Category                 *string  `json:"category,omitempty"`
	Latitude                 *float64 `json:"latitude,omitempty"`
	Longitude                *float64 `json:"longitude,omitempty"`
	MinInvestmentAmount      *int64   `json:"min_investment_amount,omitempty"`
	MaxInvestmentAmount      *int64   `json:"max_investment_amount,omitempty"`
	ExpectedReturnPercentage *float64 `json:"expected_return_percentage,omitempty"`
	MonthlyRevenue           *int64   `json:"monthly_revenue,omitempty"`
	ProfitMargin             *float64 `json:"profit_margin,omitempty"`
	GrowthPercentage         *float64 `json:"growth_percentage,omitempty"`
	CustomerCount            *int64   `json:"customer_count,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid business id")
		return
	}

	var req updateBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user := session.User(r.Context())

	b, err := h.svc.Update(r.Context(), user.ID, id, business.UpdatePatch{
		Name:                     req.Name,
		Description:              req.Description,
		Category:                 req.Category,
		Latitude:                 req.Latitude,
		Longitude:                req.Longitude,
		MinInvestmentAmount:      req.MinInvestmentAmount,
		MaxInvestmentAmount:      req.MaxInvestmentAmount,
		ExpectedReturnPercentage: req.ExpectedReturnPercentage,
		MonthlyRevenue:           req.MonthlyRevenue,
		ProfitMargin:             req.ProfitMargin,
		GrowthPercentage:         req.GrowthPercentage,
		CustomerCount:            req.CustomerCount,
	})
	if err != nil {
		switch {
		case errors.Is(err, business.ErrNotFound):
			response.Fail(w, http.StatusNotFound, "business not found")
		case errors.Is(err, business.ErrForbidden):
			response.Fail(w, http.StatusForbidden, "not allowed to edit this business")
		case errors.Is(err, business.ErrLocked), errors.Is(err, business.ErrValidation):
			response.Fail(w, http.StatusBadRequest, err.Error())
		default:
			response.Internal(w, err)
		}

		return
	}

	response.OK(w, http.StatusOK, toResponse(b))
}
