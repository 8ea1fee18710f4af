package investor

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hfaria/ventura/internal/business"
	"github.com/hfaria/ventura/internal/http/response"
	"github.com/hfaria/ventura/internal/http/session"
)

// Handler serves the investor catalogue: granted businesses with
// SQL-pushed filters.
type Handler struct {
	businesses *business.Service
}

func NewHandler(businesses *business.Service) *Handler {
	return &Handler{businesses: businesses}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/businesses", h.catalogue)
}

type catalogueItem struct {
	ID                       string          `json:"id"`
	Name                     string          `json:"name"`
	Description              string          `json:"description"`
	Category                 string          `json:"category,omitempty"`
	Latitude                 float64         `json:"latitude"`
	Longitude                float64         `json:"longitude"`
	Status                   business.Status `json:"status"`
	MinInvestmentAmount      int64           `json:"min_investment_amount"`
	MaxInvestmentAmount      int64           `json:"max_investment_amount"`
	ExpectedReturnPercentage *float64        `json:"expected_return_percentage,omitempty"`
}

func (h *Handler) catalogue(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := business.CatalogFilter{
		Query:    q.Get("q"),
		Category: q.Get("category"),
	}

	if s := q.Get("status"); s != "" {
		status, err := business.ParseStatus(s)
		if err != nil {
			response.Fail(w, http.StatusBadRequest, err.Error())
			return
		}

		filter.Status = new(status)
	}

	if s := q.Get("min"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			response.Fail(w, http.StatusBadRequest, "invalid min filter")
			return
		}

		filter.MinAmount = new(v)
	}

	if s := q.Get("max"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			response.Fail(w, http.StatusBadRequest, "invalid max filter")
			return
		}

		filter.MaxAmount = new(v)
	}

	user := session.User(r.Context())

	bs, err := h.businesses.ListVisibleForInvestor(r.Context(), user.ID, filter)
	if err != nil {
		response.Internal(w, err)
		return
	}

	items := make([]catalogueItem, len(bs))
	for i, b := range bs {
		items[i] = catalogueItem{
			ID:                       b.ID.String(),
			Name:                     b.Name,
			Description:              b.Description,
			Category:                 b.Category,
			Latitude:                 b.Latitude,
			Longitude:                b.Longitude,
			Status:                   b.Status,
			MinInvestmentAmount:      b.MinInvestmentAmount,
			MaxInvestmentAmount:      b.MaxInvestmentAmount,
			ExpectedReturnPercentage: b.ExpectedReturnPercentage,
		}
	}

	response.OK(w, http.StatusOK, items)
}
