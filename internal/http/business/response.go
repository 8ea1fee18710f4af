package business

import (
	"time"

	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/business"
)

type businessResponse struct {
	ID          uuid.UUID       `json:"id"`
	OwnerID     uuid.UUID       `json:"owner_id"`
	OwnerName   string          `json:"owner_name,omitempty"`
	OwnerEmail  string          `json:"owner_email,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category,omitempty"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	Status      business.Status `json:"status"`

	MinInvestmentAmount      int64    `json:"min_investment_amount"`
	MaxInvestmentAmount      int64    `json:"max_investment_amount"`
	ExpectedReturnPercentage *float64 `json:"expected_return_percentage,omitempty"`

	MonthlyRevenue   *int64   `json:"monthly_revenue,omitempty"`
	ProfitMargin     *float64 `json:"profit_margin,omitempty"`
	GrowthPercentage *float64 `json:"growth_percentage,omitempty"`
	CustomerCount    *int64   `json:"customer_count,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toResponse(b *business.Business) businessResponse {
	return businessResponse{
		ID:                       b.ID,
		OwnerID:                  b.OwnerID,
		OwnerName:                b.OwnerName,
		OwnerEmail:               b.OwnerEmail,
		Name:                     b.Name,
		Description:              b.Description,
		Category:                 b.Category,
		Latitude:                 b.Latitude,
		Longitude:                b.Longitude,
		Status:                   b.Status,
		MinInvestmentAmount:      b.MinInvestmentAmount,
		MaxInvestmentAmount:      b.MaxInvestmentAmount,
		ExpectedReturnPercentage: b.ExpectedReturnPercentage,
		MonthlyRevenue:           b.MonthlyRevenue,
		ProfitMargin:             b.ProfitMargin,
		GrowthPercentage:         b.GrowthPercentage,
		CustomerCount:            b.CustomerCount,
		CreatedAt:                b.CreatedAt,
		UpdatedAt:                b.UpdatedAt,
	}
}

func toResponseList(bs []*business.Business) []businessResponse {
	resp := make([]businessResponse, len(bs))
	for i, b := range bs {
		resp[i] = toResponse(b)
	}

	return resp
}
