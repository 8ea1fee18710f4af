package investment

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/auth"
)

var agreementTmpl = template.Must(template.New("agreement").Parse(`<!DOCTYPE html>
<html>
<head><title>Investment Agreement {{.ID}}</title></head>
<body>
<h1>Investment Agreement</h1>
<p>Agreement reference: {{.ID}}</p>
<p>Investor: {{.InvestorName}} ({{.InvestorEmail}})</p>
<p>Business: {{.BusinessName}}</p>
<p>Amount: {{.Amount}}</p>
<p>Status: {{.Status}}</p>
<p>Date: {{.Date}}</p>
</body>
</html>
`))

type agreementData struct {
	ID            uuid.UUID
	InvestorName  string
	InvestorEmail string
	BusinessName  string
	Amount        int64
	Status        Status
	Date          string
}

// Agreement renders the HTML agreement for a confirmed investment. Only
// the investor, the business owner and admins may read it.
func (s *Service) Agreement(ctx context.Context, viewer *auth.SessionUser, id uuid.UUID) ([]byte, error) {
	inv, err := s.repo.GetInvestment(ctx, id)
	if err != nil {
		return nil, err
	}

	if viewer.Role != auth.RoleAdmin && viewer.ID != inv.InvestorID {
		b, err := s.businesses.GetBusiness(ctx, inv.BusinessID)
		if err != nil {
			return nil, err
		}

		if !auth.IsOwner(viewer.ID, b.OwnerID) {
			return nil, ErrNoAccess
		}
	}

	var buf bytes.Buffer

	err = agreementTmpl.Execute(&buf, agreementData{
		ID:            inv.ID,
		InvestorName:  inv.InvestorName,
		InvestorEmail: inv.InvestorEmail,
		BusinessName:  inv.BusinessName,
		Amount:        inv.Amount,
		Status:        inv.Status,
		Date:          inv.CreatedAt.Format(time.DateOnly),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering agreement: %w", err)
	}

	return buf.Bytes(), nil
}
