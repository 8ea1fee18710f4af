package stats

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=stats
type Repository interface {
	Overview(ctx context.Context) (*Overview, error)
	InvestmentTotals(ctx context.Context) (count int, amount int64, err error)
	MonthlyInvestments(ctx context.Context, months int) ([]MonthlyPoint, error)
	TopBusinesses(ctx context.Context, limit int) ([]BusinessTotal, error)
	TopInvestors(ctx context.Context, limit int) ([]InvestorTotal, error)
	OwnerTotals(ctx context.Context, ownerID uuid.UUID) (count int, amount int64, err error)
	OwnerPerBusiness(ctx context.Context, ownerID uuid.UUID) ([]BusinessTotal, error)
	OwnerDaily(ctx context.Context, ownerID uuid.UUID, days int) ([]DailyPoint, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	return s.repo.Overview(ctx)
}

func (s *Service) Analytics(ctx context.Context) (*Analytics, error) {
	count, amount, err := s.repo.InvestmentTotals(ctx)
	if err != nil {
		return nil, err
	}

	monthly, err := s.repo.MonthlyInvestments(ctx, 12)
	if err != nil {
		return nil, err
	}

	topBusinesses, err := s.repo.TopBusinesses(ctx, 5)
	if err != nil {
		return nil, err
	}

	topInvestors, err := s.repo.TopInvestors(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &Analytics{
		TotalInvestments: count,
		TotalInvested:    amount,
		Monthly:          monthly,
		TopBusinesses:    topBusinesses,
		TopInvestors:     topInvestors,
	}, nil
}

func (s *Service) OwnerAnalytics(ctx context.Context, ownerID uuid.UUID) (*OwnerAnalytics, error) {
	count, amount, err := s.repo.OwnerTotals(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	perBusiness, err := s.repo.OwnerPerBusiness(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	daily, err := s.repo.OwnerDaily(ctx, ownerID, 30)
	if err != nil {
		return nil, err
	}

	return &OwnerAnalytics{
		TotalInvestments: count,
		TotalRaised:      amount,
		PerBusiness:      perBusiness,
		Daily:            daily,
	}, nil
}
