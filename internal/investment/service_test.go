package investment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hfaria/ventura/internal/business"
	"github.com/hfaria/ventura/internal/investment"
)

type createMocks struct {
	repo       *investment.MockRepository
	businesses *investment.MockBusinessSource
	grants     *investment.MockGrantChecker
	agreements *investment.MockAgreementRecorder
	notifier   *investment.MockNotifier
	auditor    *investment.MockAuditor
}

func newService(ctrl *gomock.Controller) (*investment.Service, createMocks) {
	m := createMocks{
		repo:       investment.NewMockRepository(ctrl),
		businesses: investment.NewMockBusinessSource(ctrl),
		grants:     investment.NewMockGrantChecker(ctrl),
		agreements: investment.NewMockAgreementRecorder(ctrl),
		notifier:   investment.NewMockNotifier(ctrl),
		auditor:    investment.NewMockAuditor(ctrl),
	}

	return investment.NewService(m.repo, m.businesses, m.grants, m.agreements, m.notifier, m.auditor), m
}

func TestService_Create(t *testing.T) {
	investorID := uuid.New()
	ownerID := uuid.New()
	businessID := uuid.New()

	approved := &business.Business{
		ID:                  businessID,
		OwnerID:             ownerID,
		Name:                "Padaria Central",
		Status:              business.StatusApproved,
		MinInvestmentAmount: 100,
		MaxInvestmentAmount: 5000,
	}

	expectSideEffects := func(m createMocks) {
		m.agreements.EXPECT().
			RecordAgreement(gomock.Any(), businessID, gomock.Any(), investorID).
			Return(nil)
		m.notifier.EXPECT().
			Notify(gomock.Any(), ownerID, "investment_created", gomock.Any(), gomock.Any()).
			Return(nil)
		m.auditor.EXPECT().
			Record(gomock.Any(), investorID, "create_investment", "Investment", gomock.Any(), gomock.Any()).
			Return(nil)
	}

	type testCase struct {
		name      string
		amount    int64
		setupMock func(m createMocks)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			amount: 1000,
			setupMock: func(m createMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(approved, nil)
				m.grants.EXPECT().Has(gomock.Any(), investorID, businessID).Return(true, nil)
				m.repo.EXPECT().
					CreateInvestment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, inv *investment.Investment) error {
						inv.ID = uuid.New()
						inv.CreatedAt = time.Now()
						return nil
					})
				expectSideEffects(m)
			},
		},
		{
			name:   "ExactMinimum",
			amount: 100,
			setupMock: func(m createMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(approved, nil)
				m.grants.EXPECT().Has(gomock.Any(), investorID, businessID).Return(true, nil)
				m.repo.EXPECT().
					CreateInvestment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, inv *investment.Investment) error {
						inv.ID = uuid.New()
						return nil
					})
				expectSideEffects(m)
			},
		},
		{
			name:   "ExactMaximum",
			amount: 5000,
			setupMock: func(m createMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(approved, nil)
				m.grants.EXPECT().Has(gomock.Any(), investorID, businessID).Return(true, nil)
				m.repo.EXPECT().
					CreateInvestment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, inv *investment.Investment) error {
						inv.ID = uuid.New()
						return nil
					})
				expectSideEffects(m)
			},
		},
		{
			name:   "BusinessMissing",
			amount: 1000,
			setupMock: func(m createMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(nil, business.ErrNotFound)
			},
			wantErr: business.ErrNotFound,
		},
		{
			name:   "BusinessNotApproved",
			amount: 1000,
			setupMock: func(m createMocks) {
				pending := *approved
				pending.Status = business.StatusPending
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(&pending, nil)
			},
			wantErr: investment.ErrNotInvestable,
		},
		{
			name:   "NoGrant",
			amount: 1000,
			setupMock: func(m createMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(approved, nil)
				m.grants.EXPECT().Has(gomock.Any(), investorID, businessID).Return(false, nil)
			},
			wantErr: investment.ErrNoAccess,
		},
		{
			name:   "BelowMinimum",
			amount: 99,
			setupMock: func(m createMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(approved, nil)
				m.grants.EXPECT().Has(gomock.Any(), investorID, businessID).Return(true, nil)
			},
			wantErr: investment.ErrInvalidAmount,
		},
		{
			name:   "AboveMaximum",
			amount: 5001,
			setupMock: func(m createMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(approved, nil)
				m.grants.EXPECT().Has(gomock.Any(), investorID, businessID).Return(true, nil)
			},
			wantErr: investment.ErrInvalidAmount,
		},
		{
			name:   "ZeroAmount",
			amount: 0,
			setupMock: func(m createMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(approved, nil)
				m.grants.EXPECT().Has(gomock.Any(), investorID, businessID).Return(true, nil)
			},
			wantErr: investment.ErrInvalidAmount,
		},
		{
			name:   "NegativeAmount",
			amount: -500,
			setupMock: func(m createMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(approved, nil)
				m.grants.EXPECT().Has(gomock.Any(), investorID, businessID).Return(true, nil)
			},
			wantErr: investment.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mocks := newService(ctrl)
			tt.setupMock(mocks)

			got, err := svc.Create(context.Background(), investorID, businessID, tt.amount)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, investment.StatusConfirmed, got.Status)
			assert.Equal(t, tt.amount, got.Amount)
			assert.Equal(t, investorID, got.InvestorID)
		})
	}
}

// Two sequential in-bounds investments both succeed; there is no
// aggregate raise cap on a business.
func TestService_Create_NoAggregateCap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newService(ctrl)

	investorID := uuid.New()
	businessID := uuid.New()

	approved := &business.Business{
		ID:                  businessID,
		OwnerID:             uuid.New(),
		Status:              business.StatusApproved,
		MinInvestmentAmount: 100,
		MaxInvestmentAmount: 5000,
	}

	mocks.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(approved, nil).Times(2)
	mocks.grants.EXPECT().Has(gomock.Any(), investorID, businessID).Return(true, nil).Times(2)
	mocks.repo.EXPECT().
		CreateInvestment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv *investment.Investment) error {
			inv.ID = uuid.New()
			return nil
		}).
		Times(2)
	mocks.agreements.EXPECT().RecordAgreement(gomock.Any(), businessID, gomock.Any(), investorID).Return(nil).Times(2)
	mocks.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	mocks.auditor.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first, err := svc.Create(context.Background(), investorID, businessID, 5000)
	require.NoError(t, err)

	second, err := svc.Create(context.Background(), investorID, businessID, 5000)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

// A confirmed investment stands even when agreement, notification and
// audit recording all fail.
func TestService_Create_SideEffectFailuresDoNotFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newService(ctrl)

	investorID := uuid.New()
	businessID := uuid.New()

	approved := &business.Business{
		ID:                  businessID,
		OwnerID:             uuid.New(),
		Status:              business.StatusApproved,
		MinInvestmentAmount: 100,
		MaxInvestmentAmount: 5000,
	}

	mocks.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(approved, nil)
	mocks.grants.EXPECT().Has(gomock.Any(), investorID, businessID).Return(true, nil)
	mocks.repo.EXPECT().
		CreateInvestment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv *investment.Investment) error {
			inv.ID = uuid.New()
			return nil
		})
	mocks.agreements.EXPECT().RecordAgreement(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	mocks.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
	mocks.auditor.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("audit down"))

	got, err := svc.Create(context.Background(), investorID, businessID, 1000)
	require.NoError(t, err)
	assert.Equal(t, investment.StatusConfirmed, got.Status)
}
