package business_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hfaria/ventura/internal/auth"
	"github.com/hfaria/ventura/internal/business"
)

func newService(ctrl *gomock.Controller) (*business.Service, *business.MockRepository, *business.MockGrantChecker, *business.MockNotifier, *business.MockAuditor) {
	repo := business.NewMockRepository(ctrl)
	grants := business.NewMockGrantChecker(ctrl)
	notifier := business.NewMockNotifier(ctrl)
	auditor := business.NewMockAuditor(ctrl)

	return business.NewService(repo, grants, notifier, auditor), repo, grants, notifier, auditor
}

func TestService_Create(t *testing.T) {
	ownerID := uuid.New()

	valid := business.CreateParams{
		Name:                "Padaria Central",
		Description:         "Neighborhood bakery",
		Category:            "food",
		Latitude:            38.72,
		Longitude:           -9.14,
		MinInvestmentAmount: 100,
		MaxInvestmentAmount: 5000,
	}

	type testCase struct {
		name      string
		params    business.CreateParams
		setupMock func(m *business.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			params: valid,
			setupMock: func(m *business.MockRepository) {
				m.EXPECT().
					CreateBusiness(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b *business.Business) error {
						b.ID = uuid.New()
						b.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "MissingName",
			params: func() business.CreateParams {
				p := valid
				p.Name = ""
				return p
			}(),
			wantErr: business.ErrValidation,
		},
		{
			name: "LatitudeOutOfRange",
			params: func() business.CreateParams {
				p := valid
				p.Latitude = 91
				return p
			}(),
			wantErr: business.ErrValidation,
		},
		{
			name: "MinAboveMax",
			params: func() business.CreateParams {
				p := valid
				p.MinInvestmentAmount = 6000
				return p
			}(),
			wantErr: business.ErrValidation,
		},
		{
			name: "ZeroMin",
			params: func() business.CreateParams {
				p := valid
				p.MinInvestmentAmount = 0
				return p
			}(),
			wantErr: business.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, repo, _, _, _ := newService(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := svc.Create(context.Background(), ownerID, tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, ownerID, got.OwnerID)
			assert.Equal(t, business.StatusPending, got.Status)
		})
	}
}

func TestService_Get(t *testing.T) {
	ownerID := uuid.New()
	businessID := uuid.New()

	approved := &business.Business{ID: businessID, OwnerID: ownerID, Status: business.StatusApproved}
	pending := &business.Business{ID: businessID, OwnerID: ownerID, Status: business.StatusPending}

	type testCase struct {
		name      string
		viewer    *auth.SessionUser
		setupMock func(repo *business.MockRepository, grants *business.MockGrantChecker)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "AdminSeesAnything",
			viewer: &auth.SessionUser{ID: uuid.New(), Role: auth.RoleAdmin},
			setupMock: func(repo *business.MockRepository, _ *business.MockGrantChecker) {
				repo.EXPECT().GetBusiness(gomock.Any(), businessID).Return(pending, nil)
			},
		},
		{
			name:   "OwnerSeesOwn",
			viewer: &auth.SessionUser{ID: ownerID, Role: auth.RoleBusinessOwner},
			setupMock: func(repo *business.MockRepository, _ *business.MockGrantChecker) {
				repo.EXPECT().GetBusiness(gomock.Any(), businessID).Return(pending, nil)
			},
		},
		{
			name:   "OtherOwnerForbidden",
			viewer: &auth.SessionUser{ID: uuid.New(), Role: auth.RoleBusinessOwner},
			setupMock: func(repo *business.MockRepository, _ *business.MockGrantChecker) {
				repo.EXPECT().GetBusiness(gomock.Any(), businessID).Return(pending, nil)
			},
			wantErr: business.ErrForbidden,
		},
		{
			name:   "InvestorWithGrant",
			viewer: &auth.SessionUser{ID: uuid.New(), Role: auth.RoleInvestor},
			setupMock: func(repo *business.MockRepository, grants *business.MockGrantChecker) {
				repo.EXPECT().GetBusiness(gomock.Any(), businessID).Return(approved, nil)
				grants.EXPECT().Has(gomock.Any(), gomock.Any(), businessID).Return(true, nil)
			},
		},
		{
			name:   "InvestorWithoutGrant",
			viewer: &auth.SessionUser{ID: uuid.New(), Role: auth.RoleInvestor},
			setupMock: func(repo *business.MockRepository, grants *business.MockGrantChecker) {
				repo.EXPECT().GetBusiness(gomock.Any(), businessID).Return(approved, nil)
				grants.EXPECT().Has(gomock.Any(), gomock.Any(), businessID).Return(false, nil)
			},
			wantErr: business.ErrForbidden,
		},
		{
			name:   "InvestorUnapprovedListing",
			viewer: &auth.SessionUser{ID: uuid.New(), Role: auth.RoleInvestor},
			setupMock: func(repo *business.MockRepository, _ *business.MockGrantChecker) {
				repo.EXPECT().GetBusiness(gomock.Any(), businessID).Return(pending, nil)
			},
			wantErr: business.ErrForbidden,
		},
		{
			name:   "NotFound",
			viewer: &auth.SessionUser{ID: uuid.New(), Role: auth.RoleAdmin},
			setupMock: func(repo *business.MockRepository, _ *business.MockGrantChecker) {
				repo.EXPECT().GetBusiness(gomock.Any(), businessID).Return(nil, business.ErrNotFound)
			},
			wantErr: business.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, repo, grants, _, _ := newService(ctrl)
			tt.setupMock(repo, grants)

			got, err := svc.Get(context.Background(), tt.viewer, businessID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

func TestService_Update(t *testing.T) {
	ownerID := uuid.New()
	businessID := uuid.New()

	listing := func(status business.Status) *business.Business {
		return &business.Business{
			ID:                  businessID,
			OwnerID:             ownerID,
			Name:                "Padaria Central",
			Description:         "Neighborhood bakery",
			Latitude:            38.72,
			Longitude:           -9.14,
			Status:              status,
			MinInvestmentAmount: 100,
			MaxInvestmentAmount: 5000,
		}
	}

	newName := "Padaria Moderna"

	type testCase struct {
		name      string
		actorID   uuid.UUID
		patch     business.UpdatePatch
		setupMock func(repo *business.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:    "PendingIsEditable",
			actorID: ownerID,
			patch:   business.UpdatePatch{Name: &newName},
			setupMock: func(repo *business.MockRepository) {
				repo.EXPECT().GetBusiness(gomock.Any(), businessID).Return(listing(business.StatusPending), nil)
				repo.EXPECT().UpdateBusiness(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "RejectedIsEditable",
			actorID: ownerID,
			patch:   business.UpdatePatch{Name: &newName},
			setupMock: func(repo *business.MockRepository) {
				repo.EXPECT().GetBusiness(gomock.Any(), businessID).Return(listing(business.StatusRejected), nil)
				repo.EXPECT().UpdateBusiness(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "ApprovedIsLocked",
			actorID: ownerID,
			patch:   business.UpdatePatch{Name: &newName},
			setupMock: func(repo *business.MockRepository) {
				repo.EXPECT().GetBusiness(gomock.Any(), businessID).Return(listing(business.StatusApproved), nil)
			},
			wantErr: business.ErrLocked,
		},
		{
			name:    "NotTheOwner",
			actorID: uuid.New(),
			patch:   business.UpdatePatch{Name: &newName},
			setupMock: func(repo *business.MockRepository) {
				repo.EXPECT().GetBusiness(gomock.Any(), businessID).Return(listing(business.StatusPending), nil)
			},
			wantErr: business.ErrForbidden,
		},
		{
			name:    "PatchBreaksAmounts",
			actorID: ownerID,
			patch:   business.UpdatePatch{MinInvestmentAmount: new(int64(9000))},
			setupMock: func(repo *business.MockRepository) {
				repo.EXPECT().GetBusiness(gomock.Any(), businessID).Return(listing(business.StatusPending), nil)
			},
			wantErr: business.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, repo, _, _, _ := newService(ctrl)
			tt.setupMock(repo)

			got, err := svc.Update(context.Background(), tt.actorID, businessID, tt.patch)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, newName, got.Name)
		})
	}
}

func TestService_UpdateStatus(t *testing.T) {
	adminID := uuid.New()
	ownerID := uuid.New()
	businessID := uuid.New()

	listing := &business.Business{
		ID:      businessID,
		OwnerID: ownerID,
		Name:    "Padaria Central",
		Status:  business.StatusPending,
	}

	type testCase struct {
		name     string
		status   business.Status
		wantKind string
	}

	// Any parsed status is a legal target, including jumps straight from
	// pending to approved.
	tests := []testCase{
		{name: "Approve", status: business.StatusApproved, wantKind: "business_approved"},
		{name: "Reject", status: business.StatusRejected, wantKind: "business_rejected"},
		{name: "BackToPending", status: business.StatusPending, wantKind: "business_status"},
		{name: "Verify", status: business.StatusVerified, wantKind: "business_status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, repo, _, notifier, auditor := newService(ctrl)

			fresh := *listing
			repo.EXPECT().GetBusiness(gomock.Any(), businessID).Return(&fresh, nil)
			repo.EXPECT().UpdateStatus(gomock.Any(), businessID, tt.status).Return(nil)

			notifier.EXPECT().
				Notify(gomock.Any(), ownerID, tt.wantKind, gomock.Any(), gomock.Any()).
				Return(nil).
				Times(1)
			auditor.EXPECT().
				Record(gomock.Any(), adminID, "update_business_status", "Business", businessID, gomock.Any()).
				Return(nil).
				Times(1)

			got, err := svc.UpdateStatus(context.Background(), adminID, businessID, tt.status)
			require.NoError(t, err)
			assert.Equal(t, tt.status, got.Status)
		})
	}
}

func TestService_UpdateStatus_InvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newService(ctrl)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), uuid.New(), business.Status("archived"))
	assert.ErrorIs(t, err, business.ErrValidation)
}

func TestService_UpdateStatus_SideEffectFailuresDoNotFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _, notifier, auditor := newService(ctrl)

	businessID := uuid.New()
	repo.EXPECT().GetBusiness(gomock.Any(), businessID).Return(&business.Business{ID: businessID, OwnerID: uuid.New()}, nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), businessID, business.StatusApproved).Return(nil)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
	auditor.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("audit down"))

	got, err := svc.UpdateStatus(context.Background(), uuid.New(), businessID, business.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, business.StatusApproved, got.Status)
}

func TestService_ListVisibleForInvestor_DefaultsToApproved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _, _, _ := newService(ctrl)

	investorID := uuid.New()

	repo.EXPECT().
		ListVisible(gomock.Any(), investorID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, filter business.CatalogFilter) ([]*business.Business, error) {
			require.NotNil(t, filter.Status)
			assert.Equal(t, business.StatusApproved, *filter.Status)
			return nil, nil
		})

	_, err := svc.ListVisibleForInvestor(context.Background(), investorID, business.CatalogFilter{})
	assert.NoError(t, err)
}

func TestStatus_Editable(t *testing.T) {
	assert.True(t, business.StatusPending.Editable())
	assert.True(t, business.StatusUnderReview.Editable())
	assert.True(t, business.StatusVerified.Editable())
	assert.True(t, business.StatusRejected.Editable())
	assert.False(t, business.StatusApproved.Editable())
}
