package announcement_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hfaria/ventura/internal/announcement"
	"github.com/hfaria/ventura/internal/auth"
	"github.com/hfaria/ventura/internal/business"
)

type publishMocks struct {
	repo       *announcement.MockRepository
	businesses *announcement.MockBusinessSource
	grants     *announcement.MockGrantAudience
	notifier   *announcement.MockNotifier
}

func newService(ctrl *gomock.Controller) (*announcement.Service, publishMocks) {
	m := publishMocks{
		repo:       announcement.NewMockRepository(ctrl),
		businesses: announcement.NewMockBusinessSource(ctrl),
		grants:     announcement.NewMockGrantAudience(ctrl),
		notifier:   announcement.NewMockNotifier(ctrl),
	}

	return announcement.NewService(m.repo, m.businesses, m.grants, m.notifier), m
}

func TestService_Publish(t *testing.T) {
	ownerID := uuid.New()
	businessID := uuid.New()
	owner := &auth.SessionUser{ID: ownerID, Role: auth.RoleBusinessOwner}

	listing := &business.Business{ID: businessID, OwnerID: ownerID, Name: "Padaria Central"}

	type testCase struct {
		name      string
		actor     *auth.SessionUser
		title     string
		content   string
		setupMock func(m publishMocks)
		wantErr   error
	}

	tests := []testCase{
		{
			name:    "SuccessWithFanOut",
			actor:   owner,
			title:   "New oven installed",
			content: "We doubled our baking capacity.",
			setupMock: func(m publishMocks) {
				investors := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(listing, nil)
				m.repo.EXPECT().
					CreateAnnouncement(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *announcement.Announcement) error {
						a.ID = uuid.New()
						a.CreatedAt = time.Now()
						return nil
					})
				m.grants.EXPECT().InvestorsForBusiness(gomock.Any(), businessID).Return(investors, nil)

				for _, investorID := range investors {
					m.notifier.EXPECT().
						Notify(gomock.Any(), investorID, "announcement", gomock.Any(), gomock.Any()).
						Return(nil)
				}
			},
		},
		{
			name:    "NotTheOwner",
			actor:   &auth.SessionUser{ID: uuid.New(), Role: auth.RoleBusinessOwner},
			title:   "New oven installed",
			content: "We doubled our baking capacity.",
			setupMock: func(m publishMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(listing, nil)
			},
			wantErr: business.ErrForbidden,
		},
		{
			name:    "AdminCannotPostAsOwner",
			actor:   &auth.SessionUser{ID: ownerID, Role: auth.RoleAdmin},
			title:   "New oven installed",
			content: "We doubled our baking capacity.",
			setupMock: func(m publishMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(listing, nil)
			},
			wantErr: business.ErrForbidden,
		},
		{
			name:    "EmptyTitle",
			actor:   owner,
			title:   "   ",
			content: "We doubled our baking capacity.",
			setupMock: func(m publishMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(listing, nil)
			},
			wantErr: announcement.ErrValidation,
		},
		{
			name:    "EmptyContent",
			actor:   owner,
			title:   "New oven installed",
			content: "",
			setupMock: func(m publishMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(listing, nil)
			},
			wantErr: announcement.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mocks := newService(ctrl)
			tt.setupMock(mocks)

			got, err := svc.Publish(context.Background(), tt.actor, businessID, tt.title, tt.content)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, businessID, got.BusinessID)
			assert.Equal(t, tt.actor.ID, got.OwnerID)
		})
	}
}

// A failed audience lookup must not undo the created announcement.
func TestService_Publish_AudienceLookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newService(ctrl)

	ownerID := uuid.New()
	businessID := uuid.New()
	listing := &business.Business{ID: businessID, OwnerID: ownerID, Name: "Padaria Central"}

	mocks.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(listing, nil)
	mocks.repo.EXPECT().
		CreateAnnouncement(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *announcement.Announcement) error {
			a.ID = uuid.New()
			return nil
		})
	mocks.grants.EXPECT().InvestorsForBusiness(gomock.Any(), businessID).Return(nil, errors.New("db error"))

	actor := &auth.SessionUser{ID: ownerID, Role: auth.RoleBusinessOwner}
	got, err := svc.Publish(context.Background(), actor, businessID, "Update", "Still here.")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestService_List(t *testing.T) {
	ownerID := uuid.New()
	businessID := uuid.New()
	listing := &business.Business{ID: businessID, OwnerID: ownerID}

	type testCase struct {
		name      string
		viewer    *auth.SessionUser
		setupMock func(m publishMocks)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Admin",
			viewer: &auth.SessionUser{ID: uuid.New(), Role: auth.RoleAdmin},
			setupMock: func(m publishMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(listing, nil)
				m.repo.EXPECT().ListByBusiness(gomock.Any(), businessID).Return([]*announcement.Announcement{{ID: uuid.New()}}, nil)
			},
		},
		{
			name:   "Owner",
			viewer: &auth.SessionUser{ID: ownerID, Role: auth.RoleBusinessOwner},
			setupMock: func(m publishMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(listing, nil)
				m.repo.EXPECT().ListByBusiness(gomock.Any(), businessID).Return(nil, nil)
			},
		},
		{
			name:   "OtherOwnerForbidden",
			viewer: &auth.SessionUser{ID: uuid.New(), Role: auth.RoleBusinessOwner},
			setupMock: func(m publishMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(listing, nil)
			},
			wantErr: business.ErrForbidden,
		},
		{
			name:   "InvestorWithGrant",
			viewer: &auth.SessionUser{ID: uuid.New(), Role: auth.RoleInvestor},
			setupMock: func(m publishMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(listing, nil)
				m.grants.EXPECT().Has(gomock.Any(), gomock.Any(), businessID).Return(true, nil)
				m.repo.EXPECT().ListByBusiness(gomock.Any(), businessID).Return(nil, nil)
			},
		},
		{
			name:   "InvestorWithoutGrant",
			viewer: &auth.SessionUser{ID: uuid.New(), Role: auth.RoleInvestor},
			setupMock: func(m publishMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(listing, nil)
				m.grants.EXPECT().Has(gomock.Any(), gomock.Any(), businessID).Return(false, nil)
			},
			wantErr: business.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mocks := newService(ctrl)
			tt.setupMock(mocks)

			_, err := svc.List(context.Background(), tt.viewer, businessID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}
