package visibility_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hfaria/ventura/internal/auth"
	"github.com/hfaria/ventura/internal/visibility"
)

type grantMocks struct {
	repo       *visibility.MockRepository
	roles      *visibility.MockRoleLookup
	businesses *visibility.MockBusinessChecker
	notifier   *visibility.MockNotifier
	auditor    *visibility.MockAuditor
}

func newService(ctrl *gomock.Controller) (*visibility.Service, grantMocks) {
	m := grantMocks{
		repo:       visibility.NewMockRepository(ctrl),
		roles:      visibility.NewMockRoleLookup(ctrl),
		businesses: visibility.NewMockBusinessChecker(ctrl),
		notifier:   visibility.NewMockNotifier(ctrl),
		auditor:    visibility.NewMockAuditor(ctrl),
	}

	return visibility.NewService(m.repo, m.roles, m.businesses, m.notifier, m.auditor), m
}

func TestService_Grant(t *testing.T) {
	adminID := uuid.New()
	investorID := uuid.New()
	businessID := uuid.New()

	type testCase struct {
		name      string
		setupMock func(m grantMocks)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m grantMocks) {
				m.roles.EXPECT().UserRole(gomock.Any(), investorID).Return(auth.RoleInvestor, nil)
				m.businesses.EXPECT().BusinessExists(gomock.Any(), businessID).Return(true, nil)
				m.repo.EXPECT().FindGrant(gomock.Any(), investorID, businessID).Return(nil, nil)
				m.repo.EXPECT().
					CreateGrant(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, g *visibility.Grant) error {
						g.ID = uuid.New()
						g.CreatedAt = time.Now()
						return nil
					})
				m.notifier.EXPECT().
					Notify(gomock.Any(), investorID, "business_assigned", gomock.Any(), gomock.Any()).
					Return(nil)
				m.auditor.EXPECT().
					Record(gomock.Any(), adminID, "assign_visibility", "BusinessVisibility", gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "TargetIsNotAnInvestor",
			setupMock: func(m grantMocks) {
				m.roles.EXPECT().UserRole(gomock.Any(), investorID).Return(auth.RoleBusinessOwner, nil)
			},
			wantErr: visibility.ErrInvalidInvestor,
		},
		{
			name: "TargetDoesNotExist",
			setupMock: func(m grantMocks) {
				m.roles.EXPECT().UserRole(gomock.Any(), investorID).Return(auth.Role(""), nil)
			},
			wantErr: visibility.ErrInvalidInvestor,
		},
		{
			name: "BusinessMissing",
			setupMock: func(m grantMocks) {
				m.roles.EXPECT().UserRole(gomock.Any(), investorID).Return(auth.RoleInvestor, nil)
				m.businesses.EXPECT().BusinessExists(gomock.Any(), businessID).Return(false, nil)
			},
			wantErr: visibility.ErrNotFound,
		},
		{
			// The pair check raced with another insert; the unique index
			// rejects the write and the duplicate still surfaces as one.
			name: "DuplicateGrantLostRace",
			setupMock: func(m grantMocks) {
				m.roles.EXPECT().UserRole(gomock.Any(), investorID).Return(auth.RoleInvestor, nil)
				m.businesses.EXPECT().BusinessExists(gomock.Any(), businessID).Return(true, nil)
				m.repo.EXPECT().FindGrant(gomock.Any(), investorID, businessID).Return(nil, nil)
				m.repo.EXPECT().CreateGrant(gomock.Any(), gomock.Any()).Return(visibility.ErrDuplicate)
			},
			wantErr: visibility.ErrDuplicate,
		},
		{
			name: "DuplicateGrant",
			setupMock: func(m grantMocks) {
				m.roles.EXPECT().UserRole(gomock.Any(), investorID).Return(auth.RoleInvestor, nil)
				m.businesses.EXPECT().BusinessExists(gomock.Any(), businessID).Return(true, nil)
				m.repo.EXPECT().
					FindGrant(gomock.Any(), investorID, businessID).
					Return(&visibility.Grant{ID: uuid.New(), InvestorID: investorID, BusinessID: businessID}, nil)
			},
			wantErr: visibility.ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mocks := newService(ctrl)
			tt.setupMock(mocks)

			got, err := svc.Grant(context.Background(), adminID, investorID, businessID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, investorID, got.InvestorID)
			assert.Equal(t, businessID, got.BusinessID)
		})
	}
}

func TestService_Has(t *testing.T) {
	investorID := uuid.New()
	businessID := uuid.New()

	t.Run("GrantExists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mocks := newService(ctrl)
		mocks.repo.EXPECT().
			FindGrant(gomock.Any(), investorID, businessID).
			Return(&visibility.Grant{ID: uuid.New()}, nil)

		ok, err := svc.Has(context.Background(), investorID, businessID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("NoGrant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mocks := newService(ctrl)
		mocks.repo.EXPECT().
			FindGrant(gomock.Any(), investorID, businessID).
			Return(nil, nil)

		ok, err := svc.Has(context.Background(), investorID, businessID)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
