package message_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hfaria/ventura/internal/auth"
	"github.com/hfaria/ventura/internal/business"
	"github.com/hfaria/ventura/internal/message"
)

type sendMocks struct {
	repo       *message.MockRepository
	businesses *message.MockBusinessSource
	grants     *message.MockGrantChecker
}

func newService(ctrl *gomock.Controller) (*message.Service, sendMocks) {
	m := sendMocks{
		repo:       message.NewMockRepository(ctrl),
		businesses: message.NewMockBusinessSource(ctrl),
		grants:     message.NewMockGrantChecker(ctrl),
	}

	return message.NewService(m.repo, m.businesses, m.grants), m
}

func TestService_Send(t *testing.T) {
	ownerID := uuid.New()
	investorID := uuid.New()
	businessID := uuid.New()

	owner := &auth.SessionUser{ID: ownerID, Name: "Rui Costa", Role: auth.RoleBusinessOwner}
	investor := &auth.SessionUser{ID: investorID, Name: "Maria Silva", Role: auth.RoleInvestor}
	admin := &auth.SessionUser{ID: uuid.New(), Role: auth.RoleAdmin}

	b := &business.Business{ID: businessID, OwnerID: ownerID, Name: "Padaria Central"}

	expectCreate := func(m sendMocks) {
		m.repo.EXPECT().
			CreateMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *message.Message) error {
				msg.ID = uuid.New()
				msg.CreatedAt = time.Now()
				return nil
			})
	}

	type testCase struct {
		name          string
		sender        *auth.SessionUser
		recipientID   *uuid.UUID
		content       string
		setupMock     func(m sendMocks)
		wantErr       error
		wantRecipient uuid.UUID
	}

	tests := []testCase{
		{
			name:        "OwnerToInvestor",
			sender:      owner,
			recipientID: &investorID,
			content:     "Thanks for your interest.",
			setupMock: func(m sendMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(b, nil)
				expectCreate(m)
			},
			wantRecipient: investorID,
		},
		{
			name:        "InvestorToOwner",
			sender:      investor,
			recipientID: &ownerID,
			content:     "Can you share last quarter's numbers?",
			setupMock: func(m sendMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(b, nil)
				m.grants.EXPECT().Has(gomock.Any(), investorID, businessID).Return(true, nil)
				expectCreate(m)
			},
			wantRecipient: ownerID,
		},
		{
			// An investor who leaves the recipient blank reaches the owner.
			name:    "InvestorRecipientDefaultsToOwner",
			sender:  investor,
			content: "Hello!",
			setupMock: func(m sendMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(b, nil)
				m.grants.EXPECT().Has(gomock.Any(), investorID, businessID).Return(true, nil)
				expectCreate(m)
			},
			wantRecipient: ownerID,
		},
		{
			name:    "OwnerMustNameARecipient",
			sender:  owner,
			content: "Hello!",
			setupMock: func(m sendMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(b, nil)
			},
			wantErr: message.ErrValidation,
		},
		{
			name:        "EmptyContent",
			sender:      investor,
			recipientID: &ownerID,
			content:     "   ",
			setupMock:   func(m sendMocks) {},
			wantErr:     message.ErrValidation,
		},
		{
			name:        "InvestorWithoutGrant",
			sender:      investor,
			recipientID: &ownerID,
			content:     "Hello!",
			setupMock: func(m sendMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(b, nil)
				m.grants.EXPECT().Has(gomock.Any(), investorID, businessID).Return(false, nil)
			},
			wantErr: business.ErrForbidden,
		},
		{
			name:        "NotTheOwner",
			sender:      &auth.SessionUser{ID: uuid.New(), Role: auth.RoleBusinessOwner},
			recipientID: &investorID,
			content:     "Hello!",
			setupMock: func(m sendMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(b, nil)
			},
			wantErr: business.ErrForbidden,
		},
		{
			name:        "AdminCannotJoinTheConversation",
			sender:      admin,
			recipientID: &investorID,
			content:     "Hello!",
			setupMock: func(m sendMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(b, nil)
			},
			wantErr: business.ErrForbidden,
		},
		{
			name:        "BusinessMissing",
			sender:      investor,
			recipientID: &ownerID,
			content:     "Hello!",
			setupMock: func(m sendMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(nil, business.ErrNotFound)
			},
			wantErr: business.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mocks := newService(ctrl)
			tt.setupMock(mocks)

			got, err := svc.Send(context.Background(), tt.sender, businessID, tt.recipientID, tt.content)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.sender.ID, got.SenderID)
			assert.Equal(t, tt.wantRecipient, got.RecipientID)
			assert.Equal(t, tt.sender.Name, got.SenderName)
		})
	}
}

func TestService_List(t *testing.T) {
	ownerID := uuid.New()
	investorID := uuid.New()
	businessID := uuid.New()

	b := &business.Business{ID: businessID, OwnerID: ownerID}
	conversation := []*message.Message{
		{ID: uuid.New(), BusinessID: businessID, SenderID: investorID, Content: "Hello!"},
		{ID: uuid.New(), BusinessID: businessID, SenderID: ownerID, Content: "Hi there."},
	}

	type testCase struct {
		name      string
		viewer    *auth.SessionUser
		setupMock func(m sendMocks)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Admin",
			viewer: &auth.SessionUser{ID: uuid.New(), Role: auth.RoleAdmin},
			setupMock: func(m sendMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(b, nil)
				m.repo.EXPECT().ListByBusiness(gomock.Any(), businessID).Return(conversation, nil)
			},
		},
		{
			name:   "Owner",
			viewer: &auth.SessionUser{ID: ownerID, Role: auth.RoleBusinessOwner},
			setupMock: func(m sendMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(b, nil)
				m.repo.EXPECT().ListByBusiness(gomock.Any(), businessID).Return(conversation, nil)
			},
		},
		{
			name:   "OtherOwnerForbidden",
			viewer: &auth.SessionUser{ID: uuid.New(), Role: auth.RoleBusinessOwner},
			setupMock: func(m sendMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(b, nil)
			},
			wantErr: business.ErrForbidden,
		},
		{
			name:   "InvestorWithGrant",
			viewer: &auth.SessionUser{ID: investorID, Role: auth.RoleInvestor},
			setupMock: func(m sendMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(b, nil)
				m.grants.EXPECT().Has(gomock.Any(), investorID, businessID).Return(true, nil)
				m.repo.EXPECT().ListByBusiness(gomock.Any(), businessID).Return(conversation, nil)
			},
		},
		{
			name:   "InvestorWithoutGrant",
			viewer: &auth.SessionUser{ID: investorID, Role: auth.RoleInvestor},
			setupMock: func(m sendMocks) {
				m.businesses.EXPECT().GetBusiness(gomock.Any(), businessID).Return(b, nil)
				m.grants.EXPECT().Has(gomock.Any(), investorID, businessID).Return(false, nil)
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

			got, err := svc.List(context.Background(), tt.viewer, businessID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Len(t, got, 2)
			assert.Equal(t, "Hello!", got[0].Content)
		})
	}
}
