package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/hfaria/ventura/internal/auth"
	"github.com/hfaria/ventura/internal/user"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    user.CreateParams
		setupMock func(m *user.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: user.CreateParams{
				Name:     "Maria",
				Email:    "maria@example.com",
				Password: "secret123",
				Role:     auth.RoleInvestor,
			},
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					FindByEmail(gomock.Any(), "maria@example.com").
					Return(nil, nil)
				m.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *user.User) error {
						u.ID = uuid.New()
						u.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "EmailNormalized",
			params: user.CreateParams{
				Name:     "Maria",
				Email:    "  Maria@Example.COM ",
				Password: "secret123",
				Role:     auth.RoleInvestor,
			},
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					FindByEmail(gomock.Any(), "maria@example.com").
					Return(nil, nil)
				m.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *user.User) error {
						u.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "EmailTaken",
			params: user.CreateParams{
				Name:     "Maria",
				Email:    "maria@example.com",
				Password: "secret123",
				Role:     auth.RoleInvestor,
			},
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					FindByEmail(gomock.Any(), "maria@example.com").
					Return(&user.User{ID: uuid.New(), Email: "maria@example.com"}, nil)
			},
			wantErr: user.ErrEmailTaken,
		},
		{
			name: "ShortPassword",
			params: user.CreateParams{
				Name:     "Maria",
				Email:    "maria@example.com",
				Password: "abc",
				Role:     auth.RoleInvestor,
			},
			wantErr: user.ErrValidation,
		},
		{
			name: "MissingName",
			params: user.CreateParams{
				Email:    "maria@example.com",
				Password: "secret123",
				Role:     auth.RoleInvestor,
			},
			wantErr: user.ErrValidation,
		},
		{
			name: "InvalidEmail",
			params: user.CreateParams{
				Name:     "Maria",
				Email:    "not-an-email",
				Password: "secret123",
				Role:     auth.RoleInvestor,
			},
			wantErr: user.ErrValidation,
		},
		{
			name: "InvalidRole",
			params: user.CreateParams{
				Name:     "Maria",
				Email:    "maria@example.com",
				Password: "secret123",
				Role:     auth.Role("superuser"),
			},
			wantErr: user.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := user.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := user.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, "maria@example.com", got.Email)
			assert.True(t, got.IsActive)
			assert.NotEqual(t, tt.params.Password, got.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("secret123")))
		})
	}
}

func TestService_Update_EmailConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)
	svc := user.NewService(repo)

	id := uuid.New()
	existing := &user.User{ID: id, Name: "Maria", Email: "maria@example.com", Role: auth.RoleInvestor}

	repo.EXPECT().GetUser(gomock.Any(), id).Return(existing, nil)
	repo.EXPECT().
		FindByEmail(gomock.Any(), "taken@example.com").
		Return(&user.User{ID: uuid.New()}, nil)

	newEmail := "taken@example.com"
	_, err := svc.Update(context.Background(), id, user.UpdatePatch{Email: &newEmail})
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestService_Update_SameEmailNoConflictCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)
	svc := user.NewService(repo)

	id := uuid.New()
	existing := &user.User{ID: id, Name: "Maria", Email: "maria@example.com", Role: auth.RoleInvestor}

	repo.EXPECT().GetUser(gomock.Any(), id).Return(existing, nil)
	repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(nil)

	sameEmail := "maria@example.com"
	updated, err := svc.Update(context.Background(), id, user.UpdatePatch{Email: &sameEmail})
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", updated.Email)
}

func TestService_ResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)
	svc := user.NewService(repo)

	id := uuid.New()

	t.Run("TooShort", func(t *testing.T) {
		err := svc.ResetPassword(context.Background(), id, "abc")
		assert.ErrorIs(t, err, user.ErrValidation)
	})

	t.Run("Success", func(t *testing.T) {
		repo.EXPECT().GetUser(gomock.Any(), id).Return(&user.User{ID: id}, nil)
		repo.EXPECT().
			UpdatePasswordHash(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("newsecret")))
				return nil
			})

		err := svc.ResetPassword(context.Background(), id, "newsecret")
		assert.NoError(t, err)
	})
}
