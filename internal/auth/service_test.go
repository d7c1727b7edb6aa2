package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/kogulmurugaiah/expensetrack/internal/auth"
)

const testSecret = "test-secret"

func TestService_SignUp(t *testing.T) {
	type testCase struct {
		name      string
		email     string
		password  string
		setupMock func(m *auth.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name:     "Success",
			email:    "Kogul@Example.com",
			password: "hunter2hunter2",
			setupMock: func(m *auth.MockRepository) {
				m.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *auth.User) error {
						// Email is normalized before it reaches the store.
						assert.Equal(t, "kogul@example.com", u.Email)
						u.ID = uuid.New()
						u.CreatedAt = time.Now()
						return nil
					})
			},
			wantErr: false,
		},
		{
			name:     "InvalidEmail",
			email:    "not-an-email",
			password: "hunter2hunter2",
			wantErr:  true,
		},
		{
			name:     "ShortPassword",
			email:    "kogul@example.com",
			password: "short",
			wantErr:  true,
		},
		{
			name:     "EmailTaken",
			email:    "kogul@example.com",
			password: "hunter2hunter2",
			setupMock: func(m *auth.MockRepository) {
				m.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					Return(auth.ErrEmailTaken)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := auth.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := auth.NewService(repo, testSecret, time.Hour)
			user, token, err := svc.SignUp(context.Background(), tt.email, tt.password)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, user)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.NotEmpty(t, token)

			id, err := svc.VerifyToken(token)
			require.NoError(t, err)
			assert.Equal(t, user.ID, id)
		})
	}
}

func TestService_SignIn(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &auth.User{
		ID:           uuid.New(),
		Email:        "kogul@example.com",
		PasswordHash: string(hash),
	}

	type testCase struct {
		name      string
		email     string
		password  string
		setupMock func(m *auth.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:     "Success",
			email:    "kogul@example.com",
			password: "correct horse",
			setupMock: func(m *auth.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "kogul@example.com").
					Return(stored, nil)
			},
		},
		{
			name:     "WrongPassword",
			email:    "kogul@example.com",
			password: "wrong horse",
			setupMock: func(m *auth.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "kogul@example.com").
					Return(stored, nil)
			},
			wantErr: auth.ErrInvalidCredentials,
		},
		{
			name:     "UnknownEmail",
			email:    "nobody@example.com",
			password: "whatever",
			setupMock: func(m *auth.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "nobody@example.com").
					Return(nil, auth.ErrNotFound)
			},
			wantErr: auth.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := auth.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := auth.NewService(repo, testSecret, time.Hour)
			user, token, err := svc.SignIn(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Empty(t, token)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, stored.ID, user.ID)
			assert.NotEmpty(t, token)
		})
	}
}

func TestService_VerifyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := auth.NewMockRepository(ctrl)

	t.Run("Garbage", func(t *testing.T) {
		svc := auth.NewService(repo, testSecret, time.Hour)

		_, err := svc.VerifyToken("not.a.token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		issuer := auth.NewService(repo, "other-secret", time.Hour)
		verifier := auth.NewService(repo, testSecret, time.Hour)

		hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
		require.NoError(t, err)

		stored := &auth.User{ID: uuid.New(), Email: "a@b.com", PasswordHash: string(hash)}
		repo.EXPECT().GetUserByEmail(gomock.Any(), "a@b.com").Return(stored, nil)

		_, token, err := issuer.SignIn(context.Background(), "a@b.com", "correct horse")
		require.NoError(t, err)

		_, err = verifier.VerifyToken(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		svc := auth.NewService(repo, testSecret, -time.Minute)

		hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
		require.NoError(t, err)

		stored := &auth.User{ID: uuid.New(), Email: "a@b.com", PasswordHash: string(hash)}
		repo.EXPECT().GetUserByEmail(gomock.Any(), "a@b.com").Return(stored, nil)

		_, token, err := svc.SignIn(context.Background(), "a@b.com", "correct horse")
		require.NoError(t, err)

		_, err = svc.VerifyToken(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
