package accounttype_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kogulmurugaiah/expensetrack/internal/accounttype"
)

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo := accounttype.NewMockRepository(ctrl)

	repo.EXPECT().
		ListAccountTypes(gomock.Any(), userID).
		Return([]*accounttype.AccountType{
			{Name: "HDFC"},
			{Name: "Wallet"},
		}, nil)

	svc := accounttype.NewService(repo)
	got, err := svc.List(context.Background(), userID)

	require.NoError(t, err)
	// Builtins first in fixed order, custom entries after in fetch order.
	assert.Equal(t, []string{"INDIAN", "SBI", "UNION", "CASH", "HDFC", "Wallet"}, got)
}

func TestService_Add(t *testing.T) {
	userID := uuid.New()

	type testCase struct {
		name      string
		input     string
		setupMock func(m *accounttype.MockRepository)
		want      string
		wantErr   error
	}

	tests := []testCase{
		{
			name:  "Success",
			input: "  HDFC  ",
			setupMock: func(m *accounttype.MockRepository) {
				m.EXPECT().
					ListAccountTypes(gomock.Any(), userID).
					Return(nil, nil)
				m.EXPECT().
					CreateAccountType(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, at *accounttype.AccountType) error {
						assert.Equal(t, "HDFC", at.Name)
						at.ID = uuid.New()
						return nil
					})
			},
			want: "HDFC",
		},
		{
			name:    "EmptyName",
			input:   "   ",
			wantErr: accounttype.ErrEmptyName,
		},
		{
			name:  "DuplicateOfBuiltin",
			input: "cash",
			setupMock: func(m *accounttype.MockRepository) {
				m.EXPECT().
					ListAccountTypes(gomock.Any(), userID).
					Return(nil, nil)
			},
			wantErr: accounttype.ErrDuplicate,
		},
		{
			name:  "DuplicateOfCustomCaseInsensitive",
			input: "hdfc",
			setupMock: func(m *accounttype.MockRepository) {
				m.EXPECT().
					ListAccountTypes(gomock.Any(), userID).
					Return([]*accounttype.AccountType{{Name: "HDFC"}}, nil)
			},
			wantErr: accounttype.ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := accounttype.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := accounttype.NewService(repo)
			got, err := svc.Add(context.Background(), userID, tt.input)

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				assert.Empty(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
