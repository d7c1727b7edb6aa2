package income_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kogulmurugaiah/expensetrack/internal/income"
)

func TestService_Create(t *testing.T) {
	userID := uuid.New()
	sourceID := uuid.New()

	type testCase struct {
		name      string
		params    income.CreateParams
		setupMock func(m *income.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: income.CreateParams{
				Date:        time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				Amount:      500000,
				SourceID:    sourceID,
				AccountType: "SBI",
				Description: "  March salary  ",
			},
			setupMock: func(m *income.MockRepository) {
				m.EXPECT().
					CreateIncome(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in *income.Income) error {
						assert.Equal(t, "March salary", in.Description)
						in.ID = uuid.New()
						in.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "MissingAmount",
			params: income.CreateParams{
				Date:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				SourceID: sourceID,
			},
			wantErr: income.ErrAmountDateRequired,
		},
		{
			name: "MissingSource",
			params: income.CreateParams{
				Date:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				Amount: 500000,
			},
			wantErr: income.ErrSourceRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := income.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := income.NewService(repo)
			got, err := svc.Create(context.Background(), userID, tt.params)

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, userID, got.UserID)
		})
	}
}

func TestService_Update(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()

	existing := func() *income.Income {
		return &income.Income{
			ID:          id,
			UserID:      userID,
			Date:        time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			Amount:      500000,
			SourceID:    uuid.New(),
			AccountType: "SBI",
		}
	}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := income.NewMockRepository(ctrl)
		repo.EXPECT().GetIncome(gomock.Any(), userID, id).Return(existing(), nil)
		repo.EXPECT().UpdateIncome(gomock.Any(), gomock.Any()).Return(nil)

		svc := income.NewService(repo)

		amount := int64(600000)
		got, err := svc.Update(context.Background(), userID, id, income.UpdateParams{Amount: &amount})

		require.NoError(t, err)
		assert.Equal(t, int64(600000), got.Amount)
	})

	t.Run("ZeroAmountRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := income.NewMockRepository(ctrl)
		repo.EXPECT().GetIncome(gomock.Any(), userID, id).Return(existing(), nil)

		svc := income.NewService(repo)

		amount := int64(0)
		_, err := svc.Update(context.Background(), userID, id, income.UpdateParams{Amount: &amount})

		assert.Equal(t, income.ErrAmountDateRequired, err)
	})
}
