package expense_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kogulmurugaiah/expensetrack/internal/expense"
)

func TestService_Create(t *testing.T) {
	userID := uuid.New()
	catID := uuid.New()

	type testCase struct {
		name      string
		params    expense.CreateParams
		setupMock func(m *expense.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: expense.CreateParams{
				Date:        time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
				Item:        "Groceries",
				CategoryID:  &catID,
				Amount:      10000,
				AccountType: "CASH",
			},
			setupMock: func(m *expense.MockRepository) {
				m.EXPECT().
					CreateExpense(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *expense.Expense) error {
						e.ID = uuid.New()
						e.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			// No store call may happen when validation fails; the mock
			// has no expectation set and would fail the test otherwise.
			name: "MissingAmount",
			params: expense.CreateParams{
				Date:       time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
				Item:       "Groceries",
				CategoryID: &catID,
			},
			wantErr: expense.ErrAmountDateRequired,
		},
		{
			name: "MissingDate",
			params: expense.CreateParams{
				Item:       "Groceries",
				CategoryID: &catID,
				Amount:     10000,
			},
			wantErr: expense.ErrAmountDateRequired,
		},
		{
			name: "MissingCategory",
			params: expense.CreateParams{
				Date:   time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
				Item:   "Groceries",
				Amount: 10000,
			},
			wantErr: expense.ErrCategoryRequired,
		},
		{
			name: "RepoError",
			params: expense.CreateParams{
				Date:       time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
				Item:       "Groceries",
				CategoryID: &catID,
				Amount:     10000,
			},
			setupMock: func(m *expense.MockRepository) {
				m.EXPECT().
					CreateExpense(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := expense.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := expense.NewService(repo)
			got, err := svc.Create(context.Background(), userID, tt.params)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, userID, got.UserID)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_ListMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo := expense.NewMockRepository(ctrl)

	repo.EXPECT().
		ListExpenses(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, filter expense.ListFilter) ([]*expense.Expense, error) {
			require.NotNil(t, filter.StartDate)
			require.NotNil(t, filter.EndDate)
			assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), *filter.StartDate)
			assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), *filter.EndDate)
			return []*expense.Expense{{ID: uuid.New()}}, nil
		})

	svc := expense.NewService(repo)
	got, err := svc.ListMonth(context.Background(), userID, 2026, time.February)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestService_Update(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()
	catID := uuid.New()

	existing := func() *expense.Expense {
		return &expense.Expense{
			ID:          id,
			UserID:      userID,
			Date:        time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
			Item:        "Groceries",
			CategoryID:  &catID,
			Amount:      10000,
			AccountType: "CASH",
		}
	}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)
		repo.EXPECT().GetExpense(gomock.Any(), userID, id).Return(existing(), nil)
		repo.EXPECT().
			UpdateExpense(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *expense.Expense) error {
				assert.Equal(t, int64(5000), e.Amount)
				assert.Equal(t, "Fuel", e.Item)
				return nil
			})

		svc := expense.NewService(repo)

		amount := int64(5000)
		item := "Fuel"
		got, err := svc.Update(context.Background(), userID, id, expense.UpdateParams{
			Amount: &amount,
			Item:   &item,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(5000), got.Amount)
	})

	t.Run("EmptyItem", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)
		repo.EXPECT().GetExpense(gomock.Any(), userID, id).Return(existing(), nil)

		svc := expense.NewService(repo)

		item := "   "
		_, err := svc.Update(context.Background(), userID, id, expense.UpdateParams{Item: &item})

		assert.Equal(t, expense.ErrItemRequired, err)
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)
		repo.EXPECT().GetExpense(gomock.Any(), userID, id).Return(existing(), nil)

		svc := expense.NewService(repo)

		amount := int64(0)
		_, err := svc.Update(context.Background(), userID, id, expense.UpdateParams{Amount: &amount})

		assert.Equal(t, expense.ErrAmountDateRequired, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)
		repo.EXPECT().GetExpense(gomock.Any(), userID, id).Return(nil, expense.ErrNotFound)

		svc := expense.NewService(repo)

		_, err := svc.Update(context.Background(), userID, id, expense.UpdateParams{})

		assert.ErrorIs(t, err, expense.ErrNotFound)
	})
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		start string
		end   string
	}{
		{"ThirtyOneDays", 2026, time.March, "2026-03-01", "2026-03-31"},
		{"February", 2026, time.February, "2026-02-01", "2026-02-28"},
		{"LeapFebruary", 2028, time.February, "2028-02-01", "2028-02-29"},
		{"December", 2026, time.December, "2026-12-01", "2026-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := expense.MonthRange(tt.year, tt.month)
			assert.Equal(t, tt.start, start.Format(time.DateOnly))
			assert.Equal(t, tt.end, end.Format(time.DateOnly))
		})
	}
}
