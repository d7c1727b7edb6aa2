package view

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kogulmurugaiah/expensetrack/internal/expense"
)

func TestExpensesModel_SaveWithoutCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)

	userID := uuid.New()
	id := uuid.New()

	stored := &expense.Expense{
		ID:          id,
		UserID:      userID,
		Date:        time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
		Item:        "Chai",
		Amount:      1000,
		AccountType: "CASH",
	}

	repo.EXPECT().
		GetExpense(gomock.Any(), userID, id).
		Return(stored, nil)

	repo.EXPECT().
		UpdateExpense(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *expense.Expense) error {
			// An uncategorized row stays uncategorized after an edit.
			assert.Nil(t, e.CategoryID)
			return nil
		})

	m := NewExpensesModel(expense.NewService(repo), nil, nil, userID)
	m.selected = stored
	m.formDate = "2026-03-05"
	m.formItem = "Chai"
	m.formAmount = "10.00"
	m.formAccount = "CASH"
	m.formCategory = ""

	msg := m.saveCmd()()
	res, ok := msg.(mutateExpenseResultMsg)
	require.True(t, ok)
	require.NoError(t, res.err)
}

func TestExpensesModel_SaveWithCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)

	userID := uuid.New()
	id := uuid.New()
	catID := uuid.New()

	stored := &expense.Expense{
		ID:          id,
		UserID:      userID,
		Date:        time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
		Item:        "Chai",
		Amount:      1000,
		AccountType: "CASH",
	}

	repo.EXPECT().
		GetExpense(gomock.Any(), userID, id).
		Return(stored, nil)

	repo.EXPECT().
		UpdateExpense(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *expense.Expense) error {
			require.NotNil(t, e.CategoryID)
			assert.Equal(t, catID, *e.CategoryID)
			return nil
		})

	m := NewExpensesModel(expense.NewService(repo), nil, nil, userID)
	m.selected = stored
	m.formDate = "2026-03-05"
	m.formItem = "Chai"
	m.formAmount = "10.00"
	m.formAccount = "CASH"
	m.formCategory = catID.String()

	msg := m.saveCmd()()
	res, ok := msg.(mutateExpenseResultMsg)
	require.True(t, ok)
	require.NoError(t, res.err)
}
