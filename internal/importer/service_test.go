package importer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kogulmurugaiah/expensetrack/internal/category"
	"github.com/kogulmurugaiah/expensetrack/internal/expense"
	"github.com/kogulmurugaiah/expensetrack/internal/importer"
)

func TestService_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	foodID := uuid.New()
	travelID := uuid.New()
	fallbackID := uuid.New()

	csv := strings.Join([]string{
		"Date,Item,Amount,Category",
		"2026-03-05,Groceries,150.50,food",
		"2026-03-06,Train ticket,45.00,Travel",
		"2026-03-07,Unknown shop,10.00,",
		"bad date,Skipped,1.00,food",
	}, "\n")

	categories := importer.NewMockCategoryResolver(ctrl)
	categories.EXPECT().
		List(gomock.Any()).
		Return([]*category.Category{{ID: foodID, Name: "Food"}}, nil)
	categories.EXPECT().
		Add(gomock.Any(), "Travel").
		Return(&category.Category{ID: travelID, Name: "Travel"}, nil)
	categories.EXPECT().
		Add(gomock.Any(), importer.FallbackCategory).
		Return(&category.Category{ID: fallbackID, Name: importer.FallbackCategory}, nil)

	expenses := importer.NewMockExpenseCreator(ctrl)

	var created []expense.CreateParams

	expenses.EXPECT().
		Create(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, params expense.CreateParams) (*expense.Expense, error) {
			created = append(created, params)
			return &expense.Expense{ID: uuid.New()}, nil
		}).
		Times(3)

	svc := importer.NewService(categories, expenses)
	result, err := svc.Import(context.Background(), userID, strings.NewReader(csv), "SBI")

	require.NoError(t, err)
	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, 1, result.Skipped)

	require.Len(t, created, 3)
	assert.Equal(t, foodID, *created[0].CategoryID)
	assert.Equal(t, int64(15050), created[0].Amount)
	assert.Equal(t, "SBI", created[0].AccountType)
	assert.Equal(t, travelID, *created[1].CategoryID)
	assert.Equal(t, fallbackID, *created[2].CategoryID)
}

func TestService_Import_NoHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	categories := importer.NewMockCategoryResolver(ctrl)
	expenses := importer.NewMockExpenseCreator(ctrl)

	svc := importer.NewService(categories, expenses)
	_, err := svc.Import(context.Background(), uuid.New(), strings.NewReader("garbage\n"), "CASH")

	assert.Error(t, err)
}
