package category_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kogulmurugaiah/expensetrack/internal/category"
)

func TestService_Add(t *testing.T) {
	existing := []*category.Category{
		{ID: uuid.New(), Name: "Food"},
		{ID: uuid.New(), Name: "Travel"},
	}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := category.NewMockRepository(ctrl)
		repo.EXPECT().ListCategories(gomock.Any()).Return(existing, nil)
		repo.EXPECT().
			CreateCategory(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *category.Category) error {
				assert.Equal(t, "Rent", c.Name)
				return nil
			})

		svc := category.NewService(repo)
		got, err := svc.Add(context.Background(), "  Rent  ")

		require.NoError(t, err)
		assert.Equal(t, "Rent", got.Name)
	})

	t.Run("EmptyName", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := category.NewMockRepository(ctrl)

		svc := category.NewService(repo)
		_, err := svc.Add(context.Background(), "   ")

		assert.ErrorIs(t, err, category.ErrEmptyName)
	})

	t.Run("DuplicateCaseInsensitive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := category.NewMockRepository(ctrl)
		repo.EXPECT().ListCategories(gomock.Any()).Return(existing, nil)

		svc := category.NewService(repo)
		_, err := svc.Add(context.Background(), "food")

		assert.ErrorIs(t, err, category.ErrDuplicate)
	})
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := []*category.Category{
		{ID: uuid.New(), Name: "Food"},
		{ID: uuid.New(), Name: "Travel"},
	}

	repo := category.NewMockRepository(ctrl)
	repo.EXPECT().ListCategories(gomock.Any()).Return(existing, nil)

	svc := category.NewService(repo)
	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, existing, got)
}
