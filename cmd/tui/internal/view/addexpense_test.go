package view

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddExpenseModel_SaveResetsDraft(t *testing.T) {
	m := NewAddExpenseModel(nil, nil, nil, uuid.New())
	m.state = addExpenseStateSaving
	m.formDate = "2020-01-01"
	m.formItem = "Chai"
	m.formDesc = "roadside"
	m.formAmount = "10.00"

	updated, _ := m.Update(saveExpenseResultMsg{})
	got, ok := updated.(AddExpenseModel)
	require.True(t, ok)

	assert.Equal(t, FormatDate(time.Now()), got.formDate)
	assert.Empty(t, got.formItem)
	assert.Empty(t, got.formDesc)
	assert.Empty(t, got.formAmount)
	assert.Equal(t, addExpenseStateLoading, got.state)
	assert.Equal(t, "Saved.", got.status)
}

func TestAddExpenseModel_SaveErrorKeepsDraft(t *testing.T) {
	m := NewAddExpenseModel(nil, nil, nil, uuid.New())
	m.state = addExpenseStateSaving
	m.formDate = "2020-01-01"
	m.formItem = "Chai"
	m.formAmount = "10.00"

	updated, _ := m.Update(saveExpenseResultMsg{err: assert.AnError})
	got, ok := updated.(AddExpenseModel)
	require.True(t, ok)

	assert.Equal(t, "2020-01-01", got.formDate)
	assert.Equal(t, "Chai", got.formItem)
	assert.Equal(t, "10.00", got.formAmount)
	assert.Equal(t, addExpenseStateForm, got.state)
}

func TestAddExpenseModel_NewNamePreselected(t *testing.T) {
	t.Run("Category", func(t *testing.T) {
		m := NewAddExpenseModel(nil, nil, nil, uuid.New())
		m.state = addExpenseStateNewCategory

		id := uuid.NewString()

		updated, _ := m.Update(addNameResultMsg{value: id})
		got, ok := updated.(AddExpenseModel)
		require.True(t, ok)

		assert.Equal(t, id, got.formCategory)
		assert.Equal(t, addExpenseStateLoading, got.state)
	})

	t.Run("AccountType", func(t *testing.T) {
		m := NewAddExpenseModel(nil, nil, nil, uuid.New())
		m.state = addExpenseStateNewAccountType

		updated, _ := m.Update(addNameResultMsg{value: "HDFC"})
		got, ok := updated.(AddExpenseModel)
		require.True(t, ok)

		assert.Equal(t, "HDFC", got.formAccount)
		assert.Equal(t, addExpenseStateLoading, got.state)
	})
}
