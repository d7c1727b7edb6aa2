package view

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddIncomeModel_SaveResetsDraft(t *testing.T) {
	m := NewAddIncomeModel(nil, nil, nil, uuid.New())
	m.state = addIncomeStateSaving
	m.formDate = "2020-01-01"
	m.formAmount = "500.00"
	m.formDesc = "advance"

	updated, _ := m.Update(saveIncomeResultMsg{})
	got, ok := updated.(AddIncomeModel)
	require.True(t, ok)

	assert.Equal(t, FormatDate(time.Now()), got.formDate)
	assert.Empty(t, got.formAmount)
	assert.Empty(t, got.formDesc)
	assert.Equal(t, addIncomeStateLoading, got.state)
	assert.Equal(t, "Saved.", got.status)
}

func TestAddIncomeModel_NewSourcePreselected(t *testing.T) {
	m := NewAddIncomeModel(nil, nil, nil, uuid.New())
	m.state = addIncomeStateNewSource

	id := uuid.NewString()

	updated, _ := m.Update(addSourceResultMsg{value: id})
	got, ok := updated.(AddIncomeModel)
	require.True(t, ok)

	assert.Equal(t, id, got.formSource)
	assert.Equal(t, addIncomeStateLoading, got.state)
}
