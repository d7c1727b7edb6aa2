package expense

import (
	"time"

	"github.com/google/uuid"

	"github.com/kogulmurugaiah/expensetrack/internal/expense"
)

type expenseResponse struct {
	ID           uuid.UUID  `json:"id"`
	Date         time.Time  `json:"date"`
	Item         string     `json:"item"`
	Description  string     `json:"description,omitempty"`
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	CategoryName string     `json:"category_name,omitempty"`
	Amount       int64      `json:"amount"`
	AccountType  string     `json:"account_type"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

func toResponse(e *expense.Expense) expenseResponse {
	return expenseResponse{
		ID:           e.ID,
		Date:         e.Date,
		Item:         e.Item,
		Description:  e.Description,
		CategoryID:   e.CategoryID,
		CategoryName: e.CategoryName,
		Amount:       e.Amount,
		AccountType:  e.AccountType,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func toResponseList(expenses []*expense.Expense) []expenseResponse {
	resp := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = toResponse(e)
	}

	return resp
}
