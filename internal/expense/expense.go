package expense

import (
	"time"

	"github.com/google/uuid"
)

// Expense is a single spending entry owned by one user. Amount is stored
// in minor currency units (paise).
type Expense struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Date         time.Time
	Item         string
	Description  string
	CategoryID   *uuid.UUID
	CategoryName string // Loaded via JOIN; empty when CategoryID is nil.
	Amount       int64
	AccountType  string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
