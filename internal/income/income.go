package income

import (
	"time"

	"github.com/google/uuid"
)

// Income is a single earning entry owned by one user. Amount is stored
// in minor currency units (paise).
type Income struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	Amount      int64
	SourceID    uuid.UUID
	SourceName  string // Loaded via JOIN.
	AccountType string
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
