package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. Every expense and income row is owned by
// exactly one user and queries are always scoped by the user's ID.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
