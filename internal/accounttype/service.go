// Package accounttype manages the account-type labels attached to
// transactions. A fixed built-in set is merged with the user's own
// entries; the label is a plain string tag, not a relation.
package accounttype

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kogulmurugaiah/expensetrack/internal/apperror"
)

// Defaults is the built-in account-type set, in fixed display order.
// User entries are appended after these.
var Defaults = []string{"INDIAN", "SBI", "UNION", "CASH"}

const (
	ErrEmptyName = apperror.Validation("Account type name cannot be empty")
	ErrDuplicate = apperror.Duplicate("Account type already exists")
)

type AccountType struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=accounttype
type Repository interface {
	ListAccountTypes(ctx context.Context, userID uuid.UUID) ([]*AccountType, error)
	CreateAccountType(ctx context.Context, at *AccountType) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns builtins first in fixed order, then the user's custom
// entries in creation order.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]string, error) {
	custom, err := s.repo.ListAccountTypes(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := make([]string, 0, len(Defaults)+len(custom))
	merged = append(merged, Defaults...)

	for _, at := range custom {
		merged = append(merged, at.Name)
	}

	return merged, nil
}

// Add stores a new custom account type for the user. The name is
// trimmed; empty names and case-insensitive duplicates of the merged
// set are rejected without touching the store.
//
// Note: there is no server-side unique constraint, so two concurrent
// adds of the same name from different sessions can both land.
func (s *Service) Add(ctx context.Context, userID uuid.UUID, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}

	existing, err := s.List(ctx, userID)
	if err != nil {
		return "", err
	}

	for _, n := range existing {
		if strings.EqualFold(n, name) {
			return "", ErrDuplicate
		}
	}

	at := &AccountType{UserID: userID, Name: name}
	if err := s.repo.CreateAccountType(ctx, at); err != nil {
		return "", err
	}

	return at.Name, nil
}
