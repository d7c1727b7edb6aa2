// Package incomesource manages the user-scoped labels applied to income
// entries (salary, freelance, and so on).
package incomesource

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kogulmurugaiah/expensetrack/internal/apperror"
)

const (
	ErrEmptyName = apperror.Validation("Income source name cannot be empty")
	ErrDuplicate = apperror.Duplicate("Income source already exists")
)

type Source struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=incomesource
type Repository interface {
	ListSources(ctx context.Context, userID uuid.UUID) ([]*Source, error)
	CreateSource(ctx context.Context, src *Source) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the user's sources in creation order.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*Source, error) {
	return s.repo.ListSources(ctx, userID)
}

// Add stores a new source unless the trimmed name is empty or collides
// case-insensitively with an existing one.
func (s *Service) Add(ctx context.Context, userID uuid.UUID, name string) (*Source, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	existing, err := s.repo.ListSources(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, src := range existing {
		if strings.EqualFold(src.Name, name) {
			return nil, ErrDuplicate
		}
	}

	src := &Source{UserID: userID, Name: name}
	if err := s.repo.CreateSource(ctx, src); err != nil {
		return nil, err
	}

	return src, nil
}
