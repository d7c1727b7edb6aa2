// Package category manages the shared expense category reference table.
// Categories are global, not user-scoped.
package category

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kogulmurugaiah/expensetrack/internal/apperror"
)

const (
	ErrEmptyName = apperror.Validation("Category name cannot be empty")
	ErrDuplicate = apperror.Duplicate("Category already exists")
)

type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	ListCategories(ctx context.Context) ([]*Category, error)
	CreateCategory(ctx context.Context, c *Category) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all categories ordered by name.
func (s *Service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}

// Add creates a category unless the trimmed name is empty or collides
// case-insensitively with an existing one.
func (s *Service) Add(ctx context.Context, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	existing, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range existing {
		if strings.EqualFold(c.Name, name) {
			return nil, ErrDuplicate
		}
	}

	c := &Category{Name: name}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}
