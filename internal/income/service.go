package income

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kogulmurugaiah/expensetrack/internal/apperror"
	"github.com/kogulmurugaiah/expensetrack/internal/expense"
)

var ErrNotFound = errors.New("income record not found")

const (
	ErrAmountDateRequired = apperror.Validation("Amount and Date are required")
	ErrSourceRequired     = apperror.Validation("Please select an income source")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=income
type Repository interface {
	CreateIncome(ctx context.Context, in *Income) error
	GetIncome(ctx context.Context, userID, id uuid.UUID) (*Income, error)
	ListIncome(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Income, error)
	UpdateIncome(ctx context.Context, in *Income) error
	DeleteIncome(ctx context.Context, userID, id uuid.UUID) error
}

// ListFilter selects an inclusive date range, ordered newest-first.
type ListFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Date        time.Time
	Amount      int64
	SourceID    uuid.UUID
	AccountType string
	Description string
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*Income, error) {
	if params.Amount <= 0 || params.Date.IsZero() {
		return nil, ErrAmountDateRequired
	}

	if params.SourceID == uuid.Nil {
		return nil, ErrSourceRequired
	}

	in := &Income{
		UserID:      userID,
		Date:        params.Date,
		Amount:      params.Amount,
		SourceID:    params.SourceID,
		AccountType: params.AccountType,
		Description: strings.TrimSpace(params.Description),
	}

	if err := s.repo.CreateIncome(ctx, in); err != nil {
		return nil, err
	}

	return in, nil
}

// ListMonth returns the user's income for the calendar month, source
// names joined, newest first.
func (s *Service) ListMonth(ctx context.Context, userID uuid.UUID, year int, month time.Month) ([]*Income, error) {
	start, end := expense.MonthRange(year, month)

	return s.repo.ListIncome(ctx, userID, ListFilter{StartDate: &start, EndDate: &end})
}

type UpdateParams struct {
	Date        *time.Time
	Amount      *int64
	SourceID    *uuid.UUID
	AccountType *string
	Description *string
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, params UpdateParams) (*Income, error) {
	in, err := s.repo.GetIncome(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if params.Date != nil {
		in.Date = *params.Date
	}

	if params.Amount != nil {
		in.Amount = *params.Amount
	}

	if params.SourceID != nil {
		in.SourceID = *params.SourceID
	}

	if params.AccountType != nil {
		in.AccountType = *params.AccountType
	}

	if params.Description != nil {
		in.Description = strings.TrimSpace(*params.Description)
	}

	if in.Amount <= 0 || in.Date.IsZero() {
		return nil, ErrAmountDateRequired
	}

	if err := s.repo.UpdateIncome(ctx, in); err != nil {
		return nil, err
	}

	return in, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteIncome(ctx, userID, id)
}
