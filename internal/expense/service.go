package expense

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kogulmurugaiah/expensetrack/internal/apperror"
)

var ErrNotFound = errors.New("expense not found")

// Validation messages surfaced verbatim to the user.
const (
	ErrAmountDateRequired = apperror.Validation("Amount and Date are required")
	ErrCategoryRequired   = apperror.Validation("Please select a category")
	ErrItemRequired       = apperror.Validation("Item is required")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	CreateExpense(ctx context.Context, e *Expense) error
	GetExpense(ctx context.Context, userID, id uuid.UUID) (*Expense, error)
	ListExpenses(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Expense, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*Expense, error)
	UpdateExpense(ctx context.Context, e *Expense) error
	DeleteExpense(ctx context.Context, userID, id uuid.UUID) error
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
	Item        string
	Description string
	CategoryID  *uuid.UUID
	Amount      int64
	AccountType string
}

// Create validates and stores a new expense. Validation failures abort
// before any store call so the caller's draft survives intact.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*Expense, error) {
	if params.Amount <= 0 || params.Date.IsZero() {
		return nil, ErrAmountDateRequired
	}

	if params.CategoryID == nil {
		return nil, ErrCategoryRequired
	}

	e := &Expense{
		UserID:      userID,
		Date:        params.Date,
		Item:        strings.TrimSpace(params.Item),
		Description: strings.TrimSpace(params.Description),
		CategoryID:  params.CategoryID,
		Amount:      params.Amount,
		AccountType: params.AccountType,
	}

	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

// ListMonth returns the user's expenses within the calendar month,
// category names joined, newest first.
func (s *Service) ListMonth(ctx context.Context, userID uuid.UUID, year int, month time.Month) ([]*Expense, error) {
	start, end := MonthRange(year, month)

	return s.repo.ListExpenses(ctx, userID, ListFilter{StartDate: &start, EndDate: &end})
}

// ListRange returns the user's expenses within [start, end] inclusive.
func (s *Service) ListRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*Expense, error) {
	return s.repo.ListExpenses(ctx, userID, ListFilter{StartDate: &start, EndDate: &end})
}

// ListRecent returns the newest entries by creation time, for the
// recent-activity list under the entry form.
func (s *Service) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*Expense, error) {
	return s.repo.ListRecent(ctx, userID, limit)
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Expense, error) {
	return s.repo.GetExpense(ctx, userID, id)
}

type UpdateParams struct {
	Date        *time.Time
	Item        *string
	Description *string
	CategoryID  *uuid.UUID
	ClearCat    bool
	Amount      *int64
	AccountType *string
}

// Update applies the given fields to one row owned by the user.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, params UpdateParams) (*Expense, error) {
	e, err := s.repo.GetExpense(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if params.Date != nil {
		e.Date = *params.Date
	}

	if params.Item != nil {
		e.Item = strings.TrimSpace(*params.Item)
	}

	if params.Description != nil {
		e.Description = strings.TrimSpace(*params.Description)
	}

	if params.CategoryID != nil {
		e.CategoryID = params.CategoryID
	} else if params.ClearCat {
		e.CategoryID = nil
	}

	if params.Amount != nil {
		e.Amount = *params.Amount
	}

	if params.AccountType != nil {
		e.AccountType = *params.AccountType
	}

	if e.Item == "" {
		return nil, ErrItemRequired
	}

	if e.Amount <= 0 || e.Date.IsZero() {
		return nil, ErrAmountDateRequired
	}

	if err := s.repo.UpdateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteExpense(ctx, userID, id)
}

// MonthRange returns the first and last day of a calendar month.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	return start, end
}

// YearRange returns January 1st and December 31st of a year.
func YearRange(year int) (time.Time, time.Time) {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}
