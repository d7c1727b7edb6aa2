// Package importer ingests bank statement CSV exports and turns their
// rows into expenses.
package importer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/kogulmurugaiah/expensetrack/internal/category"
	"github.com/kogulmurugaiah/expensetrack/internal/expense"
)

// FallbackCategory is assigned to rows whose statement carries no
// category column or an empty value.
const FallbackCategory = "Uncategorized"

//go:generate mockgen -source=service.go -destination=deps_mock.go -package=importer
type CategoryResolver interface {
	List(ctx context.Context) ([]*category.Category, error)
	Add(ctx context.Context, name string) (*category.Category, error)
}

type ExpenseCreator interface {
	Create(ctx context.Context, userID uuid.UUID, params expense.CreateParams) (*expense.Expense, error)
}

type Service struct {
	parser     *Parser
	categories CategoryResolver
	expenses   ExpenseCreator
}

func NewService(categories CategoryResolver, expenses ExpenseCreator) *Service {
	return &Service{
		parser:     NewParser(),
		categories: categories,
		expenses:   expenses,
	}
}

// Result summarizes one import run.
type Result struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// Import parses the statement and creates one expense per usable row,
// all booked against the given account type. Category names are matched
// case-insensitively against the existing table; unmatched names are
// created on the fly.
func (s *Service) Import(ctx context.Context, userID uuid.UUID, r io.Reader, accountType string) (*Result, error) {
	entries, skipped, err := s.parser.Parse(r)
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]uuid.UUID, len(categories))
	for _, c := range categories {
		byName[strings.ToLower(c.Name)] = c.ID
	}

	result := &Result{Skipped: skipped}

	for _, entry := range entries {
		catID, err := s.resolveCategory(ctx, byName, entry.Category)
		if err != nil {
			return result, err
		}

		params := expense.CreateParams{
			Date:        entry.Date,
			Item:        entry.Item,
			Description: entry.Note,
			CategoryID:  &catID,
			Amount:      entry.Amount,
			AccountType: accountType,
		}

		if _, err := s.expenses.Create(ctx, userID, params); err != nil {
			return result, fmt.Errorf("importing row dated %s: %w", entry.Date.Format("2006-01-02"), err)
		}

		result.Imported++
	}

	return result, nil
}

func (s *Service) resolveCategory(ctx context.Context, byName map[string]uuid.UUID, name string) (uuid.UUID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = FallbackCategory
	}

	if id, ok := byName[strings.ToLower(name)]; ok {
		return id, nil
	}

	c, err := s.categories.Add(ctx, name)
	if err != nil {
		return uuid.Nil, fmt.Errorf("creating category %q: %w", name, err)
	}

	byName[strings.ToLower(name)] = c.ID

	return c.ID, nil
}
