package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/kogulmurugaiah/expensetrack/internal/expense"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectExpenseColumns = `
	e.id, e.user_id, e.date, e.item, e.description, e.category_id, c.name,
	e.amount, e.account_type, e.created_at, e.updated_at
`

// scanExpense reads one expense row joined with its category name.
func scanExpense(s scanner) (*expense.Expense, error) {
	var e expense.Expense

	var desc, catName sql.NullString

	var catID *uuid.UUID

	if err := s.Scan(
		&e.ID, &e.UserID, &e.Date, &e.Item, &desc, &catID, &catName,
		&e.Amount, &e.AccountType, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	e.Description = desc.String
	e.CategoryID = catID
	e.CategoryName = catName.String

	return &e, nil
}

func (s *Store) CreateExpense(ctx context.Context, e *expense.Expense) error {
	query := `
		INSERT INTO expenses (user_id, date, item, description, category_id, amount, account_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.UserID,
		e.Date,
		e.Item,
		nullable(e.Description),
		e.CategoryID,
		e.Amount,
		e.AccountType,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	return nil
}

func (s *Store) GetExpense(ctx context.Context, userID, id uuid.UUID) (*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + `
		FROM expenses e
		LEFT JOIN categories c ON e.category_id = c.id
		WHERE e.id = $1 AND e.user_id = $2`

	e, err := scanExpense(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, expense.ErrNotFound
		}

		return nil, fmt.Errorf("getting expense: %w", err)
	}

	return e, nil
}

func (s *Store) ListExpenses(ctx context.Context, userID uuid.UUID, filter expense.ListFilter) ([]*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + `
		FROM expenses e
		LEFT JOIN categories c ON e.category_id = c.id
		WHERE e.user_id = $1`

	args := []any{userID}
	argIdx := 2

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND e.date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND e.date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY e.date DESC, e.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*expense.Expense

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expense rows: %w", err)
	}

	return expenses, nil
}

func (s *Store) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + `
		FROM expenses e
		LEFT JOIN categories c ON e.category_id = c.id
		WHERE e.user_id = $1
		ORDER BY e.created_at DESC
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*expense.Expense

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expense rows: %w", err)
	}

	return expenses, nil
}

func (s *Store) UpdateExpense(ctx context.Context, e *expense.Expense) error {
	query := `
		UPDATE expenses
		SET date = $1, item = $2, description = $3, category_id = $4,
		    amount = $5, account_type = $6, updated_at = NOW()
		WHERE id = $7 AND user_id = $8
	`

	res, err := s.db.ExecContext(ctx, query,
		e.Date,
		e.Item,
		nullable(e.Description),
		e.CategoryID,
		e.Amount,
		e.AccountType,
		e.ID,
		e.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating expense: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return expense.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteExpense(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM expenses WHERE id = $1 AND user_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return expense.ErrNotFound
	}

	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
