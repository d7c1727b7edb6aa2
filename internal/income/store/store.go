package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/kogulmurugaiah/expensetrack/internal/income"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectIncomeColumns = `
	i.id, i.user_id, i.date, i.amount, i.source_id, s.name,
	i.account_type, i.description, i.created_at, i.updated_at
`

func scanIncome(sc scanner) (*income.Income, error) {
	var in income.Income

	var desc sql.NullString

	if err := sc.Scan(
		&in.ID, &in.UserID, &in.Date, &in.Amount, &in.SourceID, &in.SourceName,
		&in.AccountType, &desc, &in.CreatedAt, &in.UpdatedAt,
	); err != nil {
		return nil, err
	}

	in.Description = desc.String

	return &in, nil
}

func (s *Store) CreateIncome(ctx context.Context, in *income.Income) error {
	query := `
		INSERT INTO income (user_id, date, amount, source_id, account_type, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		in.UserID,
		in.Date,
		in.Amount,
		in.SourceID,
		in.AccountType,
		nullable(in.Description),
	).Scan(&in.ID, &in.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating income: %w", err)
	}

	return nil
}

func (s *Store) GetIncome(ctx context.Context, userID, id uuid.UUID) (*income.Income, error) {
	query := `SELECT ` + selectIncomeColumns + `
		FROM income i
		JOIN income_sources s ON i.source_id = s.id
		WHERE i.id = $1 AND i.user_id = $2`

	in, err := scanIncome(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, income.ErrNotFound
		}

		return nil, fmt.Errorf("getting income: %w", err)
	}

	return in, nil
}

func (s *Store) ListIncome(ctx context.Context, userID uuid.UUID, filter income.ListFilter) ([]*income.Income, error) {
	query := `SELECT ` + selectIncomeColumns + `
		FROM income i
		JOIN income_sources s ON i.source_id = s.id
		WHERE i.user_id = $1`

	args := []any{userID}
	argIdx := 2

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND i.date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND i.date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY i.date DESC, i.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing income: %w", err)
	}
	defer rows.Close()

	var records []*income.Income

	for rows.Next() {
		in, err := scanIncome(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning income: %w", err)
		}

		records = append(records, in)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating income rows: %w", err)
	}

	return records, nil
}

func (s *Store) UpdateIncome(ctx context.Context, in *income.Income) error {
	query := `
		UPDATE income
		SET date = $1, amount = $2, source_id = $3, account_type = $4,
		    description = $5, updated_at = NOW()
		WHERE id = $6 AND user_id = $7
	`

	res, err := s.db.ExecContext(ctx, query,
		in.Date,
		in.Amount,
		in.SourceID,
		in.AccountType,
		nullable(in.Description),
		in.ID,
		in.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating income: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return income.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteIncome(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM income WHERE id = $1 AND user_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting income: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return income.ErrNotFound
	}

	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
