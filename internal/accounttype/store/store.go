package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/kogulmurugaiah/expensetrack/internal/accounttype"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListAccountTypes(ctx context.Context, userID uuid.UUID) ([]*accounttype.AccountType, error) {
	query := `
		SELECT id, user_id, name, created_at
		FROM account_types
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing account types: %w", err)
	}
	defer rows.Close()

	var types []*accounttype.AccountType

	for rows.Next() {
		var at accounttype.AccountType
		if err := rows.Scan(&at.ID, &at.UserID, &at.Name, &at.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning account type: %w", err)
		}

		types = append(types, &at)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account type rows: %w", err)
	}

	return types, nil
}

func (s *Store) CreateAccountType(ctx context.Context, at *accounttype.AccountType) error {
	query := `
		INSERT INTO account_types (user_id, name, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`

	if err := s.db.QueryRowContext(ctx, query, at.UserID, at.Name).Scan(&at.ID, &at.CreatedAt); err != nil {
		return fmt.Errorf("creating account type: %w", err)
	}

	return nil
}
