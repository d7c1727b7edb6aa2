package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/kogulmurugaiah/expensetrack/internal/incomesource"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListSources(ctx context.Context, userID uuid.UUID) ([]*incomesource.Source, error) {
	query := `
		SELECT id, user_id, name, created_at
		FROM income_sources
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing income sources: %w", err)
	}
	defer rows.Close()

	var sources []*incomesource.Source

	for rows.Next() {
		var src incomesource.Source
		if err := rows.Scan(&src.ID, &src.UserID, &src.Name, &src.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning income source: %w", err)
		}

		sources = append(sources, &src)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating income source rows: %w", err)
	}

	return sources, nil
}

func (s *Store) CreateSource(ctx context.Context, src *incomesource.Source) error {
	query := `
		INSERT INTO income_sources (user_id, name, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`

	if err := s.db.QueryRowContext(ctx, query, src.UserID, src.Name).Scan(&src.ID, &src.CreatedAt); err != nil {
		return fmt.Errorf("creating income source: %w", err)
	}

	return nil
}
