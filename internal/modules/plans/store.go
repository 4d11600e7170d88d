// README: Plan history persistence backed by Postgres.
package plans

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles trip_plans persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Insert writes one plan record.
func (s *Store) Insert(ctx context.Context, rec Record) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO trip_plans (id, user_id, name, start_date, end_date, document, fallback_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, rec.ID, rec.UserID, rec.Name, rec.StartDate, rec.EndDate, rec.Document, rec.FallbackCount, rec.CreatedAt)
	return err
}

// ListByUser returns the newest records for a user, capped at limit.
func (s *Store) ListByUser(ctx context.Context, uid string, limit int) ([]Record, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, name, start_date, end_date, document, fallback_count, created_at
		FROM trip_plans
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, uid, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Name, &rec.StartDate, &rec.EndDate,
			&rec.Document, &rec.FallbackCount, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return records, nil
}
