package history

import (
	"context"
	"database/sql"
	"time"

	"github.com/mfranzen/caliper/internal/measure"
)

// Store is the measurement history repository.
type Store struct {
	db *sql.DB
}

// Entry is one recorded measurement.
type Entry struct {
	ID         int64
	Amount     float64
	Unit       string
	Primary    bool
	RecordedAt time.Time
}

// Record appends a settled measurement to the history.
func (s *Store) Record(ctx context.Context, v measure.Value) (Entry, error) {
	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO measurements (amount, unit, is_primary, recorded_at) VALUES (?, ?, ?, ?)`,
		v.Amount, v.Unit, v.Primary, now,
	)
	if err != nil {
		return Entry{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		ID:         id,
		Amount:     v.Amount,
		Unit:       v.Unit,
		Primary:    v.Primary,
		RecordedAt: now,
	}, nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, amount, unit, is_primary, recorded_at
		 FROM measurements ORDER BY recorded_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Amount, &e.Unit, &e.Primary, &e.RecordedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Prune deletes everything but the newest keep entries.
func (s *Store) Prune(ctx context.Context, keep int) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM measurements WHERE id NOT IN (
			SELECT id FROM measurements ORDER BY recorded_at DESC, id DESC LIMIT ?
		)`, keep)
	return err
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
