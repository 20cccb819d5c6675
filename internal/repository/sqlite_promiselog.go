package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/db"
	"github.com/alextm0/identity-shift-sub002/internal/domain"
)

// SQLitePromiseLogRepo implements PromiseLogRepo using a SQLite database.
type SQLitePromiseLogRepo struct {
	db db.DBTX
}

// NewSQLitePromiseLogRepo creates a new SQLitePromiseLogRepo.
func NewSQLitePromiseLogRepo(conn db.DBTX) *SQLitePromiseLogRepo {
	return &SQLitePromiseLogRepo{db: conn}
}

func (r *SQLitePromiseLogRepo) Create(ctx context.Context, e *domain.PromiseLogEntry) error {
	query := `INSERT INTO promise_logs (id, sprint_id, log_date, promise_key, units, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.SprintID,
		formatDay(e.Date),
		e.PromiseID,
		e.Units,
		e.Note,
		formatTimestamp(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting promise log: %w", err)
	}
	return nil
}

func (r *SQLitePromiseLogRepo) ListBetween(ctx context.Context, sprintID string, start, end time.Time) ([]domain.PromiseLogEntry, error) {
	query := `SELECT id, sprint_id, log_date, promise_key, units, note, created_at
		FROM promise_logs
		WHERE sprint_id = ? AND log_date BETWEEN ? AND ?
		ORDER BY log_date, created_at`
	rows, err := r.db.QueryContext(ctx, query, sprintID, formatDay(start), formatDay(end))
	if err != nil {
		return nil, fmt.Errorf("listing promise logs: %w", err)
	}
	defer rows.Close()

	var entries []domain.PromiseLogEntry
	for rows.Next() {
		var e domain.PromiseLogEntry
		var dateStr, createdAtStr string
		if err := rows.Scan(&e.ID, &e.SprintID, &dateStr, &e.PromiseID, &e.Units, &e.Note, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning promise log: %w", err)
		}
		if e.Date, err = parseDay("log_date", dateStr); err != nil {
			return nil, err
		}
		if e.CreatedAt, err = parseTimestamp("created_at", createdAtStr); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating promise logs: %w", err)
	}
	return entries, nil
}
