package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/db"
	"github.com/alextm0/identity-shift-sub002/internal/domain"
)

const sprintColumns = `id, name, start_date, end_date, status, created_at, updated_at`

// SQLiteSprintRepo implements SprintRepo using a SQLite database.
type SQLiteSprintRepo struct {
	db db.DBTX
}

// NewSQLiteSprintRepo creates a new SQLiteSprintRepo.
func NewSQLiteSprintRepo(conn db.DBTX) *SQLiteSprintRepo {
	return &SQLiteSprintRepo{db: conn}
}

func (r *SQLiteSprintRepo) Create(ctx context.Context, s *domain.Sprint) error {
	query := `INSERT INTO sprints (` + sprintColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		formatDay(s.StartDate),
		formatDay(s.EndDate),
		string(s.Status),
		formatTimestamp(s.CreatedAt),
		formatTimestamp(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting sprint: %w", err)
	}
	return nil
}

func (r *SQLiteSprintRepo) GetByID(ctx context.Context, id string) (*domain.Sprint, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+sprintColumns+` FROM sprints WHERE id = ?`, id)
	return r.scanOne(row, "sprint "+id)
}

func (r *SQLiteSprintRepo) GetActive(ctx context.Context) (*domain.Sprint, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+sprintColumns+` FROM sprints WHERE status = 'active'`)
	return r.scanOne(row, "active sprint")
}

func (r *SQLiteSprintRepo) List(ctx context.Context) ([]*domain.Sprint, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+sprintColumns+` FROM sprints ORDER BY start_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing sprints: %w", err)
	}
	defer rows.Close()

	var sprints []*domain.Sprint
	for rows.Next() {
		s, err := scanSprint(rows)
		if err != nil {
			return nil, err
		}
		sprints = append(sprints, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sprints: %w", err)
	}
	return sprints, nil
}

func (r *SQLiteSprintRepo) UpdateStatus(ctx context.Context, id string, status domain.SprintStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE sprints SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), formatTimestamp(time.Now()), id)
	if err != nil {
		return fmt.Errorf("updating sprint status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("sprint %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSprintRepo) scanOne(row *sql.Row, what string) (*domain.Sprint, error) {
	s, err := scanSprint(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return s, err
}

func scanSprint(sc scanner) (*domain.Sprint, error) {
	var s domain.Sprint
	var startStr, endStr, status, createdAtStr, updatedAtStr string

	err := sc.Scan(&s.ID, &s.Name, &startStr, &endStr, &status, &createdAtStr, &updatedAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning sprint: %w", err)
	}

	s.Status = domain.SprintStatus(status)
	if s.StartDate, err = parseDay("start_date", startStr); err != nil {
		return nil, err
	}
	if s.EndDate, err = parseDay("end_date", endStr); err != nil {
		return nil, err
	}
	if s.CreatedAt, err = parseTimestamp("created_at", createdAtStr); err != nil {
		return nil, err
	}
	if s.UpdatedAt, err = parseTimestamp("updated_at", updatedAtStr); err != nil {
		return nil, err
	}
	return &s, nil
}
