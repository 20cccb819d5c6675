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

const dailyLogColumns = `id, log_date, energy_level, sleep_hours, main_focus_completed,
	progress_units, motion_units, proof, note, created_at, updated_at`

// SQLiteDailyLogRepo implements DailyLogRepo using a SQLite database.
type SQLiteDailyLogRepo struct {
	db db.DBTX
}

// NewSQLiteDailyLogRepo creates a new SQLiteDailyLogRepo.
func NewSQLiteDailyLogRepo(conn db.DBTX) *SQLiteDailyLogRepo {
	return &SQLiteDailyLogRepo{db: conn}
}

func (r *SQLiteDailyLogRepo) Upsert(ctx context.Context, e *domain.DailyLogEntry) error {
	query := `INSERT INTO daily_logs (` + dailyLogColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(log_date) DO UPDATE SET
			energy_level = excluded.energy_level,
			sleep_hours = excluded.sleep_hours,
			main_focus_completed = excluded.main_focus_completed,
			progress_units = excluded.progress_units,
			motion_units = excluded.motion_units,
			proof = excluded.proof,
			note = excluded.note,
			updated_at = excluded.updated_at
		RETURNING id, created_at`
	row := r.db.QueryRowContext(ctx, query,
		e.ID,
		formatDay(e.Date),
		e.EnergyLevel,
		e.SleepHours,
		boolToInt(e.MainFocusCompleted),
		e.ProgressUnits,
		e.MotionUnits,
		e.Proof,
		e.Note,
		formatTimestamp(e.CreatedAt),
		formatTimestamp(e.UpdatedAt),
	)

	var createdAtStr string
	if err := row.Scan(&e.ID, &createdAtStr); err != nil {
		return fmt.Errorf("upserting daily log: %w", err)
	}
	createdAt, err := parseTimestamp("created_at", createdAtStr)
	if err != nil {
		return err
	}
	e.CreatedAt = createdAt
	return nil
}

func (r *SQLiteDailyLogRepo) GetByID(ctx context.Context, id string) (*domain.DailyLogEntry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+dailyLogColumns+` FROM daily_logs WHERE id = ?`, id)
	return r.scanOne(row)
}

func (r *SQLiteDailyLogRepo) GetByDate(ctx context.Context, day time.Time) (*domain.DailyLogEntry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+dailyLogColumns+` FROM daily_logs WHERE log_date = ?`, formatDay(day))
	return r.scanOne(row)
}

func (r *SQLiteDailyLogRepo) ListBetween(ctx context.Context, start, end time.Time) ([]domain.DailyLogEntry, error) {
	query := `SELECT ` + dailyLogColumns + ` FROM daily_logs
		WHERE log_date BETWEEN ? AND ?
		ORDER BY log_date`
	rows, err := r.db.QueryContext(ctx, query, formatDay(start), formatDay(end))
	if err != nil {
		return nil, fmt.Errorf("listing daily logs: %w", err)
	}
	defer rows.Close()

	var entries []domain.DailyLogEntry
	for rows.Next() {
		e, err := scanDailyLog(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily logs: %w", err)
	}
	return entries, nil
}

func (r *SQLiteDailyLogRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM daily_logs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting daily log: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("daily log %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteDailyLogRepo) scanOne(row *sql.Row) (*domain.DailyLogEntry, error) {
	e, err := scanDailyLog(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("daily log: %w", ErrNotFound)
	}
	return e, err
}

func scanDailyLog(s scanner) (*domain.DailyLogEntry, error) {
	var e domain.DailyLogEntry
	var dateStr, createdAtStr, updatedAtStr string
	var focus int

	err := s.Scan(
		&e.ID, &dateStr, &e.EnergyLevel, &e.SleepHours, &focus,
		&e.ProgressUnits, &e.MotionUnits, &e.Proof, &e.Note, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning daily log: %w", err)
	}

	e.MainFocusCompleted = intToBool(focus)
	if e.Date, err = parseDay("log_date", dateStr); err != nil {
		return nil, err
	}
	if e.CreatedAt, err = parseTimestamp("created_at", createdAtStr); err != nil {
		return nil, err
	}
	if e.UpdatedAt, err = parseTimestamp("updated_at", updatedAtStr); err != nil {
		return nil, err
	}
	return &e, nil
}
