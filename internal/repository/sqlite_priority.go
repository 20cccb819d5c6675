package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alextm0/identity-shift-sub002/internal/db"
	"github.com/alextm0/identity-shift-sub002/internal/domain"
)

const priorityColumns = `id, sprint_id, key, label, type, weekly_target_units,
	unit_definition, order_index, created_at`

// SQLitePriorityRepo implements PriorityRepo using a SQLite database.
type SQLitePriorityRepo struct {
	db db.DBTX
}

// NewSQLitePriorityRepo creates a new SQLitePriorityRepo.
func NewSQLitePriorityRepo(conn db.DBTX) *SQLitePriorityRepo {
	return &SQLitePriorityRepo{db: conn}
}

func (r *SQLitePriorityRepo) Create(ctx context.Context, p *domain.PriorityTarget) error {
	query := `INSERT INTO priority_targets (` + priorityColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.SprintID,
		p.Key,
		p.Label,
		string(p.Type),
		p.WeeklyTargetUnits,
		p.UnitDefinition,
		p.Order,
		formatTimestamp(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting priority target: %w", err)
	}
	return nil
}

func (r *SQLitePriorityRepo) GetByKey(ctx context.Context, sprintID, key string) (*domain.PriorityTarget, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+priorityColumns+` FROM priority_targets WHERE sprint_id = ? AND key = ?`, sprintID, key)
	p, err := scanPriority(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("priority %q: %w", key, ErrNotFound)
	}
	return p, err
}

func (r *SQLitePriorityRepo) ListBySprint(ctx context.Context, sprintID string) ([]domain.PriorityTarget, error) {
	query := `SELECT ` + priorityColumns + ` FROM priority_targets
		WHERE sprint_id = ?
		ORDER BY order_index, created_at`
	rows, err := r.db.QueryContext(ctx, query, sprintID)
	if err != nil {
		return nil, fmt.Errorf("listing priority targets: %w", err)
	}
	defer rows.Close()

	var targets []domain.PriorityTarget
	for rows.Next() {
		p, err := scanPriority(rows)
		if err != nil {
			return nil, err
		}
		targets = append(targets, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating priority targets: %w", err)
	}
	return targets, nil
}

func scanPriority(sc scanner) (*domain.PriorityTarget, error) {
	var p domain.PriorityTarget
	var typ, createdAtStr string

	err := sc.Scan(&p.ID, &p.SprintID, &p.Key, &p.Label, &typ, &p.WeeklyTargetUnits,
		&p.UnitDefinition, &p.Order, &createdAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning priority target: %w", err)
	}

	p.Type = domain.PriorityType(typ)
	if p.CreatedAt, err = parseTimestamp("created_at", createdAtStr); err != nil {
		return nil, err
	}
	return &p, nil
}
