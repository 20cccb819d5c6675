package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alextm0/identity-shift-sub002/internal/db"
	"github.com/alextm0/identity-shift-sub002/internal/domain"
)

// SQLiteWizardDraftRepo stores one JSON draft per wizard kind.
type SQLiteWizardDraftRepo struct {
	db db.DBTX
}

// NewSQLiteWizardDraftRepo creates a new SQLiteWizardDraftRepo.
func NewSQLiteWizardDraftRepo(conn db.DBTX) *SQLiteWizardDraftRepo {
	return &SQLiteWizardDraftRepo{db: conn}
}

func (r *SQLiteWizardDraftRepo) Get(ctx context.Context, kind domain.WizardKind) (*domain.WizardState, error) {
	var stateJSON string
	err := r.db.QueryRowContext(ctx, `SELECT state_json FROM wizard_drafts WHERE kind = ?`, string(kind)).Scan(&stateJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s wizard draft: %w", kind, ErrNotFound)
		}
		return nil, fmt.Errorf("loading wizard draft: %w", err)
	}

	var state domain.WizardState
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return nil, fmt.Errorf("decoding wizard draft: %w", err)
	}
	return &state, nil
}

func (r *SQLiteWizardDraftRepo) Save(ctx context.Context, s *domain.WizardState) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding wizard draft: %w", err)
	}

	query := `INSERT INTO wizard_drafts (kind, current_step, completed, state_json, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(kind) DO UPDATE SET
			current_step = excluded.current_step,
			completed = excluded.completed,
			state_json = excluded.state_json,
			updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query,
		string(s.Kind),
		s.CurrentStep,
		boolToInt(s.Completed),
		string(data),
		formatTimestamp(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("saving wizard draft: %w", err)
	}
	return nil
}

func (r *SQLiteWizardDraftRepo) Delete(ctx context.Context, kind domain.WizardKind) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM wizard_drafts WHERE kind = ?`, string(kind)); err != nil {
		return fmt.Errorf("deleting wizard draft: %w", err)
	}
	return nil
}
