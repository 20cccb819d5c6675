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

// SQLiteReviewRepo implements ReviewRepo using a SQLite database. Ratings,
// wins and challenges are stored as JSON columns.
type SQLiteReviewRepo struct {
	db db.DBTX
}

// NewSQLiteReviewRepo creates a new SQLiteReviewRepo.
func NewSQLiteReviewRepo(conn db.DBTX) *SQLiteReviewRepo {
	return &SQLiteReviewRepo{db: conn}
}

func (r *SQLiteReviewRepo) Upsert(ctx context.Context, rev *domain.YearlyReview) error {
	ratings, err := json.Marshal(rev.Ratings)
	if err != nil {
		return fmt.Errorf("encoding ratings: %w", err)
	}
	wins, err := json.Marshal(nonNilStrings(rev.Wins))
	if err != nil {
		return fmt.Errorf("encoding wins: %w", err)
	}
	challenges, err := json.Marshal(nonNilStrings(rev.Challenges))
	if err != nil {
		return fmt.Errorf("encoding challenges: %w", err)
	}

	query := `INSERT INTO yearly_reviews (id, year, ratings_json, wins_json, challenges_json,
			lessons, key_decision, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(year) DO UPDATE SET
			ratings_json = excluded.ratings_json,
			wins_json = excluded.wins_json,
			challenges_json = excluded.challenges_json,
			lessons = excluded.lessons,
			key_decision = excluded.key_decision,
			updated_at = excluded.updated_at
		RETURNING id`
	row := r.db.QueryRowContext(ctx, query,
		rev.ID,
		rev.Year,
		string(ratings),
		string(wins),
		string(challenges),
		rev.Lessons,
		rev.KeyDecision,
		formatTimestamp(rev.CreatedAt),
		formatTimestamp(rev.UpdatedAt),
	)
	if err := row.Scan(&rev.ID); err != nil {
		return fmt.Errorf("upserting yearly review: %w", err)
	}
	return nil
}

func (r *SQLiteReviewRepo) GetByYear(ctx context.Context, year int) (*domain.YearlyReview, error) {
	query := `SELECT id, year, ratings_json, wins_json, challenges_json, lessons, key_decision,
			created_at, updated_at
		FROM yearly_reviews WHERE year = ?`

	var rev domain.YearlyReview
	var ratings, wins, challenges, createdAtStr, updatedAtStr string
	err := r.db.QueryRowContext(ctx, query, year).Scan(
		&rev.ID, &rev.Year, &ratings, &wins, &challenges, &rev.Lessons, &rev.KeyDecision,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("review for %d: %w", year, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning yearly review: %w", err)
	}

	if err := json.Unmarshal([]byte(ratings), &rev.Ratings); err != nil {
		return nil, fmt.Errorf("decoding ratings: %w", err)
	}
	if err := json.Unmarshal([]byte(wins), &rev.Wins); err != nil {
		return nil, fmt.Errorf("decoding wins: %w", err)
	}
	if err := json.Unmarshal([]byte(challenges), &rev.Challenges); err != nil {
		return nil, fmt.Errorf("decoding challenges: %w", err)
	}
	if rev.CreatedAt, err = parseTimestamp("created_at", createdAtStr); err != nil {
		return nil, err
	}
	if rev.UpdatedAt, err = parseTimestamp("updated_at", updatedAtStr); err != nil {
		return nil, err
	}
	return &rev, nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
