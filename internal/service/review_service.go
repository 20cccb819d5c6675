package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/app"
	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/alextm0/identity-shift-sub002/internal/engine"
	"github.com/alextm0/identity-shift-sub002/internal/repository"
	"github.com/google/uuid"
)

type reviewService struct {
	reviews  repository.ReviewRepo
	observer UseCaseObserver
}

func NewReviewService(reviews repository.ReviewRepo, observers ...UseCaseObserver) ReviewService {
	return &reviewService{reviews: reviews, observer: useCaseObserverOrNoop(observers)}
}

// Save validates the ratings present, fills missing dimensions with the
// neutral score and stores the review for its year.
func (s *reviewService) Save(ctx context.Context, r *domain.YearlyReview) (err error) {
	fields := map[string]any{"year": r.Year}
	defer observe(ctx, s.observer, "save-review", time.Now().UTC(), fields, &err)

	if r.Year <= 0 {
		return fmt.Errorf("review year is required")
	}
	if err = r.Ratings.Validate(); err != nil {
		return err
	}
	r.Ratings = r.Ratings.Complete()

	now := time.Now().UTC()
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	return s.reviews.Upsert(ctx, r)
}

func (s *reviewService) Get(ctx context.Context, year int) (*domain.YearlyReview, error) {
	return s.reviews.GetByYear(ctx, year)
}

func (s *reviewService) Analyze(ctx context.Context, year int) (resp *app.ReviewAnalysisResponse, err error) {
	fields := map[string]any{"year": year}
	defer observe(ctx, s.observer, "analyze-review", time.Now().UTC(), fields, &err)

	r, err := s.reviews.GetByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	analysis := engine.AnalyzeDimensions(r.Ratings)
	fields["weak"] = len(analysis.Weak)
	fields["strong"] = len(analysis.Strong)

	return &app.ReviewAnalysisResponse{
		Review:    r,
		Analysis:  analysis,
		Narrative: engine.GenerateNarrative(r.Ratings, r.Wins, r.KeyDecision),
	}, nil
}
