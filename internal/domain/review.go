package domain

import (
	"strings"
	"time"
)

// Dimension is one of the fixed life areas rated in a yearly review.
type Dimension string

const (
	DimensionHealth        Dimension = "health"
	DimensionCareer        Dimension = "career"
	DimensionRelationships Dimension = "relationships"
	DimensionFinances      Dimension = "finances"
	DimensionGrowth        Dimension = "growth"
	DimensionFun           Dimension = "fun"
	DimensionEnvironment   Dimension = "environment"
	DimensionPurpose       Dimension = "purpose"
)

// AllDimensions lists every dimension in canonical order. Analysis uses this
// order to break score ties.
var AllDimensions = []Dimension{
	DimensionHealth,
	DimensionCareer,
	DimensionRelationships,
	DimensionFinances,
	DimensionGrowth,
	DimensionFun,
	DimensionEnvironment,
	DimensionPurpose,
}

var dimensionLabels = map[Dimension]string{
	DimensionHealth:        "health",
	DimensionCareer:        "career",
	DimensionRelationships: "relationships",
	DimensionFinances:      "finances",
	DimensionGrowth:        "personal growth",
	DimensionFun:           "fun and recreation",
	DimensionEnvironment:   "physical environment",
	DimensionPurpose:       "purpose",
}

// Label returns the human-readable name used in prose.
func (d Dimension) Label() string {
	if l, ok := dimensionLabels[d]; ok {
		return l
	}
	return string(d)
}

// ParseDimension resolves a dimension from its key or its label,
// case-insensitively.
func ParseDimension(s string) (Dimension, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, d := range AllDimensions {
		if norm == string(d) || norm == d.Label() {
			return d, true
		}
	}
	return "", false
}

const (
	MinRating             = 1
	MaxRating             = 10
	DefaultDimensionScore = 5
)

// DimensionRatings maps dimensions to a 1-10 score. It may be partial.
type DimensionRatings map[Dimension]int

// Complete returns a copy holding all dimensions, filling missing entries
// with DefaultDimensionScore and clamping scores into [MinRating, MaxRating].
func (r DimensionRatings) Complete() DimensionRatings {
	out := make(DimensionRatings, len(AllDimensions))
	for _, d := range AllDimensions {
		score, ok := r[d]
		if !ok {
			score = DefaultDimensionScore
		}
		out[d] = clampRating(score)
	}
	return out
}

// Validate rejects unknown dimensions and out-of-range scores.
func (r DimensionRatings) Validate() error {
	for d, score := range r {
		if _, ok := dimensionLabels[d]; !ok {
			return &RatingError{Dimension: d, Score: score, Reason: "unknown dimension"}
		}
		if score < MinRating || score > MaxRating {
			return &RatingError{Dimension: d, Score: score, Reason: ErrInvalidRating.Error()}
		}
	}
	return nil
}

// RatingError describes one rejected rating entry.
type RatingError struct {
	Dimension Dimension
	Score     int
	Reason    string
}

func (e *RatingError) Error() string {
	return "rating " + string(e.Dimension) + ": " + e.Reason
}

func (e *RatingError) Unwrap() error {
	if e.Reason == ErrInvalidRating.Error() {
		return ErrInvalidRating
	}
	return nil
}

func clampRating(score int) int {
	if score < MinRating {
		return MinRating
	}
	if score > MaxRating {
		return MaxRating
	}
	return score
}

// YearlyReview is the persisted outcome of the review wizard.
type YearlyReview struct {
	ID          string
	Year        int
	Ratings     DimensionRatings
	Wins        []string
	Challenges  []string
	Lessons     string
	KeyDecision string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
