package engine

import (
	"sort"

	"github.com/alextm0/identity-shift-sub002/internal/domain"
)

// AnalysisConfig bounds which dimensions count as weak or strong and how many
// of each are reported.
type AnalysisConfig struct {
	WeakThreshold   int // scores strictly below are weak
	StrongThreshold int // scores at or above are strong
	MaxWeak         int
	MaxStrong       int
}

// The review screen and the narrative use different caps. They are kept as
// separate configurations on purpose.
var (
	ReviewAnalysis    = AnalysisConfig{WeakThreshold: 5, StrongThreshold: 8, MaxWeak: 2, MaxStrong: 2}
	NarrativeAnalysis = AnalysisConfig{WeakThreshold: 5, StrongThreshold: 8, MaxWeak: 3, MaxStrong: 3}
)

type DimensionScore struct {
	Dimension domain.Dimension
	Score     int
}

// DimensionAnalysis ranks a complete rating set. Weak is ordered lowest
// first, Strong highest first, Sorted ascending.
type DimensionAnalysis struct {
	Weak   []DimensionScore
	Strong []DimensionScore
	Sorted []DimensionScore
}

// AnalyzeDimensions ranks ratings with the review-screen caps.
func AnalyzeDimensions(ratings domain.DimensionRatings) DimensionAnalysis {
	return AnalyzeDimensionsWith(ratings, ReviewAnalysis)
}

// AnalyzeDimensionsWith ranks ratings under cfg. Missing dimensions score
// domain.DefaultDimensionScore. Equal scores keep canonical dimension order.
func AnalyzeDimensionsWith(ratings domain.DimensionRatings, cfg AnalysisConfig) DimensionAnalysis {
	complete := ratings.Complete()

	sorted := make([]DimensionScore, 0, len(domain.AllDimensions))
	for _, d := range domain.AllDimensions {
		sorted = append(sorted, DimensionScore{Dimension: d, Score: complete[d]})
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score < sorted[j].Score
	})

	var analysis DimensionAnalysis
	analysis.Sorted = sorted

	for _, ds := range sorted {
		if len(analysis.Weak) == cfg.MaxWeak {
			break
		}
		if ds.Score < cfg.WeakThreshold {
			analysis.Weak = append(analysis.Weak, ds)
		}
	}

	for i := len(sorted) - 1; i >= 0; i-- {
		if len(analysis.Strong) == cfg.MaxStrong {
			break
		}
		if sorted[i].Score >= cfg.StrongThreshold {
			analysis.Strong = append(analysis.Strong, sorted[i])
		}
	}

	return analysis
}
