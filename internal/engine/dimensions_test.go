package engine

import (
	"testing"

	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dims(scores []DimensionScore) []domain.Dimension {
	out := make([]domain.Dimension, len(scores))
	for i, s := range scores {
		out[i] = s.Dimension
	}
	return out
}

func TestAnalyzeDimensions_WeakAndStrong(t *testing.T) {
	analysis := AnalyzeDimensions(domain.DimensionRatings{
		domain.DimensionHealth:        9,
		domain.DimensionCareer:        3,
		domain.DimensionRelationships: 5,
	})

	assert.Contains(t, dims(analysis.Weak), domain.DimensionCareer)
	assert.Contains(t, dims(analysis.Strong), domain.DimensionHealth)
	assert.Len(t, analysis.Sorted, len(domain.AllDimensions))
}

func TestAnalyzeDimensions_MissingDefaultToNeutral(t *testing.T) {
	analysis := AnalyzeDimensions(nil)

	assert.Empty(t, analysis.Weak)
	assert.Empty(t, analysis.Strong)
	for _, ds := range analysis.Sorted {
		assert.Equal(t, domain.DefaultDimensionScore, ds.Score)
	}
	assert.Equal(t, domain.AllDimensions, dims(analysis.Sorted), "ties keep canonical order")
}

func TestAnalyzeDimensions_ReviewCapsAtTwo(t *testing.T) {
	ratings := domain.DimensionRatings{
		domain.DimensionHealth:        1,
		domain.DimensionCareer:        2,
		domain.DimensionRelationships: 3,
		domain.DimensionFinances:      4,
		domain.DimensionGrowth:        8,
		domain.DimensionFun:           9,
		domain.DimensionEnvironment:   10,
		domain.DimensionPurpose:       8,
	}
	analysis := AnalyzeDimensions(ratings)

	assert.Equal(t, []domain.Dimension{domain.DimensionHealth, domain.DimensionCareer}, dims(analysis.Weak))
	assert.Equal(t, []domain.Dimension{domain.DimensionEnvironment, domain.DimensionFun}, dims(analysis.Strong))

	narrative := AnalyzeDimensionsWith(ratings, NarrativeAnalysis)
	assert.Len(t, narrative.Weak, 3)
	assert.Len(t, narrative.Strong, 3)
}

func TestAnalyzeDimensions_StableTies(t *testing.T) {
	analysis := AnalyzeDimensions(domain.DimensionRatings{
		domain.DimensionHealth:   2,
		domain.DimensionCareer:   2,
		domain.DimensionFinances: 2,
	})

	want := []DimensionScore{
		{Dimension: domain.DimensionHealth, Score: 2},
		{Dimension: domain.DimensionCareer, Score: 2},
	}
	if diff := cmp.Diff(want, analysis.Weak); diff != "" {
		t.Errorf("weak dimensions mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeDimensions_ThresholdBoundaries(t *testing.T) {
	analysis := AnalyzeDimensions(domain.DimensionRatings{
		domain.DimensionHealth: 5,
		domain.DimensionCareer: 8,
		domain.DimensionFun:    7,
	})

	assert.Empty(t, analysis.Weak, "5 is not strictly below the weak threshold")
	require.Len(t, analysis.Strong, 1)
	assert.Equal(t, domain.DimensionCareer, analysis.Strong[0].Dimension)
}

func TestAnalyzeDimensions_ClampsOutOfRange(t *testing.T) {
	analysis := AnalyzeDimensions(domain.DimensionRatings{
		domain.DimensionHealth: 42,
		domain.DimensionCareer: -1,
	})

	assert.Equal(t, 1, analysis.Sorted[0].Score)
	assert.Equal(t, domain.DimensionCareer, analysis.Sorted[0].Dimension)
	assert.Equal(t, 10, analysis.Sorted[len(analysis.Sorted)-1].Score)
}
