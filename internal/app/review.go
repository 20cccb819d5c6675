package app

import (
	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/alextm0/identity-shift-sub002/internal/engine"
)

type ReviewAnalysisResponse struct {
	Review    *domain.YearlyReview
	Analysis  engine.DimensionAnalysis
	Narrative string
}
