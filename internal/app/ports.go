package app

import (
	"context"
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/alextm0/identity-shift-sub002/internal/importer"
)

type DailyLogUseCase interface {
	Log(ctx context.Context, e *domain.DailyLogEntry) error
	ListWindow(ctx context.Context, start, end time.Time) ([]domain.DailyLogEntry, error)
	Delete(ctx context.Context, id string) error
}

type SprintUseCase interface {
	Create(ctx context.Context, s *domain.Sprint) error
	Get(ctx context.Context, id string) (*domain.Sprint, error)
	Active(ctx context.Context) (*domain.Sprint, error)
	List(ctx context.Context) ([]*domain.Sprint, error)
	Complete(ctx context.Context, id string) error
	AddPriority(ctx context.Context, p *domain.PriorityTarget) error
	ListPriorities(ctx context.Context, sprintID string) ([]domain.PriorityTarget, error)
	LogPromise(ctx context.Context, e *domain.PromiseLogEntry) error
}

type ReportUseCase interface {
	WeeklyReport(ctx context.Context, req WeeklyReportRequest) (*WeeklyReportResponse, error)
	History(ctx context.Context, req HistoryRequest) (*HistoryResponse, error)
}

type ReviewUseCase interface {
	Save(ctx context.Context, r *domain.YearlyReview) error
	Get(ctx context.Context, year int) (*domain.YearlyReview, error)
	Analyze(ctx context.Context, year int) (*ReviewAnalysisResponse, error)
}

type WizardUseCase interface {
	Load(ctx context.Context, kind domain.WizardKind) (*WizardView, error)
	Save(ctx context.Context, s *domain.WizardState) (*WizardView, error)
	Next(ctx context.Context, kind domain.WizardKind) (*WizardView, error)
	Back(ctx context.Context, kind domain.WizardKind) (*WizardView, error)
	Reset(ctx context.Context, kind domain.WizardKind) error
}

type ImportResult struct {
	Sprint          *domain.Sprint
	PriorityCount   int
	DailyLogCount   int
	PromiseLogCount int
	ReviewYear      int
	PlanDraft       bool
}

type ImportUseCase interface {
	Import(ctx context.Context, filePath string) (*ImportResult, error)
	ImportSnapshot(ctx context.Context, s *importer.Snapshot) (*ImportResult, error)
}
