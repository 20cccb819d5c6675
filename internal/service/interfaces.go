package service

import "github.com/alextm0/identity-shift-sub002/internal/app"

type DailyLogService interface {
	app.DailyLogUseCase
}

type SprintService interface {
	app.SprintUseCase
}

type ReportService interface {
	app.ReportUseCase
}

type ReviewService interface {
	app.ReviewUseCase
}

type WizardService interface {
	app.WizardUseCase
}

type ImportService interface {
	app.ImportUseCase
}
