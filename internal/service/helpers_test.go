package service

import (
	"testing"
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/repository"
	"github.com/alextm0/identity-shift-sub002/internal/testutil"
)

// 2025-03-10 is a Monday.
var weekStart = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func dayAt(offset int) time.Time {
	return weekStart.AddDate(0, 0, offset)
}

type testServices struct {
	logRepo     *repository.SQLiteDailyLogRepo
	sprintRepo  *repository.SQLiteSprintRepo
	prioRepo    *repository.SQLitePriorityRepo
	promiseRepo *repository.SQLitePromiseLogRepo
	reviewRepo  *repository.SQLiteReviewRepo
	draftRepo   *repository.SQLiteWizardDraftRepo

	logs    DailyLogService
	sprints SprintService
	reports ReportService
	reviews ReviewService
	wizards WizardService
	imports ImportService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	ts := &testServices{
		logRepo:     repository.NewSQLiteDailyLogRepo(database),
		sprintRepo:  repository.NewSQLiteSprintRepo(database),
		prioRepo:    repository.NewSQLitePriorityRepo(database),
		promiseRepo: repository.NewSQLitePromiseLogRepo(database),
		reviewRepo:  repository.NewSQLiteReviewRepo(database),
		draftRepo:   repository.NewSQLiteWizardDraftRepo(database),
	}
	ts.logs = NewDailyLogService(ts.logRepo)
	ts.sprints = NewSprintService(ts.sprintRepo, ts.prioRepo, ts.promiseRepo, uow)
	ts.reports = NewReportService(ts.sprintRepo, ts.prioRepo, ts.promiseRepo, ts.logRepo, time.Monday)
	ts.reviews = NewReviewService(ts.reviewRepo)
	ts.wizards = NewWizardService(ts.draftRepo)
	ts.imports = NewImportService(uow)
	return ts
}
