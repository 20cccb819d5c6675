package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/app"
	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/alextm0/identity-shift-sub002/internal/repository"
	"github.com/alextm0/identity-shift-sub002/internal/service"
	"github.com/alextm0/identity-shift-sub002/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday of the week starting Monday 2025-03-10.
var testNow = time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	logRepo := repository.NewSQLiteDailyLogRepo(database)
	sprintRepo := repository.NewSQLiteSprintRepo(database)
	prioRepo := repository.NewSQLitePriorityRepo(database)
	promiseRepo := repository.NewSQLitePromiseLogRepo(database)

	return &App{
		Logs:          service.NewDailyLogService(logRepo),
		Sprints:       service.NewSprintService(sprintRepo, prioRepo, promiseRepo, uow),
		Reports:       service.NewReportService(sprintRepo, prioRepo, promiseRepo, logRepo, time.Monday),
		Reviews:       service.NewReviewService(repository.NewSQLiteReviewRepo(database)),
		Wizards:       service.NewWizardService(repository.NewSQLiteWizardDraftRepo(database)),
		Import:        service.NewImportService(uow),
		DefaultWindow: domain.WindowWeek,
		IsInteractive: func() bool { return false },
		Now:           func() time.Time { return testNow },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr with ANSI
// sequences removed.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return ansiPattern.ReplaceAllString(buf.String(), ""), err
}

func mustExecute(t *testing.T, app *App, args ...string) string {
	t.Helper()
	out, err := executeCmd(t, app, args...)
	require.NoError(t, err, "shift %s", strings.Join(args, " "))
	return out
}

// --- score ---

func TestScoreCmd(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "score", "4", "1")
	assert.Contains(t, out, "Motion     4")
	assert.Contains(t, out, " 24")

	out = mustExecute(t, app, "score", "0", "0")
	assert.Contains(t, out, "100")
}

func TestScoreCmd_RejectsNonNumbers(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "score", "four", "1")
	assert.ErrorContains(t, err, "whole numbers")
}

// --- log ---

func TestLogCmd_AddAndList(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "log", "add",
		"--date", "2025-03-10", "--energy", "4", "--sleep", "7.5",
		"--progress", "2", "--proof", "drafted chapter two", "--focus")
	assert.Contains(t, out, "Logged 2025-03-10: energy 4, 2 action / 0 motion units")

	out = mustExecute(t, app, "log", "list")
	assert.Contains(t, out, "2025-03-10")
	assert.Contains(t, out, "drafted chapter two")
	assert.Contains(t, out, "7.5")
}

func TestLogCmd_AddDefaultsToToday(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "log", "add", "--energy", "3")
	assert.Contains(t, out, "Logged 2025-03-12")
}

func TestLogCmd_ProofRequired(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "log", "add", "--energy", "3", "--progress", "1")
	assert.ErrorIs(t, err, domain.ErrProofRequired)
}

func TestLogCmd_InvalidEnergy(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "log", "add", "--energy", "6")
	assert.ErrorIs(t, err, domain.ErrInvalidEnergy)
}

func TestLogCmd_EnergyRequiredWithoutTerminal(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "log", "add")
	assert.ErrorContains(t, err, "--energy is required")
}

func TestLogCmd_BadDateFlag(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "log", "add", "--energy", "3", "--date", "10/03/2025")
	assert.ErrorContains(t, err, "YYYY-MM-DD")
}

func TestLogCmd_ListRange(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "log", "add", "--date", "2025-03-01", "--energy", "2")
	mustExecute(t, app, "log", "add", "--date", "2025-03-11", "--energy", "5")

	out := mustExecute(t, app, "log", "list")
	assert.NotContains(t, out, "2025-03-01")
	assert.Contains(t, out, "2025-03-11")

	out = mustExecute(t, app, "log", "list", "--from", "2025-03-01", "--to", "2025-03-02")
	assert.Contains(t, out, "2025-03-01")
	assert.NotContains(t, out, "2025-03-11")
}

func TestLogCmd_Delete(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	mustExecute(t, app, "log", "add", "--energy", "3")

	logs, err := app.Logs.ListWindow(ctx, testNow.AddDate(0, 0, -1), testNow)
	require.NoError(t, err)
	require.Len(t, logs, 1)

	out := mustExecute(t, app, "log", "delete", logs[0].ID)
	assert.Contains(t, out, "Deleted log")

	out = mustExecute(t, app, "log", "list")
	assert.Contains(t, out, "No logs found.")
}

// --- sprint, priority, promise, report ---

func seedSprint(t *testing.T, app *App) {
	t.Helper()
	mustExecute(t, app, "sprint", "create", "Spring", "--start", "2025-03-10")
	mustExecute(t, app, "priority", "add", "writing", "--target", "4", "--label", "Write the book", "--unit", "pages")
	mustExecute(t, app, "priority", "add", "gym", "--target", "3", "--type", "maintain")
}

func TestSprintCmd_CreateDefaultsToFourWeeks(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "sprint", "create", "Spring", "--start", "2025-03-10")
	assert.Contains(t, out, "Created sprint Spring (Mar 10 – Apr 6, 2025")

	sp, err := app.Sprints.Active(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2025-04-06", sp.EndDate.Format(domain.DateLayout))
}

func TestSprintCmd_ListShowComplete(t *testing.T) {
	app := testApp(t)
	seedSprint(t, app)

	out := mustExecute(t, app, "sprint", "list")
	assert.Contains(t, out, "Spring")
	assert.Contains(t, out, "ACTIVE")

	out = mustExecute(t, app, "sprint", "show")
	assert.Contains(t, out, "SPRING")
	assert.Contains(t, out, "Write the book")
	assert.Contains(t, out, "pages")
	assert.Contains(t, out, "maintain")

	sp, err := app.Sprints.Active(context.Background())
	require.NoError(t, err)
	out = mustExecute(t, app, "sprint", "show", sp.ID[:8])
	assert.Contains(t, out, sp.ID)

	out = mustExecute(t, app, "sprint", "complete")
	assert.Contains(t, out, "Completed sprint")

	out = mustExecute(t, app, "sprint", "list")
	assert.Contains(t, out, "COMPLETED")

	_, err = executeCmd(t, app, "sprint", "complete", sp.ID)
	assert.ErrorContains(t, err, "already completed")
}

func TestSprintCmd_NewSprintCompletesPrevious(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "sprint", "create", "First", "--start", "2025-02-10")
	mustExecute(t, app, "sprint", "create", "Second", "--start", "2025-03-10")

	sp, err := app.Sprints.Active(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Second", sp.Name)
}

func TestSprintCmd_UnknownSprint(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "sprint", "show", "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPriorityCmd_NeedsActiveSprint(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "priority", "add", "gym", "--target", "3")
	assert.ErrorIs(t, err, domain.ErrNoActiveSprint)
}

func TestPriorityCmd_DuplicateKey(t *testing.T) {
	app := testApp(t)
	seedSprint(t, app)

	_, err := executeCmd(t, app, "priority", "add", "gym", "--target", "2")
	assert.ErrorContains(t, err, "already exists")
}

func TestPriorityCmd_ListKeepsOrder(t *testing.T) {
	app := testApp(t)
	seedSprint(t, app)

	out := mustExecute(t, app, "priority", "list")
	assert.Less(t, strings.Index(out, "writing"), strings.Index(out, "gym"))
}

func TestPromiseCmd_Log(t *testing.T) {
	app := testApp(t)
	seedSprint(t, app)

	out := mustExecute(t, app, "promise", "log", "writing", "2.5", "--date", "2025-03-10")
	assert.Contains(t, out, "Logged 2.5 writing on 2025-03-10")

	_, err := executeCmd(t, app, "promise", "log", "unknown", "1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = executeCmd(t, app, "promise", "log", "writing", "lots")
	assert.ErrorContains(t, err, "must be a number")
}

func TestReportCmd_Weekly(t *testing.T) {
	app := testApp(t)
	seedSprint(t, app)
	mustExecute(t, app, "log", "add", "--date", "2025-03-10", "--energy", "4",
		"--progress", "3", "--motion", "1", "--proof", "wrote three pages")
	mustExecute(t, app, "promise", "log", "writing", "3", "--date", "2025-03-10")

	out := mustExecute(t, app, "report", "weekly")
	assert.Contains(t, out, "WEEKLY REPORT")
	assert.Contains(t, out, "Spring")
	assert.Contains(t, out, "Mar 10 – Mar 16, 2025")
	assert.Contains(t, out, "3 action, 1 motion")
	assert.Contains(t, out, "Write the book")
	assert.Contains(t, out, "VISIBILITY_GAP")
}

func TestReportCmd_WeeklyWithoutSprint(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "log", "add", "--date", "2025-03-11", "--energy", "3")

	out := mustExecute(t, app, "report", "weekly", "--now", "2025-03-12")
	assert.Contains(t, out, "1 day(s)")
	assert.NotContains(t, out, "PRIORITIES")
}

func TestReportCmd_InvalidWindow(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "report", "weekly", "--window", "month")

	var rerr *app.ReportError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, app.ReportErrInvalidWindow, rerr.Code)
}

func TestReportCmd_SprintWindowNeedsSprint(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "report", "weekly", "--window", "sprint")

	var rerr *app.ReportError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, app.ReportErrNoSprint, rerr.Code)
}

func TestReportCmd_DefaultWindowFromApp(t *testing.T) {
	a := testApp(t)
	seedSprint(t, a)
	a.DefaultWindow = domain.WindowSprint

	out := mustExecute(t, a, "report", "weekly")
	assert.Contains(t, out, "Window     Mar 10 – Apr 6, 2025")
}

func TestReportCmd_History(t *testing.T) {
	a := testApp(t)
	mustExecute(t, a, "log", "add", "--date", "2025-03-04", "--energy", "3")

	out := mustExecute(t, a, "report", "history", "--weeks", "3")
	assert.Contains(t, out, "HISTORY")
	assert.Less(t, strings.Index(out, "2025-02-24"), strings.Index(out, "2025-03-03"))
	assert.Less(t, strings.Index(out, "2025-03-03"), strings.Index(out, "2025-03-10"))

	_, err := executeCmd(t, a, "report", "history", "--weeks", "0")
	var rerr *app.ReportError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, app.ReportErrInvalidWeeks, rerr.Code)
}

// --- review ---

func TestReviewCmd_SaveAndShow(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "review", "save", "--year", "2024",
		"--rate", "health=9", "--rate", "finances=3",
		"--win", "Ran a marathon", "--decision", "Moved cities")
	assert.Contains(t, out, "REVIEW 2024")
	assert.Contains(t, out, "Ran a marathon")

	out = mustExecute(t, app, "review", "show", "2024")
	assert.Contains(t, out, "health (9)")
	assert.Contains(t, out, "finances (3)")
	assert.Contains(t, out, "NARRATIVE")
}

func TestReviewCmd_SaveMergesIntoStoredReview(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	mustExecute(t, app, "review", "save", "--year", "2024", "--rate", "health=9", "--win", "Ran a marathon")
	mustExecute(t, app, "review", "save", "--year", "2024", "--rate", "Personal Growth=2")

	r, err := app.Reviews.Get(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, 9, r.Ratings[domain.DimensionHealth])
	assert.Equal(t, 2, r.Ratings[domain.DimensionGrowth])
	assert.Equal(t, domain.DefaultDimensionScore, r.Ratings[domain.DimensionFun])
	assert.Equal(t, []string{"Ran a marathon"}, r.Wins)
}

func TestReviewCmd_DefaultsToCurrentYear(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "review", "save", "--rate", "career=8")

	out := mustExecute(t, app, "review", "show")
	assert.Contains(t, out, "REVIEW 2025")
}

func TestReviewCmd_RejectsBadRatings(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "review", "save", "--year", "2024", "--rate", "luck=5")
	assert.ErrorContains(t, err, "unknown dimension")

	_, err = executeCmd(t, app, "review", "save", "--year", "2024", "--rate", "health=11")
	assert.ErrorIs(t, err, domain.ErrInvalidRating)
}

func TestReviewCmd_ShowMissingYear(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "review", "show", "2023")
	assert.ErrorContains(t, err, "no review for 2023")
}

func TestReviewCmd_RateNeedsTerminal(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "review", "rate")
	assert.ErrorContains(t, err, "needs a terminal")
}

// --- wizard ---

func TestWizardCmd_PlanFlow(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "wizard", "status")
	assert.Contains(t, out, "PLAN WIZARD")
	assert.Contains(t, out, "1/9 Brain dump")

	for range 3 {
		mustExecute(t, app, "wizard", "next")
	}
	_, err := executeCmd(t, app, "wizard", "next")
	require.ErrorIs(t, err, domain.ErrStepBlocked)

	mustExecute(t, app, "wizard", "goal", "add", "Run a half marathon", "--dimension", "health")
	out = mustExecute(t, app, "wizard", "next")
	assert.Contains(t, out, "5/9 Annual goals")

	_, err = executeCmd(t, app, "wizard", "next")
	require.ErrorIs(t, err, domain.ErrStepBlocked)
	mustExecute(t, app, "wizard", "goal", "annual", "1")
	mustExecute(t, app, "wizard", "next")

	_, err = executeCmd(t, app, "wizard", "next")
	require.ErrorIs(t, err, domain.ErrStepBlocked)
	mustExecute(t, app, "wizard", "goal", "done", "1", "Finish under two hours")
	mustExecute(t, app, "wizard", "next")

	for _, ag := range []string{"Skip sleep", "Train injured", "Quit in winter"} {
		mustExecute(t, app, "wizard", "antigoal", "add", ag)
	}
	out = mustExecute(t, app, "wizard", "next")
	assert.Contains(t, out, "8/9")
	mustExecute(t, app, "wizard", "next")

	_, err = executeCmd(t, app, "wizard", "next")
	require.ErrorIs(t, err, domain.ErrStepBlocked)
	mustExecute(t, app, "wizard", "set", "signature", "A.T.")
	out = mustExecute(t, app, "wizard", "next")
	assert.Contains(t, out, "✓ completed")

	out = mustExecute(t, app, "wizard", "back")
	assert.Contains(t, out, "8/9")
	assert.NotContains(t, out, "✓ completed")
}

func TestWizardCmd_BackAtFirstStep(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "wizard", "back")
	assert.ErrorIs(t, err, domain.ErrAtFirstStep)
}

func TestWizardCmd_GoalEdits(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "wizard", "goal", "add", "Save 10k", "--dimension", "finances")
	mustExecute(t, app, "wizard", "goal", "add", "Learn piano")

	_, err := executeCmd(t, app, "wizard", "goal", "annual", "3")
	assert.ErrorContains(t, err, "no goal #3")

	_, err = executeCmd(t, app, "wizard", "goal", "add", "Climb", "--dimension", "luck")
	assert.ErrorContains(t, err, "unknown dimension")

	out := mustExecute(t, app, "wizard", "goal", "remove", "1")
	assert.NotContains(t, out, "Save 10k")
	assert.Contains(t, out, "Learn piano")
}

func TestWizardCmd_ReviewFields(t *testing.T) {
	app := testApp(t)

	mustExecute(t, app, "wizard", "--kind", "review", "set", "year", "2025")
	mustExecute(t, app, "wizard", "--kind", "review", "set", "win", "Shipped v1")
	mustExecute(t, app, "wizard", "--kind", "review", "set", "rating", "health=8")
	out := mustExecute(t, app, "wizard", "--kind", "review", "status")
	assert.Contains(t, out, "REVIEW WIZARD")
	assert.Contains(t, out, "Shipped v1")
	assert.Contains(t, out, "✓ ready for the next step")

	view, err := app.Wizards.Load(context.Background(), domain.WizardReview)
	require.NoError(t, err)
	assert.Equal(t, 2025, view.State.Year)
	assert.Equal(t, 8, view.State.Ratings[domain.DimensionHealth])

	_, err = executeCmd(t, app, "wizard", "--kind", "review", "set", "identity", "x")
	assert.ErrorContains(t, err, "unknown review field")

	_, err = executeCmd(t, app, "wizard", "--kind", "review", "set", "lessons")
	assert.ErrorContains(t, err, "required when not running in a terminal")
}

func TestWizardCmd_Reset(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "wizard", "next")

	out := mustExecute(t, app, "wizard", "reset")
	assert.Contains(t, out, "Discarded plan draft")

	out = mustExecute(t, app, "wizard", "status")
	assert.Contains(t, out, "1/9")
}

func TestWizardCmd_UnknownKind(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "wizard", "--kind", "budget", "status")
	assert.ErrorIs(t, err, domain.ErrUnknownWizard)
}

// --- import ---

const snapshotJSON = `{
	"sprint": {"name": "Spring", "start_date": "2025-03-10", "end_date": "2025-04-06"},
	"priorities": [
		{"key": "gym", "type": "maintain", "weekly_target_units": 3},
		{"key": "writing", "label": "Write the book", "weekly_target_units": 4}
	],
	"daily_logs": [
		{"date": "2025-03-10", "energy_level": 4, "progress_units": 2, "proof": "drafted chapter two"},
		{"date": "2025-03-11", "energy_level": 3, "motion_units": 1}
	],
	"promise_logs": [
		{"date": "2025-03-10", "promise_id": "gym", "units": 1}
	],
	"review": {"year": 2024, "ratings": {"health": 8}},
	"plan_draft": {"current_step": 2, "goals": [{"originalText": "Save 10k", "category": "finances"}]}
}`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportCmd(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "import", writeFile(t, snapshotJSON))
	assert.Contains(t, out, "Imported sprint Spring")
	assert.Contains(t, out, "2 priorities, 2 daily logs, 1 promise logs, review 2024, plan draft")

	out = mustExecute(t, app, "wizard", "status")
	assert.Contains(t, out, "2/9")
	assert.Contains(t, out, "Save 10k")
}

func TestImportCmd_ValidationFailure(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "import", writeFile(t, `{"daily_logs": [{"date": "2025-03-10", "energy_level": 9}]}`))
	assert.ErrorContains(t, err, "import validation failed")

	out := mustExecute(t, app, "log", "list")
	assert.Contains(t, out, "No logs found.")
}

func TestImportCmd_MissingFile(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "import", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
