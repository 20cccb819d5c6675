package main

import (
	"fmt"
	"os"

	"github.com/alextm0/identity-shift-sub002/internal/cli"
	"github.com/alextm0/identity-shift-sub002/internal/config"
	"github.com/alextm0/identity-shift-sub002/internal/db"
	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/alextm0/identity-shift-sub002/internal/repository"
	"github.com/alextm0/identity-shift-sub002/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	cfg, err := config.Load(config.DefaultPath(home), home)
	if err != nil {
		return err
	}
	// Validate has already checked both.
	weekStart, _ := cfg.WeekStartDay()
	level, _ := cfg.LogLevel()

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.Log.UseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr, level)
	}

	// Open database
	database, err := db.OpenDB(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	logRepo := repository.NewSQLiteDailyLogRepo(database)
	sprintRepo := repository.NewSQLiteSprintRepo(database)
	priorityRepo := repository.NewSQLitePriorityRepo(database)
	promiseRepo := repository.NewSQLitePromiseLogRepo(database)
	reviewRepo := repository.NewSQLiteReviewRepo(database)
	draftRepo := repository.NewSQLiteWizardDraftRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Logs:          service.NewDailyLogService(logRepo, observer),
		Sprints:       service.NewSprintService(sprintRepo, priorityRepo, promiseRepo, uow, observer),
		Reports:       service.NewReportService(sprintRepo, priorityRepo, promiseRepo, logRepo, weekStart, observer),
		Reviews:       service.NewReviewService(reviewRepo, observer),
		Wizards:       service.NewWizardService(draftRepo, observer),
		Import:        service.NewImportService(uow, observer),
		DefaultWindow: domain.ReportWindow(cfg.Report.Window),
	}

	// Forms only run on an interactive terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
