package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/app"
	"github.com/alextm0/identity-shift-sub002/internal/db"
	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/alextm0/identity-shift-sub002/internal/importer"
	"github.com/alextm0/identity-shift-sub002/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) Import(ctx context.Context, filePath string) (*app.ImportResult, error) {
	snapshot, err := importer.LoadSnapshot(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportSnapshot(ctx, snapshot)
}

// ImportSnapshot validates, normalizes and persists a snapshot in one
// transaction. Nothing is written when any record fails.
func (s *importService) ImportSnapshot(ctx context.Context, snapshot *importer.Snapshot) (result *app.ImportResult, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "import", time.Now().UTC(), fields, &err)

	if errs := importer.ValidateSnapshot(snapshot); len(errs) > 0 {
		fields["validation_errors"] = len(errs)
		return nil, fmt.Errorf("import validation failed (%d errors):\n%w", len(errs), errors.Join(errs...))
	}

	converted, err := importer.Convert(snapshot)
	if err != nil {
		return nil, fmt.Errorf("converting snapshot: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if converted.Sprint != nil {
			if err := createSprint(ctx, repository.NewSQLiteSprintRepo(tx), converted.Sprint, fields); err != nil {
				return err
			}
		}

		txPriorities := repository.NewSQLitePriorityRepo(tx)
		for _, p := range converted.Priorities {
			if err := txPriorities.Create(ctx, p); err != nil {
				return fmt.Errorf("creating priority %q: %w", p.Key, err)
			}
		}

		txPromiseLogs := repository.NewSQLitePromiseLogRepo(tx)
		for _, l := range converted.PromiseLogs {
			if err := txPromiseLogs.Create(ctx, l); err != nil {
				return fmt.Errorf("creating promise log: %w", err)
			}
		}

		txLogs := repository.NewSQLiteDailyLogRepo(tx)
		for _, l := range converted.DailyLogs {
			if err := txLogs.Upsert(ctx, l); err != nil {
				return fmt.Errorf("storing daily log %s: %w", l.Date.Format(domain.DateLayout), err)
			}
		}

		if converted.Review != nil {
			if err := repository.NewSQLiteReviewRepo(tx).Upsert(ctx, converted.Review); err != nil {
				return fmt.Errorf("storing review: %w", err)
			}
		}

		if converted.PlanDraft != nil {
			if err := repository.NewSQLiteWizardDraftRepo(tx).Save(ctx, converted.PlanDraft); err != nil {
				return fmt.Errorf("storing plan draft: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result = &app.ImportResult{
		Sprint:          converted.Sprint,
		PriorityCount:   len(converted.Priorities),
		DailyLogCount:   len(converted.DailyLogs),
		PromiseLogCount: len(converted.PromiseLogs),
		PlanDraft:       converted.PlanDraft != nil,
	}
	if converted.Review != nil {
		result.ReviewYear = converted.Review.Year
	}
	fields["daily_logs"] = result.DailyLogCount
	fields["priorities"] = result.PriorityCount
	return result, nil
}
