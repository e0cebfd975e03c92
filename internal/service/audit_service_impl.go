package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aisharahman/gradpath/internal/audit"
	"github.com/aisharahman/gradpath/internal/db"
	"github.com/aisharahman/gradpath/internal/repository"
)

type auditService struct {
	uow      db.UnitOfWork
	repos    RepoFactory
	observer UseCaseObserver
}

func NewAuditService(uow db.UnitOfWork, repos RepoFactory, observers ...UseCaseObserver) AuditService {
	return &auditService{
		uow:      uow,
		repos:    repos,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *auditService) ImportAudit(ctx context.Context, filePath string) (*audit.Report, error) {
	parsed, err := audit.LoadParsedAudit(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading audit file: %w", err)
	}
	return s.ReconcileParsed(ctx, parsed)
}

// ReconcileParsed rebuilds the plan from the parsed audit inside one
// transaction. The reconciler constructs a replacement plan without touching
// the stored one; any failure rolls back and leaves existing state intact.
func (s *auditService) ReconcileParsed(ctx context.Context, parsed *audit.ParsedAudit) (*audit.Report, error) {
	began := time.Now().UTC()
	var report *audit.Report
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := s.repos(tx)

		state, err := loadState(ctx, repo)
		if errors.Is(err, repository.ErrNoPlan) {
			state, err = loadOrInit(ctx, repo)
		}
		if err != nil {
			return err
		}

		rec := audit.NewReconciler(state.Catalog)
		newPlan, rep, err := rec.Reconcile(parsed, state.Plan)
		if err != nil {
			return err
		}
		report = rep

		// The plan ID survives, so a wholesale Save replaces the old
		// aggregate in place.
		if err := repo.Save(ctx, newPlan, state.Catalog.Synthesized()); err != nil {
			return err
		}
		return nil
	})
	fields := map[string]any{}
	if report != nil {
		fields["imported"] = report.Imported
		fields["skipped"] = report.Skipped
		fields["synthesized"] = len(report.SynthesizedCourses)
	}
	s.observe(ctx, began, err, fields)
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (s *auditService) observe(ctx context.Context, start time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "audit_reconcile",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
}
