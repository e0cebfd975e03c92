package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aisharahman/gradpath/internal/db"
	"github.com/aisharahman/gradpath/internal/domain"
	"github.com/aisharahman/gradpath/internal/planner"
	"github.com/aisharahman/gradpath/internal/repository"
)

type planService struct {
	uow      db.UnitOfWork
	repos    RepoFactory
	observer UseCaseObserver
}

func NewPlanService(uow db.UnitOfWork, repos RepoFactory, observers ...UseCaseObserver) PlanService {
	return &planService{
		uow:      uow,
		repos:    repos,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) observe(ctx context.Context, name string, start time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
}

func (s *planService) Get(ctx context.Context) (*PlanState, error) {
	var state *PlanState
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		state, err = loadOrInit(ctx, s.repos(tx))
		return err
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (s *planService) Initialize(ctx context.Context, userID, major string, start domain.StartSemester) (*PlanState, error) {
	began := time.Now().UTC()
	if !domain.ValidTerms[string(start.Term)] {
		return nil, fmt.Errorf("invalid start term %q", start.Term)
	}

	plan := newPlan(userID, major, start, began)
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := s.repos(tx)
		if prior, _, loadErr := repo.Load(ctx); loadErr == nil {
			if delErr := repo.Delete(ctx, prior.ID); delErr != nil {
				return delErr
			}
		}
		return repo.Save(ctx, plan, nil)
	})
	s.observe(ctx, "plan_initialize", began, err, map[string]any{
		"start":     domain.SlotID(start.Term, start.Year),
		"semesters": len(plan.Slots),
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx)
}

func (s *planService) ValidatePlacement(ctx context.Context, courseID, slotID string) (planner.Result, error) {
	state, err := s.Get(ctx)
	if err != nil {
		return planner.Result{}, err
	}
	return planner.Validate(courseID, slotID, state.Plan, state.Catalog), nil
}

func (s *planService) CommitPlacement(ctx context.Context, courseID, slotID string) (planner.Result, error) {
	began := time.Now().UTC()
	var result planner.Result
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := s.repos(tx)
		state, err := loadOrInit(ctx, repo)
		if err != nil {
			return err
		}

		result = planner.Validate(courseID, slotID, state.Plan, state.Catalog)
		if !result.Accepted {
			return nil
		}

		if err := planner.Place(state.Plan, state.Catalog, courseID, slotID); err != nil {
			return err
		}
		state.Plan.UpdatedAt = time.Now().UTC()
		return repo.Save(ctx, state.Plan, state.Catalog.Synthesized())
	})
	s.observe(ctx, "plan_commit_placement", began, err, map[string]any{
		"course":   courseID,
		"slot":     slotID,
		"accepted": result.Accepted,
		"reason":   result.Reason,
	})
	return result, err
}

func (s *planService) RemoveCourse(ctx context.Context, courseID string) error {
	began := time.Now().UTC()
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := s.repos(tx)
		state, err := loadOrInit(ctx, repo)
		if err != nil {
			return err
		}
		if err := planner.Remove(state.Plan, state.Catalog, courseID); err != nil {
			return err
		}
		state.Plan.UpdatedAt = time.Now().UTC()
		return repo.Save(ctx, state.Plan, state.Catalog.Synthesized())
	})
	s.observe(ctx, "plan_remove_course", began, err, map[string]any{"course": courseID})
	return err
}

func (s *planService) AppendSemester(ctx context.Context) (*domain.Slot, error) {
	began := time.Now().UTC()
	var added *domain.Slot
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := s.repos(tx)
		state, err := loadOrInit(ctx, repo)
		if err != nil {
			return err
		}
		added, err = planner.AppendNextSlot(state.Plan)
		if err != nil {
			return err
		}
		state.Plan.UpdatedAt = time.Now().UTC()
		return repo.Save(ctx, state.Plan, state.Catalog.Synthesized())
	})
	fields := map[string]any{}
	if added != nil {
		fields["slot"] = added.ID
	}
	s.observe(ctx, "plan_append_semester", began, err, fields)
	if err != nil {
		return nil, err
	}
	return added, nil
}

func (s *planService) RemoveSemester(ctx context.Context, slotID string) error {
	began := time.Now().UTC()
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := s.repos(tx)
		state, err := loadOrInit(ctx, repo)
		if err != nil {
			return err
		}
		if err := planner.RemoveSlot(state.Plan, slotID); err != nil {
			return err
		}
		state.Plan.UpdatedAt = time.Now().UTC()
		return repo.Save(ctx, state.Plan, state.Catalog.Synthesized())
	})
	s.observe(ctx, "plan_remove_semester", began, err, map[string]any{"slot": slotID})
	return err
}

func (s *planService) Reset(ctx context.Context) error {
	began := time.Now().UTC()
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := s.repos(tx)
		plan, _, err := repo.Load(ctx)
		if errors.Is(err, repository.ErrNoPlan) {
			return nil
		}
		if err != nil {
			return err
		}
		return repo.Delete(ctx, plan.ID)
	})
	s.observe(ctx, "plan_reset", began, err, nil)
	return err
}
