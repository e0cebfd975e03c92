package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aisharahman/gradpath/internal/db"
	"github.com/aisharahman/gradpath/internal/domain"
	"github.com/aisharahman/gradpath/internal/planner"
)

type transferService struct {
	uow      db.UnitOfWork
	repos    RepoFactory
	observer UseCaseObserver
}

func NewTransferService(uow db.UnitOfWork, repos RepoFactory, observers ...UseCaseObserver) TransferService {
	return &transferService{
		uow:      uow,
		repos:    repos,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *transferService) List(ctx context.Context) ([]domain.TransferCredit, error) {
	var credits []domain.TransferCredit
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		state, err := loadOrInit(ctx, s.repos(tx))
		if err != nil {
			return err
		}
		credits = append(credits, state.Plan.TransferCredits...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return credits, nil
}

func (s *transferService) Add(ctx context.Context, tc domain.TransferCredit) error {
	if tc.ID == "" {
		tc.ID = uuid.NewString()
	}
	if tc.Status == "" {
		tc.Status = domain.TransferPending
	}
	if tc.Status != domain.TransferApproved && tc.Status != domain.TransferPending {
		return fmt.Errorf("invalid transfer status %q", tc.Status)
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := s.repos(tx)
		state, err := loadOrInit(ctx, repo)
		if err != nil {
			return err
		}
		state.Plan.TransferCredits = append(state.Plan.TransferCredits, tc)
		state.Plan.UpdatedAt = time.Now().UTC()
		return repo.Save(ctx, state.Plan, state.Catalog.Synthesized())
	})
}

// MapToPlan places an approved transfer equivalent into the earliest planned
// semester, running the same placement validation as a manual add.
func (s *transferService) MapToPlan(ctx context.Context, transferID string) (planner.Result, error) {
	began := time.Now().UTC()
	var result planner.Result
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := s.repos(tx)
		state, err := loadOrInit(ctx, repo)
		if err != nil {
			return err
		}
		plan := state.Plan

		var tc *domain.TransferCredit
		for i := range plan.TransferCredits {
			if plan.TransferCredits[i].ID == transferID {
				tc = &plan.TransferCredits[i]
				break
			}
		}
		if tc == nil {
			return fmt.Errorf("transfer credit %s not found", transferID)
		}
		if tc.Status != domain.TransferApproved {
			return fmt.Errorf("transfer credit %s is not approved", transferID)
		}
		if tc.Mapped {
			return fmt.Errorf("transfer credit %s is already mapped", transferID)
		}

		target := earliestPlannedSlot(plan)
		if target == nil {
			return planner.ErrNoFreeSlot
		}

		result = planner.Validate(tc.Equivalent, target.ID, plan, state.Catalog)
		if !result.Accepted {
			return nil
		}
		if err := planner.Place(plan, state.Catalog, tc.Equivalent, target.ID); err != nil {
			return err
		}
		tc.Mapped = true
		plan.UpdatedAt = time.Now().UTC()
		return repo.Save(ctx, plan, state.Catalog.Synthesized())
	})
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "transfer_map",
		Duration:  time.Since(began),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"transfer": transferID, "accepted": result.Accepted},
		StartedAt: began,
	})
	return result, err
}

func earliestPlannedSlot(plan *domain.Plan) *domain.Slot {
	for _, slot := range plan.Slots {
		if slot.Status == domain.SlotPlanned || slot.Status == domain.SlotCurrent {
			return slot
		}
	}
	return nil
}
