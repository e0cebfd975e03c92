package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aisharahman/gradpath/internal/catalog"
	"github.com/aisharahman/gradpath/internal/db"
	"github.com/aisharahman/gradpath/internal/domain"
	"github.com/aisharahman/gradpath/internal/repository"
	"github.com/aisharahman/gradpath/internal/sequence"
)

// RepoFactory builds a PlanRepo bound to a DBTX, so services can scope
// repositories to the transaction handed out by the UnitOfWork.
type RepoFactory func(dbtx db.DBTX) repository.PlanRepo

const (
	defaultUserID = "local"
	defaultMajor  = "Computer Science"
)

// loadState reads the stored aggregate and assembles the layered catalog:
// the built-in curriculum plus whatever courses past audit imports
// synthesized.
func loadState(ctx context.Context, repo repository.PlanRepo) (*PlanState, error) {
	plan, synthesized, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	cat := catalog.New()
	for _, course := range synthesized {
		cat.AddSynthesized(course)
	}
	return &PlanState{Plan: plan, Catalog: cat}, nil
}

// newDefaultPlan creates an empty plan starting in the fall of the current
// academic year.
func newDefaultPlan(now time.Time) *domain.Plan {
	start := domain.StartSemester{Year: now.Year(), Term: domain.TermFall}
	return newPlan(defaultUserID, defaultMajor, start, now)
}

func newPlan(userID, major string, start domain.StartSemester, now time.Time) *domain.Plan {
	return &domain.Plan{
		ID:             uuid.NewString(),
		UserID:         userID,
		Major:          major,
		Start:          start,
		Slots:          sequence.Generate(start.Year, start.Term, start.IncludeSummer),
		PlaceholderMap: make(map[string]string),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// repairSequence detects a stored plan whose slot list no longer matches its
// start descriptor and rebuilds the sequence, re-attaching surviving
// assignments by slot identifier. Audit-derived plans are exempt: their
// sequence is observed, not generated, so any shape is legitimate.
// Returns true when a repair was performed.
func repairSequence(plan *domain.Plan, cat *catalog.Catalog) bool {
	if plan.AuditDerived || sequenceIntact(plan) {
		return false
	}

	rebuilt := sequence.Generate(plan.Start.Year, plan.Start.Term, plan.Start.IncludeSummer)
	for _, slot := range rebuilt {
		old, ok := plan.SlotByID(slot.ID)
		if !ok {
			continue
		}
		slot.Status = old.Status
		for _, courseID := range old.Courses {
			slot.Courses = append(slot.Courses, courseID)
			if course, found := cat.Get(courseID); found {
				slot.Credits += course.Credits
			}
		}
	}
	if current := currentIn(rebuilt); current == nil && len(rebuilt) > 0 {
		rebuilt[0].Status = domain.SlotCurrent
	}
	plan.Slots = rebuilt
	plan.Reindex()
	return true
}

// sequenceIntact verifies the slot list is shaped the way the start
// descriptor generates it: right length, unique parseable identifiers,
// contiguous sequence indexes.
func sequenceIntact(plan *domain.Plan) bool {
	want := sequence.DefaultLength
	if plan.Start.IncludeSummer {
		want = sequence.SummerLength
	}
	if len(plan.Slots) != want {
		return false
	}
	seen := make(map[string]bool, len(plan.Slots))
	for i, slot := range plan.Slots {
		if slot.SequenceIndex != i || seen[slot.ID] {
			return false
		}
		seen[slot.ID] = true
		if _, _, err := sequence.ParseSlotID(slot.ID); err != nil {
			return false
		}
	}
	return true
}

func currentIn(slots []*domain.Slot) *domain.Slot {
	for _, slot := range slots {
		if slot.Status == domain.SlotCurrent {
			return slot
		}
	}
	return nil
}

// loadOrInit loads the stored state, creating and persisting a default plan
// when nothing is stored yet. Corrupted generated sequences are repaired and
// re-persisted on the spot.
func loadOrInit(ctx context.Context, repo repository.PlanRepo) (*PlanState, error) {
	state, err := loadState(ctx, repo)
	if errors.Is(err, repository.ErrNoPlan) {
		plan := newDefaultPlan(time.Now().UTC())
		if err := repo.Save(ctx, plan, nil); err != nil {
			return nil, fmt.Errorf("saving initial plan: %w", err)
		}
		return &PlanState{Plan: plan, Catalog: catalog.New()}, nil
	}
	if err != nil {
		return nil, err
	}
	if repairSequence(state.Plan, state.Catalog) {
		state.Plan.UpdatedAt = time.Now().UTC()
		if err := repo.Save(ctx, state.Plan, state.Catalog.Synthesized()); err != nil {
			return nil, fmt.Errorf("saving repaired plan: %w", err)
		}
	}
	return state, nil
}
