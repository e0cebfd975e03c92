package planner

import (
	"github.com/aisharahman/gradpath/internal/catalog"
	"github.com/aisharahman/gradpath/internal/domain"
	"github.com/aisharahman/gradpath/internal/sequence"
)

// Place assigns courseID to the slot with slotID, removing it first from any
// slot it already occupies so that placement stays exclusive. Credit totals
// are maintained incrementally. Callers are expected to have run Validate;
// Place itself only guards existence.
func Place(plan *domain.Plan, cat *catalog.Catalog, courseID, slotID string) error {
	course, ok := cat.Get(courseID)
	if !ok {
		return ErrCourseNotFound
	}
	slot, ok := plan.SlotByID(slotID)
	if !ok {
		return ErrSlotNotFound
	}

	removeEverywhere(plan, cat, courseID)

	if !slot.Contains(courseID) {
		slot.Courses = append(slot.Courses, courseID)
		slot.Credits += course.Credits
	}
	return nil
}

// Remove unassigns courseID from whichever slot holds it.
func Remove(plan *domain.Plan, cat *catalog.Catalog, courseID string) error {
	if !plan.IsScheduled(courseID) {
		return ErrCourseNotScheduled
	}
	removeEverywhere(plan, cat, courseID)
	return nil
}

func removeEverywhere(plan *domain.Plan, cat *catalog.Catalog, courseID string) {
	for _, slot := range plan.Slots {
		for i, id := range slot.Courses {
			if id != courseID {
				continue
			}
			slot.Courses = append(slot.Courses[:i], slot.Courses[i+1:]...)
			if course, ok := cat.Get(courseID); ok {
				slot.Credits -= course.Credits
			}
			break
		}
	}
}

// appendAttempts bounds the search for a free successor semester.
const appendAttempts = 5

// AppendNextSlot extends the plan with the chronological successor of its
// last slot, using the same cycle arithmetic as the generator. Summer
// participates in the cycle iff a Summer slot already exists. Candidates whose
// identifier is already present are skipped, up to appendAttempts of them.
func AppendNextSlot(plan *domain.Plan) (*domain.Slot, error) {
	if len(plan.Slots) == 0 {
		return nil, ErrSlotNotFound
	}

	includeSummer := false
	for _, s := range plan.Slots {
		if s.Term == domain.TermSummer {
			includeSummer = true
			break
		}
	}

	last := plan.Slots[len(plan.Slots)-1]
	term, year := last.Term, last.Year
	for i := 0; i < appendAttempts; i++ {
		term, year = sequence.Next(term, year, includeSummer)
		id := domain.SlotID(term, year)
		if _, exists := plan.SlotByID(id); exists {
			continue
		}
		slot := &domain.Slot{
			ID:     id,
			Term:   term,
			Year:   year,
			Status: domain.SlotPlanned,
		}
		plan.Slots = append(plan.Slots, slot)
		plan.Reindex()
		return slot, nil
	}
	return nil, ErrNoFreeSlot
}

// RemoveSlot deletes the slot with slotID. Removing a populated slot discards
// its assignments; confirming that loss with the user is the caller's job.
// If the removed slot carried current status, the first remaining planned slot
// inherits it, or the last slot when none is planned.
func RemoveSlot(plan *domain.Plan, slotID string) error {
	idx := -1
	for i, s := range plan.Slots {
		if s.ID == slotID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrSlotNotFound
	}

	wasCurrent := plan.Slots[idx].Status == domain.SlotCurrent
	plan.Slots = append(plan.Slots[:idx], plan.Slots[idx+1:]...)
	plan.Reindex()

	if wasCurrent && len(plan.Slots) > 0 {
		reassigned := false
		for _, s := range plan.Slots {
			if s.Status == domain.SlotPlanned {
				s.Status = domain.SlotCurrent
				reassigned = true
				break
			}
		}
		if !reassigned {
			plan.Slots[len(plan.Slots)-1].Status = domain.SlotCurrent
		}
	}
	return nil
}
