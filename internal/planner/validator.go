package planner

import (
	"fmt"
	"strings"

	"github.com/aisharahman/gradpath/internal/catalog"
	"github.com/aisharahman/gradpath/internal/domain"
)

// Result is the outcome of a placement validation. Rejections carry a reason
// precise enough for the user to act on; acceptances carry a confirmation
// message naming the course and target semester.
type Result struct {
	Accepted bool
	Reason   string
	Message  string
}

func reject(format string, args ...any) Result {
	return Result{Reason: fmt.Sprintf(format, args...)}
}

// Validate decides whether courseID may occupy the slot with slotID. It is a
// pure function of its inputs: no mutation, identical results for identical
// state. Checks run in a fixed order and short-circuit on the first failure:
// existence, slot mutability, elective quotas, prerequisites, concurrent
// prerequisites, then reverse dependencies (a move must not retroactively
// invalidate courses that depend on the one being moved).
func Validate(courseID, slotID string, plan *domain.Plan, cat *catalog.Catalog) Result {
	course, ok := cat.Get(courseID)
	if !ok {
		return reject("Course %s not found", courseID)
	}
	slot, ok := plan.SlotByID(slotID)
	if !ok {
		return reject("Semester %s not found", slotID)
	}

	if slot.Status == domain.SlotCompleted {
		return reject("Cannot modify completed semesters")
	}

	quota := NewQuotaTracker(plan, cat)
	if r := checkQuotas(courseID, plan, cat, quota); r.Reason != "" {
		return r
	}

	if r := checkPrerequisites(course, slot, plan, cat); r.Reason != "" {
		return r
	}

	if r := checkReverseDependencies(course, slot, plan, cat); r.Reason != "" {
		return r
	}

	return Result{
		Accepted: true,
		Message:  fmt.Sprintf("%s added to %s", course.Code, slot.Label()),
	}
}

// checkQuotas applies the elective category caps. A course that is already
// scheduled elsewhere is being moved, not added, so it is excluded from its
// own category count.
func checkQuotas(courseID string, plan *domain.Plan, cat *catalog.Catalog, quota *QuotaTracker) Result {
	excludeIfMoving := func() string {
		if plan.IsScheduled(courseID) {
			return courseID
		}
		return ""
	}

	if quota.IsMathElective(courseID) || quota.IsRequiredStatistics(courseID) {
		if quota.CountMathElectives(excludeIfMoving()) >= MaxMathElectives {
			return reject("You have already selected %d math elective courses (including required statistics). Maximum allowed: %d courses total.",
				MaxMathElectives, MaxMathElectives)
		}
	}

	if quota.IsRequiredStatistics(courseID) && quota.OtherRequiredStatisticsScheduled(courseID) {
		codes := make([]string, 0, 2)
		for _, id := range RequiredStatisticsCourses() {
			codes = append(codes, displayCode(cat, id))
		}
		return reject("You must take only ONE of %s. You have already selected one of these courses.",
			strings.Join(codes, " or "))
	}

	if quota.IsScienceElective(courseID) {
		if quota.CountScienceElectives(excludeIfMoving()) >= MaxScienceElectives {
			return reject("You have already selected %d science elective courses. Maximum allowed: %d courses total.",
				MaxScienceElectives, MaxScienceElectives)
		}
	}

	if quota.IsTechnicalElective(courseID) {
		if quota.CountTechnicalElectives(excludeIfMoving()) >= MaxTechnicalElectives {
			return reject("You have already selected %d CS elective courses. Maximum allowed: %d courses total.",
				MaxTechnicalElectives, MaxTechnicalElectives)
		}
	}

	return Result{}
}

// checkPrerequisites enforces ordering against the target slot's sequence
// index. Strict prerequisites must sit strictly earlier and are never assumed
// completed when unscheduled. Concurrent prerequisites only constrain when
// scheduled: same slot or earlier is fine, later is not, absent is allowed
// (the user may add them to the same slot afterward).
func checkPrerequisites(course *domain.Course, target *domain.Slot, plan *domain.Plan, cat *catalog.Catalog) Result {
	var missing []string
	for _, prereq := range course.Prerequisites {
		if slot, ok := plan.SlotOf(prereq); ok && slot.SequenceIndex < target.SequenceIndex {
			continue
		}
		missing = append(missing, displayCode(cat, prereq))
	}
	if len(missing) > 0 {
		return reject("%s requires %s to be completed first", course.Code, strings.Join(missing, ", "))
	}

	var misplaced []string
	for _, prereq := range course.ConcurrentPrerequisites {
		if slot, ok := plan.SlotOf(prereq); ok && slot.SequenceIndex > target.SequenceIndex {
			misplaced = append(misplaced, displayCode(cat, prereq))
		}
	}
	if len(misplaced) > 0 {
		return reject("%s requires %s to be taken concurrently (same semester) or completed first",
			course.Code, strings.Join(misplaced, ", "))
	}

	return Result{}
}

// checkReverseDependencies verifies that placing course into target does not
// break any already-scheduled course that lists it as a prerequisite. This is
// what makes moves safe: pulling a prerequisite forward past its dependents
// is rejected.
func checkReverseDependencies(course *domain.Course, target *domain.Slot, plan *domain.Plan, cat *catalog.Catalog) Result {
	for _, dependent := range cat.All() {
		concurrent := dependent.HasConcurrentPrerequisite(course.ID)
		if !concurrent && !dependent.HasPrerequisite(course.ID) {
			continue
		}
		depSlot, ok := plan.SlotOf(dependent.ID)
		if !ok {
			continue
		}

		if concurrent {
			if depSlot.SequenceIndex < target.SequenceIndex {
				return reject("%s requires %s to be taken concurrently (same semester) or completed first, but %s is scheduled in %s",
					dependent.Code, course.Code, dependent.Code, depSlot.Label())
			}
		} else if depSlot.SequenceIndex <= target.SequenceIndex {
			return reject("%s requires %s to be completed first, but %s is scheduled in %s",
				dependent.Code, course.Code, dependent.Code, depSlot.Label())
		}
	}
	return Result{}
}

func displayCode(cat *catalog.Catalog, id string) string {
	if course, ok := cat.Get(id); ok {
		return course.Code
	}
	return id
}
