package service

import (
	"context"
	"math"

	"github.com/aisharahman/gradpath/internal/contract"
	"github.com/aisharahman/gradpath/internal/domain"
	"github.com/aisharahman/gradpath/internal/planner"
)

type statusService struct {
	plans PlanService
}

func NewStatusService(plans PlanService) StatusService {
	return &statusService{plans: plans}
}

func (s *statusService) GetStatus(ctx context.Context) (*contract.StatusResponse, error) {
	state, err := s.plans.Get(ctx)
	if err != nil {
		return nil, err
	}
	plan := state.Plan

	quota := planner.NewQuotaTracker(plan, state.Catalog)
	total := plan.TotalCredits()

	pct := total / planner.GraduationCredits * 100
	if pct > 100 {
		pct = 100
	}

	resp := &contract.StatusResponse{
		UserID:           plan.UserID,
		Major:            plan.Major,
		TotalCredits:     total,
		CreditTarget:     planner.GraduationCredits,
		PercentComplete:  pct,
		SemesterCount:    len(plan.Slots),
		ScheduledCourses: len(plan.ScheduledCourses()),
		Quotas: contract.QuotaUsage{
			MathElectives:         quota.CountMathElectives(""),
			MaxMathElectives:      planner.MaxMathElectives,
			ScienceElectives:      quota.CountScienceElectives(""),
			MaxScienceElectives:   planner.MaxScienceElectives,
			TechnicalElectives:    quota.CountTechnicalElectives(""),
			MaxTechnicalElectives: planner.MaxTechnicalElectives,
			HasRequiredStatistics: quota.HasRequiredStatistics(),
		},
	}

	if current, ok := plan.CurrentSlot(); ok {
		resp.CurrentSemester = current.Label()
	}
	resp.ProjectedGraduation = projectGraduation(plan, total)
	return resp, nil
}

// projectGraduation walks forward from the current slot assuming an average
// load of 15 credits per semester. When the walk runs past the planned
// sequence, the final planned semester stands in as the projection.
func projectGraduation(plan *domain.Plan, totalCredits float64) string {
	n := len(plan.Slots)
	if n == 0 {
		return ""
	}

	remaining := planner.GraduationCredits - totalCredits
	if remaining <= 0 {
		if current, ok := plan.CurrentSlot(); ok {
			return current.Label()
		}
		return plan.Slots[n-1].Label()
	}

	currentIndex := 0
	for i, slot := range plan.Slots {
		if slot.Status == domain.SlotCurrent {
			currentIndex = i
			break
		}
	}

	semestersNeeded := int(math.Ceil(remaining / 15))
	if idx := currentIndex + semestersNeeded; idx < n {
		return plan.Slots[idx].Label()
	}
	return plan.Slots[n-1].Label()
}
