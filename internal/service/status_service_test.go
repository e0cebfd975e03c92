package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisharahman/gradpath/internal/domain"
	"github.com/aisharahman/gradpath/internal/planner"
	"github.com/aisharahman/gradpath/internal/sequence"
	"github.com/aisharahman/gradpath/internal/testutil"
)

func newStatusFixture(t *testing.T) (StatusService, PlanService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	repos := newRepoFactory()
	plans := NewPlanService(uow, repos)

	_, err := plans.Initialize(context.Background(), "local", "Computer Science",
		domain.StartSemester{Year: 2025, Term: domain.TermFall})
	require.NoError(t, err)

	return NewStatusService(plans), plans
}

func TestGetStatusEmptyPlan(t *testing.T) {
	status, _ := newStatusFixture(t)

	resp, err := status.GetStatus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Computer Science", resp.Major)
	assert.InDelta(t, 0, resp.TotalCredits, 0.001)
	assert.InDelta(t, float64(planner.GraduationCredits), resp.CreditTarget, 0.001)
	assert.Equal(t, sequence.DefaultLength, resp.SemesterCount)
	assert.Equal(t, "Fall 2025", resp.CurrentSemester)
	assert.Equal(t, "Spring 2029", resp.ProjectedGraduation)
	assert.False(t, resp.Quotas.HasRequiredStatistics)
}

func TestGetStatusCountsCreditsAndQuotas(t *testing.T) {
	status, plans := newStatusFixture(t)
	ctx := context.Background()

	for _, placement := range [][2]string{
		{"CS111", "Fall2025"},
		{"MATH180", "Fall2025"},
		{"MATH181", "Spring2026"},
		{"STAT381", "Fall2026"},
		{"BIOS110", "Spring2026"},
	} {
		result, err := plans.CommitPlacement(ctx, placement[0], placement[1])
		require.NoError(t, err)
		require.True(t, result.Accepted, result.Reason)
	}

	resp, err := status.GetStatus(ctx)
	require.NoError(t, err)

	// CS111 (3) + MATH180 (4) + MATH181 (4) + STAT381 (3) + BIOS110 (4)
	assert.InDelta(t, 18, resp.TotalCredits, 0.001)
	assert.InDelta(t, 18.0/128*100, resp.PercentComplete, 0.01)
	assert.Equal(t, 5, resp.ScheduledCourses)
	assert.Equal(t, 1, resp.Quotas.MathElectives) // STAT381 counts toward the math cap
	assert.Equal(t, 1, resp.Quotas.ScienceElectives)
	assert.Zero(t, resp.Quotas.TechnicalElectives)
	assert.True(t, resp.Quotas.HasRequiredStatistics)
}

func TestProjectGraduationWalksAtFifteenCreditsPerSemester(t *testing.T) {
	plan := testutil.NewTestPlan()

	// 48 credits remaining at 15 per semester lands four slots ahead.
	assert.Equal(t, "Fall 2027", projectGraduation(plan, 80))

	// Past the planned sequence the final semester stands in.
	assert.Equal(t, "Spring 2029", projectGraduation(plan, 10))

	// Done already: the current semester is the projection.
	assert.Equal(t, "Fall 2025", projectGraduation(plan, 130))
}
