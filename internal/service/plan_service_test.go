package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisharahman/gradpath/internal/db"
	"github.com/aisharahman/gradpath/internal/domain"
	"github.com/aisharahman/gradpath/internal/repository"
	"github.com/aisharahman/gradpath/internal/sequence"
	"github.com/aisharahman/gradpath/internal/testutil"
)

func newRepoFactory() RepoFactory {
	return func(dbtx db.DBTX) repository.PlanRepo {
		return repository.NewSQLitePlanRepo(dbtx)
	}
}

func newTestPlanService(t *testing.T) (PlanService, db.UnitOfWork, RepoFactory) {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	repos := newRepoFactory()
	return NewPlanService(uow, repos), uow, repos
}

func initPlan(t *testing.T, svc PlanService) *PlanState {
	t.Helper()
	state, err := svc.Initialize(context.Background(), "local", "Computer Science",
		domain.StartSemester{Year: 2025, Term: domain.TermFall})
	require.NoError(t, err)
	return state
}

func TestGetInitializesDefaultPlan(t *testing.T) {
	svc, _, _ := newTestPlanService(t)

	state, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, state.Plan.Slots, sequence.DefaultLength)
	assert.NotEmpty(t, state.Plan.ID)

	// A second Get returns the same stored plan, not a new one.
	again, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, state.Plan.ID, again.Plan.ID)
}

func TestInitializeReplacesPlan(t *testing.T) {
	svc, _, _ := newTestPlanService(t)

	first := initPlan(t, svc)
	second, err := svc.Initialize(context.Background(), "local", "Computer Science",
		domain.StartSemester{Year: 2026, Term: domain.TermSpring, IncludeSummer: true})
	require.NoError(t, err)

	assert.NotEqual(t, first.Plan.ID, second.Plan.ID)
	assert.Len(t, second.Plan.Slots, sequence.SummerLength)
	assert.Equal(t, "Spring2026", second.Plan.Slots[0].ID)
}

func TestInitializeRejectsInvalidTerm(t *testing.T) {
	svc, _, _ := newTestPlanService(t)

	_, err := svc.Initialize(context.Background(), "local", "CS",
		domain.StartSemester{Year: 2025, Term: "Autumn"})
	assert.Error(t, err)
}

func TestCommitPlacementPersists(t *testing.T) {
	svc, _, _ := newTestPlanService(t)
	initPlan(t, svc)
	ctx := context.Background()

	result, err := svc.CommitPlacement(ctx, "CS111", "Fall2025")
	require.NoError(t, err)
	require.True(t, result.Accepted)
	assert.Equal(t, "CS 111 added to Fall 2025", result.Message)

	state, err := svc.Get(ctx)
	require.NoError(t, err)
	slot, ok := state.Plan.SlotOf("CS111")
	require.True(t, ok)
	assert.Equal(t, "Fall2025", slot.ID)
}

func TestCommitPlacementRejectionLeavesStateAlone(t *testing.T) {
	svc, _, _ := newTestPlanService(t)
	initPlan(t, svc)
	ctx := context.Background()

	// CS251 has unscheduled prerequisites; the placement is rejected, not an
	// error, and nothing is persisted.
	result, err := svc.CommitPlacement(ctx, "CS251", "Fall2025")
	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.NotEmpty(t, result.Reason)

	state, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.False(t, state.Plan.IsScheduled("CS251"))
}

func TestValidatePlacementDoesNotMutate(t *testing.T) {
	svc, _, _ := newTestPlanService(t)
	initPlan(t, svc)
	ctx := context.Background()

	result, err := svc.ValidatePlacement(ctx, "CS111", "Fall2025")
	require.NoError(t, err)
	assert.True(t, result.Accepted)

	state, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.False(t, state.Plan.IsScheduled("CS111"))
}

func TestRemoveCourse(t *testing.T) {
	svc, _, _ := newTestPlanService(t)
	initPlan(t, svc)
	ctx := context.Background()

	_, err := svc.CommitPlacement(ctx, "CS111", "Fall2025")
	require.NoError(t, err)
	require.NoError(t, svc.RemoveCourse(ctx, "CS111"))

	state, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.False(t, state.Plan.IsScheduled("CS111"))

	// Removing again surfaces the planner error.
	assert.Error(t, svc.RemoveCourse(ctx, "CS111"))
}

func TestAppendAndRemoveSemester(t *testing.T) {
	svc, _, _ := newTestPlanService(t)
	initPlan(t, svc)
	ctx := context.Background()

	slot, err := svc.AppendSemester(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Fall2029", slot.ID)

	state, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, state.Plan.Slots, sequence.DefaultLength+1)

	require.NoError(t, svc.RemoveSemester(ctx, "Fall2029"))
	state, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, state.Plan.Slots, sequence.DefaultLength)
}

func TestResetDeletesPlan(t *testing.T) {
	svc, _, _ := newTestPlanService(t)
	first := initPlan(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.Reset(ctx))

	// Get re-initializes with a fresh identity.
	state, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first.Plan.ID, state.Plan.ID)

	// Reset with nothing stored is a no-op.
	require.NoError(t, svc.Reset(ctx))
	require.NoError(t, svc.Reset(ctx))
}

func TestCommitPlacementRollsBackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	repos := newRepoFactory()
	svc := NewPlanService(testutil.NewTestUoW(database), repos)
	initPlan(t, svc)
	ctx := context.Background()

	// Fail partway through the aggregate rewrite: the whole placement must
	// roll back.
	failing := &testutil.FailOnNthExecUoW{DB: database, FailOn: 6, Err: assert.AnError}
	failingSvc := NewPlanService(failing, repos)

	_, err := failingSvc.CommitPlacement(ctx, "CS111", "Fall2025")
	require.Error(t, err)

	state, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.False(t, state.Plan.IsScheduled("CS111"))
	assert.Len(t, state.Plan.Slots, sequence.DefaultLength)
}
