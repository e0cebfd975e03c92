package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisharahman/gradpath/internal/repository"
	"github.com/aisharahman/gradpath/internal/sequence"
	"github.com/aisharahman/gradpath/internal/testutil"
)

// A generated plan whose slot list no longer matches its start descriptor is
// rebuilt on load, keeping whatever assignments land on surviving slot IDs.
func TestGetRepairsTruncatedSequence(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanRepo(database)
	svc := NewPlanService(testutil.NewTestUoW(database), newRepoFactory())
	ctx := context.Background()

	plan := testutil.NewTestPlan()
	plan.Slots[0].Courses = []string{"CS111"}
	plan.Slots[0].Credits = 3
	// Corrupt: drop three slots from the middle.
	plan.Slots = append(plan.Slots[:2], plan.Slots[5:]...)
	plan.Reindex()
	require.NoError(t, repo.Save(ctx, plan, nil))

	state, err := svc.Get(ctx)
	require.NoError(t, err)

	assert.Len(t, state.Plan.Slots, sequence.DefaultLength)
	assert.Equal(t, "Fall2025", state.Plan.Slots[0].ID)
	assert.True(t, state.Plan.IsScheduled("CS111"))

	// The repair was persisted, not just applied in memory.
	stored, _, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, stored.Slots, sequence.DefaultLength)
}

func TestGetRepairsBrokenIndexes(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanRepo(database)
	svc := NewPlanService(testutil.NewTestUoW(database), newRepoFactory())
	ctx := context.Background()

	plan := testutil.NewTestPlan()
	plan.Slots[3].SequenceIndex = 7 // duplicate/broken ordering
	require.NoError(t, repo.Save(ctx, plan, nil))

	state, err := svc.Get(ctx)
	require.NoError(t, err)
	for i, slot := range state.Plan.Slots {
		assert.Equal(t, i, slot.SequenceIndex)
	}
}

func TestAuditDerivedPlansAreNotRepaired(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanRepo(database)
	svc := NewPlanService(testutil.NewTestUoW(database), newRepoFactory())
	ctx := context.Background()

	// Audit-derived sequences have whatever shape the audit had; a five-slot
	// plan is legitimate and must survive loading untouched.
	plan := testutil.NewTestPlan(testutil.WithAuditDerived())
	plan.Slots = plan.Slots[:5]
	plan.Reindex()
	require.NoError(t, repo.Save(ctx, plan, nil))

	state, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, state.Plan.Slots, 5)
}
