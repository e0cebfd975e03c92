package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisharahman/gradpath/internal/domain"
	"github.com/aisharahman/gradpath/internal/testutil"
)

func newTransferFixture(t *testing.T) (TransferService, PlanService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	repos := newRepoFactory()
	plans := NewPlanService(uow, repos)

	_, err := plans.Initialize(context.Background(), "local", "Computer Science",
		domain.StartSemester{Year: 2025, Term: domain.TermFall})
	require.NoError(t, err)

	return NewTransferService(uow, repos), plans
}

func TestTransferAddAndList(t *testing.T) {
	transfers, _ := newTransferFixture(t)
	ctx := context.Background()

	tc := testutil.NewTestTransferCredit("CCC MATH 201", "MATH180", 4)
	require.NoError(t, transfers.Add(ctx, tc))

	// Blank status defaults to pending, blank ID is generated.
	require.NoError(t, transfers.Add(ctx, domain.TransferCredit{
		ExternalCourse: "CCC ENG 101", Equivalent: "ENGL160", Credits: 3,
	}))

	list, err := transfers.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.TransferApproved, list[0].Status)
	assert.Equal(t, domain.TransferPending, list[1].Status)
	assert.NotEmpty(t, list[1].ID)
}

func TestTransferAddRejectsBogusStatus(t *testing.T) {
	transfers, _ := newTransferFixture(t)

	err := transfers.Add(context.Background(), domain.TransferCredit{
		ExternalCourse: "X", Equivalent: "MATH180", Status: "maybe",
	})
	assert.Error(t, err)
}

func TestTransferMapToPlan(t *testing.T) {
	transfers, plans := newTransferFixture(t)
	ctx := context.Background()

	tc := testutil.NewTestTransferCredit("CCC MATH 201", "MATH180", 4)
	require.NoError(t, transfers.Add(ctx, tc))

	result, err := transfers.MapToPlan(ctx, tc.ID)
	require.NoError(t, err)
	require.True(t, result.Accepted)

	state, err := plans.Get(ctx)
	require.NoError(t, err)
	slot, ok := state.Plan.SlotOf("MATH180")
	require.True(t, ok)
	assert.Equal(t, "Fall2025", slot.ID) // earliest open semester

	list, err := transfers.List(ctx)
	require.NoError(t, err)
	assert.True(t, list[0].Mapped)

	// Mapping twice is an error.
	_, err = transfers.MapToPlan(ctx, tc.ID)
	assert.Error(t, err)
}

func TestTransferMapRequiresApproval(t *testing.T) {
	transfers, _ := newTransferFixture(t)
	ctx := context.Background()

	tc := domain.TransferCredit{
		ID: "t-pending", ExternalCourse: "X", Equivalent: "MATH180",
		Status: domain.TransferPending, Credits: 4,
	}
	require.NoError(t, transfers.Add(ctx, tc))

	_, err := transfers.MapToPlan(ctx, "t-pending")
	assert.Error(t, err)
}

func TestTransferMapUnknownID(t *testing.T) {
	transfers, _ := newTransferFixture(t)

	_, err := transfers.MapToPlan(context.Background(), "nope")
	assert.Error(t, err)
}

func TestTransferMapRejectionDoesNotMarkMapped(t *testing.T) {
	transfers, plans := newTransferFixture(t)
	ctx := context.Background()

	// CS251's prerequisites are unscheduled, so the placement validator
	// rejects the mapping; the credit stays unmapped.
	tc := testutil.NewTestTransferCredit("CCC CS 250", "CS251", 4)
	require.NoError(t, transfers.Add(ctx, tc))

	result, err := transfers.MapToPlan(ctx, tc.ID)
	require.NoError(t, err)
	assert.False(t, result.Accepted)

	list, err := transfers.List(ctx)
	require.NoError(t, err)
	assert.False(t, list[0].Mapped)

	state, err := plans.Get(ctx)
	require.NoError(t, err)
	assert.False(t, state.Plan.IsScheduled("CS251"))
}
