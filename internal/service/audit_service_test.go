package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisharahman/gradpath/internal/audit"
	"github.com/aisharahman/gradpath/internal/domain"
	"github.com/aisharahman/gradpath/internal/sequence"
	"github.com/aisharahman/gradpath/internal/testutil"
)

func sampleParsedAudit() *audit.ParsedAudit {
	return &audit.ParsedAudit{
		Semesters: map[string][]audit.ParsedCourse{
			"FA23": {
				{Code: "CS111", Credits: 3, Grade: "A"},
				{Code: "MATH180", Credits: 4, Grade: "B"},
			},
			"SP24": {
				{Code: "CS141", Credits: 3, Grade: "A"},
			},
		},
	}
}

func TestReconcileParsedReplacesStoredPlan(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	repos := newRepoFactory()
	plans := NewPlanService(uow, repos)
	audits := NewAuditService(uow, repos)
	ctx := context.Background()

	// Seed a manual plan with one placement.
	_, err := plans.Initialize(ctx, "local", "Computer Science",
		domain.StartSemester{Year: 2025, Term: domain.TermFall})
	require.NoError(t, err)
	_, err = plans.CommitPlacement(ctx, "CS251", "Fall2025")
	require.NoError(t, err)

	report, err := audits.ReconcileParsed(ctx, sampleParsedAudit())
	require.NoError(t, err)
	assert.Equal(t, 3, report.Imported)
	assert.Equal(t, "Fall2023", report.EarliestSemester)

	state, err := plans.Get(ctx)
	require.NoError(t, err)
	assert.True(t, state.Plan.AuditDerived)
	assert.Equal(t, "Fall2023", state.Plan.Slots[0].ID)
	assert.True(t, state.Plan.IsScheduled("CS111"))
	// The manual placement sat in a semester the audit does not cover.
	assert.False(t, state.Plan.IsScheduled("CS251"))
}

func TestReconcileParsedWorksWithoutPriorPlan(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	repos := newRepoFactory()
	audits := NewAuditService(uow, repos)
	plans := NewPlanService(uow, repos)
	ctx := context.Background()

	report, err := audits.ReconcileParsed(ctx, sampleParsedAudit())
	require.NoError(t, err)
	assert.Equal(t, 3, report.Imported)

	state, err := plans.Get(ctx)
	require.NoError(t, err)
	assert.True(t, state.Plan.AuditDerived)
}

func TestReconcileParsedPersistsSynthesizedCourses(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	repos := newRepoFactory()
	audits := NewAuditService(uow, repos)
	plans := NewPlanService(uow, repos)
	ctx := context.Background()

	parsed := &audit.ParsedAudit{
		Semesters: map[string][]audit.ParsedCourse{
			"FA23": {{Code: "HIST 161", Credits: 3, Name: "World History",
				GenEdCategory: "Understanding the Past"}},
		},
	}
	report, err := audits.ReconcileParsed(ctx, parsed)
	require.NoError(t, err)
	require.Contains(t, report.SynthesizedCourses, "HIST161")

	// The overlay survives a fresh load.
	state, err := plans.Get(ctx)
	require.NoError(t, err)
	course, ok := state.Catalog.Get("HIST161")
	require.True(t, ok)
	assert.True(t, course.Synthesized)
	assert.Equal(t, "HIST161", state.Plan.PlaceholderMap["GEN103"])
}

func TestImportAuditFromFile(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	repos := newRepoFactory()
	audits := NewAuditService(uow, repos)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "audit.json")
	payload := `{"semesters": {"FA23": [{"code": "CS111", "credits": 3, "grade": "A"}]}}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	report, err := audits.ImportAudit(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)

	_, err = audits.ImportAudit(ctx, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestReconcileParsedEmptyAuditKeepsPrior(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	repos := newRepoFactory()
	plans := NewPlanService(uow, repos)
	audits := NewAuditService(uow, repos)
	ctx := context.Background()

	before, err := plans.Initialize(ctx, "local", "Computer Science",
		domain.StartSemester{Year: 2025, Term: domain.TermFall})
	require.NoError(t, err)

	_, err = audits.ReconcileParsed(ctx, &audit.ParsedAudit{
		Semesters: map[string][]audit.ParsedCourse{},
	})
	assert.ErrorIs(t, err, audit.ErrEmptyAudit)

	after, err := plans.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.Plan.ID, after.Plan.ID)
	assert.False(t, after.Plan.AuditDerived)
}

func TestReconcileParsedRollsBackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	repos := newRepoFactory()
	plans := NewPlanService(uow, repos)
	ctx := context.Background()

	_, err := plans.Initialize(ctx, "local", "Computer Science",
		domain.StartSemester{Year: 2025, Term: domain.TermFall})
	require.NoError(t, err)
	_, err = plans.CommitPlacement(ctx, "CS111", "Fall2025")
	require.NoError(t, err)

	failing := &testutil.FailOnNthExecUoW{DB: database, FailOn: 4, Err: assert.AnError}
	failingAudits := NewAuditService(failing, repos)

	_, err = failingAudits.ReconcileParsed(ctx, sampleParsedAudit())
	require.Error(t, err)

	// The stored plan is exactly what it was before the failed import.
	state, err := plans.Get(ctx)
	require.NoError(t, err)
	assert.False(t, state.Plan.AuditDerived)
	assert.True(t, state.Plan.IsScheduled("CS111"))
	assert.Len(t, state.Plan.Slots, sequence.DefaultLength)
}
