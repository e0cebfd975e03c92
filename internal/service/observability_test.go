package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisharahman/gradpath/internal/domain"
	"github.com/aisharahman/gradpath/internal/testutil"
)

func TestLogUseCaseObserverWritesEvents(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "plan_commit_placement",
		Duration: 5 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"course": "CS111"},
	})

	out := buf.String()
	assert.Contains(t, out, "service_use_case")
	assert.Contains(t, out, "plan_commit_placement")
	assert.Contains(t, out, "course=CS111")
	assert.Contains(t, out, "success=true")
}

func TestLogUseCaseObserverErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "audit_reconcile",
		Err:  assert.AnError,
	})

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "error=")
}

func TestNilWriterFallsBackToNoop(t *testing.T) {
	obs := NewLogUseCaseObserver(nil)
	assert.IsType(t, NoopUseCaseObserver{}, obs)
}

type captureObserver struct {
	events []UseCaseEvent
}

func (c *captureObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	c.events = append(c.events, e)
}

func TestPlanServiceEmitsUseCaseEvents(t *testing.T) {
	database := testutil.NewTestDB(t)
	capture := &captureObserver{}
	svc := NewPlanService(testutil.NewTestUoW(database), newRepoFactory(), capture)
	ctx := context.Background()

	_, err := svc.Initialize(ctx, "local", "Computer Science",
		domain.StartSemester{Year: 2025, Term: domain.TermFall})
	require.NoError(t, err)

	_, err = svc.CommitPlacement(ctx, "CS111", "Fall2025")
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(capture.events), 2)
	names := make([]string, 0, len(capture.events))
	for _, e := range capture.events {
		names = append(names, e.Name)
	}
	assert.Contains(t, names, "plan_initialize")
	assert.Contains(t, names, "plan_commit_placement")

	last := capture.events[len(capture.events)-1]
	assert.True(t, last.Success)
	assert.Equal(t, true, last.Fields["accepted"])
}
