package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisharahman/gradpath/internal/catalog"
	"github.com/aisharahman/gradpath/internal/planner"
	"github.com/aisharahman/gradpath/internal/testutil"
)

func TestFormatRoadmap(t *testing.T) {
	cat := catalog.New()
	plan := testutil.NewTestPlan()
	require.NoError(t, planner.Place(plan, cat, "CS111", "Fall2025"))

	out := FormatRoadmap(plan, cat)
	assert.Contains(t, out, "Fall 2025")
	assert.Contains(t, out, "CS 111")
	assert.Contains(t, out, "Program Design I")
	assert.Contains(t, out, "3.0 credits")
	assert.Contains(t, out, "(empty)")
}

func TestFormatRoadmapUnknownCourse(t *testing.T) {
	cat := catalog.New()
	plan := testutil.NewTestPlan()
	plan.Slots[0].Courses = []string{"GHOST999"}

	out := FormatRoadmap(plan, cat)
	assert.Contains(t, out, "GHOST999")
	assert.Contains(t, out, "(unknown)")
}

func TestFormatResult(t *testing.T) {
	accepted := FormatResult(planner.Result{Accepted: true, Message: "CS 111 added to Fall 2025"})
	assert.Contains(t, accepted, "CS 111 added to Fall 2025")

	rejected := FormatResult(planner.Result{Message: "nope"})
	assert.Contains(t, rejected, "Rejected")
	assert.Contains(t, rejected, "nope")
}

func TestFormatCourseListHidesCappedCourses(t *testing.T) {
	cat := catalog.New()
	plan := testutil.NewTestPlan()
	for i, id := range []string{"MATH215", "MATH218", "MATH220"} {
		plan.Slots[i].Courses = append(plan.Slots[i].Courses, id)
	}

	visible := FormatCourseList(plan, cat, false)
	assert.NotContains(t, visible, "MCS 471")

	everything := FormatCourseList(plan, cat, true)
	assert.Contains(t, everything, "MCS 471")
}
