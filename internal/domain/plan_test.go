package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoSlotPlan() *Plan {
	return &Plan{
		Slots: []*Slot{
			{ID: "Fall2025", Term: TermFall, Year: 2025, SequenceIndex: 0,
				Courses: []string{"CS111", "MATH180"}, Credits: 7, Status: SlotCurrent},
			{ID: "Spring2026", Term: TermSpring, Year: 2026, SequenceIndex: 1,
				Courses: []string{"CS141"}, Credits: 3, Status: SlotPlanned},
		},
	}
}

func TestSlotID(t *testing.T) {
	assert.Equal(t, "Fall2025", SlotID(TermFall, 2025))
	assert.Equal(t, "Summer2026", SlotID(TermSummer, 2026))
}

func TestSlotLabel(t *testing.T) {
	s := &Slot{Term: TermSpring, Year: 2026}
	assert.Equal(t, "Spring 2026", s.Label())
}

func TestSlotOf(t *testing.T) {
	p := twoSlotPlan()

	slot, ok := p.SlotOf("CS141")
	require.True(t, ok)
	assert.Equal(t, "Spring2026", slot.ID)

	_, ok = p.SlotOf("CS251")
	assert.False(t, ok)
}

func TestScheduledCoursesInSlotOrder(t *testing.T) {
	p := twoSlotPlan()
	assert.Equal(t, []string{"CS111", "MATH180", "CS141"}, p.ScheduledCourses())
}

func TestTotalCredits(t *testing.T) {
	p := twoSlotPlan()
	assert.InDelta(t, 10, p.TotalCredits(), 0.001)
}

func TestCurrentSlot(t *testing.T) {
	p := twoSlotPlan()
	current, ok := p.CurrentSlot()
	require.True(t, ok)
	assert.Equal(t, "Fall2025", current.ID)

	p.Slots[0].Status = SlotCompleted
	_, ok = p.CurrentSlot()
	assert.False(t, ok)
}

func TestReindex(t *testing.T) {
	p := twoSlotPlan()
	p.Slots = append(p.Slots[:0], p.Slots[1])
	p.Reindex()
	assert.Equal(t, 0, p.Slots[0].SequenceIndex)
}

func TestTermOrders(t *testing.T) {
	// Academic order drives plan generation; chronological order drives audit
	// sorting. They disagree on where Spring sits.
	assert.Less(t, TermFall.AcademicOrder(), TermSpring.AcademicOrder())
	assert.Less(t, TermSpring.ChronologicalOrder(), TermFall.ChronologicalOrder())
	assert.Less(t, TermFall.ChronologicalOrder(), TermWinter.ChronologicalOrder())
}
