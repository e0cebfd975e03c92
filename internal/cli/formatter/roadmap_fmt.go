package formatter

import (
	"fmt"
	"strings"

	"github.com/aisharahman/gradpath/internal/catalog"
	"github.com/aisharahman/gradpath/internal/domain"
)

// FormatRoadmap renders the full semester-by-semester plan.
func FormatRoadmap(plan *domain.Plan, cat *catalog.Catalog) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s · %s", plan.Major, plan.UserID)))
	b.WriteString("\n\n")

	for _, slot := range plan.Slots {
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			SlotStatusStyle(slot.Status).Bold(true).Render(slot.Label()),
			Dim(fmt.Sprintf("%.1f cr", slot.Credits)),
			SlotStatusTag(slot.Status)))

		if len(slot.Courses) == 0 {
			b.WriteString(Dim("  (empty)"))
			b.WriteString("\n")
		}
		for _, courseID := range slot.Courses {
			code, name := courseDisplay(cat, courseID)
			b.WriteString(fmt.Sprintf("  %-10s %s\n", StyleBlue.Render(code), name))
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Total: %s\n",
		Bold(fmt.Sprintf("%.1f credits", plan.TotalCredits()))))
	return b.String()
}

func courseDisplay(cat *catalog.Catalog, courseID string) (code, name string) {
	if course, ok := cat.Get(courseID); ok {
		return course.Code, course.Name
	}
	return courseID, Dim("(unknown)")
}
