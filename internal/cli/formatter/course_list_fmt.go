package formatter

import (
	"fmt"
	"strings"

	"github.com/aisharahman/gradpath/internal/catalog"
	"github.com/aisharahman/gradpath/internal/domain"
	"github.com/aisharahman/gradpath/internal/planner"
)

// FormatCourseList renders the catalog, filtered the same way the
// interactive browser filters: courses hidden by quota caps or consumed
// placeholders are dropped unless includeHidden is set.
func FormatCourseList(plan *domain.Plan, cat *catalog.Catalog, includeHidden bool) string {
	quota := planner.NewQuotaTracker(plan, cat)

	var rows [][]string
	for _, course := range cat.All() {
		if !includeHidden && quota.ShouldHideFromBrowser(course.ID) {
			continue
		}
		scheduled := ""
		if slot, ok := plan.SlotOf(course.ID); ok {
			scheduled = slot.Label()
		}
		reqs := strings.Join(course.Prerequisites, ", ")
		rows = append(rows, []string{
			StyleBlue.Render(course.Code),
			course.Name,
			fmt.Sprintf("%.1f", course.Credits),
			string(course.Category),
			reqs,
			Dim(scheduled),
		})
	}
	if len(rows) == 0 {
		return Dim("No courses available.") + "\n"
	}
	return RenderTable([]string{"Code", "Name", "Credits", "Category", "Requires", "Scheduled"}, rows)
}
