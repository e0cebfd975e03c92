package formatter

import (
	"fmt"
	"strings"

	"github.com/aisharahman/gradpath/internal/contract"
)

// FormatStatus renders graduation progress and elective quota usage.
func FormatStatus(resp *contract.StatusResponse) string {
	var b strings.Builder
	b.WriteString(Header("Degree Progress"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(resp.Major), Dim(resp.UserID)))
	b.WriteString(fmt.Sprintf("%s %s\n",
		ProgressBar(resp.PercentComplete, 30),
		Bold(fmt.Sprintf("%.1f / %.0f credits (%.0f%%)",
			resp.TotalCredits, resp.CreditTarget, resp.PercentComplete))))
	b.WriteString("\n")

	if resp.CurrentSemester != "" {
		b.WriteString(fmt.Sprintf("Current semester:     %s\n", resp.CurrentSemester))
	}
	if resp.ProjectedGraduation != "" {
		b.WriteString(fmt.Sprintf("Projected graduation: %s\n", resp.ProjectedGraduation))
	}
	b.WriteString(fmt.Sprintf("Semesters planned:    %d\n", resp.SemesterCount))
	b.WriteString(fmt.Sprintf("Courses scheduled:    %d\n", resp.ScheduledCourses))
	b.WriteString("\n")

	b.WriteString(Header("Elective Quotas"))
	b.WriteString("\n")
	rows := [][]string{
		{"Math electives", quotaCell(resp.Quotas.MathElectives, resp.Quotas.MaxMathElectives)},
		{"Science electives", quotaCell(resp.Quotas.ScienceElectives, resp.Quotas.MaxScienceElectives)},
		{"Technical electives", quotaCell(resp.Quotas.TechnicalElectives, resp.Quotas.MaxTechnicalElectives)},
	}
	b.WriteString(RenderTable([]string{"Category", "Used"}, rows))

	if resp.Quotas.HasRequiredStatistics {
		b.WriteString(StyleGreen.Render("Required statistics satisfied"))
	} else {
		b.WriteString(StyleYellow.Render("Required statistics (IE 342 or STAT 381) not yet scheduled"))
	}
	b.WriteString("\n")
	return b.String()
}

func quotaCell(used, max int) string {
	cell := fmt.Sprintf("%d / %d", used, max)
	if used >= max {
		return StyleYellow.Render(cell)
	}
	return cell
}
