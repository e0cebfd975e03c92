package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aisharahman/gradpath/internal/audit"
)

// FormatAuditReport renders the outcome of an audit reconciliation.
func FormatAuditReport(report *audit.Report) string {
	var b strings.Builder
	b.WriteString(Header("Audit Reconciliation"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Earliest semester:  %s\n", report.EarliestSemester))
	b.WriteString(fmt.Sprintf("Courses imported:   %s\n", StyleGreen.Render(fmt.Sprintf("%d", report.Imported))))
	if report.Skipped > 0 {
		b.WriteString(fmt.Sprintf("Rows skipped:       %s\n", StyleYellow.Render(fmt.Sprintf("%d", report.Skipped))))
	}

	if len(report.SynthesizedCourses) > 0 {
		b.WriteString(fmt.Sprintf("Synthesized:        %s\n", strings.Join(report.SynthesizedCourses, ", ")))
	}

	if len(report.PlaceholderMappings) > 0 {
		b.WriteString("\nPlaceholder mappings:\n")
		placeholders := make([]string, 0, len(report.PlaceholderMappings))
		for placeholder := range report.PlaceholderMappings {
			placeholders = append(placeholders, placeholder)
		}
		sort.Strings(placeholders)
		for _, placeholder := range placeholders {
			b.WriteString(fmt.Sprintf("  %s -> %s\n", placeholder, report.PlaceholderMappings[placeholder]))
		}
	}

	if len(report.Warnings) > 0 {
		b.WriteString("\n")
		for _, warning := range report.Warnings {
			b.WriteString(StyleYellow.Render("warning: "))
			b.WriteString(warning)
			b.WriteString("\n")
		}
	}
	return b.String()
}
