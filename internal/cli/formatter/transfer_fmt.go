package formatter

import (
	"fmt"

	"github.com/aisharahman/gradpath/internal/domain"
)

// FormatTransferCredits renders the transfer credit ledger as a table.
func FormatTransferCredits(credits []domain.TransferCredit) string {
	if len(credits) == 0 {
		return Dim("No transfer credits recorded.") + "\n"
	}

	rows := make([][]string, 0, len(credits))
	for _, tc := range credits {
		status := string(tc.Status)
		if tc.Status == domain.TransferApproved {
			status = StyleGreen.Render(status)
		} else {
			status = StyleYellow.Render(status)
		}
		mapped := Dim("no")
		if tc.Mapped {
			mapped = StyleGreen.Render("yes")
		}
		rows = append(rows, []string{
			tc.ID,
			tc.ExternalCourse,
			tc.Equivalent,
			fmt.Sprintf("%.1f", tc.Credits),
			status,
			mapped,
		})
	}
	return RenderTable([]string{"ID", "External", "Equivalent", "Credits", "Status", "Mapped"}, rows)
}
