package formatter

import "github.com/aisharahman/gradpath/internal/planner"

// FormatResult renders a placement validation outcome: green confirmation or
// red rejection with the validator's reason.
func FormatResult(result planner.Result) string {
	if result.Accepted {
		return StyleGreen.Render(result.Message)
	}
	return StyleRed.Render("Rejected: ") + result.Message
}
