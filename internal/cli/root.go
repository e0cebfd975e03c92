package cli

import (
	"github.com/spf13/cobra"

	"github.com/aisharahman/gradpath/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans     service.PlanService
	Audits    service.AuditService
	Status    service.StatusService
	Transfers service.TransferService

	// IsInteractive reports whether stdin is a terminal; the course
	// browser refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "gradpath" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "gradpath",
		Short: "Multi-semester course schedule planner",
	}

	root.AddCommand(
		newPlanCmd(app),
		newCourseCmd(app),
		newSemesterCmd(app),
		newAuditCmd(app),
		newTransferCmd(app),
		newStatusCmd(app),
	)

	return root
}
