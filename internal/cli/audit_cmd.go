package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aisharahman/gradpath/internal/cli/formatter"
)

func newAuditCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Reconcile the plan against a degree audit",
	}

	cmd.AddCommand(newAuditImportCmd(app))

	return cmd
}

func newAuditImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a parsed degree-audit extract and rebuild the plan from it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Audits.ImportAudit(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatAuditReport(report))
			return nil
		},
	}
}
