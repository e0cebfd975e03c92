package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aisharahman/gradpath/internal/cli/formatter"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show graduation progress and quota usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Status.GetStatus(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatStatus(resp))
			return nil
		},
	}
}
