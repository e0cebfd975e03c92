package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aisharahman/gradpath/internal/cli/formatter"
	"github.com/aisharahman/gradpath/internal/domain"
)

func newTransferCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Track transfer credits and map them into the plan",
	}

	cmd.AddCommand(
		newTransferAddCmd(app),
		newTransferListCmd(app),
		newTransferMapCmd(app),
	)

	return cmd
}

func newTransferAddCmd(app *App) *cobra.Command {
	var external, equivalent string
	var credits float64
	var approved bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transfer credit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if external == "" || equivalent == "" {
				return fmt.Errorf("--external and --equivalent are required")
			}
			tc := domain.TransferCredit{
				ExternalCourse: external,
				Equivalent:     equivalent,
				Credits:        credits,
				Status:         domain.TransferPending,
			}
			if approved {
				tc.Status = domain.TransferApproved
			}
			if err := app.Transfers.Add(context.Background(), tc); err != nil {
				return err
			}
			fmt.Printf("Transfer credit recorded: %s -> %s (%s)\n", external, equivalent, tc.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&external, "external", "", "External course identifier")
	cmd.Flags().StringVar(&equivalent, "equivalent", "", "Equivalent catalog course ID")
	cmd.Flags().Float64Var(&credits, "credits", 3, "Credit hours")
	cmd.Flags().BoolVar(&approved, "approved", false, "Mark the equivalency as approved")

	return cmd
}

func newTransferListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded transfer credits",
		RunE: func(cmd *cobra.Command, args []string) error {
			credits, err := app.Transfers.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatTransferCredits(credits))
			return nil
		},
	}
}

func newTransferMapCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "map ID",
		Short: "Schedule an approved transfer equivalent into the earliest open semester",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Transfers.MapToPlan(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatResult(result))
			return nil
		},
	}
}
