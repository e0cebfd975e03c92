package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newSemesterCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "semester",
		Short: "Extend or shrink the semester sequence",
	}

	cmd.AddCommand(
		newSemesterAddCmd(app),
		newSemesterRemoveCmd(app),
	)

	return cmd
}

func newSemesterAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Append the next semester to the plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := app.Plans.AppendSemester(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Added %s.\n", slot.Label())
			return nil
		},
	}
}

func newSemesterRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove SEMESTER",
		Short: "Remove a semester from the plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slotID := args[0]

			state, err := app.Plans.Get(context.Background())
			if err != nil {
				return err
			}
			slot, ok := state.Plan.SlotByID(slotID)
			if !ok {
				return fmt.Errorf("semester %s is not in the plan", slotID)
			}

			if len(slot.Courses) > 0 && !force {
				confirmed := false
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("%s has %d scheduled courses. Remove it anyway?",
							slot.Label(), len(slot.Courses))).
						Value(&confirmed),
				))
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Removal cancelled.")
					return nil
				}
			}

			if err := app.Plans.RemoveSemester(context.Background(), slotID); err != nil {
				return err
			}
			fmt.Printf("Removed %s.\n", slot.Label())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation")

	return cmd
}
