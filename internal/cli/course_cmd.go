package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/aisharahman/gradpath/internal/cli/formatter"
	"github.com/aisharahman/gradpath/internal/planner"
)

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Place, move, and inspect courses",
	}

	cmd.AddCommand(
		newCourseAddCmd(app),
		newCourseMoveCmd(app),
		newCourseRemoveCmd(app),
		newCourseCheckCmd(app),
		newCourseListCmd(app),
		newCourseBrowseCmd(app),
	)

	return cmd
}

func newCourseAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add COURSE SEMESTER",
		Short: "Add a course to a semester",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Plans.CommitPlacement(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatResult(result))
			return nil
		},
	}
}

// Moving is the same operation as adding: an accepted placement removes the
// course from wherever it currently sits. The separate verb exists so the
// validator can exempt the course's current seat from quota counting.
func newCourseMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move COURSE SEMESTER",
		Short: "Move a scheduled course to another semester",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Plans.CommitPlacement(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatResult(result))
			return nil
		},
	}
}

func newCourseRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove COURSE",
		Short: "Remove a course from the plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Plans.RemoveCourse(context.Background(), args[0])
			if errors.Is(err, planner.ErrCourseNotScheduled) {
				fmt.Printf("%s is not scheduled.\n", args[0])
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("%s removed.\n", args[0])
			return nil
		},
	}
}

func newCourseCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check COURSE SEMESTER",
		Short: "Validate a placement without changing the plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Plans.ValidatePlacement(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}
			if result.Accepted {
				fmt.Println(formatter.StyleGreen.Render("OK: placement would be accepted"))
				return nil
			}
			fmt.Println(formatter.FormatResult(result))
			return nil
		},
	}
}

func newCourseListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog courses available for placement",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := app.Plans.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatCourseList(state.Plan, state.Catalog, all))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include courses hidden by quota caps and placeholder mappings")

	return cmd
}

func newCourseBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Interactively filter and inspect catalog courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("course browse requires an interactive terminal")
			}
			state, err := app.Plans.Get(context.Background())
			if err != nil {
				return err
			}
			model := newBrowseModel(state.Plan, state.Catalog)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}
}
