package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aisharahman/gradpath/internal/cli/formatter"
	"github.com/aisharahman/gradpath/internal/domain"
)

// termFlag is a pflag.Value that validates term names as they are parsed.
type termFlag domain.Term

var _ pflag.Value = (*termFlag)(nil)

func (t *termFlag) String() string { return string(*t) }

func (t *termFlag) Set(v string) error {
	if v == "" {
		return fmt.Errorf("term cannot be empty")
	}
	normalized := strings.ToUpper(v[:1]) + strings.ToLower(v[1:])
	if !domain.ValidTerms[normalized] {
		return fmt.Errorf("invalid term %q (expected Fall, Spring, Summer, or Winter)", v)
	}
	*t = termFlag(normalized)
	return nil
}

func (t *termFlag) Type() string { return "term" }

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage the schedule plan",
	}

	cmd.AddCommand(
		newPlanInitCmd(app),
		newPlanShowCmd(app),
		newPlanResetCmd(app),
	)

	return cmd
}

func newPlanInitCmd(app *App) *cobra.Command {
	var year int
	term := termFlag(domain.TermFall)
	var summer bool
	var major string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Start a fresh plan, replacing any existing one",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := domain.StartSemester{
				Year:          year,
				Term:          domain.Term(term),
				IncludeSummer: summer,
			}
			state, err := app.Plans.Initialize(context.Background(), "local", major, start)
			if err != nil {
				return err
			}
			fmt.Printf("Plan initialized: %d semesters starting %s\n",
				len(state.Plan.Slots), state.Plan.Slots[0].Label())
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 2025, "Start year")
	cmd.Flags().Var(&term, "term", "Start term (Fall, Spring, Summer)")
	cmd.Flags().BoolVar(&summer, "summer", false, "Include summer semesters in the sequence")
	cmd.Flags().StringVar(&major, "major", "Computer Science", "Major name")

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the semester-by-semester roadmap",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := app.Plans.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatRoadmap(state.Plan, state.Catalog))
			return nil
		},
	}
}

func newPlanResetCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the stored plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				confirmed := false
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title("Delete the stored plan and all course placements?").
						Value(&confirmed),
				))
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Reset cancelled.")
					return nil
				}
			}
			if err := app.Plans.Reset(context.Background()); err != nil {
				return err
			}
			fmt.Println("Plan deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation")

	return cmd
}
