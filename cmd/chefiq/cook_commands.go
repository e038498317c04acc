package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/chefiq/internal/catalog"
	"github.com/hammamikhairi/chefiq/internal/domain"
)

func newCookCommand(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cook",
		Short: "Guided step-by-step cooking session",
	}
	cmd.AddCommand(newCookStartCommand(app))
	cmd.AddCommand(newCookStepCommand(app, "next", "Advance to the next step", app.advance))
	cmd.AddCommand(newCookStepCommand(app, "back", "Return to the previous step", app.retreat))
	cmd.AddCommand(newCookStatusCommand(app))
	cmd.AddCommand(newCookFinishCommand(app))
	cmd.AddCommand(newCookExitCommand(app))
	return cmd
}

func (a *appContext) advance(cmd *cobra.Command) (domain.InProgress, error) {
	return a.tracker.Advance(cmd.Context())
}

func (a *appContext) retreat(cmd *cobra.Command) (domain.InProgress, error) {
	return a.tracker.Retreat(cmd.Context())
}

func newCookStartCommand(app *appContext) *cobra.Command {
	var stepFlag int
	var applianceFlag, modeFlag string

	cmd := &cobra.Command{
		Use:   "start <recipe-id>",
		Short: "Start a session, replacing any existing one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			// Catalog recipes resolve inside the tracker; published
			// user recipes are passed by value.
			s, err := app.tracker.Start(ctx, args[0], stepFlag, applianceFlag, modeFlag)
			if errors.Is(err, domain.ErrNotFound) {
				r, rerr := app.resolveRecipe(ctx, args[0])
				if rerr != nil {
					return rerr
				}
				s, err = app.tracker.StartRecipe(ctx, r, stepFlag, applianceFlag, modeFlag)
			}
			if err != nil {
				return err
			}
			renderSession(cmd.OutOrStdout(), app, s)
			return nil
		},
	}

	cmd.Flags().IntVar(&stepFlag, "step", 0, "Initial step index (clamped into range)")
	cmd.Flags().StringVar(&applianceFlag, "appliance", "", "Appliance label, e.g. \"iQ Mini Oven\"")
	cmd.Flags().StringVar(&modeFlag, "mode", "", "Cooking mode, e.g. \"Air Fry\"")
	return cmd
}

func newCookStepCommand(app *appContext, use, short string, move func(*cobra.Command) (domain.InProgress, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := move(cmd)
			if err != nil {
				return describeNoSession(err)
			}
			renderSession(cmd.OutOrStdout(), app, s)
			return nil
		},
	}
}

func newCookStatusCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.tracker.Current(cmd.Context())
			if err != nil {
				return describeNoSession(err)
			}
			renderSession(cmd.OutOrStdout(), app, s)
			return nil
		},
	}
}

func newCookFinishCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "finish",
		Short: "Complete the session and record it in history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.tracker.Finish(cmd.Context()); err != nil {
				return describeNoSession(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render("Enjoy your meal!"))
			return nil
		},
	}
}

func newCookExitCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "exit",
		Short: "Abandon the session without recording history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.tracker.Exit(cmd.Context()); err != nil {
				return describeNoSession(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), secondaryStyle.Render("Session discarded."))
			return nil
		},
	}
}

func describeNoSession(err error) error {
	if errors.Is(err, domain.ErrNoSession) {
		return fmt.Errorf("no active cooking session; run \"chefiq cook start <recipe-id>\"")
	}
	return err
}

func renderSession(out io.Writer, app *appContext, s domain.InProgress) {
	fmt.Fprintln(out, titleStyle.Render(s.Title))
	line := fmt.Sprintf("Step %d of %d", s.CurrentStep+1, s.TotalSteps)
	if s.Appliance != "" {
		line += " · " + s.Appliance
		if s.Mode != "" {
			line += " · " + s.Mode
		}
	}
	fmt.Fprintln(out, secondaryStyle.Render(line))

	if setting := catalog.ModeSetting(s.RecipeID, s.Appliance, s.Mode); setting != "" {
		fmt.Fprintln(out, headerStyle.Render("Suggested setting: ")+primaryStyle.Render(setting))
	}

	if r, ok := app.catalog.Resolve(s.RecipeID); ok {
		fmt.Fprintln(out)
		for i, step := range r.Steps {
			switch {
			case i < s.CurrentStep:
				fmt.Fprintln(out, doneStepStyle.Render(fmt.Sprintf("  %d. %s", i+1, step)))
			case i == s.CurrentStep:
				fmt.Fprintln(out, activeStepStyle.Render(fmt.Sprintf("▶ %d. %s", i+1, step)))
			default:
				fmt.Fprintln(out, primaryStyle.Render(fmt.Sprintf("  %d. %s", i+1, step)))
			}
		}
	}

	if tips := catalog.ModeTips(s.Appliance, s.Mode); len(tips) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, headerStyle.Render("Tips"))
		for _, tip := range tips {
			fmt.Fprintln(out, secondaryStyle.Render("  • "+tip))
		}
	}
}
