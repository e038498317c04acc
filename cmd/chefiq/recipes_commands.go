package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/chefiq/internal/catalog"
	"github.com/hammamikhairi/chefiq/internal/domain"
)

func newRecipesCommand(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "Browse the recipe catalog",
	}
	cmd.AddCommand(newRecipesListCommand(app))
	cmd.AddCommand(newRecipesShowCommand(app))
	cmd.AddCommand(newRecipesPresetsCommand(app))
	cmd.AddCommand(newRecipesMineCommand(app))
	return cmd
}

func newRecipesListCommand(app *appContext) *cobra.Command {
	var presetFlag string
	var featuredFlag bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			var list []*domain.Recipe
			switch {
			case featuredFlag:
				list = app.catalog.Featured()
			case presetFlag != "":
				list = app.catalog.ByPreset(presetFlag)
				if list == nil {
					return fmt.Errorf("unknown preset %q", presetFlag)
				}
			default:
				list = app.catalog.All()
			}

			rows := make([][]string, 0, len(list))
			for _, r := range list {
				meta := catalog.EffectiveMeta(r)
				avg, count, err := app.reviews.DisplayRating(cmd.Context(), r.ID)
				if err != nil {
					return err
				}
				rating := fmt.Sprintf("%.1f", avg)
				if count > 0 {
					rating = fmt.Sprintf("%.1f (%d)", avg, count)
				}
				rows = append(rows, []string{
					r.ID, r.Title, r.Preset, meta.Difficulty,
					fmt.Sprintf("%d min", meta.Total), rating,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Title", "Preset", "Difficulty", "Total", "Rating"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&presetFlag, "preset", "p", "", "Only recipes in this preset category")
	cmd.Flags().BoolVar(&featuredFlag, "featured", false, "Only featured recipes")
	return cmd
}

func newRecipesShowCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recipe in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			r, err := app.resolveRecipe(ctx, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			meta := catalog.EffectiveMeta(r)
			avg, count, err := app.reviews.DisplayRating(ctx, r.ID)
			if err != nil {
				return err
			}
			fav, err := app.sets.IsFavorite(ctx, r.ID)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, titleStyle.Render(r.Title))
			if r.Description != "" {
				fmt.Fprintln(out, primaryStyle.Render(r.Description))
			}
			ratingLine := fmt.Sprintf("★ %.1f", avg)
			if count > 0 {
				ratingLine += fmt.Sprintf(" · %d review(s)", count)
			}
			if fav {
				ratingLine += " · favorited"
			}
			fmt.Fprintln(out, starStyle.Render(ratingLine))
			fmt.Fprintln(out, secondaryStyle.Render(fmt.Sprintf(
				"%s · %d min active · %d min total · %s · by %s",
				meta.Difficulty, meta.Active, meta.Total, meta.Yield,
				domain.DisplayHandle(catalog.CreatorFor(r.ID)))))

			fmt.Fprintln(out)
			fmt.Fprintln(out, headerStyle.Render("Ingredients"))
			for _, ing := range r.Ingredients {
				fmt.Fprintln(out, primaryStyle.Render("  • "+ing))
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, headerStyle.Render("Steps"))
			for i, step := range r.Steps {
				fmt.Fprintln(out, primaryStyle.Render(fmt.Sprintf("  %d. %s", i+1, step)))
			}

			if len(r.ApplianceSupport) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, headerStyle.Render("Appliances"))
				for _, a := range catalog.Appliances {
					if modes := r.ApplianceSupport[a.Key]; len(modes) > 0 {
						fmt.Fprintln(out, primaryStyle.Render(
							fmt.Sprintf("  %s: %s", a.Label, strings.Join(modes, ", "))))
					}
				}
			}
			return nil
		},
	}
}

func newRecipesPresetsCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List browseable preset categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0)
			for _, p := range app.catalog.Presets() {
				rows = append(rows, []string{
					p.Slug, p.Label, fmt.Sprintf("%d", len(app.catalog.ByPreset(p.Slug))),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Slug", "Label", "Recipes"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}
}

func newRecipesMineCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "List published user recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.recipes.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), secondaryStyle.Render("No published recipes yet."))
				return nil
			}
			rows := make([][]string, 0, len(list))
			for _, r := range list {
				rating := "—"
				if r.RatingsCount > 0 {
					rating = fmt.Sprintf("%.1f (%d)", r.AvgRating, r.RatingsCount)
				}
				rows = append(rows, []string{r.ID, r.Title, r.CreatorHandle, rating})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Title", "Creator", "Rating"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}
}
