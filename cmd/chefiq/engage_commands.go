package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/chefiq/internal/catalog"
	"github.com/hammamikhairi/chefiq/internal/domain"
)

func newFavCommand(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fav",
		Short: "Favorite recipes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <recipe-id>",
		Short: "Toggle a recipe's favorite state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nowFav, err := app.sets.ToggleFavorite(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if nowFav {
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s to favorites.\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites.\n", args[0])
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List favorited recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ids, err := app.sets.Favorites(ctx)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(ids))
			for _, id := range ids {
				// Ids that no longer resolve are dropped silently.
				r, err := app.resolveRecipe(ctx, id)
				if err != nil {
					continue
				}
				rows = append(rows, []string{r.ID, r.Title, r.Preset})
			}
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), secondaryStyle.Render("No favorites yet."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Title", "Preset"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	})

	return cmd
}

func newHistoryCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List recently cooked recipes, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ids, err := app.sets.History(ctx)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(ids))
			for _, id := range ids {
				r, err := app.resolveRecipe(ctx, id)
				if err != nil {
					continue
				}
				rows = append(rows, []string{r.ID, r.Title, r.Preset})
			}
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), secondaryStyle.Render("Nothing cooked yet."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Title", "Preset"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}

func newCreatorsCommand(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "creators",
		Short: "Browse and follow home chefs",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List followed creators, with the default roster as a fallback",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.sets.FavoriteCreators(cmd.Context())
			if err != nil {
				return err
			}
			header := "Followed creators"
			if len(list) == 0 {
				list = catalog.SeedCreators()
				header = "Suggested creators"
			}
			fmt.Fprintln(cmd.OutOrStdout(), headerStyle.Render(header))
			for _, h := range list {
				fmt.Fprintln(cmd.OutOrStdout(), primaryStyle.Render("  "+h))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "follow <handle>",
		Short: "Toggle following a creator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nowFav, err := app.sets.ToggleCreator(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			handle := domain.DisplayHandle(args[0])
			if nowFav {
				fmt.Fprintf(cmd.OutOrStdout(), "Now following %s.\n", handle)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Unfollowed %s.\n", handle)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <handle>",
		Short: "List a creator's recipes, catalog and published alike",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			handle := domain.DisplayHandle(args[0])

			rows := [][]string{}
			for _, r := range app.catalog.RecipesByCreator(handle) {
				rows = append(rows, []string{r.ID, r.Title, "catalog"})
			}
			published, err := app.recipes.ByCreator(ctx, handle)
			if err != nil {
				return err
			}
			for _, r := range published {
				rows = append(rows, []string{r.ID, r.Title, "published"})
			}

			fmt.Fprintln(cmd.OutOrStdout(), headerStyle.Render(handle))
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), secondaryStyle.Render("No recipes yet."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Title", "Source"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "seed-samples",
		Short: "Seed the demo creator recipes (runs once)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.recipes.EnsureSampleCreatorsSeeded(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sample creator recipes are in place.")
			return nil
		},
	})

	return cmd
}
