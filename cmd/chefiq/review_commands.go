package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newReviewCommand(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Rate and review recipes",
	}
	cmd.AddCommand(newReviewAddCommand(app))
	cmd.AddCommand(newReviewListCommand(app))
	return cmd
}

func newReviewAddCommand(app *appContext) *cobra.Command {
	var starsFlag int
	var textFlag string

	cmd := &cobra.Command{
		Use:   "add <recipe-id>",
		Short: "Submit a star rating with optional text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := app.reviews.Submit(cmd.Context(), args[0], starsFlag, textFlag)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), starStyle.Render(
				fmt.Sprintf("Thanks! %s now averages %.1f across %d review(s).", args[0], b.Avg, b.Count)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&starsFlag, "stars", "s", 0, "Stars, 1 to 5 (required)")
	cmd.Flags().StringVarP(&textFlag, "text", "t", "", "Review text, 150 characters max")
	cmd.MarkFlagRequired("stars")
	return cmd
}

func newReviewListCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list <recipe-id>",
		Short: "List reviews for a recipe, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			b, err := app.reviews.Bundle(ctx, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if b.Count == 0 {
				avg, _, err := app.reviews.DisplayRating(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(out, starStyle.Render(fmt.Sprintf("★ %.1f", avg)))
				fmt.Fprintln(out, secondaryStyle.Render("No reviews yet. Be the first!"))
				return nil
			}

			fmt.Fprintln(out, starStyle.Render(fmt.Sprintf("★ %.1f · %d review(s)", b.Avg, b.Count)))
			for _, r := range b.Ratings {
				line := fmt.Sprintf("%s  %s", stars(r.Stars), time.UnixMilli(r.TS).Format("2006-01-02"))
				fmt.Fprintln(out, primaryStyle.Render(line))
				if r.Text != "" {
					fmt.Fprintln(out, secondaryStyle.Render("  "+r.Text))
				}
			}
			return nil
		},
	}
}

func stars(n int) string {
	out := ""
	for i := 0; i < 5; i++ {
		if i < n {
			out += "★"
		} else {
			out += "☆"
		}
	}
	return out
}
