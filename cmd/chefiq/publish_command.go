package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPublishCommand(app *appContext) *cobra.Command {
	var showResponseFlag bool

	cmd := &cobra.Command{
		Use:   "publish <draft-id>",
		Short: "Publish a draft and credit creator points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, err := app.drafts.Get(ctx, args[0])
			if err != nil {
				return err
			}

			res, err := app.publisher.Publish(ctx, d)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Published %q as %s", res.Recipe.Title, res.Recipe.CreatorHandle)))
			fmt.Fprintln(out, primaryStyle.Render(fmt.Sprintf("Creator points: %d", res.Points)))
			if showResponseFlag {
				fmt.Fprintln(out)
				fmt.Fprintln(out, secondaryStyle.Render(res.Response))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showResponseFlag, "response", false, "Print the endpoint's response body")
	return cmd
}
