package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newProfileCommand(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the user profile",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the display name and creator points",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name, err := app.profile.Name(ctx)
			if err != nil {
				return err
			}
			points, err := app.profile.Points(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(name))
			fmt.Fprintln(out, primaryStyle.Render(fmt.Sprintf("Creator points: %d", points)))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "name [new-name]",
		Short: "Show or set the display name",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 0 {
				name, err := app.profile.Name(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
				return nil
			}
			name := strings.Join(args, " ")
			if err := app.profile.SetName(ctx, name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Hello, %s!\n", strings.TrimSpace(name))
			return nil
		},
	})

	return cmd
}
