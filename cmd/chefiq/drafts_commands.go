package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/chefiq/internal/domain"
)

func newDraftsCommand(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drafts",
		Short: "Manage recipe drafts",
	}
	cmd.AddCommand(newDraftsListCommand(app))
	cmd.AddCommand(newDraftsShowCommand(app))
	cmd.AddCommand(newDraftsSaveCommand(app))
	cmd.AddCommand(newDraftsDeleteCommand(app))
	return cmd
}

func newDraftsListCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List drafts, most recently edited first",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.drafts.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), secondaryStyle.Render("No drafts yet."))
				return nil
			}
			rows := make([][]string, 0, len(list))
			for _, d := range list {
				rows = append(rows, []string{
					d.ID, d.Title, d.Preset,
					fmt.Sprintf("%d/%d", len(d.Ingredients), len(d.Steps)),
					time.UnixMilli(d.LastUpdated).Format("2006-01-02 15:04"),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Title", "Preset", "Ing/Steps", "Updated"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}
}

func newDraftsShowCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one draft as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := app.drafts.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(d, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newDraftsSaveCommand(app *appContext) *cobra.Command {
	var fileFlag string
	var idFlag, titleFlag, descFlag, presetFlag string
	var ingredientsFlag, stepsFlag, miniovenFlag, cookerFlag []string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create or update a draft",
		Long: `Create or update a draft. With --file, the draft is read as JSON
(the same shape "drafts show" prints). Otherwise the draft is built
from flags; pass --id to update an existing draft.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var d domain.Draft
			if fileFlag != "" {
				data, err := os.ReadFile(fileFlag)
				if err != nil {
					return fmt.Errorf("read draft file: %w", err)
				}
				if err := json.Unmarshal(data, &d); err != nil {
					return fmt.Errorf("parse draft file: %w", err)
				}
			} else {
				d.ID = idFlag
				d.Title = titleFlag
				d.Description = descFlag
				d.Preset = presetFlag
				for _, text := range ingredientsFlag {
					d.Ingredients = append(d.Ingredients, domain.DraftItem{Text: text})
				}
				for _, text := range stepsFlag {
					d.Steps = append(d.Steps, domain.DraftItem{Text: text})
				}
				support := map[domain.ApplianceKey][]string{}
				if len(miniovenFlag) > 0 {
					support[domain.ApplianceMiniOven] = miniovenFlag
				}
				if len(cookerFlag) > 0 {
					support[domain.ApplianceCooker] = cookerFlag
				}
				if len(support) > 0 {
					d.ApplianceSupport = support
				}
			}

			saved, err := app.drafts.Save(cmd.Context(), d)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Draft %s saved.\n", saved.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read the draft from a JSON file")
	cmd.Flags().StringVar(&idFlag, "id", "", "Draft id to update (empty creates a new draft)")
	cmd.Flags().StringVar(&titleFlag, "title", "", "Recipe title")
	cmd.Flags().StringVar(&descFlag, "description", "", "Recipe description")
	cmd.Flags().StringVar(&presetFlag, "preset", "", "Category slug, e.g. vegetarian")
	cmd.Flags().StringArrayVar(&ingredientsFlag, "ingredient", nil, "Ingredient line (repeatable)")
	cmd.Flags().StringArrayVar(&stepsFlag, "step", nil, "Step line (repeatable)")
	cmd.Flags().StringArrayVar(&miniovenFlag, "minioven", nil, "iQ Mini Oven mode (repeatable)")
	cmd.Flags().StringArrayVar(&cookerFlag, "cooker", nil, "iQ Cooker mode (repeatable)")
	return cmd
}

func newDraftsDeleteCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.drafts.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Draft %s deleted.\n", args[0])
			return nil
		},
	}
}
