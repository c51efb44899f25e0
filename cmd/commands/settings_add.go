package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yasith-1/zentask-admin/internal/cli"
	"github.com/yasith-1/zentask-admin/pkg/api"
	"github.com/yasith-1/zentask-admin/pkg/models"
	"github.com/yasith-1/zentask-admin/pkg/workflow"
)

var addFields []string

func newSettingsAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <category>",
		Short: "Save a new setting",
		Long: `Save a new setting of the given category. Field values are passed as
repeated --set flags and run through the same validation as the TUI form.

Examples:
  zentask-admin settings add database \
    --set databaseName=myapp_db --set username=admin \
    --set host=localhost --set port=5432 --set password=secret1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := models.ParseCategory(args[0])
			if err != nil {
				return err
			}

			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}

			store := ctx.Controller.Store()
			for _, assignment := range addFields {
				name, value, err := cli.ParseFieldAssignment(assignment)
				if err != nil {
					return err
				}
				store.SetField(cat, name, value)
			}

			notice, err := ctx.Controller.Save(context.Background(), cat)
			if err != nil {
				if errors.Is(err, workflow.ErrValidation) {
					cli.PrintError("%s", workflow.ValidationNotice)
					for _, spec := range models.FieldsFor(cat) {
						if msg := store.Error(cat, spec.Name); msg != "" {
							cli.PrintError("  %s: %s", spec.Label, msg)
						}
					}
					return fmt.Errorf("validation failed for %s", cat)
				}
				if msg := api.ServerMessage(err); msg != "" {
					return errors.New(msg)
				}
				return err
			}

			cli.PrintSuccess("%s", notice)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&addFields, "set", nil, "Field value as field=value (repeatable)")
	return cmd
}
