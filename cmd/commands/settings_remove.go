package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/yasith-1/zentask-admin/internal/cli"
	"github.com/yasith-1/zentask-admin/pkg/api"
	"github.com/yasith-1/zentask-admin/pkg/models"
)

var removeYes bool

func newSettingsRemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <category> <id>",
		Short: "Delete a saved setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := models.ParseCategory(args[0])
			if err != nil {
				return err
			}
			id, err := cli.ValidateRecordID(args[1])
			if err != nil {
				return err
			}

			cli.SetSkipConfirm(removeYes)
			ok, err := cli.Confirm("Delete this setting? This action cannot be undone.", false)
			if err != nil {
				return err
			}
			if !ok {
				cli.PrintInfo("Aborted")
				return nil
			}

			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			if err := ctx.Controller.Remove(context.Background(), cat, id); err != nil {
				if msg := api.ServerMessage(err); msg != "" {
					return errors.New(msg)
				}
				return err
			}

			cli.PrintSuccess("Deleted %s setting %d", cat, id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
