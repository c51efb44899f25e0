package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/yasith-1/zentask-admin/internal/cli"
	"github.com/yasith-1/zentask-admin/pkg/models"
)

var showFormat string

func newSettingsShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <category> <id>",
		Short: "Show one saved setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateOutputFormat(showFormat); err != nil {
				return err
			}
			cat, err := models.ParseCategory(args[0])
			if err != nil {
				return err
			}
			id, err := cli.ValidateRecordID(args[1])
			if err != nil {
				return err
			}

			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}

			if cli.OutputFormat(showFormat) == cli.FormatText {
				record, err := ctx.Client.GetOne(context.Background(), cat, id)
				if err != nil {
					return err
				}
				table := cli.NewTableFormatter(os.Stdout)
				table.Header("FIELD", "VALUE")
				for _, spec := range models.FieldsFor(cat) {
					if spec.Secret {
						continue
					}
					table.Row(spec.Label, record.Values[spec.Name])
				}
				table.Flush()
				return nil
			}

			var data any
			switch cat {
			case models.CategoryDatabase:
				data, err = ctx.Client.GetDatabaseSetting(context.Background(), id)
			case models.CategoryEmail:
				data, err = ctx.Client.GetEmailSetting(context.Background(), id)
			case models.CategorySMS:
				data, err = ctx.Client.GetSMSSetting(context.Background(), id)
			}
			if err != nil {
				return err
			}
			return cli.OutputResults(os.Stdout, showFormat, data)
		},
	}

	cmd.Flags().StringVarP(&showFormat, "format", "f", "text", "Output format (text, json, yaml)")
	return cmd
}
