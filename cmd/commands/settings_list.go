package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yasith-1/zentask-admin/internal/cli"
	"github.com/yasith-1/zentask-admin/pkg/models"
)

// SettingsListResult is the output structure for the list command.
type SettingsListResult struct {
	Database []models.DatabaseSetting `json:"database,omitempty" yaml:"database,omitempty"`
	Email    []models.EmailSetting    `json:"email,omitempty" yaml:"email,omitempty"`
	SMS      []models.SMSSetting      `json:"sms,omitempty" yaml:"sms,omitempty"`
}

var listFormat string

func newSettingsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [category]",
		Short: "List saved settings",
		Long: `List the saved settings of one category, or of all three.

Examples:
  # List everything
  zentask-admin settings list

  # List only database settings as JSON
  zentask-admin settings list database --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateOutputFormat(listFormat); err != nil {
				return err
			}

			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}

			categories := models.Categories()
			if len(args) == 1 {
				cat, err := models.ParseCategory(args[0])
				if err != nil {
					return err
				}
				categories = []models.Category{cat}
			}

			result := SettingsListResult{}
			for _, cat := range categories {
				switch cat {
				case models.CategoryDatabase:
					result.Database, err = ctx.Client.ListDatabaseSettings(context.Background())
				case models.CategoryEmail:
					result.Email, err = ctx.Client.ListEmailSettings(context.Background())
				case models.CategorySMS:
					result.SMS, err = ctx.Client.ListSMSSettings(context.Background())
				}
				if err != nil {
					return err
				}
			}

			if cli.OutputFormat(listFormat) == cli.FormatText {
				printSettingsTable(result, categories)
				return nil
			}
			return cli.OutputResults(os.Stdout, listFormat, result)
		},
	}

	cmd.Flags().StringVarP(&listFormat, "format", "f", "text", "Output format (text, json, yaml)")
	return cmd
}

func printSettingsTable(result SettingsListResult, categories []models.Category) {
	table := cli.NewTableFormatter(os.Stdout)
	table.Header("CATEGORY", "ID", "SUMMARY")
	for _, cat := range categories {
		switch cat {
		case models.CategoryDatabase:
			for _, s := range result.Database {
				table.Row(string(cat), strconv.Itoa(s.ID), s.Record().Summary(cat))
			}
		case models.CategoryEmail:
			for _, s := range result.Email {
				table.Row(string(cat), strconv.Itoa(s.ID), s.Record().Summary(cat))
			}
		case models.CategorySMS:
			for _, s := range result.SMS {
				table.Row(string(cat), strconv.Itoa(s.ID), s.Record().Summary(cat))
			}
		}
	}
	table.Flush()

	total := len(result.Database) + len(result.Email) + len(result.SMS)
	if total == 0 {
		fmt.Println("No saved settings available.")
	}
}
