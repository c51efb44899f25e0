package commands

import (
	"github.com/spf13/cobra"
)

// NewSettingsCommand groups the non-interactive settings operations.
func NewSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage saved connection settings",
		Long: `Manage the saved database, email, and SMS settings without the TUI.

Categories:
  database  - Database connection settings
  email     - SMTP configuration
  sms       - SMS provider configuration`,
	}

	cmd.AddCommand(newSettingsListCommand())
	cmd.AddCommand(newSettingsShowCommand())
	cmd.AddCommand(newSettingsAddCommand())
	cmd.AddCommand(newSettingsRemoveCommand())
	return cmd
}
