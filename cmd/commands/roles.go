package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yasith-1/zentask-admin/internal/cli"
	"github.com/yasith-1/zentask-admin/pkg/models"
)

var rolesFormat string

// NewRolesCommand lists the built-in access roles.
func NewRolesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "List access roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateOutputFormat(rolesFormat); err != nil {
				return err
			}

			roles := models.DefaultRoles()
			if cli.OutputFormat(rolesFormat) != cli.FormatText {
				return cli.OutputResults(os.Stdout, rolesFormat, roles)
			}

			table := cli.NewTableFormatter(os.Stdout)
			table.Header("NAME", "USERS", "CREATED", "PERMISSIONS")
			for _, role := range roles {
				table.Row(role.Name, strconv.Itoa(role.Users), role.CreatedOn, strings.Join(role.Permissions, ", "))
			}
			table.Flush()
			fmt.Printf("\n%d roles\n", len(roles))
			return nil
		},
	}

	cmd.Flags().StringVarP(&rolesFormat, "format", "f", "text", "Output format (text, json, yaml)")
	return cmd
}
