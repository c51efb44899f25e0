package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/yasith-1/zentask-admin/cmd/commands"
	"github.com/yasith-1/zentask-admin/pkg/api"
	"github.com/yasith-1/zentask-admin/pkg/config"
	"github.com/yasith-1/zentask-admin/pkg/models"
	"github.com/yasith-1/zentask-admin/pkg/tui"
	"github.com/yasith-1/zentask-admin/pkg/workflow"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "zentask-admin",
	Short: "Terminal admin console for the Zentask ticketing backend",
	Long:  `Zentask Admin is a terminal console for managing the Zentask backend: database, email, and SMS connection settings, plus access roles and account signup. Run without arguments to launch the interactive TUI.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintf(os.Stderr, "Run 'zentask-admin init' to create a starter config file.\n")
			os.Exit(1)
		}

		client := api.NewClient(settings.API.BaseURL,
			api.WithTimeout(time.Duration(settings.API.TimeoutSeconds)*time.Second))
		controller := workflow.NewController(client, settings.UI.PageSize)

		app := tui.NewApp(controller, settings)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter configuration file",
	Long:  `Writes a zentask-admin.yaml config file to the current directory`,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(config.FileName); err == nil {
			fmt.Fprintf(os.Stderr, "Error: %s already exists in the current directory.\n", config.FileName)
			os.Exit(1)
		}

		settings := models.DefaultSettings()
		settings.API.BaseURL = "http://localhost:8080/api/setting"
		if err := config.Write(settings); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to write config file: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✓ Created %s\n", config.FileName)
		fmt.Println("✓ Edit api.base_url to point at your backend, or set " + config.EnvBaseURL + ".")
		fmt.Println("\nRun 'zentask-admin' to start the interactive TUI.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Zentask Admin",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Zentask Admin version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewSettingsCommand())
	rootCmd.AddCommand(commands.NewRolesCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
