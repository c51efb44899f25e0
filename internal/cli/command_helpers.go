package cli

import (
	"time"

	"github.com/yasith-1/zentask-admin/pkg/api"
	"github.com/yasith-1/zentask-admin/pkg/config"
	"github.com/yasith-1/zentask-admin/pkg/models"
	"github.com/yasith-1/zentask-admin/pkg/workflow"
)

// CommandContext wires configuration, the API client and the workflow
// controller for non-interactive commands.
type CommandContext struct {
	Settings   *models.Settings
	Client     *api.Client
	Controller *workflow.Controller
}

// NewCommandContext loads the configuration and builds the gateway.
// Fails when the backend base URL is not configured.
func NewCommandContext() (*CommandContext, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}

	client := api.NewClient(settings.API.BaseURL,
		api.WithTimeout(time.Duration(settings.API.TimeoutSeconds)*time.Second))

	return &CommandContext{
		Settings:   settings,
		Client:     client,
		Controller: workflow.NewController(client, settings.UI.PageSize),
	}, nil
}
