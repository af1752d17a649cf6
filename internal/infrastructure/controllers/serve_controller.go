package controllers

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/repomonitor/internal/domain/commands"
	"github.com/rios0rios0/repomonitor/internal/domain/entities"
	"github.com/rios0rios0/repomonitor/internal/infrastructure/web"
)

// ServeController handles the "serve" subcommand.
type ServeController struct {
	load      entities.SettingsLoader
	describe  commands.Describe
	cloneInfo commands.CloneInfo
	readme    commands.Readme
}

// NewServeController creates a new ServeController.
func NewServeController(
	load entities.SettingsLoader,
	describe commands.Describe,
	cloneInfo commands.CloneInfo,
	readme commands.Readme,
) *ServeController {
	return &ServeController{
		load:      load,
		describe:  describe,
		cloneInfo: cloneInfo,
		readme:    readme,
	}
}

// GetBind returns the Cobra command metadata for the serve controller.
func (it *ServeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "serve <config>",
		Short: "Serve the repository catalog over HTTP",
		Long: `Start the web front end on monitor_port. The index page lists every
repository with its clone command and README; /repo/<name> shows a
single repository.`,
	}
}

// Execute blocks until SIGINT or SIGTERM.
func (it *ServeController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(it.load, cmd, args)
	if err != nil {
		return err
	}

	server, err := web.NewServer(settings, it.describe, it.cloneInfo, it.readme)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx)
}
