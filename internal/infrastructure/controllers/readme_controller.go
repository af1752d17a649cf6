package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/repomonitor/internal/domain/commands"
	"github.com/rios0rios0/repomonitor/internal/domain/entities"
)

// ReadmeController handles the "readme" subcommand.
type ReadmeController struct {
	load    entities.SettingsLoader
	command commands.Readme
}

// NewReadmeController creates a new ReadmeController.
func NewReadmeController(load entities.SettingsLoader, command commands.Readme) *ReadmeController {
	return &ReadmeController{load: load, command: command}
}

// GetBind returns the Cobra command metadata for the readme controller.
func (it *ReadmeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "readme <config> <repository>",
		Short: "Print the README of a repository",
		Long: `Print the README committed on the repository's default branch.
README.md, README.txt and README are tried in that order; a placeholder
is printed when none exists or the repository has no commits.`,
	}
}

// Execute writes the raw README content to stdout.
func (it *ReadmeController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(it.load, cmd, args)
	if err != nil {
		return err
	}
	if len(args) < 2 { //nolint:mnd // config + repository
		return fmt.Errorf("%w: repository name", entities.ErrMissingArgument)
	}

	readme, err := it.command.Execute(context.Background(), settings, entities.RepositoryName(args[1]))
	if err != nil {
		return err
	}

	logger.WithFields(logger.Fields{
		"repository": readme.Repository,
		"branch":     readme.Branch,
		"source":     readme.Source,
	}).Debug("README resolved")

	_, err = cmd.OutOrStdout().Write(readme.Content)
	return err
}
