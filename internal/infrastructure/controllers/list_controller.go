package controllers

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/repomonitor/internal/domain/commands"
	"github.com/rios0rios0/repomonitor/internal/domain/entities"
)

// ListController handles the "list" subcommand.
type ListController struct {
	load    entities.SettingsLoader
	command commands.List
}

// NewListController creates a new ListController.
func NewListController(load entities.SettingsLoader, command commands.List) *ListController {
	return &ListController{load: load, command: command}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list <config>",
		Short: "List repositories and their clone commands",
		Long: `List every repository found under repos_path together with the
command used to clone it over ssh.`,
	}
}

// Execute prints one tab separated line per repository.
func (it *ListController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(it.load, cmd, args)
	if err != nil {
		return err
	}

	descriptors, err := it.command.Execute(context.Background(), settings)
	if err != nil {
		return fmt.Errorf("failed to list repositories: %w", err)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0) //nolint:mnd // column padding
	for _, descriptor := range descriptors {
		fmt.Fprintf(writer, "%s\t%s\n", descriptor.Name, descriptor.CloneCommand)
	}
	return writer.Flush()
}
