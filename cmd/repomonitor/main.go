package main

import (
	"os"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/repomonitor/internal"
	"github.com/rios0rios0/repomonitor/internal/domain/entities"
)

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "repomonitor",
		Short: "Read-only web front end for a directory of git repositories",
		Long: `Lists the bare repositories served by a self-hosted git server, shows
the ssh clone command of each one and renders the README committed on
its default branch. Repositories are only ever read.

Usage:
  repomonitor serve config.json             Start the web front end
  repomonitor list config.json              Print repositories and clone commands
  repomonitor readme config.json <name>     Print a repository's README`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flags
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}
		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// A .env file is optional; its variables feed ${VAR} expansion in the config.
	if err := godotenv.Load(); err == nil {
		logger.Debug("Loaded environment from .env")
	}

	cobraRoot := buildRootCommand()
	addSubcommands(cobraRoot, injectAppContext())

	if err := cobraRoot.Execute(); err != nil {
		logger.Errorf("Error executing 'repomonitor': %s", err)
		os.Exit(entities.ExitCodeFor(err))
	}
}
