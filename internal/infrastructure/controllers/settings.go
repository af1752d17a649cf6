package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/repomonitor/internal/domain/entities"
)

// loadSettings takes the configuration path from the first positional
// argument and applies the verbose flag.
func loadSettings(
	load entities.SettingsLoader,
	cmd *cobra.Command,
	args []string,
) (*entities.Settings, error) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	if len(args) == 0 {
		return nil, entities.ErrMissingArgument
	}

	settings, err := load(args[0])
	if err != nil {
		return nil, err
	}

	logger.Debugf("Using config file: %s", args[0])
	return settings, nil
}
