package entities

import (
	"errors"
)

var (
	// ErrMissingArgument is returned when no configuration path was given.
	ErrMissingArgument = errors.New("no configuration file given as argument")
	// ErrConfigUnreadable is returned when the configuration file cannot be opened.
	ErrConfigUnreadable = errors.New("unable to open configuration file")
	// ErrConfigMalformed is returned when the configuration content cannot be decoded.
	ErrConfigMalformed = errors.New("malformed configuration file")

	// ErrPathNotFound is returned when the repositories root is missing or not a directory.
	ErrPathNotFound = errors.New("repositories path not found")
	// ErrRepositoryNotFound is returned for names absent from the current listing.
	ErrRepositoryNotFound = errors.New("repository not found")
	// ErrFileNotFound is returned when a file cannot be read at a branch tip.
	ErrFileNotFound = errors.New("file not found at branch")
)

// Process exit codes reported on startup failures.
const (
	ExitOK         = 0
	ExitArgument   = 1
	ExitFile       = 2
	ExitMalformed  = 3
	ExitMissingKey = 4
	ExitRuntime    = 5
)

// ExitCodeFor maps an error returned by a controller to a process exit code.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrMissingArgument):
		return ExitArgument
	case errors.Is(err, ErrConfigUnreadable):
		return ExitFile
	case IsMissingKeys(err):
		return ExitMissingKey
	case errors.Is(err, ErrConfigMalformed):
		return ExitMalformed
	default:
		return ExitRuntime
	}
}
