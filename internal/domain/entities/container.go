package entities

import (
	"go.uber.org/dig"
)

// SettingsLoader loads configuration from a file path. Controllers receive it
// through the container because the path is only known from CLI arguments.
type SettingsLoader func(path string) (*Settings, error)

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(func() SettingsLoader {
		return NewSettings
	})
}
