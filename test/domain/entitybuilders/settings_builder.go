//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/repomonitor/internal/domain/entities"
)

const (
	defaultHost        = "git.example.com"
	defaultPort        = 23231
	defaultRoot        = "/srv/repos"
	defaultServiceName = "Soft Serve Monitor"
	defaultServicePort = 8080
	defaultTimeout     = 5 * time.Second
	defaultConcurrency = 4
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	settings entities.Settings
}

// NewSettingsBuilder creates a new settings builder with sensible defaults.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		settings:    defaultSettings(),
	}
}

func defaultSettings() entities.Settings {
	return entities.Settings{
		ServerHost:       defaultHost,
		ServerPort:       defaultPort,
		RepositoriesPath: defaultRoot,
		ServiceName:      defaultServiceName,
		ServicePort:      defaultServicePort,
		GitBackend:       entities.GitBackendCLI,
		GitBinary:        "git",
		GitTimeout:       defaultTimeout,
		Concurrency:      defaultConcurrency,
	}
}

// WithServer sets the ssh host and port used in clone commands.
func (b *SettingsBuilder) WithServer(host string, port int) *SettingsBuilder {
	b.settings.ServerHost = host
	b.settings.ServerPort = port
	return b
}

// WithRepositoriesPath sets the repositories root.
func (b *SettingsBuilder) WithRepositoriesPath(root string) *SettingsBuilder {
	b.settings.RepositoriesPath = root
	return b
}

// WithServiceName sets the front end title.
func (b *SettingsBuilder) WithServiceName(name string) *SettingsBuilder {
	b.settings.ServiceName = name
	return b
}

// WithGitBackend selects the git backend.
func (b *SettingsBuilder) WithGitBackend(backend string) *SettingsBuilder {
	b.settings.GitBackend = backend
	return b
}

// WithGitBinary sets the git executable.
func (b *SettingsBuilder) WithGitBinary(binary string) *SettingsBuilder {
	b.settings.GitBinary = binary
	return b
}

// WithGitTimeout sets the per-call timeout.
func (b *SettingsBuilder) WithGitTimeout(timeout time.Duration) *SettingsBuilder {
	b.settings.GitTimeout = timeout
	return b
}

// WithConcurrency sets how many READMEs are resolved at once.
func (b *SettingsBuilder) WithConcurrency(concurrency int) *SettingsBuilder {
	b.settings.Concurrency = concurrency
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	settings := b.settings
	return &settings
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.settings = defaultSettings()
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		settings:    b.settings,
	}
}
