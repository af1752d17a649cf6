package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/repomonitor/internal/domain/entities"
	domainRepos "github.com/rios0rios0/repomonitor/internal/domain/repositories"
)

// GitFactory is a constructor function that creates a GitRepository for the given settings.
type GitFactory func(settings *entities.Settings) domainRepos.GitRepository

// GitRegistry manages all registered git backend implementations.
type GitRegistry struct {
	backends map[string]GitFactory
}

// NewGitRegistry creates an empty backend registry.
func NewGitRegistry() *GitRegistry {
	return &GitRegistry{
		backends: make(map[string]GitFactory),
	}
}

// Register adds a backend factory under the given name (e.g. "cli").
func (r *GitRegistry) Register(name string, factory GitFactory) {
	r.backends[name] = factory
}

// Get returns the backend selected by settings.GitBackend.
func (r *GitRegistry) Get(settings *entities.Settings) (domainRepos.GitRepository, error) {
	factory, ok := r.backends[settings.GitBackend]
	if !ok {
		return nil, fmt.Errorf("unknown git backend: %q", settings.GitBackend)
	}
	return factory(settings), nil
}

// Names returns the sorted list of registered backend names.
func (r *GitRegistry) Names() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
