package commands

import (
	"context"

	"github.com/rios0rios0/repomonitor/internal/domain/entities"
	"github.com/rios0rios0/repomonitor/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/repomonitor/internal/infrastructure/repositories"
)

// Readme is the interface for resolving a repository's README.
type Readme interface {
	Execute(ctx context.Context, settings *entities.Settings, name entities.RepositoryName) (entities.Readme, error)
}

// ReadmeCommand resolves the README of a listed repository from its default
// branch, falling back to a generated placeholder.
type ReadmeCommand struct {
	catalog     repositories.CatalogRepository
	gitRegistry *infraRepos.GitRegistry
}

// NewReadmeCommand creates a new ReadmeCommand.
func NewReadmeCommand(
	catalog repositories.CatalogRepository,
	gitRegistry *infraRepos.GitRegistry,
) *ReadmeCommand {
	return &ReadmeCommand{
		catalog:     catalog,
		gitRegistry: gitRegistry,
	}
}

// Execute only fails for unlisted names or an unusable configuration; a
// missing branch or README produces the placeholder instead.
func (it *ReadmeCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	name entities.RepositoryName,
) (entities.Readme, error) {
	repoDir, err := findRepository(it.catalog, settings, name)
	if err != nil {
		return entities.Readme{}, err
	}

	git, err := it.gitRegistry.Get(settings)
	if err != nil {
		return entities.Readme{}, err
	}

	return newReadmeResolver(git, settings).resolve(ctx, name, repoDir), nil
}
