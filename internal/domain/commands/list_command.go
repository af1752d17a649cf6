package commands

import (
	"context"

	"github.com/rios0rios0/repomonitor/internal/domain/entities"
	"github.com/rios0rios0/repomonitor/internal/domain/repositories"
)

// List is the interface for the repository listing.
type List interface {
	Execute(ctx context.Context, settings *entities.Settings) ([]entities.CloneDescriptor, error)
}

// ListCommand lists every repository with its clone command.
type ListCommand struct {
	catalog repositories.CatalogRepository
}

// NewListCommand creates a new ListCommand.
func NewListCommand(catalog repositories.CatalogRepository) *ListCommand {
	return &ListCommand{catalog: catalog}
}

// Execute returns one descriptor per repository, in listing order.
func (it *ListCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
) ([]entities.CloneDescriptor, error) {
	names, err := it.catalog.ListRepositories(settings.RepositoriesPath)
	if err != nil {
		return nil, err
	}

	descriptors := make([]entities.CloneDescriptor, 0, len(names))
	for _, name := range names {
		descriptors = append(descriptors, entities.NewCloneDescriptor(name, settings))
	}
	return descriptors, nil
}
