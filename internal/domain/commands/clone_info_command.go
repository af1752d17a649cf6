package commands

import (
	"context"

	"github.com/rios0rios0/repomonitor/internal/domain/entities"
	"github.com/rios0rios0/repomonitor/internal/domain/repositories"
)

// CloneInfo is the interface for looking up one repository's clone command.
type CloneInfo interface {
	Execute(ctx context.Context, settings *entities.Settings, name entities.RepositoryName) (entities.CloneDescriptor, error)
}

// CloneInfoCommand returns the clone descriptor of a listed repository.
type CloneInfoCommand struct {
	catalog repositories.CatalogRepository
}

// NewCloneInfoCommand creates a new CloneInfoCommand.
func NewCloneInfoCommand(catalog repositories.CatalogRepository) *CloneInfoCommand {
	return &CloneInfoCommand{catalog: catalog}
}

// Execute fails with entities.ErrRepositoryNotFound for unlisted names.
func (it *CloneInfoCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	name entities.RepositoryName,
) (entities.CloneDescriptor, error) {
	if _, err := findRepository(it.catalog, settings, name); err != nil {
		return entities.CloneDescriptor{}, err
	}
	return entities.NewCloneDescriptor(name, settings), nil
}
