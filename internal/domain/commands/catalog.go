package commands

import (
	"fmt"

	"github.com/rios0rios0/repomonitor/internal/domain/entities"
	"github.com/rios0rios0/repomonitor/internal/domain/repositories"
)

// findRepository checks that name is part of the current listing and returns
// its git directory. Requests for anything else, including names carrying
// path segments, never reach the filesystem or git.
func findRepository(
	catalog repositories.CatalogRepository,
	settings *entities.Settings,
	name entities.RepositoryName,
) (string, error) {
	names, err := catalog.ListRepositories(settings.RepositoriesPath)
	if err != nil {
		return "", err
	}

	for _, listed := range names {
		if listed == name {
			return catalog.RepositoryDir(settings.RepositoriesPath, name), nil
		}
	}
	return "", fmt.Errorf("%w: %q", entities.ErrRepositoryNotFound, name)
}
