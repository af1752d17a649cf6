package repositories

import (
	"github.com/rios0rios0/repomonitor/internal/domain/entities"
)

// CatalogRepository enumerates the repositories hosted under a root directory.
type CatalogRepository interface {
	// ListRepositories returns the names of the direct children of rootPath,
	// sorted lexicographically. It fails wrapping entities.ErrPathNotFound
	// when rootPath is missing or is not a directory.
	ListRepositories(rootPath string) ([]entities.RepositoryName, error)

	// RepositoryDir returns the on-disk location of a listed repository.
	RepositoryDir(rootPath string, name entities.RepositoryName) string
}
