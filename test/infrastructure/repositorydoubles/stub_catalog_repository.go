//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"path"

	"github.com/rios0rios0/repomonitor/internal/domain/entities"
	"github.com/rios0rios0/repomonitor/internal/domain/repositories"
)

// StubCatalogRepository implements repositories.CatalogRepository with a fixed listing.
type StubCatalogRepository struct {
	Names   []entities.RepositoryName
	ListErr error
}

var _ repositories.CatalogRepository = (*StubCatalogRepository)(nil)

func (s *StubCatalogRepository) ListRepositories(_ string) ([]entities.RepositoryName, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return s.Names, nil
}

// RepositoryDir joins rootPath and name, so spies can key on "<root>/<name>".
func (s *StubCatalogRepository) RepositoryDir(rootPath string, name entities.RepositoryName) string {
	return path.Join(rootPath, string(name))
}
