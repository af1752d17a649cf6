package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/repomonitor/internal/domain/entities"
	domainRepos "github.com/rios0rios0/repomonitor/internal/domain/repositories"
	fsRepo "github.com/rios0rios0/repomonitor/internal/infrastructure/repositories/filesystem"
	cliRepo "github.com/rios0rios0/repomonitor/internal/infrastructure/repositories/gitcli"
	goGitRepo "github.com/rios0rios0/repomonitor/internal/infrastructure/repositories/gogit"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register git registry with every backend factory
	if err := container.Provide(func() *GitRegistry {
		reg := NewGitRegistry()
		reg.Register(entities.GitBackendCLI, cliRepo.NewCLIGitRepository)
		reg.Register(entities.GitBackendGoGit, goGitRepo.NewGoGitRepository)
		return reg
	}); err != nil {
		return err
	}

	// Repository listing reads the local filesystem
	if err := container.Provide(func() domainRepos.CatalogRepository {
		return fsRepo.NewFilesystemCatalogRepository()
	}); err != nil {
		return err
	}

	return nil
}
