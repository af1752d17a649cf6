package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/repomonitor/internal/domain/entities"
	"github.com/rios0rios0/repomonitor/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/repomonitor/internal/infrastructure/repositories"
)

// Describe is the interface for the catalog overview.
type Describe interface {
	Execute(ctx context.Context, settings *entities.Settings) ([]entities.RepositorySummary, error)
}

// DescribeCommand lists every repository and resolves all READMEs
// concurrently, at most settings.Concurrency at a time.
type DescribeCommand struct {
	catalog     repositories.CatalogRepository
	gitRegistry *infraRepos.GitRegistry
}

// NewDescribeCommand creates a new DescribeCommand.
func NewDescribeCommand(
	catalog repositories.CatalogRepository,
	gitRegistry *infraRepos.GitRegistry,
) *DescribeCommand {
	return &DescribeCommand{
		catalog:     catalog,
		gitRegistry: gitRegistry,
	}
}

// Execute returns one summary per repository in listing order. Each worker
// only writes its own slot, so results cannot be mixed between repositories.
// It fails with the context error once ctx is cancelled.
func (it *DescribeCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) ([]entities.RepositorySummary, error) {
	names, err := it.catalog.ListRepositories(settings.RepositoriesPath)
	if err != nil {
		return nil, err
	}

	git, err := it.gitRegistry.Get(settings)
	if err != nil {
		return nil, err
	}

	resolver := newReadmeResolver(git, settings)
	summaries := make([]entities.RepositorySummary, len(names))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(settings.Concurrency)

	for i, name := range names {
		repoDir := it.catalog.RepositoryDir(settings.RepositoriesPath, name)
		group.Go(func() error {
			// a cancelled request skips the repositories not yet started
			if err := groupCtx.Err(); err != nil {
				return err
			}
			summaries[i] = entities.RepositorySummary{
				CloneDescriptor: entities.NewCloneDescriptor(name, settings),
				Readme:          resolver.resolve(groupCtx, name, repoDir),
			}
			return nil
		})
	}

	if waitErr := group.Wait(); waitErr != nil {
		return nil, waitErr
	}

	logger.Debugf("Described %d repositories with the %s backend", len(summaries), git.Name())
	return summaries, nil
}
