package commands

import (
	"context"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repomonitor/internal/domain/entities"
	"github.com/rios0rios0/repomonitor/internal/domain/repositories"
)

// readmeResolver walks the README candidate chain of a single repository.
// It issues at most one branch lookup and len(entities.ReadmeCandidates)
// file lookups, each bounded by timeout, and never retries.
type readmeResolver struct {
	git     repositories.GitRepository
	timeout time.Duration
}

func newReadmeResolver(git repositories.GitRepository, settings *entities.Settings) readmeResolver {
	return readmeResolver{git: git, timeout: settings.GitTimeout}
}

func (r readmeResolver) resolve(
	ctx context.Context,
	name entities.RepositoryName,
	repoDir string,
) entities.Readme {
	log := logger.WithField("repository", name)

	branch := r.currentBranch(ctx, repoDir)
	if branch.IsAbsent() {
		log.Debug("No default branch, using placeholder README")
		return entities.NewPlaceholderReadme(name, branch)
	}

	for _, candidate := range entities.ReadmeCandidates {
		content, err := r.fileAtBranch(ctx, repoDir, branch.Name, candidate)
		if err != nil {
			log.WithField("branch", branch.Name).Debugf("Candidate %s not available: %v", candidate, err)
			continue
		}
		log.WithField("branch", branch.Name).Debugf("Using %s", candidate)
		return entities.NewRetrievedReadme(name, branch, candidate, content)
	}

	log.WithField("branch", branch.Name).Debug("No README candidate found, using placeholder README")
	return entities.NewPlaceholderReadme(name, branch)
}

func (r readmeResolver) currentBranch(ctx context.Context, repoDir string) entities.Branch {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.git.CurrentBranch(callCtx, repoDir)
}

func (r readmeResolver) fileAtBranch(ctx context.Context, repoDir, branch, filePath string) ([]byte, error) {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.git.FileAtBranch(callCtx, repoDir, branch, filePath)
}
