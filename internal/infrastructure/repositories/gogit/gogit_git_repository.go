package gogit

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repomonitor/internal/domain/entities"
	"github.com/rios0rios0/repomonitor/internal/domain/repositories"
)

const backendName = "go-git"

var errHeadNotOnBranch = errors.New("HEAD is not a symbolic reference to a branch")

// GoGitRepository implements repositories.GitRepository by reading the
// object store in-process with go-git. No process is spawned.
type GoGitRepository struct{}

// NewGoGitRepository creates the in-process backend. It needs no settings.
func NewGoGitRepository(_ *entities.Settings) repositories.GitRepository {
	return &GoGitRepository{}
}

func (it *GoGitRepository) Name() string { return backendName }

// CurrentBranch reads HEAD without resolving it. It is present only when HEAD
// symbolically targets a branch that already has a commit.
func (it *GoGitRepository) CurrentBranch(ctx context.Context, repoDir string) entities.Branch {
	name, err := withContext(ctx, func() (string, error) {
		return currentBranch(repoDir)
	})
	if err != nil {
		logFailure(repoDir, err).Debugf("HEAD is not on a branch: %v", err)
		return entities.AbsentBranch
	}
	return entities.NewBranch(name)
}

// FileAtBranch walks branch tip -> commit -> tree -> blob.
func (it *GoGitRepository) FileAtBranch(
	ctx context.Context,
	repoDir, branch, filePath string,
) ([]byte, error) {
	content, err := withContext(ctx, func() ([]byte, error) {
		return fileAtBranch(repoDir, branch, filePath)
	})
	if err != nil {
		logFailure(repoDir, err).Debugf("Cannot read %s:%s: %v", branch, filePath, err)
		return nil, fmt.Errorf("%w: %s:%s: %w", entities.ErrFileNotFound, branch, filePath, err)
	}
	return content, nil
}

// logFailure returns a logger that also warns when the read ran past its deadline.
func logFailure(repoDir string, err error) *logger.Entry {
	entry := logger.WithField("repository", repoDir)
	if errors.Is(err, context.DeadlineExceeded) {
		entry.Warnf("go-git read did not finish in time: %v", err)
	}
	return entry
}

func currentBranch(repoDir string) (string, error) {
	repo, err := git.PlainOpen(repoDir)
	if err != nil {
		return "", fmt.Errorf("failed to open repository: %w", err)
	}

	head, err := repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}
	if head.Type() != plumbing.SymbolicReference || !head.Target().IsBranch() {
		return "", errHeadNotOnBranch
	}

	// an unborn branch has no reference yet
	if _, refErr := repo.Storer.Reference(head.Target()); refErr != nil {
		return "", fmt.Errorf("branch %s has no commits: %w", head.Target().Short(), refErr)
	}

	return head.Target().Short(), nil
}

func fileAtBranch(repoDir, branch, filePath string) ([]byte, error) {
	repo, err := git.PlainOpen(repoDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	ref, err := repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		return nil, err
	}

	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, err
	}

	file, err := commit.File(filePath)
	if err != nil {
		return nil, err
	}

	reader, err := file.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return io.ReadAll(reader)
}

// withContext runs fn and gives up once ctx is done. go-git reads are not
// cancellable, so fn keeps running in the background until it returns.
func withContext[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type result struct {
		value T
		err   error
	}

	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	done := make(chan result, 1)
	go func() {
		value, err := fn()
		done <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-done:
		return res.value, res.err
	}
}
