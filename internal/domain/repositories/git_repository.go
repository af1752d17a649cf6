package repositories

import (
	"context"

	"github.com/rios0rios0/repomonitor/internal/domain/entities"
)

// GitRepository abstracts read-only access to a single repository's refs and
// object store. Implementations either spawn the git binary or read the
// object store in-process. No method may change repository state.
type GitRepository interface {
	// Name returns the backend identifier (e.g. "cli", "go-git").
	Name() string

	// CurrentBranch returns the branch HEAD symbolically points to. It never
	// fails: an unborn or detached HEAD, a missing repository or any tool
	// failure yields entities.AbsentBranch.
	CurrentBranch(ctx context.Context, repoDir string) entities.Branch

	// FileAtBranch returns the exact committed content of filePath at the tip
	// of branch. Every failure is returned wrapping entities.ErrFileNotFound.
	FileAtBranch(ctx context.Context, repoDir, branch, filePath string) ([]byte, error)
}
