//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"sync"

	"github.com/rios0rios0/repomonitor/internal/domain/entities"
	"github.com/rios0rios0/repomonitor/internal/domain/repositories"
)

// FileAtBranchCall records a single invocation of FileAtBranch.
type FileAtBranchCall struct {
	RepoDir  string
	Branch   string
	FilePath string
}

// SpyGitRepository implements repositories.GitRepository as a configurable spy.
// It is safe for concurrent use.
type SpyGitRepository struct {
	// --- identity ---
	BackendName string

	// --- CurrentBranch ---
	// Branches maps repoDir -> branch name; missing entries are absent.
	Branches map[string]string

	// --- FileAtBranch ---
	// Files maps repoDir -> "branch:path" -> content.
	Files map[string]map[string]string

	mu sync.Mutex
	// spy: calls received
	BranchCalls []string
	FileCalls   []FileAtBranchCall
	// spy: set when a call arrived without a deadline
	DeadlineMissing bool
}

var _ repositories.GitRepository = (*SpyGitRepository)(nil)

func (s *SpyGitRepository) Name() string {
	if s.BackendName == "" {
		return "spy"
	}
	return s.BackendName
}

func (s *SpyGitRepository) CurrentBranch(ctx context.Context, repoDir string) entities.Branch {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.BranchCalls = append(s.BranchCalls, repoDir)
	s.checkDeadline(ctx)
	return entities.NewBranch(s.Branches[repoDir])
}

func (s *SpyGitRepository) FileAtBranch(
	ctx context.Context,
	repoDir, branch, filePath string,
) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.FileCalls = append(s.FileCalls, FileAtBranchCall{RepoDir: repoDir, Branch: branch, FilePath: filePath})
	s.checkDeadline(ctx)

	if content, ok := s.Files[repoDir][branch+":"+filePath]; ok {
		return []byte(content), nil
	}
	return nil, fmt.Errorf("%w: %s:%s", entities.ErrFileNotFound, branch, filePath)
}

// FileCallsFor returns the paths requested for repoDir, in call order.
func (s *SpyGitRepository) FileCallsFor(repoDir string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var paths []string
	for _, call := range s.FileCalls {
		if call.RepoDir == repoDir {
			paths = append(paths, call.FilePath)
		}
	}
	return paths
}

func (s *SpyGitRepository) checkDeadline(ctx context.Context) {
	if _, ok := ctx.Deadline(); !ok {
		s.DeadlineMissing = true
	}
}

// DummyGitRepository is a no-op implementation of repositories.GitRepository.
type DummyGitRepository struct{}

var _ repositories.GitRepository = (*DummyGitRepository)(nil)

func (d *DummyGitRepository) Name() string { return "dummy" }

func (d *DummyGitRepository) CurrentBranch(_ context.Context, _ string) entities.Branch {
	return entities.AbsentBranch
}

func (d *DummyGitRepository) FileAtBranch(_ context.Context, _, _, _ string) ([]byte, error) {
	return nil, entities.ErrFileNotFound
}
