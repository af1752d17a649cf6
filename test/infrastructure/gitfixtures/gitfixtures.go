//go:build integration || unit || test

// Package gitfixtures builds throwaway repositories on disk with go-git.
package gitfixtures //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// DefaultBranch is the branch every fixture repository starts on.
const DefaultBranch = "master"

func initOptions(bare bool) *git.PlainInitOptions {
	return &git.PlainInitOptions{
		InitOptions: git.InitOptions{DefaultBranch: plumbing.NewBranchReferenceName(DefaultBranch)},
		Bare:        bare,
	}
}

// Repository is a fixture repository with a work tree.
type Repository struct {
	t    *testing.T
	Dir  string
	Repo *git.Repository
}

// Init creates an empty non-bare repository in dir.
func Init(t *testing.T, dir string) *Repository {
	t.Helper()

	repo, err := git.PlainInitWithOptions(dir, initOptions(false))
	require.NoError(t, err)
	return &Repository{t: t, Dir: dir, Repo: repo}
}

// InitBare creates an empty bare repository in dir; HEAD points at an unborn branch.
func InitBare(t *testing.T, dir string) string {
	t.Helper()

	_, err := git.PlainInitWithOptions(dir, initOptions(true))
	require.NoError(t, err)
	return dir
}

// GitDir returns the repository's ".git" directory.
func (r *Repository) GitDir() string {
	return filepath.Join(r.Dir, git.GitDirName)
}

// Commit writes files into the work tree and commits them on the current branch.
func (r *Repository) Commit(message string, files map[string]string) plumbing.Hash {
	r.t.Helper()

	worktree, err := r.Repo.Worktree()
	require.NoError(r.t, err)

	for name, content := range files {
		path := filepath.Join(r.Dir, filepath.FromSlash(name))
		require.NoError(r.t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(r.t, os.WriteFile(path, []byte(content), 0o644))
		_, addErr := worktree.Add(name)
		require.NoError(r.t, addErr)
	}

	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Fixture",
			Email: "fixture@example.com",
			When:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		},
	})
	require.NoError(r.t, err)
	return hash
}

// CreateBranch points a new branch at hash without checking it out.
func (r *Repository) CreateBranch(name string, hash plumbing.Hash) {
	r.t.Helper()

	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(name), hash)
	require.NoError(r.t, r.Repo.Storer.SetReference(ref))
}

// CreateTag adds a lightweight tag at hash.
func (r *Repository) CreateTag(name string, hash plumbing.Hash) {
	r.t.Helper()

	_, err := r.Repo.CreateTag(name, hash, nil)
	require.NoError(r.t, err)
}

// Detach points HEAD directly at hash.
func (r *Repository) Detach(hash plumbing.Hash) {
	r.t.Helper()

	require.NoError(r.t, r.Repo.Storer.SetReference(plumbing.NewHashReference(plumbing.HEAD, hash)))
}

// HeadSnapshot returns the raw HEAD file and its modification time, used to
// prove HEAD was not rewritten.
func HeadSnapshot(t *testing.T, gitDir string) (string, time.Time) {
	t.Helper()

	path := filepath.Join(gitDir, "HEAD")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	return string(content), info.ModTime()
}
