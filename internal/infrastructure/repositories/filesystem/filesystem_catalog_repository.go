package filesystem

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/rios0rios0/repomonitor/internal/domain/entities"
	"github.com/rios0rios0/repomonitor/internal/domain/repositories"
)

const dotGit = ".git"

// FilesystemCatalogRepository implements repositories.CatalogRepository by
// scanning a directory on disk.
type FilesystemCatalogRepository struct {
	open func(root string) billy.Filesystem
}

// NewFilesystemCatalogRepository creates a catalog backed by the OS filesystem.
func NewFilesystemCatalogRepository() repositories.CatalogRepository {
	return &FilesystemCatalogRepository{
		open: func(root string) billy.Filesystem {
			return osfs.New(root)
		},
	}
}

// ListRepositories returns every direct child of rootPath in lexicographic order.
func (it *FilesystemCatalogRepository) ListRepositories(rootPath string) ([]entities.RepositoryName, error) {
	fs := it.open(rootPath)

	info, err := fs.Stat(".")
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", entities.ErrPathNotFound, rootPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", entities.ErrPathNotFound, rootPath)
	}

	entries, err := fs.ReadDir(".")
	if err != nil {
		// the directory may vanish between Stat and ReadDir
		return nil, fmt.Errorf("%w: %q: %w", entities.ErrPathNotFound, rootPath, err)
	}

	names := make([]entities.RepositoryName, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entities.RepositoryName(entry.Name()))
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	return names, nil
}

// RepositoryDir returns the git directory of a repository: the entry itself
// for bare repositories, or its ".git" sub-directory for non-bare ones.
func (it *FilesystemCatalogRepository) RepositoryDir(rootPath string, name entities.RepositoryName) string {
	dir := filepath.Join(rootPath, string(name))

	if info, err := it.open(dir).Stat(dotGit); err == nil && info.IsDir() {
		return filepath.Join(dir, dotGit)
	}
	return dir
}
