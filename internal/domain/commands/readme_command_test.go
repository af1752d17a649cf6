//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/repomonitor/internal/domain/commands"
	"github.com/rios0rios0/repomonitor/internal/domain/entities"
	"github.com/rios0rios0/repomonitor/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/repomonitor/internal/infrastructure/repositories"
	builders "github.com/rios0rios0/repomonitor/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/repomonitor/test/infrastructure/repositorydoubles"
)

const root = "/srv/repos"

func registryWith(git repositories.GitRepository) *infraRepos.GitRegistry {
	registry := infraRepos.NewGitRegistry()
	registry.Register(entities.GitBackendCLI, func(_ *entities.Settings) repositories.GitRepository {
		return git
	})
	return registry
}

func TestReadmeCommandExecute(t *testing.T) {
	t.Parallel()

	settings := builders.NewSettingsBuilder().WithRepositoriesPath(root).BuildSettings()
	catalog := &doubles.StubCatalogRepository{
		Names: []entities.RepositoryName{"empty", "docs", "notes", "bare-readme", "nothing"},
	}

	t.Run("should return the placeholder without fetching when the repository has no commits", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyGitRepository{}
		cmd := commands.NewReadmeCommand(catalog, registryWith(spy))

		// when
		readme, err := cmd.Execute(context.Background(), settings, "empty")

		// then
		require.NoError(t, err)
		assert.Equal(t, "# empty\n\n_No README for this repository._\n", readme.String())
		assert.Equal(t, entities.ReadmeSynthesized, readme.Source)
		assert.True(t, readme.Branch.IsAbsent())
		assert.Len(t, spy.BranchCalls, 1)
		assert.Empty(t, spy.FileCalls)
	})

	t.Run("should return README.md without trying the other candidates", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyGitRepository{
			Branches: map[string]string{root + "/docs": "main"},
			Files: map[string]map[string]string{
				root + "/docs": {
					"main:README.md":  "# Docs\n\n| a | b |\n|---|---|\n| 1 | 2 |\n",
					"main:README.txt": "should not be read",
				},
			},
		}
		cmd := commands.NewReadmeCommand(catalog, registryWith(spy))

		// when
		readme, err := cmd.Execute(context.Background(), settings, "docs")

		// then
		require.NoError(t, err)
		assert.Equal(t, "# Docs\n\n| a | b |\n|---|---|\n| 1 | 2 |\n", readme.String())
		assert.Equal(t, entities.ReadmeRetrieved, readme.Source)
		assert.Equal(t, "README.md", readme.Path)
		assert.Equal(t, "main", readme.Branch.Name)
		assert.Equal(t, []string{"README.md"}, spy.FileCallsFor(root+"/docs"))
	})

	t.Run("should fall back to README.txt after README.md is not found", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyGitRepository{
			Branches: map[string]string{root + "/notes": "trunk"},
			Files: map[string]map[string]string{
				root + "/notes": {"trunk:README.txt": "plain notes\n"},
			},
		}
		cmd := commands.NewReadmeCommand(catalog, registryWith(spy))

		// when
		readme, err := cmd.Execute(context.Background(), settings, "notes")

		// then
		require.NoError(t, err)
		assert.Equal(t, "plain notes\n", readme.String())
		assert.Equal(t, "README.txt", readme.Path)
		assert.Equal(t, []string{"README.md", "README.txt"}, spy.FileCallsFor(root+"/notes"))
	})

	t.Run("should fall back to README without extension last", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyGitRepository{
			Branches: map[string]string{root + "/bare-readme": "master"},
			Files: map[string]map[string]string{
				root + "/bare-readme": {"master:README": "old style readme"},
			},
		}
		cmd := commands.NewReadmeCommand(catalog, registryWith(spy))

		// when
		readme, err := cmd.Execute(context.Background(), settings, "bare-readme")

		// then
		require.NoError(t, err)
		assert.Equal(t, "old style readme", readme.String())
		assert.Equal(t, []string{"README.md", "README.txt", "README"}, spy.FileCallsFor(root+"/bare-readme"))
	})

	t.Run("should return the placeholder when no candidate exists on the branch", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyGitRepository{
			Branches: map[string]string{root + "/nothing": "main"},
		}
		cmd := commands.NewReadmeCommand(catalog, registryWith(spy))

		// when
		readme, err := cmd.Execute(context.Background(), settings, "nothing")

		// then
		require.NoError(t, err)
		assert.Equal(t, "# nothing\n\n_No README for this repository._\n", readme.String())
		assert.Equal(t, entities.ReadmeSynthesized, readme.Source)
		assert.Equal(t, "main", readme.Branch.Name)
		assert.Len(t, spy.FileCalls, 3)
	})

	t.Run("should bound every git call with a deadline", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyGitRepository{
			Branches: map[string]string{root + "/nothing": "main"},
		}
		cmd := commands.NewReadmeCommand(catalog, registryWith(spy))

		// when
		_, err := cmd.Execute(context.Background(), settings, "nothing")

		// then
		require.NoError(t, err)
		assert.False(t, spy.DeadlineMissing)
	})

	t.Run("should fail with repository not found for unlisted names", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyGitRepository{}
		cmd := commands.NewReadmeCommand(catalog, registryWith(spy))

		// when
		_, err := cmd.Execute(context.Background(), settings, "../etc")

		// then
		require.ErrorIs(t, err, entities.ErrRepositoryNotFound)
		assert.Empty(t, spy.BranchCalls)
	})

	t.Run("should propagate a listing failure", func(t *testing.T) {
		t.Parallel()

		// given
		failing := &doubles.StubCatalogRepository{
			ListErr: fmt.Errorf("%w: %q", entities.ErrPathNotFound, root),
		}
		cmd := commands.NewReadmeCommand(failing, registryWith(&doubles.DummyGitRepository{}))

		// when
		_, err := cmd.Execute(context.Background(), settings, "docs")

		// then
		require.ErrorIs(t, err, entities.ErrPathNotFound)
	})

	t.Run("should fail when the configured backend is not registered", func(t *testing.T) {
		t.Parallel()

		// given
		goGitSettings := builders.NewSettingsBuilder().
			WithRepositoriesPath(root).
			WithGitBackend(entities.GitBackendGoGit).
			BuildSettings()
		cmd := commands.NewReadmeCommand(catalog, registryWith(&doubles.DummyGitRepository{}))

		// when
		_, err := cmd.Execute(context.Background(), goGitSettings, "docs")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown git backend")
	})
}
