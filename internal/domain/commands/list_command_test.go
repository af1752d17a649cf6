//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/repomonitor/internal/domain/commands"
	"github.com/rios0rios0/repomonitor/internal/domain/entities"
	builders "github.com/rios0rios0/repomonitor/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/repomonitor/test/infrastructure/repositorydoubles"
)

func TestListCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should build a clone command for every listed repository", func(t *testing.T) {
		t.Parallel()

		// given
		catalog := &doubles.StubCatalogRepository{
			Names: []entities.RepositoryName{"alpha", "beta"},
		}
		settings := builders.NewSettingsBuilder().WithServer("git.local", 2222).BuildSettings()
		cmd := commands.NewListCommand(catalog)

		// when
		descriptors, err := cmd.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.CloneDescriptor{
			{
				Name:         "alpha",
				CloneCommand: "git clone ssh://git.local:2222/alpha",
				PushTarget:   "ssh://git.local:2222/alpha",
			},
			{
				Name:         "beta",
				CloneCommand: "git clone ssh://git.local:2222/beta",
				PushTarget:   "ssh://git.local:2222/beta",
			},
		}, descriptors)
	})

	t.Run("should return an empty list for an empty root", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewListCommand(&doubles.StubCatalogRepository{})

		// when
		descriptors, err := cmd.Execute(context.Background(), builders.NewSettingsBuilder().BuildSettings())

		// then
		require.NoError(t, err)
		assert.Empty(t, descriptors)
	})

	t.Run("should propagate listing errors", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewListCommand(&doubles.StubCatalogRepository{
			ListErr: errors.New("permission denied"),
		})

		// when
		_, err := cmd.Execute(context.Background(), builders.NewSettingsBuilder().BuildSettings())

		// then
		require.Error(t, err)
	})
}

func TestCloneInfoCommandExecute(t *testing.T) {
	t.Parallel()

	catalog := &doubles.StubCatalogRepository{
		Names: []entities.RepositoryName{"alpha"},
	}
	settings := builders.NewSettingsBuilder().WithServer("git.local", 2222).BuildSettings()

	t.Run("should return the descriptor of a listed repository", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewCloneInfoCommand(catalog)

		// when
		descriptor, err := cmd.Execute(context.Background(), settings, "alpha")

		// then
		require.NoError(t, err)
		assert.Equal(t, "git clone ssh://git.local:2222/alpha", descriptor.CloneCommand)
	})

	t.Run("should fail with repository not found for unlisted names", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewCloneInfoCommand(catalog)

		// when
		_, err := cmd.Execute(context.Background(), settings, "gamma")

		// then
		require.ErrorIs(t, err, entities.ErrRepositoryNotFound)
	})
}
