//go:build unit

package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/repomonitor/internal/domain/commands"
	"github.com/rios0rios0/repomonitor/internal/domain/entities"
	"github.com/rios0rios0/repomonitor/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/repomonitor/internal/infrastructure/repositories"
	"github.com/rios0rios0/repomonitor/internal/infrastructure/web"
	builders "github.com/rios0rios0/repomonitor/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/repomonitor/test/infrastructure/repositorydoubles"
)

func newTestServer(t *testing.T, catalog repositories.CatalogRepository, git repositories.GitRepository) *httptest.Server {
	t.Helper()

	registry := infraRepos.NewGitRegistry()
	registry.Register(entities.GitBackendCLI, func(_ *entities.Settings) repositories.GitRepository {
		return git
	})
	settings := builders.NewSettingsBuilder().WithServiceName("Home Git").BuildSettings()

	server, err := web.NewServer(
		settings,
		commands.NewDescribeCommand(catalog, registry),
		commands.NewCloneInfoCommand(catalog),
		commands.NewReadmeCommand(catalog, registry),
	)
	require.NoError(t, err)

	httpServer := httptest.NewServer(server.Handler())
	t.Cleanup(httpServer.Close)
	return httpServer
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()

	response, err := http.Get(url) //nolint:noctx // test server
	require.NoError(t, err)
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	return response.StatusCode, string(body)
}

func TestServer(t *testing.T) {
	t.Parallel()

	catalog := &doubles.StubCatalogRepository{
		Names: []entities.RepositoryName{"dotfiles", "empty", "notes"},
	}
	spy := &doubles.SpyGitRepository{
		Branches: map[string]string{
			"/srv/repos/dotfiles": "main",
			"/srv/repos/notes":    "trunk",
		},
		Files: map[string]map[string]string{
			"/srv/repos/dotfiles": {"main:README.md": "# Dotfiles\n\n| key | value |\n|-----|-------|\n| a | b |\n"},
			"/srv/repos/notes":    {"trunk:README.txt": "plain <notes> & more\n"},
		},
	}

	t.Run("should list every repository with its clone command and README", func(t *testing.T) {
		t.Parallel()

		// given
		server := newTestServer(t, catalog, spy)

		// when
		status, body := get(t, server.URL+"/")

		// then
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "<title>Home Git</title>")
		assert.Contains(t, body, "git clone ssh://git.example.com:23231/dotfiles")
		assert.Contains(t, body, "git clone ssh://git.example.com:23231/empty")
		assert.Contains(t, body, "<table>")
		assert.Contains(t, body, "<em>No README for this repository.</em>")
		assert.Contains(t, body, "<pre>plain &lt;notes&gt; &amp; more\n</pre>")
	})

	t.Run("should render a single repository page", func(t *testing.T) {
		t.Parallel()

		// given
		server := newTestServer(t, catalog, spy)

		// when
		status, body := get(t, server.URL+"/repo/dotfiles")

		// then
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "<title>dotfiles - Home Git</title>")
		assert.Contains(t, body, "git remote add origin ssh://git.example.com:23231/dotfiles")
		assert.Contains(t, body, "<strong>main</strong>")
		assert.Contains(t, body, "showing README.md")
		assert.Contains(t, body, "<h1>Dotfiles</h1>")
	})

	t.Run("should return 404 for an unlisted repository", func(t *testing.T) {
		t.Parallel()

		// given
		server := newTestServer(t, catalog, spy)

		// when
		status, body := get(t, server.URL+"/repo/secret")

		// then
		assert.Equal(t, http.StatusNotFound, status)
		assert.Contains(t, body, "Repository not found")
	})

	t.Run("should return 404 for unknown paths", func(t *testing.T) {
		t.Parallel()

		// given
		server := newTestServer(t, catalog, spy)

		// when
		status, _ := get(t, server.URL+"/admin")

		// then
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("should answer the health check", func(t *testing.T) {
		t.Parallel()

		// given
		server := newTestServer(t, catalog, spy)

		// when
		status, body := get(t, server.URL+"/healthz")

		// then
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "ok\n", body)
	})

	t.Run("should return 500 when the repositories directory is unreadable", func(t *testing.T) {
		t.Parallel()

		// given
		broken := &doubles.StubCatalogRepository{ListErr: entities.ErrPathNotFound}
		server := newTestServer(t, broken, spy)

		// when
		status, body := get(t, server.URL+"/")

		// then
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Contains(t, body, "Repositories unavailable")
	})
}
