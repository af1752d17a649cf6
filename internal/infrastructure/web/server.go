package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repomonitor/internal/domain/commands"
	"github.com/rios0rios0/repomonitor/internal/domain/entities"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

//go:embed templates/*.html
var templateFS embed.FS

// Server is the HTML front end over the catalog commands.
type Server struct {
	settings  *entities.Settings
	describe  commands.Describe
	cloneInfo commands.CloneInfo
	readme    commands.Readme
	pages     *template.Template
}

type pageModel struct {
	Title       string
	ServiceName string
}

type repositoryRow struct {
	Name         entities.RepositoryName
	CloneCommand string
	ReadmeHTML   template.HTML
}

type indexModel struct {
	pageModel
	Repositories []repositoryRow
}

type repositoryModel struct {
	pageModel
	Name         entities.RepositoryName
	CloneCommand string
	PushTarget   string
	Branch       string
	ReadmePath   string
	ReadmeHTML   template.HTML
}

type errorModel struct {
	pageModel
	Heading string
	Message string
}

// NewServer parses the page templates and binds the catalog commands.
func NewServer(
	settings *entities.Settings,
	describe commands.Describe,
	cloneInfo commands.CloneInfo,
	readme commands.Readme,
) (*Server, error) {
	pages, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Server{
		settings:  settings,
		describe:  describe,
		cloneInfo: cloneInfo,
		readme:    readme,
		pages:     pages,
	}, nil
}

// Handler returns the routed and logged HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /repo/{name}", s.handleRepository)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("/", s.handleNotFound)
	return withLog(mux)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.settings.ListenAddress(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errs := make(chan error, 1)
	go func() {
		logger.Infof("%s listening on %s", s.settings.ServiceName, server.Addr)
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
		logger.Info("Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.describe.Execute(r.Context(), s.settings)
	if err != nil {
		logger.Errorf("Failed to describe repositories: %v", err)
		s.renderError(w, http.StatusInternalServerError, "Repositories unavailable",
			"The repositories directory could not be read.")
		return
	}

	rows := make([]repositoryRow, 0, len(summaries))
	for _, summary := range summaries {
		rows = append(rows, repositoryRow{
			Name:         summary.Name,
			CloneCommand: summary.CloneCommand,
			ReadmeHTML:   RenderReadme(summary.Readme),
		})
	}

	s.render(w, http.StatusOK, "index", indexModel{
		pageModel:    s.page(s.settings.ServiceName),
		Repositories: rows,
	})
}

func (s *Server) handleRepository(w http.ResponseWriter, r *http.Request) {
	name := entities.RepositoryName(r.PathValue("name"))

	clone, err := s.cloneInfo.Execute(r.Context(), s.settings, name)
	if err != nil {
		s.renderLookupError(w, name, err)
		return
	}

	readme, err := s.readme.Execute(r.Context(), s.settings, name)
	if err != nil {
		s.renderLookupError(w, name, err)
		return
	}

	model := repositoryModel{
		pageModel:    s.page(fmt.Sprintf("%s - %s", name, s.settings.ServiceName)),
		Name:         name,
		CloneCommand: clone.CloneCommand,
		PushTarget:   clone.PushTarget,
		ReadmePath:   readme.Path,
		ReadmeHTML:   RenderReadme(readme),
	}
	if !readme.Branch.IsAbsent() {
		model.Branch = readme.Branch.Name
	}

	s.render(w, http.StatusOK, "repository", model)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.renderError(w, http.StatusNotFound, "Not found",
		fmt.Sprintf("Nothing is served at %s.", r.URL.Path))
}

func (s *Server) renderLookupError(w http.ResponseWriter, name entities.RepositoryName, err error) {
	if errors.Is(err, entities.ErrRepositoryNotFound) {
		s.renderError(w, http.StatusNotFound, "Repository not found",
			fmt.Sprintf("There is no repository named %q.", name))
		return
	}

	logger.WithField("repository", name).Errorf("Failed to look up repository: %v", err)
	s.renderError(w, http.StatusInternalServerError, "Repository unavailable",
		"The repository could not be read.")
}

func (s *Server) renderError(w http.ResponseWriter, status int, heading, message string) {
	s.render(w, status, "error", errorModel{
		pageModel: s.page(heading),
		Heading:   heading,
		Message:   message,
	})
}

// render executes into a buffer first so a template failure still yields a
// clean 500 instead of a half-written page.
func (s *Server) render(w http.ResponseWriter, status int, name string, model any) {
	var body bytes.Buffer
	if err := s.pages.ExecuteTemplate(&body, name, model); err != nil {
		logger.Errorf("Failed to render template %q: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = body.WriteTo(w)
}

func (s *Server) page(title string) pageModel {
	return pageModel{Title: title, ServiceName: s.settings.ServiceName}
}
