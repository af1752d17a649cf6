package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// GitBackendCLI shells out to the git binary for every lookup.
	GitBackendCLI = "cli"
	// GitBackendGoGit reads the object store in-process.
	GitBackendGoGit = "go-git"

	defaultGitBinary   = "git"
	defaultGitTimeout  = 5 * time.Second
	defaultConcurrency = 8
)

// RequiredKeys lists the configuration keys that must be present, in the
// order they are reported to the operator.
var RequiredKeys = []string{ //nolint:gochecknoglobals // fixed key list
	"ss_host",
	"ss_port",
	"repos_path",
	"monitor_port",
	"monitor_name",
}

// Settings is the immutable configuration of a running monitor.
type Settings struct {
	ServerHost       string `yaml:"ss_host"`
	ServerPort       int    `yaml:"ss_port"`
	RepositoriesPath string `yaml:"repos_path"`
	ServicePort      int    `yaml:"monitor_port"`
	ServiceName      string `yaml:"monitor_name"`

	GitBackend  string        `yaml:"git_backend"`
	GitBinary   string        `yaml:"git_binary"`
	GitTimeout  time.Duration `yaml:"git_timeout"`
	Concurrency int           `yaml:"concurrency"`
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF} //nolint:gochecknoglobals // byte order mark

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads and validates the configuration file at path.
// Optional fields are filled with their defaults.
func NewSettings(path string) (*Settings, error) {
	if path == "" {
		return nil, ErrMissingArgument
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrConfigUnreadable, path, err)
	}

	return ParseSettings(data)
}

// ParseSettings decodes configuration content. A document starting with '{'
// or '[' is JSON and decoded strictly; anything else is read as YAML.
func ParseSettings(data []byte) (*Settings, error) {
	var (
		settings *Settings
		err      error
	)
	if isJSONDocument(data) {
		settings, err = parseJSONSettings(data)
	} else {
		settings, err = parseYAMLSettings(data)
	}
	if err != nil {
		return nil, err
	}

	settings.ServerHost = expandEnv(settings.ServerHost)
	settings.RepositoriesPath = expandEnv(settings.RepositoriesPath)
	settings.ServiceName = expandEnv(settings.ServiceName)
	settings.applyDefaults()

	if validateErr := validate(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// jsonSettings mirrors Settings for encoding/json, which has no duration support.
type jsonSettings struct {
	ServerHost       string `json:"ss_host"`
	ServerPort       int    `json:"ss_port"`
	RepositoriesPath string `json:"repos_path"`
	ServicePort      int    `json:"monitor_port"`
	ServiceName      string `json:"monitor_name"`

	GitBackend  string `json:"git_backend"`
	GitBinary   string `json:"git_binary"`
	GitTimeout  string `json:"git_timeout"`
	Concurrency int    `json:"concurrency"`
}

func isJSONDocument(data []byte) bool {
	trimmed := bytes.TrimLeft(bytes.TrimPrefix(data, utf8BOM), " \t\r\n")
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

func parseJSONSettings(data []byte) (*Settings, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigMalformed, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: top level must be an object", ErrConfigMalformed)
	}

	if missing := missingKeys(func(key string) bool {
		_, ok := fields[key]
		return ok
	}); len(missing) > 0 {
		return nil, &MissingKeysError{Missing: missing, Required: RequiredKeys}
	}

	var raw jsonSettings
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigMalformed, err)
	}

	settings := &Settings{
		ServerHost:       raw.ServerHost,
		ServerPort:       raw.ServerPort,
		RepositoriesPath: raw.RepositoriesPath,
		ServicePort:      raw.ServicePort,
		ServiceName:      raw.ServiceName,
		GitBackend:       raw.GitBackend,
		GitBinary:        raw.GitBinary,
		Concurrency:      raw.Concurrency,
	}
	if raw.GitTimeout != "" {
		timeout, err := time.ParseDuration(raw.GitTimeout)
		if err != nil {
			return nil, fmt.Errorf("%w: git_timeout: %w", ErrConfigMalformed, err)
		}
		settings.GitTimeout = timeout
	}
	return settings, nil
}

func parseYAMLSettings(data []byte) (*Settings, error) {
	var document yaml.Node
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigMalformed, err)
	}

	root, err := mappingRoot(&document)
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool, len(root.Content)/2) //nolint:mnd // key/value pairs
	for i := 0; i+1 < len(root.Content); i += 2 {
		present[root.Content[i].Value] = true
	}
	if missing := missingKeys(func(key string) bool { return present[key] }); len(missing) > 0 {
		return nil, &MissingKeysError{Missing: missing, Required: RequiredKeys}
	}

	var settings Settings
	if decodeErr := root.Decode(&settings); decodeErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigMalformed, decodeErr)
	}
	return &settings, nil
}

// ListenAddress returns the address the HTTP front end binds to.
func (s *Settings) ListenAddress() string {
	return fmt.Sprintf(":%d", s.ServicePort)
}

func (s *Settings) applyDefaults() {
	if s.GitBackend == "" {
		s.GitBackend = GitBackendCLI
	}
	if s.GitBinary == "" {
		s.GitBinary = defaultGitBinary
	}
	if s.GitTimeout <= 0 {
		s.GitTimeout = defaultGitTimeout
	}
	if s.Concurrency <= 0 {
		s.Concurrency = defaultConcurrency
	}
}

func mappingRoot(document *yaml.Node) (*yaml.Node, error) {
	if document.Kind != yaml.DocumentNode || len(document.Content) == 0 {
		return nil, fmt.Errorf("%w: document is empty", ErrConfigMalformed)
	}
	root := document.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be an object", ErrConfigMalformed)
	}
	return root, nil
}

// missingKeys checks every required key up front and returns all that are
// absent, rather than stopping at the first one.
func missingKeys(present func(key string) bool) []string {
	var missing []string
	for _, key := range RequiredKeys {
		if !present(key) {
			missing = append(missing, key)
		}
	}
	return missing
}

// expandEnv replaces ${ENV_VAR} references with their values. References to
// unset variables are kept as written.
func expandEnv(raw string) string {
	if !strings.Contains(raw, "${") {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set, keeping %s", varName, match)
		return match
	})
}

// validate checks value ranges once all keys are known to be present.
func validate(s *Settings) error {
	var problems []string

	if s.ServerHost == "" {
		problems = append(problems, "ss_host must not be empty")
	}
	if s.RepositoriesPath == "" {
		problems = append(problems, "repos_path must not be empty")
	}
	if s.ServiceName == "" {
		problems = append(problems, "monitor_name must not be empty")
	}
	if !validPort(s.ServerPort) {
		problems = append(problems, fmt.Sprintf("ss_port %d is out of range", s.ServerPort))
	}
	if !validPort(s.ServicePort) {
		problems = append(problems, fmt.Sprintf("monitor_port %d is out of range", s.ServicePort))
	}
	if s.GitBackend != GitBackendCLI && s.GitBackend != GitBackendGoGit {
		problems = append(problems, fmt.Sprintf(
			"git_backend %q is not supported (use %q or %q)", s.GitBackend, GitBackendCLI, GitBackendGoGit,
		))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrConfigMalformed, strings.Join(problems, "; "))
	}
	return nil
}

func validPort(port int) bool {
	return port > 0 && port <= 65535
}

// MissingKeysError reports every required key absent from the configuration.
type MissingKeysError struct {
	Missing  []string
	Required []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf(
		"configuration is missing required fields [%s]; the required fields are: %s",
		strings.Join(e.Missing, ", "), strings.Join(e.Required, ", "),
	)
}

// IsMissingKeys reports whether err is (or wraps) a MissingKeysError.
func IsMissingKeys(err error) bool {
	var target *MissingKeysError
	return errors.As(err, &target)
}
