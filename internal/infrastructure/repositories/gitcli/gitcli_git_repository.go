package gitcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repomonitor/internal/domain/entities"
	"github.com/rios0rios0/repomonitor/internal/domain/repositories"
)

const (
	backendName  = "cli"
	branchPrefix = "refs/heads/"

	// waitDelay bounds how long output pipes are drained after the process is killed.
	waitDelay = time.Second
)

// CLIGitRepository implements repositories.GitRepository by spawning the git
// binary. Every method runs exactly one process.
type CLIGitRepository struct {
	binary string
}

// NewCLIGitRepository creates a backend running settings.GitBinary.
func NewCLIGitRepository(settings *entities.Settings) repositories.GitRepository {
	return &CLIGitRepository{binary: settings.GitBinary}
}

func (it *CLIGitRepository) Name() string { return backendName }

// CurrentBranch runs `git rev-parse --symbolic-full-name HEAD`. An unborn
// HEAD makes git exit non-zero and a detached HEAD prints "HEAD"; both are
// absent. The full name stays unambiguous when a tag shares the branch name.
func (it *CLIGitRepository) CurrentBranch(ctx context.Context, repoDir string) entities.Branch {
	output, err := it.run(ctx, repoDir, "rev-parse", "--symbolic-full-name", "HEAD")
	if err != nil {
		logger.WithField("repository", repoDir).Debugf("HEAD is not on a branch: %v", err)
		return entities.AbsentBranch
	}

	fullName := strings.TrimSpace(string(output))
	if !strings.HasPrefix(fullName, branchPrefix) {
		logger.WithField("repository", repoDir).Debugf("HEAD is detached at %q", fullName)
		return entities.AbsentBranch
	}
	return entities.NewBranch(strings.TrimPrefix(fullName, branchPrefix))
}

// FileAtBranch runs `git cat-file blob refs/heads/<branch>:<path>`, reading
// the blob straight from the object store. The fully qualified ref keeps a tag
// sharing the branch name from shadowing it.
func (it *CLIGitRepository) FileAtBranch(
	ctx context.Context,
	repoDir, branch, filePath string,
) ([]byte, error) {
	object := fmt.Sprintf("%s%s:%s", branchPrefix, branch, filePath)

	output, err := it.run(ctx, repoDir, "cat-file", "blob", object)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", entities.ErrFileNotFound, object, err)
	}
	return output, nil
}

// run executes git against repoDir as its git directory, so a plain
// directory nested in some other work tree never resolves to that tree.
// A non-zero exit is an ordinary miss; a process that could not start or
// ran past its deadline is logged as a warning.
func (it *CLIGitRepository) run(ctx context.Context, repoDir string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"--git-dir=" + repoDir}, args...)

	cmd := exec.CommandContext(ctx, it.binary, fullArgs...)
	cmd.Dir = repoDir
	cmd.Env = append(os.Environ(), "GIT_OPTIONAL_LOCKS=0", "GIT_TERMINAL_PROMPT=0")
	cmd.WaitDelay = waitDelay

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err == nil {
		return output, nil
	}

	log := logger.WithFields(logger.Fields{"repository": repoDir, "command": args[0]})
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			log.Warnf("git did not finish in time: %v", ctxErr)
		}
		return nil, fmt.Errorf("git %s: %w", args[0], ctxErr)
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		log.Warnf("Failed to run %s: %v", it.binary, err)
		return nil, fmt.Errorf("git %s: %w", args[0], err)
	}
	return nil, fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(stderr.String()))
}
