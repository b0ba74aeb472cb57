// Package git shells out to the external git binary and implements the
// working-copy reconciler on top of it. No wire protocol is spoken here;
// every network operation is delegated to the subprocess.
package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reposync/internal/domain/entities"
	"github.com/rios0rios0/reposync/internal/domain/repositories"
)

// CommandError is a non-zero exit from the git subprocess, carrying the
// original argv and the captured output for diagnostics.
type CommandError struct {
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf(
		"git %s failed (exit %d): %s",
		strings.Join(e.Args, " "), e.ExitCode, strings.TrimSpace(e.Stderr),
	)
}

// ShellRunner implements GitRunner by invoking the configured git binary.
type ShellRunner struct {
	settings *entities.Settings
}

var _ repositories.GitRunner = (*ShellRunner)(nil)

// NewShellRunner creates a runner using the given settings.
func NewShellRunner(settings *entities.Settings) *ShellRunner {
	return &ShellRunner{settings: settings}
}

// Run executes git with the given arguments in dir and returns the trimmed
// stdout. The call blocks for the subprocess's full duration.
func (it *ShellRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	logger.Debugf("Executing: %s %s (in %s)", it.settings.GitBinary, strings.Join(args, " "), dir)

	cmd := exec.CommandContext(ctx, it.settings.GitBinary, args...)
	cmd.Dir = dir
	if len(it.settings.GitEnv) > 0 {
		cmd.Env = append(os.Environ(), it.settings.GitEnv...)
	}

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", fmt.Errorf("%w: %q", entities.ErrGitNotFound, it.settings.GitBinary)
		}

		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		return "", &CommandError{
			Args:     args,
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
			ExitCode: exitCode,
		}
	}

	out := strings.TrimSpace(stdout.String())
	if out != "" {
		logger.Debugf("Command stdout: %s", out)
	}
	return out, nil
}
