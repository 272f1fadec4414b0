package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"github.com/autohub/automation-hub/internal/common"
)

// Launcher runs a job's command line synchronously and reports the exit
// status and combined output. A non-nil error means the process could
// not be launched at all; a non-zero exit code comes back with a nil
// error.
type Launcher interface {
	Run(ctx context.Context, command string) (exitCode int, output string, err error)
}

// ShellLauncher executes commands via os/exec, splitting the command
// line with shell quoting rules.
type ShellLauncher struct {
	logger *slog.Logger
}

func NewShellLauncher(logger *slog.Logger) *ShellLauncher {
	if logger == nil {
		logger = slog.Default()
	}
	return &ShellLauncher{logger: logger}
}

func (l *ShellLauncher) Run(ctx context.Context, command string) (int, string, error) {
	args, err := shellquote.Split(command)
	if err != nil {
		return -1, "", fmt.Errorf("parse command %q: %w", command, err)
	}
	if len(args) == 0 {
		return -1, "", fmt.Errorf("empty command")
	}

	l.logger.Debug("launching command",
		"run_id", common.RunIDFromContext(ctx),
		"job_id", common.JobIDFromContext(ctx),
		"argv0", args[0], "args", len(args)-1)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The process ran; the exit code carries the outcome.
			return exitErr.ExitCode(), string(out), nil
		}
		return -1, string(out), err
	}
	return 0, string(out), nil
}
