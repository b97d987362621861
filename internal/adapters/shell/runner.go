package shell

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Runner executes an external command and returns its trimmed standard output
type Runner interface {
	Run(ctx context.Context, dir string, name string, args ...string) (string, error)
}

// CommandError describes a failed external command
type CommandError struct {
	Name   string
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s: %v", CommandLine(e.Name, e.Args...), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// CommandLine joins a command and its arguments for display and stub lookup
func CommandLine(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

// ExecRunner runs commands with os/exec. Calls block until the command exits.
type ExecRunner struct {
	log *slog.Logger
}

// NewExecRunner creates a new subprocess runner
func NewExecRunner(log *slog.Logger) *ExecRunner {
	return &ExecRunner{
		log: log.With("component", "ExecRunner"),
	}
}

// Run executes the command in dir, capturing stdout and stderr separately
func (r *ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) (string, error) {
	start := time.Now()
	r.log.Debug("running command", "cmd", CommandLine(name, args...), "dir", dir)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		r.log.Debug("command failed", "cmd", name, "error", err, "duration", time.Since(start))
		return "", &CommandError{
			Name:   name,
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	r.log.Debug("command completed", "cmd", name, "duration", time.Since(start))
	return strings.TrimSpace(stdout.String()), nil
}

// Ensure the runner implements the interface
var _ Runner = (*ExecRunner)(nil)
