package shell

import (
	"context"
	"os/exec"
	"strings"
)

// StubCall records one invocation made against a StubRunner
type StubCall struct {
	Dir  string
	Line string
}

// StubRunner returns canned results keyed by command line.
// Commands without a canned result fail as if the binary were not installed.
type StubRunner struct {
	Outputs map[string]string
	Errors  map[string]error
	Calls   []StubCall
}

// NewStubRunner creates an empty stub runner
func NewStubRunner() *StubRunner {
	return &StubRunner{
		Outputs: make(map[string]string),
		Errors:  make(map[string]error),
	}
}

// On registers the stdout returned for a command line
func (s *StubRunner) On(line string, stdout string) *StubRunner {
	s.Outputs[line] = stdout
	return s
}

// Fail registers an error returned for a command line
func (s *StubRunner) Fail(line string, err error) *StubRunner {
	s.Errors[line] = err
	return s
}

// Run implements Runner
func (s *StubRunner) Run(ctx context.Context, dir string, name string, args ...string) (string, error) {
	line := CommandLine(name, args...)
	s.Calls = append(s.Calls, StubCall{Dir: dir, Line: line})

	if err, ok := s.Errors[line]; ok {
		return "", &CommandError{Name: name, Args: args, Err: err}
	}
	if out, ok := s.Outputs[line]; ok {
		return strings.TrimSpace(out), nil
	}
	return "", &CommandError{Name: name, Args: args, Err: exec.ErrNotFound}
}

var _ Runner = (*StubRunner)(nil)
