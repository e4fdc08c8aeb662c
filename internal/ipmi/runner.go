package ipmi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Runner invokes the external sensor query command.
//
// The command line is split once at construction; each Run executes it as a
// direct subprocess (no shell) bounded by the configured timeout.
type Runner struct {
	name    string
	args    []string
	timeout time.Duration
}

// NewRunner creates a Runner from a full command line.
//
// The command is split shell-style: whitespace separates arguments, single
// or double quotes group an argument containing spaces. This covers the
// usual remote invocations, e.g.:
//
//	ipmitool -I lanplus -H 10.0.0.2 -U admin -P 'pass word' sensor
//
// Parameters:
//   - command: Full command line to execute each cycle
//   - timeout: Upper bound for a single invocation
//
// Returns:
//   - *Runner: Ready to use
//   - error: If the command is empty or has unbalanced quotes
func NewRunner(command string, timeout time.Duration) (*Runner, error) {
	argv, err := splitCommand(command)
	if err != nil {
		return nil, err
	}
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}

	return &Runner{
		name:    argv[0],
		args:    argv[1:],
		timeout: timeout,
	}, nil
}

// Run executes the command once and returns its stdout.
//
// The invocation is bounded by the Runner's timeout on top of any
// cancellation carried by ctx. On a non-zero exit the returned error wraps
// ErrCommandFailed and carries the exit code and captured stderr, so the
// poll loop can log a useful diagnostic and skip the cycle.
//
// Parameters:
//   - ctx: Context for cancellation (poll loop shutdown)
//
// Returns:
//   - string: Raw stdout of the command
//   - error: If the command could not be started, timed out, or exited non-zero
func (r *Runner) Run(ctx context.Context) (string, error) {
	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, r.name, r.args...) //nolint:gosec // Command is operator-supplied configuration

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if runCtx.Err() != nil {
			return "", fmt.Errorf("%w: %s timed out after %v", ErrCommandFailed, r.name, r.timeout)
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: exit code %d: %s",
				ErrCommandFailed, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}

		return "", fmt.Errorf("%w: %w", ErrCommandFailed, err)
	}

	return stdout.String(), nil
}

// splitCommand splits a command line into argv, honouring single and double
// quotes. Escapes are not supported; quoting is enough for credential
// arguments with spaces.
func splitCommand(command string) ([]string, error) {
	var (
		argv    []string
		current strings.Builder
		quote   rune // active quote character, 0 if none
		inArg   bool
	)

	for _, r := range command {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				argv = append(argv, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("%w: unbalanced quote in %q", ErrInvalidCommand, command)
	}
	if inArg {
		argv = append(argv, current.String())
	}

	return argv, nil
}
