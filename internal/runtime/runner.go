package runtime

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner executes container runtime commands. The three methods cover the
// three ways the tool talks to the runtime binary: captured output for
// queries and mutations, a streamed copy for log following and image pulls,
// and attached stdio for interactive sessions.
type Runner interface {
	// Exec runs the command and returns captured stdout.
	Exec(ctx context.Context, args ...string) (string, error)

	// ExecStream runs the command copying combined output to out until the
	// command exits or ctx is cancelled. Cancellation is not an error.
	ExecStream(ctx context.Context, out io.Writer, args ...string) error

	// ExecInteractive runs the command with the invoking terminal's stdio
	// attached and blocks until the session ends.
	ExecInteractive(ctx context.Context, args ...string) error
}

// osRunner executes real runtime commands via exec.CommandContext.
type osRunner struct {
	bin string
}

func (r osRunner) Exec(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s %s failed: %w\nstderr: %s",
			r.bin, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}

func (r osRunner) ExecStream(ctx context.Context, out io.Writer, args ...string) error {
	cmd := exec.CommandContext(ctx, r.bin, args...)
	cmd.Stdout = out
	cmd.Stderr = out

	if err := cmd.Run(); err != nil {
		// The command is killed when ctx is cancelled; that is the normal
		// way a log stream ends.
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("%s %s failed: %w", r.bin, strings.Join(args, " "), err)
	}

	return nil
}

func (r osRunner) ExecInteractive(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, r.bin, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("%s %s failed: %w", r.bin, strings.Join(args, " "), err)
	}

	return nil
}
