package runtime

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// CLIClient implements Client using the docker/podman CLI.
type CLIClient struct {
	run Runner

	// Progress receives image pull output. Defaults to stderr.
	Progress io.Writer
}

// NewCLIClient creates a Client for the given runtime binary.
// Use DetectRuntime() to find an available runtime first.
// A nil runner means commands execute for real.
func NewCLIClient(bin string, run Runner) *CLIClient {
	if run == nil {
		run = osRunner{bin: bin}
	}
	return &CLIClient{run: run, Progress: os.Stderr}
}

// Exists reports whether the container is known to the runtime.
func (c *CLIClient) Exists(ctx context.Context, name string) (bool, error) {
	state, err := c.Status(ctx, name)
	if err != nil {
		return false, err
	}
	return state != StateAbsent, nil
}

// Status inspects the container by name. An inspect failure means the
// runtime does not know the name, which maps to StateAbsent.
func (c *CLIClient) Status(ctx context.Context, name string) (State, error) {
	out, err := c.run.Exec(ctx, "inspect", "--format", "{{.State.Status}}", name)
	if err != nil {
		return StateAbsent, nil
	}

	switch strings.TrimSpace(out) {
	case "running":
		return StateRunning, nil
	case "created":
		return StateCreated, nil
	default:
		// exited, paused, dead, restarting
		return StateStopped, nil
	}
}

// PullImage fetches the image, forwarding progress output.
func (c *CLIClient) PullImage(ctx context.Context, ref string) error {
	out := c.Progress
	if out == nil {
		out = io.Discard
	}
	if err := c.run.ExecStream(ctx, out, "pull", ref); err != nil {
		return &CommandError{Op: "pull", Err: err}
	}
	return nil
}

// Create creates the container without starting it. Flag order is
// deterministic: fixed flags, limits, sorted environment, mounts, image.
func (c *CLIClient) Create(ctx context.Context, spec CreateSpec) error {
	args := []string{"create", "--name", spec.Name,
		"-p", spec.HostPort + ":" + spec.ContainerPort}

	if spec.Memory != "" {
		args = append(args, "--memory", spec.Memory)
	}
	if spec.CPUs != "" {
		args = append(args, "--cpus", spec.CPUs)
	}

	keys := make([]string, 0, len(spec.Env))
	for k := range spec.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "-e", k+"="+spec.Env[k])
	}

	for _, m := range spec.Mounts {
		args = append(args, "-v", m.Source+":"+m.Target)
	}

	args = append(args, spec.Image)

	if _, err := c.run.Exec(ctx, args...); err != nil {
		return &CommandError{Op: "create", Err: err}
	}
	return nil
}

// Start starts a created or stopped container.
func (c *CLIClient) Start(ctx context.Context, name string) error {
	if _, err := c.run.Exec(ctx, "start", name); err != nil {
		return &CommandError{Op: "start", Err: err}
	}
	return nil
}

// Stop stops a running container with the specified grace period.
func (c *CLIClient) Stop(ctx context.Context, name string, timeout time.Duration) error {
	timeoutSecs := int(timeout.Seconds())
	if _, err := c.run.Exec(ctx, "stop", "-t", strconv.Itoa(timeoutSecs), name); err != nil {
		return &CommandError{Op: "stop", Err: err}
	}
	return nil
}

// Remove removes a stopped container.
func (c *CLIClient) Remove(ctx context.Context, name string) error {
	if _, err := c.run.Exec(ctx, "rm", name); err != nil {
		return &CommandError{Op: "remove", Err: err}
	}
	return nil
}

// StreamLogs copies container logs to out, following until ctx is
// cancelled when follow is set.
func (c *CLIClient) StreamLogs(ctx context.Context, name string, out io.Writer, follow bool) error {
	args := []string{"logs"}
	if follow {
		args = append(args, "-f")
	}
	args = append(args, name)

	if err := c.run.ExecStream(ctx, out, args...); err != nil {
		return &CommandError{Op: "logs", Err: err}
	}
	return nil
}

// ExecInteractive allocates an interactive session in the container.
func (c *CLIClient) ExecInteractive(ctx context.Context, name string, cmd []string) error {
	args := append([]string{"exec", "-it", name}, cmd...)
	if err := c.run.ExecInteractive(ctx, args...); err != nil {
		return &CommandError{Op: "exec", Err: err}
	}
	return nil
}

// VolumeExists reports whether a named volume exists.
func (c *CLIClient) VolumeExists(ctx context.Context, name string) (bool, error) {
	if _, err := c.run.Exec(ctx, "volume", "inspect", name); err != nil {
		return false, nil
	}
	return true, nil
}

// RemoveVolume destroys a named volume and its data.
func (c *CLIClient) RemoveVolume(ctx context.Context, name string) error {
	if _, err := c.run.Exec(ctx, "volume", "rm", name); err != nil {
		return &CommandError{Op: "volume remove", Err: err}
	}
	return nil
}

// Verify CLIClient implements Client interface
var _ Client = (*CLIClient)(nil)

// String renders states for status output.
func (s State) String() string {
	return string(s)
}

// Describe returns a one-line state description with the published port
// when relevant.
func Describe(state State, hostPort string) string {
	if state == StateRunning && hostPort != "" {
		return fmt.Sprintf("%s (port %s)", state, hostPort)
	}
	return string(state)
}
