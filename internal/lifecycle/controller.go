// Package lifecycle orchestrates the command verbs over the runtime client.
//
// Every verb first queries the container's state so repeated invocations in
// the same state produce no additional side effect. Destructive data removal
// always goes through the confirmer and defaults to keeping the data.
package lifecycle

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"vessel/internal/config"
	"vessel/internal/runtime"
	"vessel/internal/volume"
)

// Confirmer answers a destructive-action prompt. Implementations must
// return false unless the user explicitly affirmed.
type Confirmer func(prompt string) bool

// DenyAll is the fallback confirmer: without a way to ask, the answer is no.
func DenyAll(string) bool { return false }

// Controller drives the managed container through its lifecycle.
type Controller struct {
	cfg     *config.Config
	runtime runtime.Client
	confirm Confirmer
	out     io.Writer
}

// New wires a controller. A nil confirmer denies all destructive prompts;
// a nil writer reports to stdout.
func New(cfg *config.Config, client runtime.Client, confirm Confirmer, out io.Writer) *Controller {
	if confirm == nil {
		confirm = DenyAll
	}
	if out == nil {
		out = os.Stdout
	}
	return &Controller{cfg: cfg, runtime: client, confirm: confirm, out: out}
}

func (c *Controller) stopTimeout() time.Duration {
	return time.Duration(c.cfg.StopTimeout) * time.Second
}

// Start brings the container to the running state. Absent containers are
// created from the configuration (volume resolved, host directory ensured,
// image pulled). Stopped containers are started. Running containers are a
// reported no-op.
func (c *Controller) Start(ctx context.Context) error {
	name := c.cfg.ContainerName

	state, err := c.runtime.Status(ctx, name)
	if err != nil {
		return err
	}

	switch state {
	case runtime.StateRunning:
		fmt.Fprintf(c.out, "container %s is already running on port %s\n", name, c.cfg.HostPort)
		return nil

	case runtime.StateCreated, runtime.StateStopped:
		if err := c.runtime.Start(ctx, name); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "container %s started on port %s\n", name, c.cfg.HostPort)
		return nil
	}

	// Absent: full creation path.
	spec, err := volume.Resolve(c.cfg)
	if err != nil {
		return err
	}
	if spec.Warning != "" {
		fmt.Fprintf(c.out, "warning: %s\n", spec.Warning)
	}
	if spec.Kind == volume.HostDir {
		if err := os.MkdirAll(spec.Path, 0o755); err != nil {
			return fmt.Errorf("create data directory %s: %w", spec.Path, err)
		}
	}

	if err := c.runtime.PullImage(ctx, c.cfg.Image); err != nil {
		return err
	}

	if err := c.runtime.Create(ctx, c.createSpec(spec)); err != nil {
		return err
	}

	if err := c.runtime.Start(ctx, name); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "container %s created and started on port %s\n", name, c.cfg.HostPort)
	return nil
}

// createSpec assembles the creation request from the validated config and
// the resolved volume spec.
func (c *Controller) createSpec(spec volume.Spec) runtime.CreateSpec {
	var mounts []runtime.Mount
	switch spec.Kind {
	case volume.Named:
		mounts = append(mounts, runtime.Mount{Source: spec.Name, Target: c.cfg.MountPath})
	case volume.HostDir:
		mounts = append(mounts, runtime.Mount{Source: spec.Path, Target: c.cfg.MountPath})
	}

	return runtime.CreateSpec{
		Name:          c.cfg.ContainerName,
		Image:         c.cfg.Image,
		HostPort:      c.cfg.HostPort,
		ContainerPort: c.cfg.ContainerPort,
		Env:           c.cfg.ContainerEnv(),
		Memory:        c.cfg.MemoryLimit,
		CPUs:          c.cfg.CPULimit,
		Mounts:        mounts,
	}
}

// Stop stops the container if it is running. Anything else is a reported
// no-op, not an error.
func (c *Controller) Stop(ctx context.Context) error {
	name := c.cfg.ContainerName

	state, err := c.runtime.Status(ctx, name)
	if err != nil {
		return err
	}

	switch state {
	case runtime.StateAbsent:
		fmt.Fprintf(c.out, "container %s does not exist; nothing to stop\n", name)
		return nil
	case runtime.StateRunning:
		if err := c.runtime.Stop(ctx, name, c.stopTimeout()); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "container %s stopped\n", name)
		return nil
	default:
		fmt.Fprintf(c.out, "container %s is not running\n", name)
		return nil
	}
}

// Restart stops the container if running, then runs the start path.
func (c *Controller) Restart(ctx context.Context) error {
	name := c.cfg.ContainerName

	state, err := c.runtime.Status(ctx, name)
	if err != nil {
		return err
	}
	if state == runtime.StateRunning {
		if err := c.runtime.Stop(ctx, name, c.stopTimeout()); err != nil {
			return err
		}
	}
	return c.Start(ctx)
}

// Report is a point-in-time view of the managed container for display.
type Report struct {
	Name     string
	State    runtime.State
	Image    string
	HostPort string
	Volume   volume.Spec
}

// Status queries the container state and returns a report. It never
// mutates anything.
func (c *Controller) Status(ctx context.Context) (Report, error) {
	state, err := c.runtime.Status(ctx, c.cfg.ContainerName)
	if err != nil {
		return Report{}, err
	}

	spec, err := volume.Resolve(c.cfg)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Name:     c.cfg.ContainerName,
		State:    state,
		Image:    c.cfg.Image,
		HostPort: c.cfg.HostPort,
		Volume:   spec,
	}, nil
}

// Logs streams container logs to out. With follow it blocks until ctx is
// cancelled. An absent container is a reported no-op.
func (c *Controller) Logs(ctx context.Context, out io.Writer, follow bool) error {
	name := c.cfg.ContainerName

	exists, err := c.runtime.Exists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		fmt.Fprintf(c.out, "container %s does not exist\n", name)
		return nil
	}

	return c.runtime.StreamLogs(ctx, name, out, follow)
}

// Exec opens an interactive session in the running container. cmd defaults
// to a shell when empty.
func (c *Controller) Exec(ctx context.Context, cmd []string) error {
	name := c.cfg.ContainerName

	state, err := c.runtime.Status(ctx, name)
	if err != nil {
		return err
	}
	if state != runtime.StateRunning {
		return fmt.Errorf("container %s is not running; run 'vessel start' first", name)
	}

	if len(cmd) == 0 {
		cmd = []string{"/bin/bash"}
	}
	return c.runtime.ExecInteractive(ctx, name, cmd)
}

// Remove removes the container and, after confirmation, its persistent
// data. The pre-removal stop is best-effort: a stop failure does not block
// removal. Declining the confirmation keeps the data and is a successful
// no-op path.
func (c *Controller) Remove(ctx context.Context, assumeYes bool) error {
	name := c.cfg.ContainerName

	// Resolve first so a broken persistence config fails before any
	// runtime mutation.
	spec, err := volume.Resolve(c.cfg)
	if err != nil {
		return err
	}

	state, err := c.runtime.Status(ctx, name)
	if err != nil {
		return err
	}

	if state == runtime.StateAbsent {
		fmt.Fprintf(c.out, "container %s does not exist; nothing to remove\n", name)
	} else {
		if state == runtime.StateRunning {
			// Best-effort stop; removal proceeds regardless.
			_ = c.runtime.Stop(ctx, name, c.stopTimeout())
		}
		if err := c.runtime.Remove(ctx, name); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "container %s removed\n", name)
	}

	switch spec.Kind {
	case volume.Named:
		exists, err := c.runtime.VolumeExists(ctx, spec.Name)
		if err != nil {
			return err
		}
		if !exists {
			return nil
		}
		if !assumeYes && !c.confirm(fmt.Sprintf("Delete volume %s and all data in it? [y/N] ", spec.Name)) {
			fmt.Fprintf(c.out, "volume removal cancelled; %s kept\n", spec.Name)
			return nil
		}
		if err := c.runtime.RemoveVolume(ctx, spec.Name); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "volume %s removed\n", spec.Name)

	case volume.HostDir:
		if _, err := os.Stat(spec.Path); os.IsNotExist(err) {
			return nil
		}
		if !assumeYes && !c.confirm(fmt.Sprintf("Delete directory %s and all data in it? [y/N] ", spec.Path)) {
			fmt.Fprintf(c.out, "data removal cancelled; %s kept\n", spec.Path)
			return nil
		}
		if err := os.RemoveAll(spec.Path); err != nil {
			return fmt.Errorf("remove data directory %s: %w", spec.Path, err)
		}
		fmt.Fprintf(c.out, "directory %s removed\n", spec.Path)
	}

	return nil
}

// Pull fetches the configured image without touching the container.
func (c *Controller) Pull(ctx context.Context) error {
	return c.runtime.PullImage(ctx, c.cfg.Image)
}
