// Package runtime wraps an external container runtime's command surface.
package runtime

import (
	"context"
	"fmt"
	"io"
	"time"
)

// State is the observed lifecycle state of a container.
type State string

const (
	StateAbsent  State = "absent"
	StateCreated State = "created"
	StateRunning State = "running"
	StateStopped State = "stopped"
)

// Mount binds a data source into the container. Source is either a named
// volume or an absolute host path; the runtime CLI syntax is the same.
type Mount struct {
	Source string
	Target string
}

// CreateSpec bundles everything container creation needs. It is assembled
// once by the controller and validated config flows through it, never
// reassembled per branch.
type CreateSpec struct {
	Name          string
	Image         string
	HostPort      string
	ContainerPort string
	Env           map[string]string
	Memory        string
	CPUs          string
	Mounts        []Mount
}

// Client provides container lifecycle operations against an external
// runtime. Each call blocks until the underlying command exits. The
// container is owned by the runtime; the client only observes and requests
// transitions.
type Client interface {
	// Exists reports whether a container with the given name is known to
	// the runtime, in any state.
	Exists(ctx context.Context, name string) (bool, error)

	// Status returns the container's lifecycle state. A name the runtime
	// does not know yields StateAbsent, not an error.
	Status(ctx context.Context, name string) (State, error)

	// PullImage fetches the image, writing progress to the client's
	// progress writer.
	PullImage(ctx context.Context, ref string) error

	// Create creates the container without starting it.
	Create(ctx context.Context, spec CreateSpec) error

	// Start starts a created or stopped container.
	Start(ctx context.Context, name string) error

	// Stop stops a running container, giving it timeout to exit before
	// the runtime kills it.
	Stop(ctx context.Context, name string, timeout time.Duration) error

	// Remove removes a stopped container.
	Remove(ctx context.Context, name string) error

	// StreamLogs copies container logs to out. With follow it attaches and
	// forwards until ctx is cancelled.
	StreamLogs(ctx context.Context, name string, out io.Writer, follow bool) error

	// ExecInteractive opens an interactive session in the running
	// container and blocks until the remote command exits.
	ExecInteractive(ctx context.Context, name string, cmd []string) error

	// VolumeExists reports whether a named volume exists.
	VolumeExists(ctx context.Context, name string) (bool, error)

	// RemoveVolume destroys a named volume and its data.
	RemoveVolume(ctx context.Context, name string) error
}

// CommandError reports a runtime command that exited nonzero, carrying the
// failing operation so callers can name it.
type CommandError struct {
	Op  string
	Err error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("runtime %s failed: %v", e.Op, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
