package lifecycle

import (
	"context"
	"io"
	"time"

	"vessel/internal/runtime"
)

// fakeClient provides a testable implementation of the runtime.Client
// interface. All methods record their calls and return configurable stub
// values.
type fakeClient struct {
	// Observed state returned by Status
	State runtime.State

	// Whether VolumeExists reports the named volume present
	HasVolume bool

	// Content StreamLogs writes to out
	LogOutput string

	// Stubbed errors per operation
	StatusErr       error
	PullErr         error
	CreateErr       error
	StartErr        error
	StopErr         error
	RemoveErr       error
	VolumeExistsErr error
	RemoveVolumeErr error
	LogsErr         error
	ExecErr         error

	// Call tracking
	Calls       []string
	CreateSpecs []runtime.CreateSpec
	ExecCmds    [][]string
}

func (f *fakeClient) record(op string) {
	f.Calls = append(f.Calls, op)
}

func (f *fakeClient) CallsFor(op string) int {
	count := 0
	for _, call := range f.Calls {
		if call == op {
			count++
		}
	}
	return count
}

func (f *fakeClient) Exists(ctx context.Context, name string) (bool, error) {
	f.record("exists")
	return f.State != runtime.StateAbsent, f.StatusErr
}

func (f *fakeClient) Status(ctx context.Context, name string) (runtime.State, error) {
	f.record("status")
	return f.State, f.StatusErr
}

func (f *fakeClient) PullImage(ctx context.Context, ref string) error {
	f.record("pull")
	return f.PullErr
}

func (f *fakeClient) Create(ctx context.Context, spec runtime.CreateSpec) error {
	f.record("create")
	f.CreateSpecs = append(f.CreateSpecs, spec)
	return f.CreateErr
}

func (f *fakeClient) Start(ctx context.Context, name string) error {
	f.record("start")
	return f.StartErr
}

func (f *fakeClient) Stop(ctx context.Context, name string, timeout time.Duration) error {
	f.record("stop")
	return f.StopErr
}

func (f *fakeClient) Remove(ctx context.Context, name string) error {
	f.record("remove")
	return f.RemoveErr
}

func (f *fakeClient) StreamLogs(ctx context.Context, name string, out io.Writer, follow bool) error {
	f.record("logs")
	if f.LogOutput != "" {
		io.WriteString(out, f.LogOutput)
	}
	return f.LogsErr
}

func (f *fakeClient) ExecInteractive(ctx context.Context, name string, cmd []string) error {
	f.record("exec")
	f.ExecCmds = append(f.ExecCmds, cmd)
	return f.ExecErr
}

func (f *fakeClient) VolumeExists(ctx context.Context, name string) (bool, error) {
	f.record("volume-exists")
	return f.HasVolume, f.VolumeExistsErr
}

func (f *fakeClient) RemoveVolume(ctx context.Context, name string) error {
	f.record("volume-rm")
	return f.RemoveVolumeErr
}

// Verify fakeClient implements the interface
var _ runtime.Client = (*fakeClient)(nil)
