// Package process implements the Antigravity process lifecycle: locating the
// app's processes, driving the multi-phase shutdown protocol and launching
// the app again.
package process

import (
	"fmt"

	gops "github.com/shirou/gopsutil/v3/process"
)

// TargetProcess describes one OS process identified as Antigravity. It is a
// snapshot taken at scan time; liveness is re-checked through the live
// handle, never through this descriptor.
type TargetProcess struct {
	Pid  int32
	Name string
	Exe  string
}

func (p TargetProcess) String() string {
	return fmt.Sprintf("%s(%d)", p.Name, p.Pid)
}

// Process is the minimal handle the lifecycle code needs from the OS. The
// production implementation wraps gopsutil; tests substitute fakes that
// record signal calls.
type Process interface {
	Pid() int32
	Name() (string, error)
	Exe() (string, error)
	Running() (bool, error)

	// Terminate sends the cooperative termination signal (SIGTERM or the
	// Windows equivalent).
	Terminate() error

	// Kill sends the unconditional termination signal.
	Kill() error
}

// Lister enumerates every process on the system.
type Lister interface {
	Processes() ([]Process, error)
}

// SystemLister enumerates processes through gopsutil.
type SystemLister struct{}

func (SystemLister) Processes() ([]Process, error) {
	procs, err := gops.Processes()
	if err != nil {
		return nil, err
	}
	out := make([]Process, 0, len(procs))
	for _, p := range procs {
		out = append(out, systemProcess{p})
	}
	return out, nil
}

type systemProcess struct {
	p *gops.Process
}

func (s systemProcess) Pid() int32             { return s.p.Pid }
func (s systemProcess) Name() (string, error)  { return s.p.Name() }
func (s systemProcess) Exe() (string, error)   { return s.p.Exe() }
func (s systemProcess) Running() (bool, error) { return s.p.IsRunning() }
func (s systemProcess) Terminate() error       { return s.p.Terminate() }
func (s systemProcess) Kill() error            { return s.p.Kill() }
