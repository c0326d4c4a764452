package process

import (
	"strings"
	"time"
)

// fakeProcess is a synthetic process table entry that records signal calls.
type fakeProcess struct {
	pid  int32
	name string
	exe  string

	alive      bool
	ignoreTerm bool // survives Terminate
	unkillable bool // survives Kill

	termCalls int
	killCalls int

	nameErr error
}

func (f *fakeProcess) Pid() int32             { return f.pid }
func (f *fakeProcess) Name() (string, error)  { return f.name, f.nameErr }
func (f *fakeProcess) Exe() (string, error)   { return f.exe, nil }
func (f *fakeProcess) Running() (bool, error) { return f.alive, nil }

func (f *fakeProcess) Terminate() error {
	f.termCalls++
	if !f.ignoreTerm {
		f.alive = false
	}
	return nil
}

func (f *fakeProcess) Kill() error {
	f.killCalls++
	if !f.unkillable {
		f.alive = false
	}
	return nil
}

type fakeLister struct {
	procs []Process
	err   error
}

func (f fakeLister) Processes() ([]Process, error) { return f.procs, f.err }

// fakeStrategy matches with the Linux-style rule and makes the graceful
// phase controllable.
type fakeStrategy struct {
	quitRequested bool
	quitErr       error
	quitCalls     int
	quitFn        func() // side effect of a successful quit request

	excludeManager bool

	launchErr   error
	launchCalls int
	launchPath  string
}

func (f *fakeStrategy) Name() string { return "fake" }

func (f *fakeStrategy) Match(name, exe string) bool {
	name = strings.ToLower(name)
	exe = strings.ToLower(exe)
	return name == "antigravity" ||
		strings.Contains(exe, "/antigravity/") ||
		strings.HasSuffix(exe, "/antigravity")
}

func (f *fakeStrategy) ExcludeFromTermination(name string) bool {
	return f.excludeManager && strings.Contains(strings.ToLower(name), "manager")
}

func (f *fakeStrategy) GracefulQuit() (bool, error) {
	f.quitCalls++
	if f.quitRequested && f.quitErr == nil && f.quitFn != nil {
		f.quitFn()
	}
	return f.quitRequested, f.quitErr
}

func (f *fakeStrategy) Launch(exePath string) error {
	f.launchCalls++
	f.launchPath = exePath
	return f.launchErr
}

// fastOptions returns close options small enough for tests.
func fastOptions() Options {
	opts := DefaultOptions()
	opts.Timeout = 20 * time.Millisecond
	opts.PollInterval = time.Millisecond
	opts.GracefulSettle = 0
	opts.KillSettle = 0
	return opts
}
