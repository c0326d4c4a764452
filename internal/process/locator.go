package process

import (
	"github.com/agtools/agswitch/internal/logging"
	"github.com/agtools/agswitch/internal/platform"
)

// Locator finds running Antigravity processes using the platform's match
// predicate. Every call scans the process table fresh; nothing is cached.
type Locator struct {
	strategy platform.Strategy
	lister   Lister
}

// NewLocator returns a locator over the given strategy. A nil lister means
// the real system process table.
func NewLocator(strategy platform.Strategy, lister Lister) *Locator {
	if lister == nil {
		lister = SystemLister{}
	}
	return &Locator{strategy: strategy, lister: lister}
}

// target pairs a live process handle with its scan-time descriptor.
type target struct {
	proc Process
	info TargetProcess
}

// findTargets scans the process table and returns every match. Processes
// whose info cannot be read (exited mid-scan, permission denied) are
// skipped, never fatal.
func (l *Locator) findTargets() ([]target, error) {
	procs, err := l.lister.Processes()
	if err != nil {
		return nil, err
	}

	var out []target
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		// Exe is often unreadable for other users' processes; the name-based
		// predicate rules still apply then.
		exe, err := p.Exe()
		if err != nil {
			exe = ""
		}

		if !l.strategy.Match(name, exe) {
			continue
		}
		out = append(out, target{
			proc: p,
			info: TargetProcess{Pid: p.Pid(), Name: name, Exe: exe},
		})
	}
	return out, nil
}

// FindAll returns descriptors for every running Antigravity process.
func (l *Locator) FindAll() ([]TargetProcess, error) {
	targets, err := l.findTargets()
	if err != nil {
		return nil, err
	}
	return infos(targets), nil
}

// IsRunning reports whether any Antigravity process is running,
// short-circuiting on the first match.
func (l *Locator) IsRunning() bool {
	procs, err := l.lister.Processes()
	if err != nil {
		logging.Warning("Process scan failed: %v", err)
		return false
	}
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		exe, err := p.Exe()
		if err != nil {
			exe = ""
		}
		if l.strategy.Match(name, exe) {
			return true
		}
	}
	return false
}

func infos(targets []target) []TargetProcess {
	out := make([]TargetProcess, 0, len(targets))
	for _, t := range targets {
		out = append(out, t.info)
	}
	return out
}
