package process

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agtools/agswitch/internal/logging"
	"github.com/agtools/agswitch/internal/platform"
)

// Options controls one Close operation.
type Options struct {
	// Timeout bounds the wait for processes to exit after the cooperative
	// signal.
	Timeout time.Duration

	// PollInterval is the liveness re-check period during the wait.
	PollInterval time.Duration

	// GracefulSettle is the pause after a platform-level quit request,
	// letting the app react before liveness is checked.
	GracefulSettle time.Duration

	// KillSettle is the pause between the forced-kill signal and the final
	// liveness check.
	KillSettle time.Duration

	// ForceKill permits escalation to the unconditional signal when the
	// timeout elapses.
	ForceKill bool
}

// DefaultOptions returns the standard close parameters.
func DefaultOptions() Options {
	return Options{
		Timeout:        10 * time.Second,
		PollInterval:   500 * time.Millisecond,
		GracefulSettle: 2 * time.Second,
		KillSettle:     time.Second,
		ForceKill:      true,
	}
}

// Outcome classifies one per-process signal attempt.
type Outcome int

const (
	// OutcomeOK means the signal was delivered.
	OutcomeOK Outcome = iota
	// OutcomeSkipped means the process was already gone.
	OutcomeSkipped
	// OutcomeFailed means delivery failed (access denied, vanished between
	// the liveness check and the signal).
	OutcomeFailed
)

// SignalResult records one signal attempt against one process.
type SignalResult struct {
	Target  TargetProcess
	Outcome Outcome
	Reason  string
}

// CloseReport is the full record of one Close operation. Success mirrors the
// boolean contract of the operation; the rest exists so callers and tests
// can see which phase did what.
type CloseReport struct {
	// Found is the termination set: matches after self/companion exclusions.
	Found []TargetProcess

	GracefulRequested bool
	Terminated        []SignalResult
	Killed            []SignalResult

	// Survivors are the processes still alive when the operation gave up.
	Survivors []TargetProcess

	Success bool
}

// Terminator drives the multi-phase shutdown protocol: platform quit
// request, cooperative signal, bounded wait, forced kill.
type Terminator struct {
	locator  *Locator
	strategy platform.Strategy

	// Self-identity, excluded from every termination set.
	selfPid int32
	selfDir string

	sleep func(time.Duration)
}

// NewTerminator returns a terminator that excludes the current process and
// anything installed under its directory.
func NewTerminator(locator *Locator, strategy platform.Strategy) *Terminator {
	t := &Terminator{
		locator:  locator,
		strategy: strategy,
		selfPid:  int32(os.Getpid()),
		sleep:    time.Sleep,
	}
	if exe, err := os.Executable(); err == nil {
		t.selfDir = strings.ToLower(filepath.Dir(exe))
	}
	return t
}

// Close shuts down every running Antigravity process. The termination set is
// fixed at scan time; later phases re-check liveness of that set but never
// re-scan for new matches. Calling Close with nothing running is a no-op
// success, and repeated calls are safe.
func (t *Terminator) Close(opts Options) *CloseReport {
	report := &CloseReport{}

	logging.Info("Trying to close Antigravity...")

	targets, err := t.locator.findTargets()
	if err != nil {
		logging.Error("Process scan failed: %v", err)
		return report
	}
	targets = t.exclude(targets)
	report.Found = infos(targets)

	if len(targets) == 0 {
		logging.Info("No Antigravity processes running")
		report.Success = true
		return report
	}
	for _, info := range report.Found {
		logging.Info("Found target process: %s - %s", info, info.Exe)
	}

	// Phase 1: application-level quit request, best effort. Failure never
	// aborts the close.
	requested, err := t.strategy.GracefulQuit()
	report.GracefulRequested = requested
	if err != nil {
		logging.Warning("Graceful quit request failed: %v", err)
	} else if requested {
		logging.Info("Quit request sent, waiting for application response...")
		t.sleep(opts.GracefulSettle)
	}

	if len(t.alive(targets)) == 0 {
		logging.Info("All Antigravity processes closed normally")
		report.Success = true
		return report
	}

	// Phase 2: cooperative termination signal to the fixed set.
	logging.Info("Sending termination signal to %d process(es)...", len(targets))
	report.Terminated = t.signalEach(targets, func(p Process) error { return p.Terminate() })

	logging.Info("Waiting up to %s for processes to exit...", opts.Timeout)
	deadline := time.Now().Add(opts.Timeout)
	survivors := t.alive(targets)
	for len(survivors) > 0 && time.Now().Before(deadline) {
		t.sleep(opts.PollInterval)
		survivors = t.alive(targets)
	}

	if len(survivors) == 0 {
		logging.Info("All Antigravity processes closed normally")
		report.Success = true
		return report
	}

	logging.Warning("%d process(es) did not exit: %s", len(survivors), nameList(infos(survivors)))

	if !opts.ForceKill {
		report.Survivors = infos(survivors)
		logging.Error("Some processes failed to close, please close them manually and retry")
		return report
	}

	// Phase 3: forced kill of the survivors.
	logging.Info("Sending forced termination signal...")
	report.Killed = t.signalEach(survivors, func(p Process) error { return p.Kill() })
	t.sleep(opts.KillSettle)

	final := t.alive(survivors)
	if len(final) == 0 {
		logging.Info("All Antigravity processes terminated")
		report.Success = true
		return report
	}

	report.Survivors = infos(final)
	logging.Error("Processes that could not be terminated: %s", nameList(report.Survivors))
	return report
}

// exclude drops the current process, anything under its install directory
// (companion binaries must not terminate themselves) and the platform's
// known companion tools.
func (t *Terminator) exclude(targets []target) []target {
	var out []target
	for _, tgt := range targets {
		if tgt.info.Pid == t.selfPid {
			logging.Debug("Skipping own process %s", tgt.info)
			continue
		}
		if t.selfDir != "" && tgt.info.Exe != "" &&
			strings.Contains(strings.ToLower(tgt.info.Exe), t.selfDir) {
			logging.Debug("Skipping process under own install dir: %s", tgt.info)
			continue
		}
		if t.strategy.ExcludeFromTermination(tgt.info.Name) {
			logging.Debug("Skipping companion process %s", tgt.info)
			continue
		}
		out = append(out, tgt)
	}
	return out
}

// signalEach delivers one signal to every target, recording a per-process
// outcome instead of aborting on failure.
func (t *Terminator) signalEach(targets []target, send func(Process) error) []SignalResult {
	results := make([]SignalResult, 0, len(targets))
	for _, tgt := range targets {
		running, err := tgt.proc.Running()
		if err != nil || !running {
			results = append(results, SignalResult{Target: tgt.info, Outcome: OutcomeSkipped, Reason: "already exited"})
			continue
		}
		if err := send(tgt.proc); err != nil {
			logging.Debug("Signal to %s failed: %v", tgt.info, err)
			results = append(results, SignalResult{Target: tgt.info, Outcome: OutcomeFailed, Reason: err.Error()})
			continue
		}
		results = append(results, SignalResult{Target: tgt.info, Outcome: OutcomeOK})
	}
	return results
}

// alive filters the fixed set down to the processes still running. Probe
// errors count as gone.
func (t *Terminator) alive(targets []target) []target {
	var out []target
	for _, tgt := range targets {
		running, err := tgt.proc.Running()
		if err == nil && running {
			out = append(out, tgt)
		}
	}
	return out
}

func nameList(procs []TargetProcess) string {
	names := make([]string, 0, len(procs))
	for _, p := range procs {
		names = append(names, p.String())
	}
	return strings.Join(names, ", ")
}
