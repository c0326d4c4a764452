package process

import (
	"errors"
	"testing"
)

func TestFindAll_MatchesAndDecoys(t *testing.T) {
	match := &fakeProcess{pid: 100, name: "antigravity", exe: "/usr/share/antigravity/antigravity", alive: true}
	// Name is a substring, not an exact match, and the path has no
	// antigravity segment: must be excluded.
	decoy := &fakeProcess{pid: 101, name: "antigravity-backup-daemon", exe: "/usr/bin/antigravity-backup-daemon", alive: true}
	other := &fakeProcess{pid: 102, name: "bash", exe: "/bin/bash", alive: true}

	loc := NewLocator(&fakeStrategy{}, fakeLister{procs: []Process{match, decoy, other}})

	found, err := loc.FindAll()
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected 1 match, got %v", found)
	}
	if found[0].Pid != 100 || found[0].Name != "antigravity" {
		t.Errorf("unexpected match: %+v", found[0])
	}
}

func TestFindAll_SkipsUnreadableProcesses(t *testing.T) {
	vanished := &fakeProcess{pid: 200, name: "antigravity", alive: true, nameErr: errors.New("process no longer exists")}
	match := &fakeProcess{pid: 201, name: "antigravity", alive: true}

	loc := NewLocator(&fakeStrategy{}, fakeLister{procs: []Process{vanished, match}})

	found, err := loc.FindAll()
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(found) != 1 || found[0].Pid != 201 {
		t.Errorf("expected only the readable process, got %v", found)
	}
}

func TestFindAll_ListerError(t *testing.T) {
	loc := NewLocator(&fakeStrategy{}, fakeLister{err: errors.New("proc table unavailable")})

	if _, err := loc.FindAll(); err == nil {
		t.Error("expected enumeration error to surface")
	}
}

func TestIsRunning(t *testing.T) {
	loc := NewLocator(&fakeStrategy{}, fakeLister{procs: []Process{
		&fakeProcess{pid: 1, name: "bash", exe: "/bin/bash", alive: true},
	}})
	if loc.IsRunning() {
		t.Error("expected not running with no matches")
	}

	loc = NewLocator(&fakeStrategy{}, fakeLister{procs: []Process{
		&fakeProcess{pid: 1, name: "bash", exe: "/bin/bash", alive: true},
		&fakeProcess{pid: 2, name: "antigravity", alive: true},
	}})
	if !loc.IsRunning() {
		t.Error("expected running with a match present")
	}

	loc = NewLocator(&fakeStrategy{}, fakeLister{err: errors.New("boom")})
	if loc.IsRunning() {
		t.Error("expected enumeration failure to report not running")
	}
}
