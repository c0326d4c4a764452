package platform

import "testing"

func TestForGOOS(t *testing.T) {
	for goos, want := range map[string]string{
		"darwin":  "darwin",
		"windows": "windows",
		"linux":   "linux",
		"freebsd": "linux",
	} {
		if got := ForGOOS(goos).Name(); got != want {
			t.Errorf("ForGOOS(%q).Name() = %q, want %q", goos, got, want)
		}
	}
}

func TestDarwinMatch(t *testing.T) {
	s := ForGOOS("darwin")

	tests := []struct {
		name string
		exe  string
		want bool
	}{
		{"Electron", "/Applications/Antigravity.app/Contents/MacOS/Electron", true},
		{"Electron", "/applications/ANTIGRAVITY.APP/Contents/MacOS/Electron", true},
		{"Antigravity", "/usr/local/bin/antigravity-helper", false},
		{"Safari", "/Applications/Safari.app/Contents/MacOS/Safari", false},
		{"Electron", "", false},
	}
	for _, tt := range tests {
		if got := s.Match(tt.name, tt.exe); got != tt.want {
			t.Errorf("darwin Match(%q, %q) = %v, want %v", tt.name, tt.exe, got, tt.want)
		}
	}
}

func TestWindowsMatch(t *testing.T) {
	s := ForGOOS("windows")

	tests := []struct {
		name string
		exe  string
		want bool
	}{
		{"Antigravity.exe", "", true},
		{"antigravity", "", true},
		{"code.exe", `C:\Users\x\AppData\Local\Programs\Antigravity\code.exe`, true},
		{"notepad.exe", `C:\Windows\notepad.exe`, false},
		{"", "", false},
	}
	for _, tt := range tests {
		if got := s.Match(tt.name, tt.exe); got != tt.want {
			t.Errorf("windows Match(%q, %q) = %v, want %v", tt.name, tt.exe, got, tt.want)
		}
	}
}

func TestWindowsExcludesManager(t *testing.T) {
	s := ForGOOS("windows")

	if !s.ExcludeFromTermination("Antigravity Manager.exe") {
		t.Error("expected manager companion to be excluded from termination")
	}
	if s.ExcludeFromTermination("Antigravity.exe") {
		t.Error("expected target process not to be excluded")
	}
}

func TestLinuxMatch(t *testing.T) {
	s := ForGOOS("linux")

	tests := []struct {
		name string
		exe  string
		want bool
	}{
		{"antigravity", "", true},
		{"electron", "/usr/share/antigravity/electron", true},
		{"sh", "/opt/antigravity", true},
		// Decoy: name is a substring match, not exact; path has no segment.
		{"antigravity-backup-daemon", "/usr/bin/antigravity-backup-daemon", false},
		{"bash", "/bin/bash", false},
	}
	for _, tt := range tests {
		if got := s.Match(tt.name, tt.exe); got != tt.want {
			t.Errorf("linux Match(%q, %q) = %v, want %v", tt.name, tt.exe, got, tt.want)
		}
	}
}

func TestLinuxHasNoGracefulQuit(t *testing.T) {
	requested, err := ForGOOS("linux").GracefulQuit()
	if requested || err != nil {
		t.Errorf("linux GracefulQuit() = (%v, %v), want (false, nil)", requested, err)
	}
}
