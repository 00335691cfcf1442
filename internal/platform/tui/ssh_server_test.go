package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveHostKeyCreatesDirectory(t *testing.T) {
	want := filepath.Join(t.TempDir(), "keys", "nested", "host_key")

	got, err := resolveHostKey(want)
	if err != nil {
		t.Fatalf("resolveHostKey: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
	info, err := os.Stat(filepath.Dir(want))
	if err != nil || !info.IsDir() {
		t.Errorf("key directory missing: %v", err)
	}
}

func TestNewSSHServerWithoutDatabase(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	cfg.DBPath = ""

	s, err := NewSSHServer(cfg, nil)
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if s.store != nil {
		t.Error("no database was asked for")
	}
	if s.Addr() != "127.0.0.1:0" || s.Sessions() != 0 {
		t.Errorf("addr = %q, sessions = %d", s.Addr(), s.Sessions())
	}
}
