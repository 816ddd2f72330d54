package tui

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-flyer/internal/config"
	"github.com/vovakirdan/neon-flyer/internal/theme"
)

func newTestServer(t *testing.T, cfg SSHServerConfig) *SSHServer {
	t.Helper()
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	return srv
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()

	if cfg.Address != ":23235" {
		t.Errorf("Address = %q, expected :23235", cfg.Address)
	}
	if cfg.Theme != theme.DefaultID {
		t.Errorf("Theme = %q, expected %q", cfg.Theme, theme.DefaultID)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, expected 0 (clock seeded)", cfg.Seed)
	}
	if err := cfg.Game.Validate(); err != nil {
		t.Errorf("default game config invalid: %v", err)
	}
}

func TestSessionRuntimeCarriesSeed(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Seed = 42
	cfg.Theme = "sunset"
	srv := newTestServer(t, cfg)

	rt := srv.sessionRuntime(100, 30)

	if rt.Seed != 42 {
		t.Errorf("Seed = %d, expected 42", rt.Seed)
	}
	if rt.Theme != "sunset" {
		t.Errorf("Theme = %q, expected sunset", rt.Theme)
	}
	if rt.ScreenW != 100 || rt.ScreenH != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", rt.ScreenW, rt.ScreenH)
	}
}

func TestNewSSHServerRejectsInvalidGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Game.Scroller.Spacing = 0
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	_, err := NewSSHServer(cfg, log.New(io.Discard))
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("NewSSHServer() = %v, expected ErrInvalid", err)
	}
}
