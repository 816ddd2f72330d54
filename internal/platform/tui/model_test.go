package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-flyer/internal/config"
	"github.com/vovakirdan/neon-flyer/internal/core"
	"github.com/vovakirdan/neon-flyer/internal/game"
	"github.com/vovakirdan/neon-flyer/internal/storage"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	ledger, err := storage.OpenSession()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ledger.Close() })

	m, err := NewModel(Options{
		Config:  config.Default(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1, Theme: "neon"},
		Ledger:  ledger,
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestNewModelUnknownTheme(t *testing.T) {
	_, err := NewModel(Options{
		Config:  config.Default(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Theme: "no-such-theme"},
	})
	if err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestModelImpulseKeyStartsRound(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, runeKey('w'))

	if m.Status().Phase != game.PhasePlaying {
		t.Errorf("Phase = %v, expected playing", m.Status().Phase)
	}
}

func TestModelMouseClickStartsRound(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if m.Status().Phase != game.PhasePlaying {
		t.Errorf("Phase = %v, expected playing", m.Status().Phase)
	}
}

func TestModelMouseReleaseIgnored(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if m.Status().Phase != game.PhaseReady {
		t.Errorf("Phase = %v, expected ready", m.Status().Phase)
	}
}

func TestModelTickRunsFrame(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runeKey('w'))

	m, cmd := update(t, m, TickMsg(m.start.Add(50*time.Millisecond)))

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.game.Flyer().Y() == 0 {
		t.Error("flyer did not move after a tick")
	}
	if !strings.Contains(m.View(), "SCORE") {
		t.Error("view does not show the status line")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, runeKey('q'))

	if !m.quitting {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return tea.Quit")
	}
	if m.controls.Attached() {
		t.Error("quitting should detach the game from the controls")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelRoundsToggle(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.showRounds {
		t.Fatal("tab should open the rounds table")
	}
	if !strings.Contains(m.View(), "SESSION ROUNDS") {
		t.Error("rounds view missing its title")
	}

	// Impulses do not reach the game while the table is open
	m, _ = update(t, m, runeKey('w'))
	if m.Status().Phase != game.PhaseReady {
		t.Errorf("Phase = %v, expected ready", m.Status().Phase)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.showRounds {
		t.Error("second tab should close the rounds table")
	}
}

func TestModelRoundsTablePausesGame(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runeKey('w'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m, cmd := update(t, m, TickMsg(m.start.Add(50*time.Millisecond)))
	if cmd == nil {
		t.Error("tick should keep scheduling while paused")
	}
	if m.game.Flyer().Y() != 0 {
		t.Errorf("flyer moved to %g behind the rounds table", m.game.Flyer().Y())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, TickMsg(m.start.Add(100*time.Millisecond)))
	if m.game.Flyer().Y() == 0 {
		t.Error("flyer did not move after closing the rounds table")
	}
}

func TestModelRecordsFinishedRound(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runeKey('w'))
	for m.Status().Phase == game.PhasePlaying {
		m.game.Step(0.1, 0)
	}

	rounds, err := m.ledger.Rounds(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rounds) != 1 {
		t.Errorf("ledger has %d rounds, expected 1", len(rounds))
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	s := m.presenter.Screen()
	if s.Width() != 100 || s.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", s.Width(), s.Height())
	}

	m, _ = update(t, m, runeKey('?'))
	if s.Height() != 27 {
		t.Errorf("screen height = %d with full help, expected 27", s.Height())
	}
}
