package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/neon-flyer/internal/game"
	"github.com/vovakirdan/neon-flyer/internal/storage"
)

func TestRoundTrackerRecordsOnce(t *testing.T) {
	ledger, err := storage.OpenSession()
	if err != nil {
		t.Fatal(err)
	}
	defer ledger.Close()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	var best []int
	rt := newRoundTracker(ledger, nil, func(b int) { best = append(best, b) })
	rt.now = func() time.Time { return now }

	rt.StatusChanged(game.Status{Phase: game.PhaseReady})
	rt.StatusChanged(game.Status{Phase: game.PhasePlaying})
	now = now.Add(3 * time.Second)
	rt.StatusChanged(game.Status{Phase: game.PhasePlaying, Score: 5})
	rt.StatusChanged(game.Status{Phase: game.PhaseGameOver, Score: 5})
	rt.StatusChanged(game.Status{Phase: game.PhaseGameOver, Score: 5})

	rounds, err := ledger.Rounds(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rounds) != 1 {
		t.Fatalf("recorded %d rounds, expected 1", len(rounds))
	}
	if rounds[0].Score != 5 || rounds[0].Duration != 3*time.Second {
		t.Errorf("round = %+v, expected score 5 over 3s", rounds[0])
	}
	if len(best) != 1 || best[0] != 5 {
		t.Errorf("best updates = %v, expected [5]", best)
	}

	// A lower score does not replace the best
	rt.StatusChanged(game.Status{Phase: game.PhaseReady})
	rt.StatusChanged(game.Status{Phase: game.PhasePlaying})
	rt.StatusChanged(game.Status{Phase: game.PhaseGameOver, Score: 2})
	if len(best) != 1 {
		t.Errorf("best updated for a lower score: %v", best)
	}
}

func TestRoundTrackerWithoutLedger(t *testing.T) {
	rt := newRoundTracker(nil, nil, nil)
	rt.StatusChanged(game.Status{Phase: game.PhasePlaying})
	rt.StatusChanged(game.Status{Phase: game.PhaseGameOver, Score: 3})

	if rt.best != 3 {
		t.Errorf("best = %d, expected 3", rt.best)
	}
}

func TestRoundRows(t *testing.T) {
	rows := roundRows([]storage.Round{
		{ID: 2, Score: 9, Duration: 1500 * time.Millisecond, EndedAt: time.Date(2026, 1, 1, 8, 30, 5, 0, time.UTC)},
	})

	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, expected 1", len(rows))
	}
	want := []string{"2", "9", "1.5s", "08:30:05"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("column %d = %q, expected %q", i, rows[0][i], cell)
		}
	}
}
