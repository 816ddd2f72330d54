package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-flyer/internal/game"
	"github.com/vovakirdan/neon-flyer/internal/storage"
)

const maxRounds = 50 // Rounds listed in the table

// roundTracker writes each finished round to the session ledger.
// Ledger failures are logged and never interrupt play.
type roundTracker struct {
	ledger  *storage.Ledger
	logger  *log.Logger
	now     func() time.Time
	started time.Time
	phase   game.Phase
	best    int
	onBest  func(int)
}

var _ game.StatusListener = (*roundTracker)(nil)

func newRoundTracker(ledger *storage.Ledger, logger *log.Logger, onBest func(int)) *roundTracker {
	return &roundTracker{
		ledger: ledger,
		logger: logger,
		now:    time.Now,
		onBest: onBest,
	}
}

// StatusChanged implements game.StatusListener.
func (rt *roundTracker) StatusChanged(s game.Status) {
	prev := rt.phase
	rt.phase = s.Phase

	switch {
	case s.Phase == game.PhasePlaying && prev != game.PhasePlaying:
		rt.started = rt.now()
	case s.Phase == game.PhaseGameOver && prev == game.PhasePlaying:
		rt.record(s.Score, rt.now().Sub(rt.started))
	}
}

func (rt *roundTracker) record(score int, d time.Duration) {
	if score > rt.best {
		rt.best = score
		if rt.onBest != nil {
			rt.onBest(score)
		}
	}

	if rt.ledger == nil {
		return
	}
	if _, err := rt.ledger.RecordRound(score, d); err != nil && rt.logger != nil {
		rt.logger.Warn("could not record round", "score", score, "error", err)
		return
	}
	if rt.logger != nil {
		rt.logger.Debug("round finished", "score", score, "duration", d.Round(time.Millisecond))
	}
}

// newRoundsTable creates the session rounds table.
func newRoundsTable(width, height int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Time", Width: 8},
		{Title: "Ended", Width: 10},
	}

	h := height - 6 // Title, stats, help and margins
	if h < 3 {
		h = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(h),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// roundRows converts ledger rounds to table rows.
func roundRows(rounds []storage.Round) []table.Row {
	rows := make([]table.Row, len(rounds))
	for i, r := range rounds {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%.1fs", r.Duration.Seconds()),
			r.EndedAt.Format("15:04:05"),
		}
	}
	return rows
}
