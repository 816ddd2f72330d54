// Package overlay projects game status onto UI elements: a live score
// label, a ready panel, a game-over panel and a final-score label.
// Every element is optional; a nil element is skipped.
package overlay

import (
	"strconv"

	"github.com/vovakirdan/neon-flyer/internal/game"
)

// Text is an element that shows a string.
type Text interface {
	SetText(string)
}

// Toggle is an element that can be shown or hidden.
type Toggle interface {
	SetVisible(bool)
}

// Overlay implements game.StatusListener.
type Overlay struct {
	Score      Text
	ReadyPanel Toggle
	OverPanel  Toggle
	FinalScore Text
}

var _ game.StatusListener = (*Overlay)(nil)

// StatusChanged updates the elements for s.
func (o *Overlay) StatusChanged(s game.Status) {
	if o == nil {
		return
	}

	score := strconv.Itoa(s.Score)
	setText(o.Score, score)
	setVisible(o.ReadyPanel, s.Phase == game.PhaseReady)
	setVisible(o.OverPanel, s.Phase == game.PhaseGameOver)
	if s.Phase == game.PhaseGameOver {
		setText(o.FinalScore, FinalScoreText(s.Score))
	}
}

// FinalScoreText formats the score shown on the game-over panel.
func FinalScoreText(score int) string {
	return "Score: " + strconv.Itoa(score)
}

func setText(t Text, s string) {
	if t != nil {
		t.SetText(s)
	}
}

func setVisible(t Toggle, v bool) {
	if t != nil {
		t.SetVisible(v)
	}
}
