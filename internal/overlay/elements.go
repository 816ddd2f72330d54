package overlay

// Label is a plain Text element that front ends read back when drawing.
type Label struct {
	text string
}

// SetText implements Text.
func (l *Label) SetText(s string) { l.text = s }

// Text returns the current text.
func (l *Label) Text() string { return l.text }

// Panel is a plain Toggle element.
type Panel struct {
	visible bool
}

// SetVisible implements Toggle.
func (p *Panel) SetVisible(v bool) { p.visible = v }

// Visible reports whether the panel should be drawn.
func (p *Panel) Visible() bool { return p.visible }

// HUD bundles one of each element and the Overlay driving them.
type HUD struct {
	Score      Label
	Ready      Panel
	GameOver   Panel
	FinalScore Label
}

// Overlay returns an Overlay wired to the HUD's elements.
func (h *HUD) Overlay() *Overlay {
	return &Overlay{
		Score:      &h.Score,
		ReadyPanel: &h.Ready,
		OverPanel:  &h.GameOver,
		FinalScore: &h.FinalScore,
	}
}
