package game

import "testing"

type recorder struct {
	seen []Status
}

func (r *recorder) StatusChanged(s Status) {
	r.seen = append(r.seen, s)
}

func (r *recorder) last() Status {
	return r.seen[len(r.seen)-1]
}

func TestStateMachineInitial(t *testing.T) {
	rec := &recorder{}
	sm := NewStateMachine(rec, nil)

	if sm.Phase() != PhaseReady {
		t.Errorf("Phase() = %v, expected %v", sm.Phase(), PhaseReady)
	}
	if len(rec.seen) != 1 || rec.seen[0] != (Status{Phase: PhaseReady}) {
		t.Errorf("initial notifications = %v, expected one ready status", rec.seen)
	}
}

func TestStateMachineTransitions(t *testing.T) {
	rec := &recorder{}
	sm := NewStateMachine(rec)

	sm.Start()
	if sm.Phase() != PhasePlaying || sm.Score() != 0 {
		t.Fatalf("after Start: %+v", sm.Status())
	}

	sm.AddScore(3)
	sm.AddScore(2)
	if sm.Score() != 5 {
		t.Errorf("Score() = %d, expected 5", sm.Score())
	}

	sm.End()
	if sm.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, expected %v", sm.Phase(), PhaseGameOver)
	}
	if rec.last() != (Status{Phase: PhaseGameOver, Score: 5}) {
		t.Errorf("last status = %+v, expected game over with score 5", rec.last())
	}

	sm.Reset()
	if rec.last() != (Status{Phase: PhaseReady}) {
		t.Errorf("last status = %+v, expected ready with score 0", rec.last())
	}

	sm.Start()
	if sm.Score() != 0 {
		t.Errorf("Score() = %d after restart, expected 0", sm.Score())
	}
}

func TestStateMachineScoreOnlyWhilePlaying(t *testing.T) {
	rec := &recorder{}
	sm := NewStateMachine(rec)

	sm.AddScore(10)
	if sm.Score() != 0 {
		t.Errorf("score added in ready: %d", sm.Score())
	}

	sm.Start()
	sm.AddScore(4)
	sm.End()
	sm.AddScore(10)
	if sm.Score() != 4 {
		t.Errorf("Score() = %d, expected 4 kept through game over", sm.Score())
	}

	sm.Start()
	sm.AddScore(0)
	sm.AddScore(-3)
	if sm.Score() != 0 {
		t.Errorf("non-positive amounts changed score to %d", sm.Score())
	}
}

func TestStateMachineEndOnlyFromPlaying(t *testing.T) {
	rec := &recorder{}
	sm := NewStateMachine(rec)

	sm.End()
	if sm.Phase() != PhaseReady {
		t.Errorf("End() from ready moved to %v", sm.Phase())
	}

	sm.Start()
	sm.End()
	n := len(rec.seen)
	sm.End()
	if len(rec.seen) != n {
		t.Error("second End() notified listeners")
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseReady, "ready"},
		{PhasePlaying, "playing"},
		{PhaseGameOver, "game-over"},
		{Phase(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.expected {
			t.Errorf("Phase(%d).String() = %q, expected %q", tt.phase, got, tt.expected)
		}
	}
}

func TestStatusFunc(t *testing.T) {
	var got Status
	sm := NewStateMachine(StatusFunc(func(s Status) { got = s }))
	sm.Start()
	sm.AddScore(7)

	if got != (Status{Phase: PhasePlaying, Score: 7}) {
		t.Errorf("StatusFunc saw %+v", got)
	}
}
