package game

// Phase is the discrete state of a round.
type Phase int

const (
	PhaseReady    Phase = iota // Waiting for the first impulse; flyer hovers
	PhasePlaying               // Physics runs; impulses jump
	PhaseGameOver              // Frozen until the next impulse resets
)

// String returns the phase name shown to players and logs.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Status is the projection of the state machine handed to the UI.
type Status struct {
	Phase Phase
	Score int
}

// StatusListener is notified after every phase transition and score change.
// Listeners must treat the status as read-only output.
type StatusListener interface {
	StatusChanged(Status)
}

// StatusFunc adapts a plain function to StatusListener.
type StatusFunc func(Status)

// StatusChanged calls f(s).
func (f StatusFunc) StatusChanged(s Status) { f(s) }

// StateMachine holds the round phase and score.
// Transitions happen only through Start, End, Reset and AddScore.
type StateMachine struct {
	phase     Phase
	score     int
	listeners []StatusListener
}

// NewStateMachine creates a machine in PhaseReady and announces it once,
// so listeners render the initial panels.
func NewStateMachine(listeners ...StatusListener) *StateMachine {
	sm := &StateMachine{phase: PhaseReady, listeners: listeners}
	sm.notify()
	return sm
}

// Phase returns the current phase.
func (sm *StateMachine) Phase() Phase {
	return sm.phase
}

// Score returns the current score.
func (sm *StateMachine) Score() int {
	return sm.score
}

// Status returns phase and score together.
func (sm *StateMachine) Status() Status {
	return Status{Phase: sm.phase, Score: sm.score}
}

// Start enters PhasePlaying with a zero score.
func (sm *StateMachine) Start() {
	sm.phase = PhasePlaying
	sm.score = 0
	sm.notify()
}

// End enters PhaseGameOver, keeping the score for display.
// Calling it outside PhasePlaying does nothing.
func (sm *StateMachine) End() {
	if sm.phase != PhasePlaying {
		return
	}
	sm.phase = PhaseGameOver
	sm.notify()
}

// Reset returns to PhaseReady with a zero score.
func (sm *StateMachine) Reset() {
	sm.phase = PhaseReady
	sm.score = 0
	sm.notify()
}

// AddScore adds amount to the score while playing and is ignored otherwise.
func (sm *StateMachine) AddScore(amount int) {
	if sm.phase != PhasePlaying || amount <= 0 {
		return
	}
	sm.score += amount
	sm.notify()
}

func (sm *StateMachine) notify() {
	s := sm.Status()
	for _, l := range sm.listeners {
		if l != nil {
			l.StatusChanged(s)
		}
	}
}
