package events

import "fmt"

// SubPhaseLog is the output of a single handler run (§4.4): every event
// emitted in that micro-phase, tagged with which micro-phase produced them.
type SubPhaseLog struct {
	MicroPhase SubPhase    `json:"micro_phase"`
	Events     []GameEvent `json:"events"`
}

// PhaseLog groups the SubPhaseLogs of one Night or Day (§3).
type PhaseLog struct {
	Phase     Phase         `json:"phase"`
	Number    int           `json:"number"`
	Subphases []SubPhaseLog `json:"subphases"`
}

// EventLog is the ordered, append-only record of an entire game (§3).
type EventLog struct {
	GameStart *GameStart `json:"game_start,omitempty"`
	Phases    []PhaseLog `json:"phases"`
	GameOver  *GameOver  `json:"game_over,omitempty"`
}

// EventCollector is the controller's exclusive writer onto an EventLog
// (§3 "Ownership"). Once a phase is closed by the next OpenPhase call, no
// event may be inserted into it — closePhaseLocked enforces this by value:
// callers only ever see phases already appended to EventLog.Phases.
type EventCollector struct {
	log    EventLog
	phase  *PhaseLog
	closed bool
}

// NewEventCollector returns an empty collector ready for SetGameStart.
func NewEventCollector() *EventCollector {
	return &EventCollector{}
}

// SetGameStart records the opening event. Must be called exactly once,
// before any phase is opened.
func (c *EventCollector) SetGameStart(start GameStart) error {
	if c.log.GameStart != nil {
		return fmt.Errorf("events: game_start already recorded")
	}
	c.log.GameStart = &start
	return nil
}

// OpenPhase closes whatever phase is currently open (appending it to the
// log) and begins a new one. The first call has nothing to close.
func (c *EventCollector) OpenPhase(phase Phase, number int) {
	c.closePhaseLocked()
	c.phase = &PhaseLog{Phase: phase, Number: number}
}

// AppendSubPhase adds a finished handler's SubPhaseLog to the currently
// open phase. It is an error to call this with no phase open.
func (c *EventCollector) AppendSubPhase(sub SubPhaseLog) error {
	if c.phase == nil {
		return fmt.Errorf("events: no phase open for subphase %s", sub.MicroPhase)
	}
	c.phase.Subphases = append(c.phase.Subphases, sub)
	return nil
}

// SetGameOver closes any open phase and records the terminal event. Must be
// called exactly once; a second call returns an error. Later OpenPhase calls
// are not rejected.
func (c *EventCollector) SetGameOver(over GameOver) error {
	if c.closed {
		return fmt.Errorf("events: game_over already recorded")
	}
	c.closePhaseLocked()
	c.log.GameOver = &over
	c.closed = true
	return nil
}

func (c *EventCollector) closePhaseLocked() {
	if c.phase != nil {
		c.log.Phases = append(c.log.Phases, *c.phase)
		c.phase = nil
	}
}

// OpenPhaseLog returns a copy of the currently open phase's subphases so
// far, or a zero PhaseLog if none is open. The controller uses this to
// drive per-subphase validator hooks for a phase a scheduler just finished
// running, before the next OpenPhase call closes it into EventLog.Phases.
func (c *EventCollector) OpenPhaseLog() PhaseLog {
	if c.phase == nil {
		return PhaseLog{}
	}
	return *c.phase
}

// Finalize returns the accumulated EventLog. Safe to call at any point;
// callers that want a "closed" log should call it only after SetGameOver.
func (c *EventCollector) Finalize() EventLog {
	out := c.log
	if c.phase != nil {
		out.Phases = append(append([]PhaseLog{}, out.Phases...), *c.phase)
	}
	return out
}
