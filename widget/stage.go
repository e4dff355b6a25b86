package widget

import (
	"sync"
	"time"
)

// Stage is a point in the mascot's timed reveal sequence. Transitions only
// move forward and stop permanently at StageBubble.
type Stage int

const (
	StageInit Stage = iota
	StageMascot
	StageRemark
	StageBubble
)

func (s Stage) String() string {
	switch s {
	case StageInit:
		return "init"
	case StageMascot:
		return "mascot"
	case StageRemark:
		return "remark"
	case StageBubble:
		return "bubble"
	default:
		return "unknown"
	}
}

type revealStep struct {
	stage Stage
	delay time.Duration
}

// Sequencer drives the mascot reveal: mascot, then (tutor only) the remark,
// then the speech bubble, each after its configured delay. At most one timer
// is outstanding at any moment; Stop releases it on every exit path.
type Sequencer struct {
	mu      sync.Mutex
	clock   Clock
	steps   []revealStep
	stage   Stage
	timer   Timer
	stopped bool
	started bool
	notify  func(Stage)
}

// NewSequencer builds the reveal schedule for a variant. notify is invoked
// after each transition, outside the sequencer lock. It may be nil.
func NewSequencer(clock Clock, v Variant, notify func(Stage)) *Sequencer {
	steps := []revealStep{{StageMascot, v.MascotDelay}}
	if v.Remark != "" {
		steps = append(steps, revealStep{StageRemark, v.RemarkDelay})
	}
	steps = append(steps, revealStep{StageBubble, v.BubbleDelay})

	return &Sequencer{
		clock:  clock,
		steps:  steps,
		stage:  StageInit,
		notify: notify,
	}
}

// Start schedules the first transition. A sequencer runs once per lifetime;
// calling Start again is a no-op.
func (s *Sequencer) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.stopped {
		return
	}
	s.started = true
	s.timer = s.clock.AfterFunc(s.steps[0].delay, func() { s.advance(0) })
}

// Stage returns the current reveal stage.
func (s *Sequencer) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// Stop cancels any outstanding timer. No transition fires after Stop.
func (s *Sequencer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// advance applies step i. The transition is gated on the sequencer still
// running and the previous step's stage holding, so a timer that outlives a
// Stop (or fires out of order) mutates nothing.
func (s *Sequencer) advance(i int) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	prev := StageInit
	if i > 0 {
		prev = s.steps[i-1].stage
	}
	if s.stage != prev {
		s.mu.Unlock()
		return
	}

	s.stage = s.steps[i].stage
	s.timer = nil
	if next := i + 1; next < len(s.steps) {
		s.timer = s.clock.AfterFunc(s.steps[next].delay, func() { s.advance(next) })
	}
	stage := s.stage
	notify := s.notify
	s.mu.Unlock()

	if notify != nil {
		notify(stage)
	}
}
