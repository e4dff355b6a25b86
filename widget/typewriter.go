package widget

import (
	"sync"
	"time"
)

// Typewriter reveals a fixed greeting one character at a time. It emits the
// empty string, then each successively longer prefix, at a fixed cadence,
// and freezes on the full greeting. A run is not restartable; Start begins a
// fresh run from cursor zero and cancels any previous one.
type Typewriter struct {
	mu       sync.Mutex
	clock    Clock
	text     []rune
	interval time.Duration
	cursor   int
	timer    Timer
	run      int // generation counter; stale ticks are dropped
	notify   func(string)
}

// NewTypewriter creates a typewriter for the given greeting. notify receives
// every emitted prefix, outside the lock. It may be nil.
func NewTypewriter(clock Clock, greeting string, interval time.Duration, notify func(string)) *Typewriter {
	return &Typewriter{
		clock:    clock,
		text:     []rune(greeting),
		interval: interval,
		notify:   notify,
	}
}

// Start resets the cursor and begins typing. Any in-flight run is cancelled
// first so two runs never interleave.
func (t *Typewriter) Start() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.cursor = 0
	t.run++
	run := t.run
	notify := t.notify
	if len(t.text) > 0 {
		t.timer = t.clock.AfterFunc(t.interval, func() { t.tick(run) })
	}
	t.mu.Unlock()

	if notify != nil {
		notify("")
	}
}

// Stop cancels the current run. The displayed prefix is retained.
func (t *Typewriter) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.run++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// Text returns the currently displayed prefix.
func (t *Typewriter) Text() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return string(t.text[:t.cursor])
}

// Done reports whether the full greeting has been revealed.
func (t *Typewriter) Done() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cursor == len(t.text)
}

func (t *Typewriter) tick(run int) {
	t.mu.Lock()
	if run != t.run || t.cursor >= len(t.text) {
		t.mu.Unlock()
		return
	}
	t.cursor++
	t.timer = nil
	if t.cursor < len(t.text) {
		t.timer = t.clock.AfterFunc(t.interval, func() { t.tick(run) })
	}
	prefix := string(t.text[:t.cursor])
	notify := t.notify
	t.mu.Unlock()

	if notify != nil {
		notify(prefix)
	}
}
