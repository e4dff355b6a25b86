package widget

import (
	"context"
	"testing"
	"time"

	"github.com/tradelingo/superbear/backend"
)

func TestWidgetGreetsAfterBubble(t *testing.T) {
	clock := newFakeClock()
	client := &fakeClient{payload: &backend.Payload{Observation: "ok"}}
	w := NewWithClock(clock, testTutorVariant(), client, nil, testProfile())

	rec := &prefixRecorder{}
	w.SetHooks(Hooks{OnGreeting: rec.record})
	w.Reveal()

	// Nothing types before the bubble stage (+100 +400 +600 = 1100ms).
	clock.advance(1099 * time.Millisecond)
	if got := rec.observed(); len(got) != 0 {
		t.Fatalf("greeting emitted before bubble stage: %q", got)
	}

	clock.advance(1 * time.Millisecond)
	if w.Stage() != StageBubble {
		t.Fatalf("stage = %v, want %v", w.Stage(), StageBubble)
	}

	clock.advance(10 * time.Second)
	if w.Greeting() != "Hey!" {
		t.Fatalf("greeting = %q, want full text", w.Greeting())
	}
	if got := rec.observed(); len(got) != len("Hey!")+1 {
		t.Fatalf("emitted %d greeting states, want %d", len(got), len("Hey!")+1)
	}
}

func TestTherapyWidgetSkipsGreetingOnceStarted(t *testing.T) {
	clock := newFakeClock()
	client := &fakeClient{payload: &backend.Payload{Acknowledgment: "ok"}}
	w := NewWithClock(clock, testTherapyVariant(), client, nil, testProfile())

	rec := &prefixRecorder{}
	w.SetHooks(Hooks{OnGreeting: rec.record})
	w.StartSession() // conversation began before the reveal finished
	w.Reveal()

	clock.advance(10 * time.Second)
	if got := rec.observed(); len(got) != 0 {
		t.Fatalf("therapy greeting emitted after session start: %q", got)
	}
}

func TestTherapySendSuppressesGreetingMidType(t *testing.T) {
	clock := newFakeClock()
	client := &fakeClient{payload: &backend.Payload{Acknowledgment: "ok"}}
	w := NewWithClock(clock, testTherapyVariant(), client, nil, testProfile())
	w.Reveal()

	// Reach the bubble and type two characters.
	clock.advance(700 * time.Millisecond)
	clock.advance(100 * time.Millisecond)
	typed := w.Greeting()
	if typed == "" {
		t.Fatal("greeting should have started typing")
	}

	if !w.Send(context.Background(), "I feel awful") {
		t.Fatal("Send rejected a valid draft")
	}
	clock.advance(10 * time.Second)
	if w.Greeting() != typed {
		t.Fatalf("greeting kept typing after send: %q -> %q", typed, w.Greeting())
	}
}

func TestTutorWidgetKeepsGreetingAfterSend(t *testing.T) {
	clock := newFakeClock()
	client := &fakeClient{payload: &backend.Payload{Observation: "ok"}}
	w := NewWithClock(clock, testTutorVariant(), client, nil, testProfile())
	w.Reveal()

	clock.advance(1100 * time.Millisecond)
	if !w.Send(context.Background(), "what is a limit order?") {
		t.Fatal("Send rejected a valid draft")
	}
	clock.advance(10 * time.Second)
	if w.Greeting() != "Hey!" {
		t.Fatalf("tutor greeting = %q after send, want full text", w.Greeting())
	}
}

func TestWidgetCloseCancelsTimers(t *testing.T) {
	clock := newFakeClock()
	client := &fakeClient{payload: &backend.Payload{Observation: "ok"}}
	w := NewWithClock(clock, testTutorVariant(), client, nil, testProfile())
	w.Reveal()

	clock.advance(100 * time.Millisecond)
	w.Close()
	clock.advance(time.Hour)

	if w.Stage() != StageMascot {
		t.Fatalf("stage after Close = %v, want %v", w.Stage(), StageMascot)
	}
	if w.Greeting() != "" {
		t.Fatalf("greeting after Close = %q, want empty", w.Greeting())
	}
}

func TestWidgetsAreIndependent(t *testing.T) {
	clock := newFakeClock()
	client := &fakeClient{payload: &backend.Payload{Observation: "ok"}}
	a := NewWithClock(clock, testTutorVariant(), client, nil, testProfile())
	b := NewWithClock(clock, testTherapyVariant(), client, nil, testProfile())
	a.Reveal()
	b.Reveal()

	clock.advance(10 * time.Second)
	a.Send(context.Background(), "hello from a")

	if b.Session().Len() != 0 {
		t.Fatal("sending on one widget leaked into the other's session")
	}
	if !a.Session().HasStarted() || b.Session().HasStarted() {
		t.Fatal("hasStarted must be per-instance")
	}
}
