package widget

import (
	"context"

	"github.com/tradelingo/superbear/backend"
	"github.com/tradelingo/superbear/bus"
)

// Hooks are the presentation layer's view of engine-internal transitions.
// Both run on timer goroutines; forward them into your UI loop.
type Hooks struct {
	OnStage    func(Stage)
	OnGreeting func(string)
}

// Widget ties one mascot instance together: reveal sequencer, typewriter
// greeting, and chat controller, parameterized by a Variant. Each Widget
// owns its state; instances share nothing.
type Widget struct {
	variant    Variant
	session    *Session
	controller *Controller
	sequencer  *Sequencer
	typewriter *Typewriter
	hooks      Hooks
}

// New assembles a widget on the system clock.
func New(v Variant, client backend.Client, eventBus *bus.Bus, profile backend.UserProfile) *Widget {
	return NewWithClock(SystemClock(), v, client, eventBus, profile)
}

// NewWithClock assembles a widget on an explicit clock.
func NewWithClock(clock Clock, v Variant, client backend.Client, eventBus *bus.Bus, profile backend.UserProfile) *Widget {
	w := &Widget{variant: v, session: NewSession()}
	w.controller = NewController(w.session, client, eventBus, v, profile)
	w.controller.accepted = w.onSendAccepted
	w.sequencer = NewSequencer(clock, v, w.onStage)
	w.typewriter = NewTypewriter(clock, v.Greeting, v.TypeInterval, func(prefix string) {
		if w.hooks.OnGreeting != nil {
			w.hooks.OnGreeting(prefix)
		}
	})
	return w
}

// SetHooks installs presentation hooks. Call before Reveal.
func (w *Widget) SetHooks(h Hooks) { w.hooks = h }

// Variant returns the widget's configuration.
func (w *Widget) Variant() Variant { return w.variant }

// Session returns the widget's chat session.
func (w *Widget) Session() *Session { return w.session }

// Stage returns the current reveal stage.
func (w *Widget) Stage() Stage { return w.sequencer.Stage() }

// Greeting returns the typewriter's currently revealed greeting prefix.
func (w *Widget) Greeting() string { return w.typewriter.Text() }

// Reveal starts the timed reveal sequence.
func (w *Widget) Reveal() { w.sequencer.Start() }

// Close cancels all outstanding timers. An in-flight remote call is not
// cancelled; its completion finds the session in a consistent state and the
// hooks simply go unobserved.
func (w *Widget) Close() {
	w.sequencer.Stop()
	w.typewriter.Stop()
}

// Send runs the send protocol; see Controller.Send.
func (w *Widget) Send(ctx context.Context, draft string) bool {
	return w.controller.Send(ctx, draft)
}

// SendTrade runs the send protocol with an attached trade record.
func (w *Widget) SendTrade(ctx context.Context, draft string, trade *backend.TradeData) bool {
	return w.controller.SendTrade(ctx, draft, trade)
}

// StartSession marks the conversation started without a message (the
// therapy mascot's explicit start action) and retires the greeting.
func (w *Widget) StartSession() {
	w.session.Start()
	if w.variant.GreetOnceOnly {
		w.typewriter.Stop()
	}
}

// onStage forwards stage transitions and activates the typewriter when the
// speech bubble appears. The greet-once variant skips the greeting if a
// conversation already started.
func (w *Widget) onStage(s Stage) {
	if s == StageBubble {
		if !w.variant.GreetOnceOnly || !w.session.HasStarted() {
			w.typewriter.Start()
		}
	}
	if w.hooks.OnStage != nil {
		w.hooks.OnStage(s)
	}
}

// onSendAccepted fires on draft acceptance, before the remote call.
func (w *Widget) onSendAccepted() {
	if w.variant.GreetOnceOnly {
		w.typewriter.Stop()
	}
}
