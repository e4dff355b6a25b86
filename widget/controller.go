package widget

import (
	"context"
	"fmt"
	"strings"

	"github.com/tradelingo/superbear/backend"
	"github.com/tradelingo/superbear/bus"
	"github.com/tradelingo/superbear/logger"
)

// Controller runs the send-message protocol for one session. Remote
// failures never escape it: they collapse into a single apology message and
// the pending flag is released on every exit path.
type Controller struct {
	session *Session
	client  backend.Client
	bus     *bus.Bus // nil disables event publishing
	variant Variant
	profile backend.UserProfile

	// accepted runs right after a draft passes the acceptance guard, before
	// the remote call. The widget uses it to suppress the greeting.
	accepted func()
}

// NewController creates a controller. eventBus may be nil.
func NewController(session *Session, client backend.Client, eventBus *bus.Bus, v Variant, profile backend.UserProfile) *Controller {
	return &Controller{
		session: session,
		client:  client,
		bus:     eventBus,
		variant: v,
		profile: profile,
	}
}

// Session returns the session this controller mutates.
func (c *Controller) Session() *Session {
	return c.session
}

// Send runs the full protocol for one draft and blocks until the remote
// call completes. It returns false, without touching any state, when the
// trimmed draft is empty or a call is already in flight. Call it from its
// own goroutine (or a tea.Cmd) to keep the UI loop free.
func (c *Controller) Send(ctx context.Context, draft string) bool {
	return c.SendTrade(ctx, draft, nil)
}

// SendTrade is Send with an optional trade record attached to the request.
func (c *Controller) SendTrade(ctx context.Context, draft string, trade *backend.TradeData) bool {
	text := strings.TrimSpace(draft)
	if text == "" {
		return false
	}
	if !c.session.beginSend(text) {
		logger.Debug("send rejected, call already pending", "variant", c.variant.Name)
		return false
	}
	if c.accepted != nil {
		c.accepted()
	}

	c.publishProcessing(true)
	defer func() {
		// Guaranteed release: whatever happened above, the input affordance
		// becomes usable again.
		c.session.clearPending()
		c.publishProcessing(false)
	}()

	payload, err := c.call(ctx, text, trade)
	if err != nil {
		logger.Error("chat send failed", "variant", c.variant.Name, "err", err)
		c.session.appendAssistant(Message{Role: RoleAssistant, Content: ApologyReply})
		c.publish(bus.EventSendFailed, bus.SendFailedData{
			Session: c.variant.SessionID,
			Error:   err.Error(),
		})
		return true
	}

	reply := c.variant.Derive(payload)
	c.session.appendAssistant(Message{Role: RoleAssistant, Content: reply, Payload: payload})
	c.publish(bus.EventResponse, bus.ResponseData{
		Session: c.variant.SessionID,
		Text:    reply,
		Payload: payload.Raw,
	})
	return true
}

// call issues the single outbound request. A panicking client is converted
// into an error so the apology path handles it like any other failure.
func (c *Controller) call(ctx context.Context, text string, trade *backend.TradeData) (payload *backend.Payload, err error) {
	defer func() {
		if r := recover(); r != nil {
			payload = nil
			err = fmt.Errorf("backend client panic: %v", r)
		}
	}()

	profile := c.profile
	return c.client.Send(ctx, c.variant.Path, &backend.Request{
		Message:   text,
		SessionID: c.variant.SessionID,
		Profile:   &profile,
		Trade:     trade,
	})
}

func (c *Controller) publishProcessing(on bool) {
	c.publish(bus.EventProcessing, bus.ProcessingData{
		Session:    c.variant.SessionID,
		Processing: on,
	})
}

func (c *Controller) publish(t bus.EventType, data any) {
	if c.bus == nil {
		return
	}
	event, err := bus.NewEvent(t, c.variant.Name, data)
	if err != nil {
		logger.Warn("event marshal failed", "type", t, "err", err)
		return
	}
	c.bus.Publish(event)
}
