package bus

import (
	"context"
	"testing"
	"time"
)

func TestPublishReachesSubscriber(t *testing.T) {
	b := NewBus(8)
	defer b.Close()

	got := make(chan *Event, 1)
	b.Subscribe(EventResponse, func(_ context.Context, e *Event) {
		got <- e
	})

	event, err := NewEvent(EventResponse, "tutor", ResponseData{Session: "default", Text: "hi"})
	if err != nil {
		t.Fatalf("NewEvent() error = %v", err)
	}
	b.Publish(event)

	select {
	case e := <-got:
		var d ResponseData
		if err := e.ParseData(&d); err != nil {
			t.Fatalf("ParseData() error = %v", err)
		}
		if d.Text != "hi" || d.Session != "default" {
			t.Fatalf("ParseData() = %+v", d)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestEventTypeFiltering(t *testing.T) {
	b := NewBus(8)
	defer b.Close()

	processing := make(chan *Event, 2)
	b.Subscribe(EventProcessing, func(_ context.Context, e *Event) {
		processing <- e
	})

	other, _ := NewEvent(EventSendFailed, "tutor", SendFailedData{Error: "boom"})
	b.Publish(other)
	want, _ := NewEvent(EventProcessing, "tutor", ProcessingData{Processing: true})
	b.Publish(want)

	select {
	case e := <-processing:
		if e.Type != EventProcessing {
			t.Fatalf("received type %q, want %q", e.Type, EventProcessing)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	select {
	case e := <-processing:
		t.Fatalf("unexpected extra event: %+v", e)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDeliveryPreservesPublishOrder(t *testing.T) {
	b := NewBus(8)
	defer b.Close()

	got := make(chan bool, 2)
	b.Subscribe(EventProcessing, func(_ context.Context, e *Event) {
		var d ProcessingData
		_ = e.ParseData(&d)
		got <- d.Processing
	})

	on, _ := NewEvent(EventProcessing, "tutor", ProcessingData{Processing: true})
	off, _ := NewEvent(EventProcessing, "tutor", ProcessingData{Processing: false})
	b.Publish(on)
	b.Publish(off)

	first := recvWithTimeout(t, got)
	second := recvWithTimeout(t, got)
	if !first || second {
		t.Fatalf("delivery order = %v, %v; want true, false", first, second)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := NewBus(8)
	defer b.Close()

	got := make(chan *Event, 1)
	id := b.Subscribe(EventResponse, func(_ context.Context, e *Event) {
		got <- e
	})
	b.Unsubscribe(id)

	e, _ := NewEvent(EventResponse, "tutor", nil)
	b.Publish(e)

	select {
	case <-got:
		t.Fatal("unsubscribed handler still received an event")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPanickingHandlerDoesNotKillBus(t *testing.T) {
	b := NewBus(8)
	defer b.Close()

	b.Subscribe(EventResponse, func(_ context.Context, _ *Event) {
		panic("bad handler")
	})
	got := make(chan *Event, 1)
	b.Subscribe(EventResponse, func(_ context.Context, e *Event) {
		got <- e
	})

	e, _ := NewEvent(EventResponse, "tutor", nil)
	b.Publish(e)

	select {
	case <-got:
	case <-time.After(2 * time.Second):
		t.Fatal("bus stopped delivering after a handler panic")
	}
}

func recvWithTimeout(t *testing.T, ch <-chan bool) bool {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return false
	}
}
