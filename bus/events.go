// Package bus provides the in-process event bus that decouples the chat
// engine from whatever is observing it (TUI panels, one-shot commands).
package bus

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"
)

// EventType represents the type of event.
type EventType string

const (
	// EventProcessing fires when a session's in-flight state flips, once at
	// the start of a remote call and once at the end.
	EventProcessing EventType = "chat.processing"
	// EventResponse fires when the remote endpoint returned a structured
	// payload and an assistant message was appended.
	EventResponse EventType = "chat.response"
	// EventSendFailed fires when the remote call failed and the apology
	// message was appended instead.
	EventSendFailed EventType = "chat.failed"
)

// Event represents a bus event.
type Event struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	Source    string          `json:"source"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// NewEvent creates a new event with marshaled data.
func NewEvent(eventType EventType, source string, data any) (*Event, error) {
	var dataBytes json.RawMessage
	if data != nil {
		var err error
		dataBytes, err = json.Marshal(data)
		if err != nil {
			return nil, err
		}
	}

	return &Event{
		ID:        generateEventID(),
		Type:      eventType,
		Source:    source,
		Timestamp: time.Now(),
		Data:      dataBytes,
	}, nil
}

// ParseData unmarshals the event data into the given struct.
func (e *Event) ParseData(v any) error {
	if e.Data == nil {
		return nil
	}
	return json.Unmarshal(e.Data, v)
}

// ProcessingData is the payload of EventProcessing.
type ProcessingData struct {
	Session    string `json:"session"`
	Processing bool   `json:"processing"`
}

// ResponseData is the payload of EventResponse. Payload is the full
// structured record returned by the backend, untouched.
type ResponseData struct {
	Session string          `json:"session"`
	Text    string          `json:"text"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// SendFailedData is the payload of EventSendFailed.
type SendFailedData struct {
	Session string `json:"session"`
	Error   string `json:"error"`
}

var eventCounter atomic.Int64

func generateEventID() string {
	n := eventCounter.Add(1)
	return fmt.Sprintf("evt-%d-%d", time.Now().UnixMilli(), n)
}
