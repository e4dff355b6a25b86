package widget

import (
	"sync"

	"github.com/tradelingo/superbear/backend"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the chat log. Assistant messages carry the full
// structured payload alongside the derived display text.
type Message struct {
	Role    Role
	Content string
	Payload *backend.Payload
}

// Session owns one mascot instance's chat state: the append-only message
// log, the in-flight flag, the current draft, and whether a conversation has
// started. All mutation goes through its methods; the mutex makes each
// mutation atomic with respect to timer and request goroutines.
type Session struct {
	mu         sync.Mutex
	messages   []Message
	pending    bool
	draft      string
	hasStarted bool
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// Messages returns a copy of the message log.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// Pending reports whether a remote call is in flight.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// HasStarted reports whether the conversation has started. Once true it
// never reverts.
func (s *Session) HasStarted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasStarted
}

// Start marks the conversation as started without sending a message.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hasStarted = true
}

// Draft returns the current input draft.
func (s *Session) Draft() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// SetDraft replaces the current input draft.
func (s *Session) SetDraft(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = text
}

// beginSend is the atomic acceptance step of the send protocol: reject if a
// call is already pending, otherwise clear the draft, append the user
// message, and raise pending and hasStarted in the same critical section.
// At most one in-flight request per session holds by construction.
func (s *Session) beginSend(text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending {
		return false
	}
	s.draft = ""
	s.messages = append(s.messages, Message{Role: RoleUser, Content: text})
	s.pending = true
	s.hasStarted = true
	return true
}

// appendAssistant appends the assistant reply.
func (s *Session) appendAssistant(m Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, m)
}

// clearPending lowers the in-flight flag.
func (s *Session) clearPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = false
}
