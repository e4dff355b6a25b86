package widget

import (
	"time"

	"github.com/tradelingo/superbear/backend"
)

// Variant parameterizes the engine for one mascot flavor. The tutor and the
// therapy mascot share all mechanics and differ only in this configuration.
type Variant struct {
	Name      string // "tutor" or "therapy", used in logs and events
	Path      string // backend API path
	SessionID string

	Greeting string
	Remark   string // empty skips the remark reveal stage

	MascotDelay  time.Duration
	RemarkDelay  time.Duration
	BubbleDelay  time.Duration
	TypeInterval time.Duration

	// GreetOnceOnly suppresses the typewriter greeting once a chat session
	// has started (therapy mascot behavior).
	GreetOnceOnly bool

	// Derive turns a structured backend payload into the assistant-visible
	// reply text.
	Derive func(*backend.Payload) string
}
