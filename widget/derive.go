package widget

import (
	"strings"

	"github.com/tradelingo/superbear/backend"
)

// FallbackReply is shown when the backend answered but none of the expected
// payload fields were present.
const FallbackReply = "I couldn't generate a response. Please try again."

// ApologyReply is shown when the remote call itself failed.
const ApologyReply = "Sorry, I couldn't reach my brain right now. The TradeLingo backend may be unreachable - please try again in a moment."

const copingPrefix = "💡 Try this: "

// TutorReply derives the tutor mascot's display text: the teaching
// explanation, else the observation, else the fixed fallback.
func TutorReply(p *backend.Payload) string {
	if p.TeachingExplanation != "" {
		return p.TeachingExplanation
	}
	if p.Observation != "" {
		return p.Observation
	}
	return FallbackReply
}

// TherapyReply derives the therapy mascot's display text by concatenating
// the present wellness fields in fixed order, blank-line separated.
func TherapyReply(p *backend.Payload) string {
	var parts []string
	if p.Acknowledgment != "" {
		parts = append(parts, p.Acknowledgment)
	}
	if p.Insight != "" {
		parts = append(parts, p.Insight)
	}
	if p.TherapeuticQuestion != "" {
		parts = append(parts, p.TherapeuticQuestion)
	}
	if p.CopingStrategy != "" {
		parts = append(parts, copingPrefix+p.CopingStrategy)
	}
	if p.Encouragement != "" {
		parts = append(parts, p.Encouragement)
	}
	if len(parts) == 0 {
		return FallbackReply
	}
	return strings.Join(parts, "\n\n")
}
