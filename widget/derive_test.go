package widget

import (
	"testing"

	"github.com/tradelingo/superbear/backend"
)

func TestTutorReplyPriority(t *testing.T) {
	tests := []struct {
		name    string
		payload backend.Payload
		want    string
	}{
		{
			name: "explanation wins over observation",
			payload: backend.Payload{
				TeachingExplanation: "Stop-losses cap your downside.",
				Observation:         "You sold during a dip.",
			},
			want: "Stop-losses cap your downside.",
		},
		{
			name:    "observation when no explanation",
			payload: backend.Payload{Observation: "You sold during a dip."},
			want:    "You sold during a dip.",
		},
		{
			name:    "fallback when both absent",
			payload: backend.Payload{Type: "educational"},
			want:    FallbackReply,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TutorReply(&tt.payload); got != tt.want {
				t.Errorf("TutorReply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTherapyReplyConcatenation(t *testing.T) {
	tests := []struct {
		name    string
		payload backend.Payload
		want    string
	}{
		{
			name: "all fields in fixed order",
			payload: backend.Payload{
				Acknowledgment:      "I hear you",
				Insight:             "Losses sting more than wins feel good",
				TherapeuticQuestion: "What were you feeling before you sold?",
				CopingStrategy:      "take three slow breaths",
				Encouragement:       "You got this",
			},
			want: "I hear you\n\n" +
				"Losses sting more than wins feel good\n\n" +
				"What were you feeling before you sold?\n\n" +
				"💡 Try this: take three slow breaths\n\n" +
				"You got this",
		},
		{
			name: "absent fields are skipped",
			payload: backend.Payload{
				Acknowledgment: "Ok",
				Encouragement:  "You got this",
			},
			want: "Ok\n\nYou got this",
		},
		{
			name:    "single field",
			payload: backend.Payload{Acknowledgment: "I hear you"},
			want:    "I hear you",
		},
		{
			name:    "fallback when all absent",
			payload: backend.Payload{Type: "wellness", EmotionalState: "anxious"},
			want:    FallbackReply,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TherapyReply(&tt.payload); got != tt.want {
				t.Errorf("TherapyReply() = %q, want %q", got, tt.want)
			}
		})
	}
}
