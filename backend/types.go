// Package backend implements the client for the TradeLingo inference API.
package backend

import "encoding/json"

// API paths served by the TradeLingo backend.
const (
	ChatPath    = "/api/chat"
	TherapyPath = "/api/therapy"
	HealthPath  = "/api/health"
)

// Request is the envelope sent to the chat and therapy endpoints.
type Request struct {
	Message   string       `json:"message"`
	SessionID string       `json:"session_id"`
	Profile   *UserProfile `json:"user_profile,omitempty"`
	Trade     *TradeData   `json:"-"` // attached via sjson only when present
}

// UserProfile mirrors the backend's profile model. Field names are the
// backend's, camelCase included.
type UserProfile struct {
	Name             string `json:"name"`
	TradingLevel     string `json:"tradingLevel"`
	LearningStyle    string `json:"learningStyle"`
	RiskTolerance    string `json:"riskTolerance"`
	PreferredMarkets string `json:"preferredMarkets"`
	TradingFrequency string `json:"tradingFrequency"`
}

// TradeData describes a single trade the user is asking about.
type TradeData struct {
	StockCode string `json:"stockCode,omitempty"`
	StockName string `json:"stockName,omitempty"`
	Action    string `json:"action,omitempty"`
	Units     string `json:"units,omitempty"`
	Price     string `json:"price,omitempty"`
	Date      string `json:"date,omitempty"`
}

// Payload is the structured record the backend returns. Every field is
// optional; display-text derivation picks over them and subscribers get the
// raw bytes untouched.
type Payload struct {
	Type string `json:"type,omitempty"` // educational, wellness, integrated

	// Educational fields.
	Observation            string `json:"observation,omitempty"`
	Analysis               string `json:"analysis,omitempty"`
	LearningConcept        string `json:"learning_concept,omitempty"`
	WhyItMatters           string `json:"why_it_matters,omitempty"`
	TeachingExplanation    string `json:"teaching_explanation,omitempty"`
	TeachingExample        string `json:"teaching_example,omitempty"`
	ActionableTakeaway     string `json:"actionable_takeaway,omitempty"`
	NextLearningSuggestion string `json:"next_learning_suggestion,omitempty"`

	// Wellness fields.
	EmotionalState      string   `json:"emotional_state,omitempty"`
	Acknowledgment      string   `json:"acknowledgment,omitempty"`
	Insight             string   `json:"insight,omitempty"`
	TherapeuticQuestion string   `json:"therapeutic_question,omitempty"`
	CopingStrategy      string   `json:"coping_strategy,omitempty"`
	Encouragement       string   `json:"encouragement,omitempty"`
	ActionableSteps     []string `json:"actionable_steps,omitempty"`

	// Raw is the undecoded response body.
	Raw json.RawMessage `json:"-"`
}
