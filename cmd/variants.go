package cmd

import (
	"time"

	"github.com/tradelingo/superbear/backend"
	"github.com/tradelingo/superbear/config"
	"github.com/tradelingo/superbear/widget"
)

// tutorVariant builds the tutoring mascot configuration.
func tutorVariant(cfg *config.Config) widget.Variant {
	return widget.Variant{
		Name:         "tutor",
		Path:         backend.ChatPath,
		SessionID:    cfg.Backend.ChatSessionID,
		Greeting:     cfg.Widget.TutorGreeting,
		Remark:       cfg.Widget.Remark,
		MascotDelay:  time.Duration(cfg.Widget.MascotDelayMS) * time.Millisecond,
		RemarkDelay:  time.Duration(cfg.Widget.RemarkDelayMS) * time.Millisecond,
		BubbleDelay:  time.Duration(cfg.Widget.BubbleDelayMS) * time.Millisecond,
		TypeInterval: time.Duration(cfg.Widget.TypeIntervalMS) * time.Millisecond,
		Derive:       widget.TutorReply,
	}
}

// therapyVariant builds the therapy mascot configuration: no remark stage,
// and the greeting retires once a conversation starts.
func therapyVariant(cfg *config.Config) widget.Variant {
	return widget.Variant{
		Name:          "therapy",
		Path:          backend.TherapyPath,
		SessionID:     cfg.Backend.TherapySessionID,
		Greeting:      cfg.Widget.TherapyGreeting,
		MascotDelay:   time.Duration(cfg.Widget.MascotDelayMS) * time.Millisecond,
		BubbleDelay:   time.Duration(cfg.Widget.BubbleDelayMS) * time.Millisecond,
		TypeInterval:  time.Duration(cfg.Widget.TypeIntervalMS) * time.Millisecond,
		GreetOnceOnly: true,
		Derive:        widget.TherapyReply,
	}
}

// buildProfile converts the config profile into the request record.
func buildProfile(cfg *config.Config) backend.UserProfile {
	return backend.UserProfile{
		Name:             cfg.Profile.Name,
		TradingLevel:     cfg.Profile.TradingLevel,
		LearningStyle:    cfg.Profile.LearningStyle,
		RiskTolerance:    cfg.Profile.RiskTolerance,
		PreferredMarkets: cfg.Profile.PreferredMarkets,
		TradingFrequency: cfg.Profile.TradingFrequency,
	}
}

// buildClient creates the HTTP client for the configured backend.
func buildClient(cfg *config.Config) *backend.HTTPClient {
	return backend.NewHTTPClient(cfg.Backend.BaseURL, cfg.Backend.Token, cfg.Backend.Timeout())
}
