package config

const (
	defaultBaseURL          = "http://127.0.0.1:8000"
	defaultChatSessionID    = "default"
	defaultTherapySessionID = "therapy-default"
	defaultTimeoutSeconds   = 60

	defaultMascotDelayMS  = 100
	defaultRemarkDelayMS  = 400
	defaultBubbleDelayMS  = 600
	defaultTypeIntervalMS = 50

	defaultRemark          = "Psst... got a minute?"
	defaultTutorGreeting   = "Hi, I'm SuperBear! Ask me anything about your trades."
	defaultTherapyGreeting = "Hey, I'm here for you. How is trading making you feel today?"
)

// DefaultConfig returns a config with sensible defaults. The profile values
// are the standing placeholders the backend expects until onboarding fills
// in real ones.
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL:          defaultBaseURL,
			ChatSessionID:    defaultChatSessionID,
			TherapySessionID: defaultTherapySessionID,
			TimeoutSeconds:   defaultTimeoutSeconds,
		},
		Profile: ProfileConfig{
			Name:             "Trader",
			TradingLevel:     "beginner",
			LearningStyle:    "visual",
			RiskTolerance:    "medium",
			PreferredMarkets: "Stocks",
			TradingFrequency: "weekly",
		},
		Widget: WidgetConfig{
			MascotDelayMS:   defaultMascotDelayMS,
			RemarkDelayMS:   defaultRemarkDelayMS,
			BubbleDelayMS:   defaultBubbleDelayMS,
			TypeIntervalMS:  defaultTypeIntervalMS,
			Remark:          defaultRemark,
			TutorGreeting:   defaultTutorGreeting,
			TherapyGreeting: defaultTherapyGreeting,
		},
		Logging: defaultLoggingConfig(),
	}
}

func defaultLoggingConfig() LoggingConfig {
	enabled := true
	return LoggingConfig{
		Enabled: &enabled,
		Level:   "info",
		Stdout:  true,
		File:    "logs/superbear.log",
	}
}

func (c *Config) applyDefaults() {
	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = defaultBaseURL
	}
	if c.Backend.ChatSessionID == "" {
		c.Backend.ChatSessionID = defaultChatSessionID
	}
	if c.Backend.TherapySessionID == "" {
		c.Backend.TherapySessionID = defaultTherapySessionID
	}
	if c.Backend.TimeoutSeconds <= 0 {
		c.Backend.TimeoutSeconds = defaultTimeoutSeconds
	}

	def := DefaultConfig()
	if c.Profile.Name == "" {
		c.Profile.Name = def.Profile.Name
	}
	if c.Profile.TradingLevel == "" {
		c.Profile.TradingLevel = def.Profile.TradingLevel
	}
	if c.Profile.LearningStyle == "" {
		c.Profile.LearningStyle = def.Profile.LearningStyle
	}
	if c.Profile.RiskTolerance == "" {
		c.Profile.RiskTolerance = def.Profile.RiskTolerance
	}
	if c.Profile.PreferredMarkets == "" {
		c.Profile.PreferredMarkets = def.Profile.PreferredMarkets
	}
	if c.Profile.TradingFrequency == "" {
		c.Profile.TradingFrequency = def.Profile.TradingFrequency
	}

	if c.Widget.MascotDelayMS <= 0 {
		c.Widget.MascotDelayMS = defaultMascotDelayMS
	}
	if c.Widget.RemarkDelayMS <= 0 {
		c.Widget.RemarkDelayMS = defaultRemarkDelayMS
	}
	if c.Widget.BubbleDelayMS <= 0 {
		c.Widget.BubbleDelayMS = defaultBubbleDelayMS
	}
	if c.Widget.TypeIntervalMS <= 0 {
		c.Widget.TypeIntervalMS = defaultTypeIntervalMS
	}
	if c.Widget.Remark == "" {
		c.Widget.Remark = defaultRemark
	}
	if c.Widget.TutorGreeting == "" {
		c.Widget.TutorGreeting = defaultTutorGreeting
	}
	if c.Widget.TherapyGreeting == "" {
		c.Widget.TherapyGreeting = defaultTherapyGreeting
	}

	logDef := defaultLoggingConfig()
	if c.Logging.Level == "" {
		c.Logging.Level = logDef.Level
	}
	if c.Logging.File == "" && !c.Logging.Stdout {
		c.Logging.Stdout = logDef.Stdout
		c.Logging.File = logDef.File
	}
	if c.Logging.Enabled == nil {
		c.Logging.Enabled = logDef.Enabled
	}
}
