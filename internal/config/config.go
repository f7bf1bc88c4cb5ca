package config

// Config holds runtime configuration for the service.
type Config struct {
	Port         string
	PollInterval Duration
	PollJitter   Duration
	Provider     string
	SettingsFile string
	// AuditLog, when set, is the path of a rotating log that receives
	// every raw upstream payload. Empty disables auditing.
	AuditLog string
	Feed     FeedConfig
	Metrics  MetricsConfig
}

// FeedConfig points at the upstream match feed.
type FeedConfig struct {
	BaseURL string
}

// MetricsConfig controls telemetry export.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		PollJitter:   durationEnvOrDefault(envPollJitter, defaultPollJitter),
		Provider:     envOrDefault(envProvider, defaultProvider),
		SettingsFile: envOrDefault(envSettingsFile, ""),
		AuditLog:     envOrDefault(envAuditLog, ""),
		Feed: FeedConfig{
			BaseURL: envOrDefault(envFeedBaseURL, ""),
		},
		Metrics: MetricsConfig{
			Enabled:      boolEnvOrDefault(envMetricsOn, false),
			Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
			ServiceName:  envOrDefault(envOtelService, ""),
			OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
			OtlpInsecure: boolEnvOrDefault(envOtelInsecure, false),
		},
	}
}
