package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envPollJitter   = "POLL_JITTER"
	envProvider     = "PROVIDER"
	envSettingsFile = "SETTINGS_FILE"
	envAuditLog     = "AUDIT_LOG"
	envFeedBaseURL  = "FEED_BASE_URL"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Default poll cadence; the upstream feed refreshes roughly once a
	// minute, so anything tighter just burns quota.
	defaultPollInterval = 75 * Duration(time.Second)
	// Spread cycles a little so many instances do not poll in lockstep.
	defaultPollJitter  = 15 * Duration(time.Second)
	defaultProvider    = "fixture"
	defaultMetricsPort = "9090"
)
