package config

import "time"

const (
	envPort          = "PORT"
	envProvider      = "PROVIDER"
	envAdminToken    = "ADMIN_TOKEN"
	envProxyCacheTTL = "PROXY_CACHE_TTL"
	envSearchWindow  = "SEARCH_DEBOUNCE"
	envLogLevel      = "LOG_LEVEL"
	envLogFormat     = "LOG_FORMAT"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort     = "4000"
	defaultProvider = "fixture"
	// Proxy responses are edge-cacheable for five minutes before a
	// revalidation, matching the Cache-Control headers we emit.
	defaultProxyCacheTTL = 5 * Duration(time.Minute)
	defaultSearchWindow  = 300 * Duration(time.Millisecond)
	defaultMetricsPort   = "9090"
)
