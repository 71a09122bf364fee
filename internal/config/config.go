package config

// Config holds runtime configuration for the server.
type Config struct {
	Port          string
	Provider      string
	AdminToken    string
	ProxyCacheTTL Duration
	SearchWindow  Duration
	LogLevel      string
	LogFormat     string
	FreeToGame    FreeToGameConfig
	Mail          MailConfig
	Metrics       MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:          envOrDefault(envPort, defaultPort),
		Provider:      envOrDefault(envProvider, defaultProvider),
		AdminToken:    envOrDefault(envAdminToken, ""),
		ProxyCacheTTL: durationEnvOrDefault(envProxyCacheTTL, defaultProxyCacheTTL),
		SearchWindow:  durationEnvOrDefault(envSearchWindow, defaultSearchWindow),
		LogLevel:      envOrDefault(envLogLevel, "info"),
		LogFormat:     envOrDefault(envLogFormat, "text"),
		FreeToGame:    loadFreeToGame(),
		Mail:          loadMail(),
		Metrics:       loadMetrics(),
	}
}
