package config

import "time"

const (
	envUpstreamBaseURL  = "UPSTREAM_BASE_URL"
	envRelayBaseURL     = "RELAY_BASE_URL"
	envPublicHost       = "PUBLIC_HOST"
	envFetchTimeout     = "FETCH_TIMEOUT"
	envFetchMaxAttempts = "FETCH_MAX_ATTEMPTS"
	envFetchBackoff     = "FETCH_BACKOFF"

	defaultUpstreamBaseURL = "https://www.freetogame.com"
	defaultRelayBaseURL    = "https://api.allorigins.win"
	// Per-attempt upstream deadline; the catalog is a single large list
	// response so this is deliberately generous.
	defaultFetchTimeout     = 12 * Duration(time.Second)
	defaultFetchMaxAttempts = 3
	defaultFetchBackoff     = 1 * Duration(time.Second)
)

// FreeToGameConfig controls how we talk to the FreeToGame API.
type FreeToGameConfig struct {
	BaseURL     string
	RelayURL    string
	PublicHost  string
	Timeout     Duration
	MaxAttempts int
	Backoff     Duration
}

func loadFreeToGame() FreeToGameConfig {
	return FreeToGameConfig{
		BaseURL:     envOrDefault(envUpstreamBaseURL, defaultUpstreamBaseURL),
		RelayURL:    envOrDefault(envRelayBaseURL, defaultRelayBaseURL),
		PublicHost:  envOrDefault(envPublicHost, ""),
		Timeout:     durationEnvOrDefault(envFetchTimeout, defaultFetchTimeout),
		MaxAttempts: intEnvOrDefault(envFetchMaxAttempts, defaultFetchMaxAttempts),
		Backoff:     durationEnvOrDefault(envFetchBackoff, defaultFetchBackoff),
	}
}
