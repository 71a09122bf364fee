package freetogame

import "time"

const sourceName = "freetogame"

const (
	defaultBaseURL  = "https://www.freetogame.com"
	defaultRelayURL = "https://api.allorigins.win"
	listPath        = "/api/games"

	// Per-attempt deadline; an attempt that produces no response within
	// this window is aborted and counts as a retryable failure.
	defaultTimeout = 12 * time.Second
)
