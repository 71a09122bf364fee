package providers

import (
	"context"

	"gamerstore-service/internal/domain/games"
)

// Query carries the listing filters forwarded to the upstream API. Platform
// and Category are omitted from the request when empty or "all"; SortBy is
// forwarded as sort-by when set.
type Query struct {
	Platform string
	Category string
	SortBy   games.SortKey
}

// Fetcher defines how the upstream game collection is fetched and parsed.
type Fetcher interface {
	FetchGames(ctx context.Context, q Query) ([]games.Game, error)
}

// RawFetcher additionally exposes the upstream listing payload as-is, for
// the proxy path, which must not reshape what the upstream returned.
type RawFetcher interface {
	Fetcher
	FetchRawGames(ctx context.Context, q Query) ([]byte, error)
}
