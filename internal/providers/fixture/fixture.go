// Package fixture provides a deterministic catalog for local runs and
// bootstrapping without hitting the upstream API.
package fixture

import (
	"context"
	"encoding/json"

	"gamerstore-service/internal/domain/games"
	"gamerstore-service/internal/providers"
)

// Fetcher returns a static set of games useful for local testing.
type Fetcher struct{}

// New creates a fixture fetcher.
func New() *Fetcher {
	return &Fetcher{}
}

// FetchGames returns a deterministic catalog sample covering both facets and
// a spread of release dates.
func (f *Fetcher) FetchGames(ctx context.Context, q providers.Query) ([]games.Game, error) {
	_ = ctx
	_ = q

	return []games.Game{
		{
			Title:       "Overwatch 2",
			Genre:       "Shooter",
			Platform:    "PC (Windows)",
			ReleaseDate: "2023-08-10",
			Thumbnail:   "https://www.freetogame.com/g/540/thumbnail.jpg",
			GameURL:     "https://www.freetogame.com/open/overwatch-2",
		},
		{
			Title:       "Mir4",
			Genre:       "MMORPG",
			Platform:    "PC (Windows)",
			ReleaseDate: "2021-08-25",
			Thumbnail:   "https://www.freetogame.com/g/452/thumbnail.jpg",
			GameURL:     "https://www.freetogame.com/open/mir4",
		},
		{
			Title:       "Drakensang Online",
			Genre:       "MMORPG",
			Platform:    "Web Browser",
			ReleaseDate: "2011-08-08",
			Thumbnail:   "https://www.freetogame.com/g/51/thumbnail.jpg",
			GameURL:     "https://www.freetogame.com/open/drakensang",
		},
		{
			Title:       "War Thunder",
			Genre:       "Shooter",
			Platform:    "PC (Windows)",
			ReleaseDate: "2013-08-15",
			Thumbnail:   "https://www.freetogame.com/g/7/thumbnail.jpg",
			GameURL:     "https://www.freetogame.com/open/war-thunder",
		},
	}, nil
}

// FetchRawGames returns the fixture catalog encoded as the upstream would
// send it. The fixture is its own upstream, so the marshaled records are
// the verbatim payload.
func (f *Fetcher) FetchRawGames(ctx context.Context, q providers.Query) ([]byte, error) {
	records, err := f.FetchGames(ctx, q)
	if err != nil {
		return nil, err
	}
	return json.Marshal(records)
}
