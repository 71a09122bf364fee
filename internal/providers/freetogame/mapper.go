package freetogame

import "gamerstore-service/internal/domain/games"

func mapGame(g gameResponse) games.Game {
	return games.Game{
		Title:       g.Title,
		Genre:       g.Genre,
		Platform:    g.Platform,
		ReleaseDate: g.ReleaseDate,
		Thumbnail:   g.Thumbnail,
		GameURL:     g.GameURL,
	}
}

func mapGames(responses []gameResponse) []games.Game {
	result := make([]games.Game, 0, len(responses))
	for _, g := range responses {
		result = append(result, mapGame(g))
	}
	return result
}
