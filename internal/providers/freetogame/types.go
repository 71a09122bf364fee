package freetogame

// gameResponse mirrors one record of the upstream listing payload. Only the
// fields the catalog consumes are mapped onto the domain record; the proxy
// path never decodes into this shape, it passes the payload through as-is.
type gameResponse struct {
	ID               int    `json:"id"`
	Title            string `json:"title"`
	Thumbnail        string `json:"thumbnail"`
	ShortDescription string `json:"short_description"`
	GameURL          string `json:"game_url"`
	Genre            string `json:"genre"`
	Platform         string `json:"platform"`
	Publisher        string `json:"publisher"`
	Developer        string `json:"developer"`
	ReleaseDate      string `json:"release_date"`
	ProfileURL       string `json:"freetogame_profile_url"`
}
