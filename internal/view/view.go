// Package view renders the storefront pages server-side with
// html/template. Handlers assemble the data, the renderer owns markup.
package view

import (
	"fmt"
	"html/template"
	"io"

	"gamerstore-service/internal/carousel"
	"gamerstore-service/internal/domain/games"
)

// Carousel is the render-ready projection of a carousel controller.
type Carousel struct {
	ID            string
	Title         string
	Items         []carousel.Item
	OffsetPercent float64
	ItemPercent   float64
	PrevDisabled  bool
	NextDisabled  bool
	// Paging links, filled by the handler from the current request URL.
	PrevHref string
	NextHref string
}

// NewCarousel snapshots ctrl into a Carousel for templating.
func NewCarousel(id, title string, ctrl *carousel.Controller) Carousel {
	return Carousel{
		ID:            id,
		Title:         title,
		Items:         ctrl.Items(),
		OffsetPercent: ctrl.Offset(),
		ItemPercent:   100 / float64(ctrl.Visible()),
		PrevDisabled:  ctrl.PrevDisabled(),
		NextDisabled:  ctrl.NextDisabled(),
	}
}

// HomeData feeds the landing page template.
type HomeData struct {
	Regions   Regions
	Status    string
	Carousels []Carousel
}

// CatalogData feeds the filterable catalog page template.
type CatalogData struct {
	Regions  Regions
	Status   string
	Count    string
	Games    []games.Game
	Facets   games.Facets
	Criteria games.Criteria
	SortKeys []SortOption
}

// SortOption is a sort selector entry.
type SortOption struct {
	Key   games.SortKey
	Label string
}

// SortOptions lists the selectable orderings in display order.
func SortOptions() []SortOption {
	return []SortOption{
		{Key: games.SortPopularity, Label: "Popularidad"},
		{Key: games.SortReleaseDate, Label: "Más recientes"},
		{Key: games.SortAlphabetical, Label: "A-Z"},
	}
}

// Renderer holds the parsed page templates.
type Renderer struct {
	regions Regions
	home    *template.Template
	catalog *template.Template
}

// New parses the templates and fixes the page regions for the lifetime
// of the renderer. Regions left empty stay absent for every render.
func New(regions Regions) (*Renderer, error) {
	home, err := template.New("home").Parse(layoutTemplate + homeTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse home template: %w", err)
	}
	catalog, err := template.New("catalog").Parse(layoutTemplate + catalogTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse catalog template: %w", err)
	}
	return &Renderer{
		regions: regions,
		home:    home,
		catalog: catalog,
	}, nil
}

// Regions returns the region IDs the renderer was built with.
func (r *Renderer) Regions() Regions {
	return r.regions
}

// Home writes the landing page.
func (r *Renderer) Home(w io.Writer, data HomeData) error {
	data.Regions = r.regions
	return r.home.ExecuteTemplate(w, "page", data)
}

// Catalog writes the filterable catalog page.
func (r *Renderer) Catalog(w io.Writer, data CatalogData) error {
	data.Regions = r.regions
	if len(data.SortKeys) == 0 {
		data.SortKeys = SortOptions()
	}
	return r.catalog.ExecuteTemplate(w, "page", data)
}
