package view

// Regions names the page regions the renderer targets. IDs flow into the
// rendered markup so styles can address them. An empty field marks the
// region absent: the renderer skips it without error and without touching
// the other regions.
type Regions struct {
	Catalog   string
	Carousels string
	Filters   string
	Status    string
}

// DefaultRegions enables every region with the IDs the stylesheet ships
// with.
func DefaultRegions() Regions {
	return Regions{
		Catalog:   "catalogo",
		Carousels: "carruseles",
		Filters:   "filtros",
		Status:    "estado",
	}
}
