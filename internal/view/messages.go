package view

import (
	"fmt"

	"gamerstore-service/internal/catalog"
)

// User-facing status strings. The storefront audience is Spanish-speaking
// so these stay in Spanish end to end.
const (
	msgLoading      = "Cargando juegos..."
	msgFetchError   = "Error al cargar juegos. Intentá recargar la página."
	msgEmptyCatalog = "No se encontraron juegos. La API puede estar fuera de servicio."
	msgNoMatches    = "No se encontraron juegos con los filtros seleccionados."
)

// StatusMessage picks the banner shown above the grid. An empty string
// means the grid renders with no banner.
func StatusMessage(state catalog.LoadState, loadFailed bool, matches int) string {
	if loadFailed {
		return msgFetchError
	}
	switch state {
	case catalog.StateNotLoaded:
		return msgLoading
	case catalog.StateLoadedEmpty:
		return msgEmptyCatalog
	}
	if matches == 0 {
		return msgNoMatches
	}
	return ""
}

// CountLabel formats the result counter under the filters.
func CountLabel(n int) string {
	if n == 1 {
		return "1 juego"
	}
	return fmt.Sprintf("%d juegos", n)
}
