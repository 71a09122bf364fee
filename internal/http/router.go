// Package http assembles the service routes.
package http

import (
	nethttp "net/http"

	"gamerstore-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(pages *handlers.Handler, search *handlers.SearchHandler, proxy *handlers.ProxyHandler, contact *handlers.ContactHandler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/", pages.Home)
	mux.HandleFunc("/games", pages.CatalogPage)
	mux.HandleFunc("/health", pages.Health)
	mux.HandleFunc("/ready", pages.Ready)
	mux.HandleFunc("/api/games", proxy.Games)
	mux.HandleFunc("/api/catalog", search.Results)
	mux.HandleFunc("/contact", contact.Submit)
	mux.HandleFunc("/admin/refresh", admin.RefreshCatalog)
	mux.HandleFunc("/static/styles.css", handlers.Styles)
	return mux
}
