package handlers

import "net/http"

// stylesheet is small enough to ship embedded; no asset pipeline needed.
const stylesheet = `:root { color-scheme: dark; }
body { margin: 0; font-family: system-ui, sans-serif; background: #121212; color: #eee; }
.cabecera { display: flex; gap: 1rem; align-items: center; padding: 1rem 2rem; background: #1b1b1b; }
.cabecera .logo { font-weight: 700; color: #7c4dff; text-decoration: none; }
.cabecera nav a { margin-right: 1rem; color: #bbb; text-decoration: none; }
main { padding: 1rem 2rem; }
.estado { padding: .75rem 1rem; background: #2a2a2a; border-radius: 6px; }
.filtros { display: flex; flex-wrap: wrap; gap: .5rem; margin-bottom: 1rem; }
.grilla { display: grid; grid-template-columns: repeat(auto-fill, minmax(220px, 1fr)); gap: 1rem; }
.tarjeta { background: #1e1e1e; border-radius: 8px; padding: .75rem; }
.tarjeta img { width: 100%; border-radius: 6px; }
.carrusel .ventana { display: flex; align-items: center; overflow: hidden; }
.carrusel .pista { display: flex; transition: transform .3s ease; flex: 1; }
.flecha { padding: .5rem; color: #7c4dff; text-decoration: none; }
.flecha.inactiva { opacity: .3; pointer-events: none; }
.pie { padding: 1rem 2rem; color: #777; }
`

// Styles serves the embedded stylesheet.
func Styles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write([]byte(stylesheet))
}
