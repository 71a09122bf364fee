package view

const layoutTemplate = `{{define "page"}}<!doctype html>
<html lang="es">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>GamerStore</title>
  <link rel="stylesheet" href="/static/styles.css">
</head>
<body>
  <header class="cabecera">
    <a class="logo" href="/">GamerStore</a>
    <nav>
      <a href="/">Inicio</a>
      <a href="/games">Cat&aacute;logo</a>
      <a href="/#contacto">Contacto</a>
    </nav>
  </header>
  <main>
{{template "content" .}}
  </main>
  <footer class="pie">GamerStore</footer>
</body>
</html>{{end}}`

const homeTemplate = `{{define "content"}}
{{if and .Regions.Status .Status}}<p id="{{.Regions.Status}}" class="estado">{{.Status}}</p>{{end}}
{{if .Regions.Carousels}}
<section id="{{.Regions.Carousels}}">
{{range $c := .Carousels}}
  <div class="carrusel" id="{{$c.ID}}">
    <h2>{{$c.Title}}</h2>
    <div class="ventana">
      <a class="flecha anterior{{if $c.PrevDisabled}} inactiva{{end}}"{{if not $c.PrevDisabled}} href="{{$c.PrevHref}}"{{end}}>&lsaquo;</a>
      <div class="pista" style="transform: translateX({{printf "%.4f" $c.OffsetPercent}}%)">
{{range $c.Items}}
{{if .SeeMore}}
        <article class="tarjeta ver-mas" style="flex: 0 0 {{printf "%.4f" $c.ItemPercent}}%">
          <a href="{{.Href}}">Ver m&aacute;s juegos</a>
        </article>
{{else}}
        <article class="tarjeta" style="flex: 0 0 {{printf "%.4f" $c.ItemPercent}}%">
          <img src="{{.Game.Thumbnail}}" alt="{{.Game.Title}}" loading="lazy">
          <h3>{{.Game.Title}}</h3>
          <p class="detalle">{{.Game.Genre}} &middot; {{.Game.Platform}}</p>
          <a class="enlace" href="{{.Game.GameURL}}" target="_blank" rel="noopener">Jugar</a>
        </article>
{{end}}
{{end}}
      </div>
      <a class="flecha siguiente{{if $c.NextDisabled}} inactiva{{end}}"{{if not $c.NextDisabled}} href="{{$c.NextHref}}"{{end}}>&rsaquo;</a>
    </div>
  </div>
{{end}}
</section>
{{end}}
{{end}}`

const catalogTemplate = `{{define "content"}}
{{if .Regions.Filters}}
<form id="{{.Regions.Filters}}" class="filtros" method="get" action="/games">
  <select name="genre">
    <option value="all">Todos los g&eacute;neros</option>
{{range .Facets.Genres}}
    <option value="{{.}}"{{if eq $.Criteria.Genre .}} selected{{end}}>{{.}}</option>
{{end}}
  </select>
  <select name="platform">
    <option value="all">Todas las plataformas</option>
{{range .Facets.Platforms}}
    <option value="{{.}}"{{if eq $.Criteria.Platform .}} selected{{end}}>{{.}}</option>
{{end}}
  </select>
  <input type="search" name="q" placeholder="Buscar juegos..." value="{{.Criteria.Search}}">
  <select name="sort">
{{range .SortKeys}}
    <option value="{{.Key}}"{{if eq $.Criteria.Sort .Key}} selected{{end}}>{{.Label}}</option>
{{end}}
  </select>
  <button type="submit">Filtrar</button>
</form>
<p class="contador">{{.Count}}</p>
{{end}}
{{if and .Regions.Status .Status}}<p id="{{.Regions.Status}}" class="estado">{{.Status}}</p>{{end}}
{{if .Regions.Catalog}}
<section id="{{.Regions.Catalog}}" class="grilla">
{{range .Games}}
  <article class="tarjeta">
    <img src="{{.Thumbnail}}" alt="{{.Title}}" loading="lazy">
    <h3>{{.Title}}</h3>
    <p class="detalle">{{.Genre}} &middot; {{.Platform}}</p>
    <p class="fecha">{{.ReleaseDate}}</p>
    <a class="enlace" href="{{.GameURL}}" target="_blank" rel="noopener">Jugar</a>
  </article>
{{end}}
</section>
{{end}}
{{end}}`
