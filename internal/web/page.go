package web

const pageTpl = `<!doctype html>
<html lang="ru">
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>reelshelf</title>
<style>
body{font-family:system-ui,-apple-system,Segoe UI,Roboto;max-width:1100px;margin:0 auto;padding:1rem;background:#111;color:#eee}
header{display:flex;justify-content:space-between;align-items:center;gap:1rem;margin-bottom:1rem}
nav form{display:inline}
nav button{background:none;border:0;color:#aaa;font-size:1rem;padding:6px 10px;cursor:pointer}
nav button.active{color:#fff;border-bottom:2px solid #e50}
nav.types button{font-size:.9rem}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(220px,1fr));gap:16px}
.card{background:#1c1c1c;border-radius:8px;overflow:hidden}
.card img{width:100%;height:300px;object-fit:cover}
.card .body{padding:10px}
.meta,small{color:#999}
.badge{display:inline-block;background:#e50;color:#fff;border-radius:4px;padding:2px 6px;font-size:.8rem}
.hero{padding:2rem;border-radius:8px;background:#222;margin-bottom:1.5rem}
.notice{background:#243;padding:8px;border-radius:6px}
.error{background:#422;padding:8px;border-radius:6px}
.empty{text-align:center;padding:3rem 1rem}
fieldset{border:1px solid #333;border-radius:8px;margin-top:2rem}
label{display:block;margin:6px 0}
</style>
<header>
  <h1>КИНОПОИСК</h1>
  <form method="post" action="/search">
    <input type="search" name="q" value="{{.Query}}" placeholder="Поиск фильмов, сериалов, аниме..." />
    <button type="submit">Найти</button>
  </form>
</header>

<nav>
{{range .Tabs}}
  <form method="post" action="/view"><input type="hidden" name="view" value="{{.View}}" /><button type="submit"{{if .Active}} class="active"{{end}}>{{.Label}}</button></form>
{{end}}
</nav>

{{if .Notice}}<p class="notice">{{.Notice}}</p>{{end}}
{{if .Similar}}<p class="notice">Похожие названия уже есть в каталоге: {{range $i, $s := .Similar}}{{if $i}}, {{end}}{{$s}}{{end}}</p>{{end}}

{{with .Featured}}
<section class="hero">
  <span class="badge">Новинка</span>
  <h2>{{.Title}}</h2>
  <div class="meta">★ {{rating .Rating}} · {{.Year}}</div>
  {{if .Description}}<p>{{.Description}}</p>{{end}}
</section>
{{end}}

<section>
  <h2>{{.Heading}}</h2>
  {{if .TypeTabs}}
  <nav class="types">
  {{range .TypeTabs}}
    <form method="post" action="/type"><input type="hidden" name="type" value="{{.Value}}" /><button type="submit"{{if .Active}} class="active"{{end}}>{{.Label}}</button></form>
  {{end}}
  </nav>
  {{end}}
  {{if .Empty}}
    {{if eq .View "favorites"}}
    <div class="empty">
      <h3>Избранное пусто</h3>
      <p class="meta">Добавьте видео в избранное, чтобы они отображались здесь</p>
    </div>
    {{else}}
    <p class="empty meta">Ничего не найдено</p>
    {{end}}
  {{else}}
  <div class="grid">
  {{range .Entries}}
    <article class="card" data-id="{{.ID}}">
      {{if .CoverURL}}<img src="{{.CoverURL}}" alt="{{.Title}}" loading="lazy" />{{end}}
      <div class="body">
        <div><strong>{{.Title}}</strong> {{if .Watched}}<span class="badge">Просмотрено</span>{{end}}</div>
        <div class="meta">{{typeLabel .Type}} · {{.Year}} · ★ {{rating .Rating}}{{with .EpisodeCount}} · {{.}} эп.{{end}}</div>
        <form method="post" action="/entries/{{.ID}}/toggle">
          <button type="submit">{{if .Watched}}Убрать из избранного{{else}}В избранное{{end}}</button>
        </form>
      </div>
    </article>
  {{end}}
  </div>
  {{end}}
</section>

<fieldset>
  <legend>Загрузить видео</legend>
  {{if .FormErr}}<p class="error">{{.FormErr}}</p>{{end}}
  <form method="post" action="/entries">
    <label>Название <input name="title" placeholder="Введите название" required /></label>
    <label>Тип контента
      <select name="type">
      {{range .Types}}<option value="{{.}}">{{typeLabel .}}</option>{{end}}
      </select>
    </label>
    <label>Обложка (URL) <input name="cover_url" placeholder="https://..." /></label>
    <label>Год <input name="year" type="number" placeholder="2024" /></label>
    <label>Рейтинг <input name="rating" type="number" step="0.1" placeholder="8.5" /></label>
    <label>Эпизоды <input name="episodes" type="number" min="1" /></label>
    <label>Описание <textarea name="description" rows="3" placeholder="Краткое описание..."></textarea></label>
    <label><input type="checkbox" name="owned" value="1" checked /> Моё видео</label>
    <button type="submit">Загрузить видео</button>
  </form>
</fieldset>
`
