package webserver

import "html/template"

const layoutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} - F1 charts</title>
<style>
body { font-family: sans-serif; margin: 0; background: #15151e; color: #e0e0e0; }
nav { background: #e10600; padding: 0.6em 1em; }
nav a { color: #fff; margin-right: 1.2em; text-decoration: none; }
nav a.active { font-weight: bold; text-decoration: underline; }
main { padding: 1em; }
form { margin-bottom: 1em; }
input { width: 5em; }
.error { color: #ff6b6b; font-weight: bold; }
.chart { background: #fff; max-width: 100%; }
pre { font-size: 0.85em; }
</style>
</head>
<body>
<nav>
{{- range .Nav}}
<a href="{{.Route}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a>
{{- end}}
</nav>
<main>
<h1>{{.Title}}</h1>
{{template "form" .}}
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{if .Image}}<img class="chart" src="{{.Image}}" alt="{{.Title}}">{{end}}
{{if .Caption}}<p>{{.Caption}}</p>{{end}}
{{if .Summary}}<pre>{{.Summary}}</pre>{{end}}
</main>
</body>
</html>
`

const speedMapFormTemplate = `{{define "form"}}<form method="post" action="/">
<label>Weekend <input name="wknd" value="{{.Form.Round}}"></label>
<label>Session <input name="ses" value="{{.Form.Session}}"></label>
<label>Driver <input name="driver" value="{{.Form.Driver}}"></label>
<button type="submit">Draw</button>
<small>Season {{.Season}}</small>
</form>{{end}}`

const roundFormTemplate = `{{define "form"}}<form method="post" action="{{.Route}}">
<label>Weekend <input name="wknd" value="{{.Form.Round}}"></label>
<button type="submit">Draw</button>
<small>Season {{.Season}}</small>
</form>{{end}}`

const noFormTemplate = `{{define "form"}}{{end}}`

var (
	tmplSpeedMap = mustPage(speedMapFormTemplate)
	tmplRound    = mustPage(roundFormTemplate)
	tmplColormap = mustPage(noFormTemplate)
)

func mustPage(form string) *template.Template {
	t := template.Must(template.New("layout").Parse(layoutTemplate))
	return template.Must(t.Parse(form))
}
