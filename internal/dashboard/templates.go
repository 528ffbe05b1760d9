package dashboard

import (
	_ "embed"
	"html/template"
	"net/http"
)

//go:embed index.html
var indexHTML []byte

// ServeIndex serves the embedded HTML shell.
func (d *Dashboard) ServeIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

var viewTemplate = template.Must(template.New("view").Parse(`<section class="view view-{{.View.Kind}}" data-section="{{.View.Section}}" data-href="{{.Href}}">
  <h1>{{.View.Title}}{{if eq .View.Resource.Kind.String "id"}} <small>#{{.View.Resource.ID}}</small>{{end}}</h1>
{{- if .View.Requested}}
  <p class="requested">Nothing lives at <code>{{.View.Requested}}</code>.</p>
{{- end}}
{{- if .DescriptionHTML}}
  <div class="description">{{.DescriptionHTML}}</div>
{{- end}}
</section>
`))
