package page

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

func parseTemplates(funcs template.FuncMap) (*template.Template, error) {
	return template.New("dsawizard").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
}
