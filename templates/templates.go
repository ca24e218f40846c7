// Package templates embeds the HTML pages so the server ships as a single
// binary with no template directory to deploy.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

func Must() *template.Template {
	return template.Must(template.ParseFS(files, "*.html"))
}
