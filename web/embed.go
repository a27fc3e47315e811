// Package web contém os templates HTML das páginas, embutidos no binário
package web

import "embed"

//go:embed templates/*.html
var TemplatesFS embed.FS
