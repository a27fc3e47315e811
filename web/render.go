package web

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/vfg2006/retail-sales-api/pkg/utils"
)

const layoutFile = "templates/layout.html"

// Renderer guarda um conjunto de templates por página, cada um combinado com o layout
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"money": utils.FormatMoney,
	"month": func(t time.Time) string { return t.Format("01/2006") },
	"monthKey": func(key string) string {
		t, err := utils.ParseMonth(key)
		if err != nil {
			return key
		}
		return t.Format("01/2006")
	},
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"plural": func(n int, singular, plural string) string {
		if n == 1 {
			return fmt.Sprintf("%d %s", n, singular)
		}
		return fmt.Sprintf("%d %s", n, plural)
	},
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
}

// Pages são os templates servidos pela aplicação
var Pages = []string{
	"login.html",
	"home.html",
	"stores.html",
	"store_form.html",
	"store_detail.html",
	"store_sales.html",
	"sales.html",
	"sales_form.html",
	"dashboard.html",
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(Pages))}

	for _, page := range Pages {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(TemplatesFS, layoutFile, "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("erro ao carregar template %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}

	return r, nil
}

// Render executa a página informada dentro do layout
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("template %s não registrado", page)
	}

	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("erro ao renderizar %s: %w", page, err)
	}
	return nil
}
