package views

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names accepted by c.HTML.
const (
	PageOrcamentos     = "orcamentos.html"
	PageNovoOrcamento  = "orcamento_novo.html"
	PageDetalhe        = "orcamento_detalhe.html"
	PageEditarItem     = "item_editar.html"
	PageErro           = "erro.html"
	PageNaoEncontrado  = "nao_encontrado.html"
	layoutTemplateName = "layout.html"
)

var pageNames = []string{
	PageOrcamentos,
	PageNovoOrcamento,
	PageDetalhe,
	PageEditarItem,
	PageErro,
	PageNaoEncontrado,
}

// Renderer holds one template set per page, each cloned from the layout.
// It implements gin's render.HTMLRender.
type Renderer struct {
	pages map[string]*template.Template
}

var _ render.HTMLRender = (*Renderer)(nil)

func New() (*Renderer, error) {
	base, err := template.New(layoutTemplateName).Funcs(Funcs()).ParseFS(templatesFS, "templates/"+layoutTemplateName, "templates/_*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		t, err := clone.ParseFS(templatesFS, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// MustNew is New for program start-up.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.pages[name]
	if !ok {
		panic("views: unknown page " + name)
	}
	return render.HTML{Template: t, Name: layoutTemplateName, Data: data}
}

// Static serves the embedded stylesheet.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
