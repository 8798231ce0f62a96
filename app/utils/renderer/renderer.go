package renderer

import (
	"embed"
	"html/template"
	"strings"

	"github.com/JadeHarbert/CourseProject/app/utils/format"
	"github.com/unrolled/render"
)

// New builds the HTML renderer over templates/ in fsys. Every page is wrapped
// in templates/layout.html.
func New(fsys embed.FS, isDevelopment bool) *render.Render {
	return render.New(render.Options{
		Directory:     "templates",
		FileSystem:    &render.EmbedFileSystem{FS: fsys},
		Layout:        "layout",
		Extensions:    []string{".html"},
		IsDevelopment: isDevelopment,
		Funcs: []template.FuncMap{
			{
				"formatPrice": format.Price,
				"join":        strings.Join,
				"contains": func(list []string, s string) bool {
					for _, v := range list {
						if v == s {
							return true
						}
					}
					return false
				},
			},
		},
	})
}
