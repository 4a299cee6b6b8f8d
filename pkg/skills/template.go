package skills

import (
	"bytes"
	"embed"
	"text/template"

	"github.com/pkg/errors"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var skillTemplates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// templateData carries the substitution values for skill templates.
type templateData struct {
	Name  string
	Title string
}

// renderTemplate renders the named embedded template with the given data.
func renderTemplate(name string, data templateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := skillTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, errors.Wrapf(err, "failed to render template %s", name)
	}
	return buf.Bytes(), nil
}
