package errors

import "text/template"

var errorTemplate = template.Must(template.New("error").Parse(`{{.Type}}: {{.Title}}

{{.Description}}
{{- with .Resolution}}
{{.}}{{end}}
`))

// detailedError is implemented by errors that can explain themselves to an end-user, see `SpawnError`.
type detailedError interface {
	error
	Type() string
	Description() string
	Resolution() string
}

type templateVariables struct {
	Title       string
	Type        string
	Description string
	Resolution  string
}

// Validate makes sure that a decorated error has at least a type, a title and a description to show.
func (t templateVariables) Validate() error {
	for field, value := range map[string]string{"title": t.Title, "type": t.Type, "description": t.Description} {
		if value == "" {
			return NewInternalError("decorated error is missing a %s", field)
		}
	}

	return nil
}
