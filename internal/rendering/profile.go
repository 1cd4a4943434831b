package rendering

import (
	_ "embed"
	"html/template"
	"strings"

	"github.com/jonathan/kandidaten-platform/internal/db"
	"github.com/jonathan/kandidaten-platform/internal/types"
)

//go:embed profile.tmpl
var profileTemplate string

var tmpl = template.Must(template.New("profile").Parse(profileTemplate))

// PageData is the data passed to the profile template. Redacted views
// never carry contact information; the template additionally guards every
// optional section so absent data renders nothing.
type PageData struct {
	Kandidat types.ParsedProfile
	FileName string
	Redacted bool
}

// RenderProfile renders a candidate record as an HTML document. When
// redacted is true the contact section is cleared again before rendering;
// a redacted page never exposes contact fields regardless of the record
// handed in.
func RenderProfile(rec *db.CandidateRecord, redacted bool) (string, error) {
	data := PageData{
		Kandidat: rec.Parsed,
		FileName: rec.FileName,
		Redacted: redacted,
	}
	if redacted {
		data.Kandidat = rec.Parsed.Redacted()
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", &TemplateError{Message: "failed to execute profile template", Cause: err}
	}
	return out.String(), nil
}
