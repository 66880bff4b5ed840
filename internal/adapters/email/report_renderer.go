package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"

	"studyspots/internal/domain"
)

const reportHTMLTemplate = `<html>
<body>
<p>The study spot directory document from <strong>{{.Source}}</strong> failed validation
at {{.CheckedAt.Format "2006-01-02 15:04 MST"}}. No release was made.</p>
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Kind</th><th>Path</th><th>Problem</th></tr>
{{range .Violations}}<tr><td>{{.Kind}}</td><td>{{.Path}}</td><td>{{.Message}}</td></tr>
{{end}}</table>
</body>
</html>
`

const reportTextTemplate = `The study spot directory document from {{.Source}} failed validation
at {{.CheckedAt.Format "2006-01-02 15:04 MST"}}. No release was made.

{{range .Violations}}- [{{.Kind}}] {{.Path}}: {{.Message}}
{{end}}`

// reportRenderer implements domain.ReportRenderer with inline templates;
// the violation report is the only mail this system sends.
type reportRenderer struct {
	html *template.Template
	text *texttemplate.Template
}

// NewReportRenderer returns the violation report renderer.
func NewReportRenderer() domain.ReportRenderer {
	return &reportRenderer{
		html: template.Must(template.New("report").Parse(reportHTMLTemplate)),
		text: texttemplate.Must(texttemplate.New("report").Parse(reportTextTemplate)),
	}
}

func (r *reportRenderer) Render(report *domain.ViolationReport) (subject, htmlBody, textBody string, err error) {
	subject = fmt.Sprintf("Study spot directory: %d validation violation(s) in %s", len(report.Violations), report.Source)

	var html bytes.Buffer
	if err := r.html.Execute(&html, report); err != nil {
		return "", "", "", fmt.Errorf("render html report: %w", err)
	}
	var text bytes.Buffer
	if err := r.text.Execute(&text, report); err != nil {
		return "", "", "", fmt.Errorf("render text report: %w", err)
	}
	return strings.TrimSpace(subject), html.String(), text.String(), nil
}
