// Package render turns a Report into a self-contained HTML document.
// The report is delivered as a file attachment rather than an inline
// email body, so the template can use modern CSS freely.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/bleacherbot/bleacherbot/models"
)

// Render produces the standalone HTML report. Pure templating: every
// decision was already made by the compose stage.
func Render(report *models.Report) ([]byte, error) {
	tpl, err := template.New("report").Funcs(template.FuncMap{
		"age": func(t time.Time) string {
			return models.RelativeAge(t, report.GeneratedAt)
		},
		"meterPct": func(score float64) int {
			return int((score + 1) / 2 * 100)
		},
		"scoreText": func(score float64) template.HTML {
			return template.HTML(fmt.Sprintf("%+.2f", score))
		},
		"cat": func(s string) models.Category {
			return models.Category(s)
		},
	}).Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing report template: %w", err)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, report); err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}
	return buf.Bytes(), nil
}
