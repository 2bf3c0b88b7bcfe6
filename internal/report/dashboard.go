package report

import (
	"html/template"
	"io"
	"os"
	"strings"

	"mysterycheck/app"
	"mysterycheck/internal/errors"
)

// dashboardCheck is the per-check view model for the dashboard template.
type dashboardCheck struct {
	Name        string
	Passed      bool
	Summary     string
	DetailLines []string
}

// dashboardData feeds the dashboard template.
type dashboardData struct {
	RunID       string
	Total       int
	Passing     int
	Failing     int
	SuccessRate int
	Checks      []dashboardCheck
}

var dashboardTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Validation Dashboard</title>
    <style>
        body { font-family: -apple-system, "Segoe UI", sans-serif; background: #f4f5f7; margin: 0; }
        .container { max-width: 960px; margin: 0 auto; padding: 2rem; }
        h1 { margin-bottom: 0.25rem; }
        .subtitle { color: #666; margin-top: 0; }
        .summary-grid { display: grid; grid-template-columns: repeat(4, 1fr); gap: 1rem; margin: 1.5rem 0; }
        .summary-card { background: white; border-radius: 8px; padding: 1rem; text-align: center; box-shadow: 0 1px 3px rgba(0,0,0,0.1); }
        .summary-number { font-size: 2rem; font-weight: 700; }
        .summary-label { color: #666; font-size: 0.85rem; }
        .summary-pass .summary-number { color: #16a34a; }
        .summary-fail .summary-number { color: #dc2626; }
        .check-card { background: white; border-radius: 8px; padding: 1rem; margin-bottom: 0.75rem; box-shadow: 0 1px 3px rgba(0,0,0,0.1); border-left: 4px solid #16a34a; }
        .check-fail { border-left-color: #dc2626; }
        .check-header { display: flex; justify-content: space-between; font-weight: 600; }
        .check-status { color: #16a34a; }
        .check-fail .check-status { color: #dc2626; }
        .check-details { color: #444; font-size: 0.9rem; margin-top: 0.5rem; }
        .check-details ul { margin: 0.25rem 0 0 1.25rem; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Validation Dashboard</h1>
        <p class="subtitle">Run {{.RunID}}</p>

        <div class="summary-grid">
            <div class="summary-card"><div class="summary-number">{{.Total}}</div><div class="summary-label">Total Checks</div></div>
            <div class="summary-card summary-pass"><div class="summary-number">{{.Passing}}</div><div class="summary-label">Passing</div></div>
            <div class="summary-card summary-fail"><div class="summary-number">{{.Failing}}</div><div class="summary-label">Failing</div></div>
            <div class="summary-card"><div class="summary-number">{{.SuccessRate}}%</div><div class="summary-label">Success Rate</div></div>
        </div>

        {{range .Checks}}
        <div class="check-card{{if not .Passed}} check-fail{{end}}">
            <div class="check-header">
                <span class="check-name">{{.Name}}</span>
                <span class="check-status">{{if .Passed}}PASS{{else}}FAIL{{end}}</span>
            </div>
            <div class="check-details">
                <p>{{.Summary}}</p>
                {{if .DetailLines}}<ul>{{range .DetailLines}}<li>{{.}}</li>{{end}}</ul>{{end}}
            </div>
        </div>
        {{end}}
    </div>
</body>
</html>
`))

// RenderDashboard writes the HTML validation dashboard for one report.
func RenderDashboard(w io.Writer, report *app.AuditReport) error {
	data := dashboardData{
		RunID:   report.RunID,
		Total:   len(report.Results),
		Passing: report.PassedCount(),
	}
	data.Failing = data.Total - data.Passing
	if data.Total > 0 {
		data.SuccessRate = data.Passing * 100 / data.Total
	}

	for _, result := range report.Results {
		lines := strings.Split(result.Details, "\n")
		check := dashboardCheck{
			Name:    result.CheckName,
			Passed:  result.Passed,
			Summary: lines[0],
		}
		if len(lines) > 1 {
			check.DetailLines = lines[1:]
		}
		data.Checks = append(data.Checks, check)
	}

	if err := dashboardTemplate.Execute(w, data); err != nil {
		return errors.Wrap(err, "failed to render dashboard")
	}
	return nil
}

// WriteDashboard renders the dashboard to a file.
func WriteDashboard(report *app.AuditReport, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create dashboard file %s", path)
	}
	defer f.Close()
	return RenderDashboard(f, report)
}
