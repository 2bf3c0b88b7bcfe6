package report

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"mysterycheck/app"
	"mysterycheck/internal/analysis"
	"mysterycheck/internal/errors"
)

// BuildMarkdown renders the audit report as a Markdown document: a result
// table, failing-check details, and the balance analysis.
func BuildMarkdown(report *app.AuditReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Mystery Validation Report\n\n")
	fmt.Fprintf(&b, "Run `%s`, generated %s.\n\n", report.RunID, report.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Loaded %d characters, %d evidence records, %d dialogue lines (%d deaths).\n\n",
		report.CharacterCount, report.EvidenceCount, report.DialogueCount, report.DeadCount)

	fmt.Fprintf(&b, "## Checks (%d/%d passed)\n\n", report.PassedCount(), len(report.Results))
	fmt.Fprintf(&b, "| Check | Status |\n|---|---|\n")
	for _, result := range report.Results {
		status := "PASS"
		if !result.Passed {
			status = "**FAIL**"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", result.CheckName, status)
	}
	b.WriteString("\n")

	for _, result := range report.Results {
		if result.Passed {
			continue
		}
		fmt.Fprintf(&b, "### %s\n\n", result.CheckName)
		for _, line := range strings.Split(result.Details, "\n") {
			fmt.Fprintf(&b, "- %s\n", line)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Difficulty Distribution\n\n")
	fmt.Fprintf(&b, "| Difficulty | Characters | Share |\n|---|---|---|\n")
	for _, difficulty := range analysis.Difficulties {
		count := len(report.DifficultyGroups[difficulty])
		percentage := 0.0
		if report.CharacterCount > 0 {
			percentage = float64(count) / float64(report.CharacterCount) * 100
		}
		fmt.Fprintf(&b, "| %s | %d | %.1f%% |\n", difficulty, count, percentage)
	}
	b.WriteString("\n")

	summary := report.AppearanceSummary
	fmt.Fprintf(&b, "## Scene Appearances\n\n")
	fmt.Fprintf(&b, "- Min: %d scenes (%s)\n", summary.MinCount, summary.MinName)
	fmt.Fprintf(&b, "- Max: %d scenes (%s)\n", summary.MaxCount, summary.MaxName)
	fmt.Fprintf(&b, "- Mean: %.1f, median: %.1f\n\n", summary.Mean, summary.Median)

	veryHard := append([]string(nil), report.DifficultyGroups[analysis.VeryHard]...)
	sort.Strings(veryHard)
	fmt.Fprintf(&b, "## Characters Needing Attention\n\n")
	if len(veryHard) == 0 {
		b.WriteString("None - all characters are solvable.\n")
	} else {
		for _, name := range veryHard {
			data := report.ClueAnalysis[name]
			fmt.Fprintf(&b, "- %s: %d clues, %d scenes\n", name, data.TotalClues, report.Appearances[name])
		}
	}

	return b.String()
}

// WriteMarkdown writes the Markdown report to disk.
func WriteMarkdown(report *app.AuditReport, path string) error {
	if err := os.WriteFile(path, []byte(BuildMarkdown(report)), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write markdown report %s", path)
	}
	return nil
}

// WriteMarkdownHTML converts the Markdown report to a standalone HTML page.
func WriteMarkdownHTML(report *app.AuditReport, path string) error {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.CompletePage})

	rendered := markdown.ToHTML([]byte(BuildMarkdown(report)), p, renderer)
	if err := os.WriteFile(path, rendered, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write HTML report %s", path)
	}
	return nil
}
