package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"mysterycheck/app"
	"mysterycheck/internal/analysis"
)

// WriteText renders the console report: check outcomes first, then the game
// balance analysis summary.
func WriteText(w io.Writer, report *app.AuditReport) {
	bar := strings.Repeat("=", 80)

	fmt.Fprintln(w, bar)
	fmt.Fprintln(w, "Mystery Dataset Validator")
	fmt.Fprintln(w, bar)
	fmt.Fprintf(w, "Run %s\n", report.RunID)
	fmt.Fprintf(w, "Loaded %d characters, %d evidence records, %d dialogue lines\n\n",
		report.CharacterCount, report.EvidenceCount, report.DialogueCount)

	for _, result := range report.Results {
		status := "PASS"
		if !result.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(w, "[%s] %s\n", status, result.CheckName)
		if !result.Passed {
			for _, line := range strings.Split(result.Details, "\n") {
				fmt.Fprintf(w, "    %s\n", line)
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, bar)
	fmt.Fprintln(w, "GAME BALANCE ANALYSIS")
	fmt.Fprintln(w, bar)
	writeBalanceSummary(w, report)

	fmt.Fprintf(w, "\n%d/%d checks passed\n", report.PassedCount(), len(report.Results))
}

func writeBalanceSummary(w io.Writer, report *app.AuditReport) {
	fmt.Fprintln(w, "Difficulty Distribution:")
	for _, difficulty := range analysis.Difficulties {
		count := len(report.DifficultyGroups[difficulty])
		percentage := 0.0
		if report.CharacterCount > 0 {
			percentage = float64(count) / float64(report.CharacterCount) * 100
		}
		fmt.Fprintf(w, "   %-10s %3d characters (%5.1f%%)\n", difficulty, count, percentage)
	}
	fmt.Fprintln(w)

	summary := report.AppearanceSummary
	fmt.Fprintln(w, "Scene Appearances:")
	fmt.Fprintf(w, "   Min: %d scenes - %s\n", summary.MinCount, summary.MinName)
	fmt.Fprintf(w, "   Max: %d scenes - %s\n", summary.MaxCount, summary.MaxName)
	fmt.Fprintf(w, "   Avg: %.1f scenes per character\n", summary.Mean)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Clue spread: mean %.1f clues per character (stddev %.1f)\n",
		report.ClueDistribution.Mean, report.ClueDistribution.StdDev)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Characters Needing Attention (VERY HARD):")
	veryHard := report.DifficultyGroups[analysis.VeryHard]
	if len(veryHard) == 0 {
		fmt.Fprintln(w, "   None - all characters are solvable!")
		return
	}
	sorted := make([]string, len(veryHard))
	copy(sorted, veryHard)
	sort.Strings(sorted)
	for _, name := range sorted {
		data := report.ClueAnalysis[name]
		fmt.Fprintf(w, "   %-30s %2d clues, %2d scenes\n", name, data.TotalClues, report.Appearances[name])
	}
}
