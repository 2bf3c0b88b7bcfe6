package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mysterycheck/app"
	"mysterycheck/internal/analysis"
	"mysterycheck/internal/validation"
)

func sampleReport() *app.AuditReport {
	return &app.AuditReport{
		RunID:          "test-run",
		GeneratedAt:    time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		CharacterCount: 3,
		EvidenceCount:  6,
		DialogueCount:  4,
		DeadCount:      1,
		ClueAnalysis: map[string]analysis.CharacterClues{
			"Alice": {Name: "Alice", TotalClues: 8, Difficulty: analysis.VeryEasy},
			"Bob":   {Name: "Bob", TotalClues: 4, Difficulty: analysis.Medium},
			"Carol": {Name: "Carol", TotalClues: 1, Difficulty: analysis.VeryHard},
		},
		Appearances:       map[string]int{"Alice": 3, "Bob": 2, "Carol": 1},
		AppearanceSummary: analysis.AppearanceSummary{MinCount: 1, MinName: "Carol", MaxCount: 3, MaxName: "Alice", Mean: 2, Median: 2},
		ClueDistribution:  analysis.ClueDistribution{Mean: 4.33, StdDev: 3.51},
		DifficultyGroups: map[analysis.Difficulty][]string{
			analysis.VeryEasy: {"Alice"},
			analysis.Easy:     {},
			analysis.Medium:   {"Bob"},
			analysis.Hard:     {},
			analysis.VeryHard: {"Carol"},
		},
		Results: []validation.Result{
			{CheckName: "Everyone Appears", Passed: true, Details: "All 3 characters appear in at least one scene."},
			{CheckName: "Timeline Consistency (No Ghosts)", Passed: false,
				Details: "GHOST: Carol appears in scene 5 but died in scene 2"},
		},
		AllPassed: false,
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	WriteText(&buf, sampleReport())
	out := buf.String()

	assert.Contains(t, out, "[PASS] Everyone Appears")
	assert.Contains(t, out, "[FAIL] Timeline Consistency (No Ghosts)")
	assert.Contains(t, out, "GHOST: Carol appears in scene 5")
	assert.Contains(t, out, "GAME BALANCE ANALYSIS")
	assert.Contains(t, out, "1/2 checks passed")
	// VERY HARD characters land in the attention list.
	assert.Contains(t, out, "Carol")
}

func TestBuildMarkdown(t *testing.T) {
	md := BuildMarkdown(sampleReport())

	assert.True(t, strings.HasPrefix(md, "# Mystery Validation Report"))
	assert.Contains(t, md, "| Everyone Appears | PASS |")
	assert.Contains(t, md, "| Timeline Consistency (No Ghosts) | **FAIL** |")
	assert.Contains(t, md, "## Difficulty Distribution")
	assert.Contains(t, md, "## Characters Needing Attention")
	assert.Contains(t, md, "Carol: 1 clues, 1 scenes")
}

func TestRenderDashboard(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderDashboard(&buf, sampleReport()))
	out := buf.String()

	assert.Contains(t, out, "Validation Dashboard")
	assert.Contains(t, out, "Run test-run")
	assert.Contains(t, out, "Everyone Appears")
	assert.Contains(t, out, "check-fail")
	assert.Contains(t, out, "50%")
}
