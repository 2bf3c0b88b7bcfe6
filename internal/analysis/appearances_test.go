package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mysterycheck/domain/mystery"
)

func TestAnalyzeAppearances(t *testing.T) {
	characters := map[string]mystery.Character{
		"Alice": {Name: "Alice"},
		"Bob":   {Name: "Bob"},
		"Carol": {Name: "Carol"},
	}
	evidence := []mystery.SceneEvidence{
		{CharacterName: "Alice", SceneNumber: 1},
		{CharacterName: "Alice", SceneNumber: 1}, // same scene counts once
		{CharacterName: "Alice", SceneNumber: 3},
		{CharacterName: "Bob", SceneNumber: 2},
	}

	appearances := AnalyzeAppearances(characters, evidence)

	assert.Equal(t, 2, appearances["Alice"])
	assert.Equal(t, 1, appearances["Bob"])
	assert.Equal(t, 0, appearances["Carol"])
}

func TestSummarizeAppearances(t *testing.T) {
	appearances := map[string]int{
		"Alice": 2,
		"Bob":   4,
		"Carol": 2,
	}

	summary := SummarizeAppearances(appearances)

	// Alice and Carol tie on the minimum; sorted order makes Alice win.
	assert.Equal(t, 2, summary.MinCount)
	assert.Equal(t, "Alice", summary.MinName)
	assert.Equal(t, 4, summary.MaxCount)
	assert.Equal(t, "Bob", summary.MaxName)
	assert.InDelta(t, 8.0/3.0, summary.Mean, 1e-9)
	assert.InDelta(t, 2.0, summary.Median, 1e-9)
}

func TestSummarizeAppearances_Empty(t *testing.T) {
	assert.Equal(t, AppearanceSummary{}, SummarizeAppearances(nil))
}
