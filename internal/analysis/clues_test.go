package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mysterycheck/domain/mystery"
)

func TestCalculateThresholds_Quintiles(t *testing.T) {
	counts := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	thresholds := CalculateThresholds(counts)

	assert.Equal(t, 3, thresholds.HardMin)
	assert.Equal(t, 5, thresholds.MediumMin)
	assert.Equal(t, 7, thresholds.EasyMin)
	assert.Equal(t, 9, thresholds.VeryEasyMin)
}

func TestCalculateThresholds_Empty(t *testing.T) {
	assert.Equal(t, DifficultyThresholds{}, CalculateThresholds(nil))
}

func TestCalculateThresholds_DoesNotMutateInput(t *testing.T) {
	counts := []int{5, 1, 3, 2, 4}
	CalculateThresholds(counts)
	assert.Equal(t, []int{5, 1, 3, 2, 4}, counts)
}

func TestCalculateThresholds_SmallCast(t *testing.T) {
	// With fewer than 5 characters the quintile size is zero and every
	// boundary collapses to the minimum count.
	thresholds := CalculateThresholds([]int{7, 2, 4})

	assert.Equal(t, 2, thresholds.HardMin)
	assert.Equal(t, 2, thresholds.MediumMin)
	assert.Equal(t, 2, thresholds.EasyMin)
	assert.Equal(t, 2, thresholds.VeryEasyMin)
}

func TestClassify_BucketBoundaries(t *testing.T) {
	thresholds := DifficultyThresholds{HardMin: 3, MediumMin: 5, EasyMin: 7, VeryEasyMin: 9}

	tests := []struct {
		clueCount int
		expected  Difficulty
	}{
		{10, VeryEasy},
		{9, VeryEasy}, // tie at boundary resolves upward, not to EASY
		{8, Easy},
		{7, Easy},
		{6, Medium},
		{5, Medium},
		{4, Hard},
		{3, Hard},
		{2, VeryHard},
		{0, VeryHard},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Classify(tt.clueCount, thresholds),
			"clue count %d", tt.clueCount)
	}
}

func TestClassify_MonotonicInClueCount(t *testing.T) {
	thresholds := CalculateThresholds([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})

	rank := map[Difficulty]int{VeryHard: 0, Hard: 1, Medium: 2, Easy: 3, VeryEasy: 4}
	previous := -1
	for count := 0; count <= 12; count++ {
		current := rank[Classify(count, thresholds)]
		assert.GreaterOrEqual(t, current, previous,
			"difficulty must not get harder as clue count %d rises", count)
		previous = current
	}
}

func TestAnalyzeClues(t *testing.T) {
	characters := map[string]mystery.Character{
		"Alice": {Name: "Alice"},
		"Bob":   {Name: "Bob"},
	}
	evidence := []mystery.SceneEvidence{
		{CharacterName: "Alice", SceneNumber: 2, AdditionalVisualClues: "red scarf"},
		{CharacterName: "Alice", SceneNumber: 1, UniformVisible: true, AccentAudible: true},
		{CharacterName: "Alice", SceneNumber: 3}, // no clue signals fire here
		{CharacterName: "Bob", SceneNumber: 1, RoleMentioned: true},
	}

	result := AnalyzeClues(characters, evidence)

	alice := result["Alice"]
	assert.Equal(t, 3, alice.TotalClues)
	assert.Equal(t, 2, alice.ClueTypes[mystery.ClueVisual])
	assert.Equal(t, 1, alice.ClueTypes[mystery.ClueDialogue])
	assert.Equal(t, 0, alice.ClueTypes[mystery.ClueRole])
	assert.Equal(t, []int{1, 2}, alice.ScenesWithClues)

	bob := result["Bob"]
	assert.Equal(t, 1, bob.TotalClues)
	assert.Equal(t, 1, bob.ClueTypes[mystery.ClueRole])
	assert.Equal(t, []int{1}, bob.ScenesWithClues)

	// Every character gets a difficulty assigned.
	assert.NotEmpty(t, alice.Difficulty)
	assert.NotEmpty(t, bob.Difficulty)
}

func TestAnalyzeClues_CharacterWithoutEvidence(t *testing.T) {
	characters := map[string]mystery.Character{"Ghostwriter": {Name: "Ghostwriter"}}

	result := AnalyzeClues(characters, nil)

	assert.Equal(t, 0, result["Ghostwriter"].TotalClues)
	assert.Empty(t, result["Ghostwriter"].ScenesWithClues)
}

func TestGroupByDifficulty(t *testing.T) {
	clueAnalysis := map[string]CharacterClues{
		"Carol": {Name: "Carol", Difficulty: VeryEasy},
		"Alice": {Name: "Alice", Difficulty: VeryEasy},
		"Bob":   {Name: "Bob", Difficulty: Hard},
	}

	groups := GroupByDifficulty(clueAnalysis)

	// All five buckets exist even when empty.
	for _, d := range Difficulties {
		assert.Contains(t, groups, d)
	}
	assert.Equal(t, []string{"Alice", "Carol"}, groups[VeryEasy])
	assert.Equal(t, []string{"Bob"}, groups[Hard])
	assert.Empty(t, groups[Medium])
}
