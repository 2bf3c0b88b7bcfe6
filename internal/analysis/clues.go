package analysis

import (
	"sort"

	"mysterycheck/domain/mystery"
)

// Difficulty is the identification-difficulty bucket assigned to a character
// from its total clue count.
type Difficulty string

const (
	VeryEasy Difficulty = "VERY EASY"
	Easy     Difficulty = "EASY"
	Medium   Difficulty = "MEDIUM"
	Hard     Difficulty = "HARD"
	VeryHard Difficulty = "VERY HARD"
)

// Difficulties lists the buckets from easiest to hardest, the order used in
// reports and grouping.
var Difficulties = []Difficulty{VeryEasy, Easy, Medium, Hard, VeryHard}

// CharacterClues is the per-character clue analysis handed to the balance
// checks and the reporting layer.
type CharacterClues struct {
	Name            string                       `json:"name"`
	TotalClues      int                          `json:"total_clues"`
	ClueTypes       map[mystery.ClueCategory]int `json:"clue_types"`
	ScenesWithClues []int                        `json:"scenes_with_clues"` // sorted scene numbers
	Difficulty      Difficulty                   `json:"difficulty"`
}

// DifficultyThresholds holds the four ascending minimum clue counts computed
// from the quintile boundaries of the sorted clue-count vector.
type DifficultyThresholds struct {
	HardMin     int `json:"hard_min"`
	MediumMin   int `json:"medium_min"`
	EasyMin     int `json:"easy_min"`
	VeryEasyMin int `json:"very_easy_min"`
}

// AnalyzeClues counts identifying clues per character and assigns each a
// difficulty bucket using percentile thresholds over all characters.
//
// More clues means easier to identify; characters tied at a threshold land in
// the bucket named by that threshold (the classification checks VERY EASY
// first with >=).
func AnalyzeClues(characters map[string]mystery.Character, evidence []mystery.SceneEvidence) map[string]CharacterClues {
	analysis := make(map[string]CharacterClues, len(characters))
	allCounts := make([]int, 0, len(characters))

	// First pass: tally clue signals for every character.
	for name := range characters {
		types := make(map[mystery.ClueCategory]int, len(mystery.ClueCategories))
		for _, cat := range mystery.ClueCategories {
			types[cat] = 0
		}
		scenesWithClues := make(map[int]bool)

		for _, ev := range evidence {
			if ev.CharacterName != name {
				continue
			}
			fired := false
			for cat, n := range ev.ClueCounts() {
				if n > 0 {
					types[cat] += n
					fired = true
				}
			}
			if fired {
				scenesWithClues[ev.SceneNumber] = true
			}
		}

		total := 0
		for _, n := range types {
			total += n
		}

		scenes := make([]int, 0, len(scenesWithClues))
		for s := range scenesWithClues {
			scenes = append(scenes, s)
		}
		sort.Ints(scenes)

		analysis[name] = CharacterClues{
			Name:            name,
			TotalClues:      total,
			ClueTypes:       types,
			ScenesWithClues: scenes,
		}
		allCounts = append(allCounts, total)
	}

	// Second pass: assign difficulty from the quintile thresholds.
	thresholds := CalculateThresholds(allCounts)
	for name, a := range analysis {
		a.Difficulty = Classify(a.TotalClues, thresholds)
		analysis[name] = a
	}

	return analysis
}

// CalculateThresholds derives the four difficulty boundaries from quintiles
// of the clue-count vector, aiming for roughly 20% of characters per bucket.
//
// The counts are sorted ascending; with n characters the boundaries sit at
// indices 1x, 2x, 3x and 4x (n div 5), clamped to n-1. Characters with equal
// clue counts straddling a boundary all resolve to the same bucket.
func CalculateThresholds(clueCounts []int) DifficultyThresholds {
	if len(clueCounts) == 0 {
		return DifficultyThresholds{}
	}

	sorted := make([]int, len(clueCounts))
	copy(sorted, clueCounts)
	sort.Ints(sorted)

	n := len(sorted)
	quintileSize := n / 5

	boundary := func(i int) int {
		idx := quintileSize * i
		if idx > n-1 {
			idx = n - 1
		}
		return sorted[idx]
	}

	return DifficultyThresholds{
		HardMin:     boundary(1),
		MediumMin:   boundary(2),
		EasyMin:     boundary(3),
		VeryEasyMin: boundary(4),
	}
}

// Classify maps a clue count to its difficulty bucket. Checks run from the
// easiest bucket down; this ordering decides where threshold ties land and
// must not be rearranged.
func Classify(clueCount int, t DifficultyThresholds) Difficulty {
	switch {
	case clueCount >= t.VeryEasyMin:
		return VeryEasy
	case clueCount >= t.EasyMin:
		return Easy
	case clueCount >= t.MediumMin:
		return Medium
	case clueCount >= t.HardMin:
		return Hard
	default:
		return VeryHard
	}
}

// GroupByDifficulty partitions character names into the five buckets. Every
// bucket is present in the result, possibly empty; names are sorted.
func GroupByDifficulty(clueAnalysis map[string]CharacterClues) map[Difficulty][]string {
	groups := make(map[Difficulty][]string, len(Difficulties))
	for _, d := range Difficulties {
		groups[d] = []string{}
	}
	for name, a := range clueAnalysis {
		groups[a.Difficulty] = append(groups[a.Difficulty], name)
	}
	for _, d := range Difficulties {
		sort.Strings(groups[d])
	}
	return groups
}
