package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"mysterycheck/domain/mystery"
)

// ComplexityRating classifies a scene by how many distinct characters appear
// in it. The deduction sweet spot sits in the BALANCED band.
type ComplexityRating string

const (
	Simple       ComplexityRating = "SIMPLE"       // <= 2 characters
	Balanced     ComplexityRating = "BALANCED"     // 3-6
	Complex      ComplexityRating = "COMPLEX"      // 7-10
	Overwhelming ComplexityRating = "OVERWHELMING" // 11+
)

// SceneComplexity describes one scene for the balance checks and reports.
type SceneComplexity struct {
	SceneNumber      int              `json:"scene_number"`
	CharacterCount   int              `json:"character_count"`
	Characters       []string         `json:"characters"` // sorted
	ComplexityRating ComplexityRating `json:"complexity_rating"`
}

// RateComplexity maps a distinct-character count to its rating.
func RateComplexity(characterCount int) ComplexityRating {
	switch {
	case characterCount <= 2:
		return Simple
	case characterCount <= 6:
		return Balanced
	case characterCount <= 10:
		return Complex
	default:
		return Overwhelming
	}
}

// AnalyzeSceneComplexity groups evidence by scene number and rates each scene
// by its distinct character count.
func AnalyzeSceneComplexity(evidence []mystery.SceneEvidence) map[int]SceneComplexity {
	scenes := make(map[int]map[string]bool)
	for _, ev := range evidence {
		if scenes[ev.SceneNumber] == nil {
			scenes[ev.SceneNumber] = make(map[string]bool)
		}
		scenes[ev.SceneNumber][ev.CharacterName] = true
	}

	analysis := make(map[int]SceneComplexity, len(scenes))
	for num, present := range scenes {
		names := make([]string, 0, len(present))
		for name := range present {
			names = append(names, name)
		}
		sort.Strings(names)

		analysis[num] = SceneComplexity{
			SceneNumber:      num,
			CharacterCount:   len(names),
			Characters:       names,
			ComplexityRating: RateComplexity(len(names)),
		}
	}

	return analysis
}

// ClueDistribution summarizes the spread of total clue counts across the
// cast. Advisory metrics for the balance report only.
type ClueDistribution struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// SummarizeClueDistribution computes mean and standard deviation of the
// per-character total clue counts.
func SummarizeClueDistribution(clueAnalysis map[string]CharacterClues) ClueDistribution {
	if len(clueAnalysis) == 0 {
		return ClueDistribution{}
	}

	counts := make([]float64, 0, len(clueAnalysis))
	for _, a := range clueAnalysis {
		counts = append(counts, float64(a.TotalClues))
	}

	mean, variance := stat.MeanVariance(counts, nil)
	return ClueDistribution{
		Mean:   mean,
		StdDev: math.Sqrt(variance),
	}
}
