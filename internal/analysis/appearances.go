package analysis

import (
	"sort"

	"github.com/montanaflynn/stats"

	"mysterycheck/domain/mystery"
)

// AppearanceSummary aggregates scene-appearance counts across the cast for
// the reporting layer.
type AppearanceSummary struct {
	MinCount int     `json:"min_count"`
	MinName  string  `json:"min_name"`
	MaxCount int     `json:"max_count"`
	MaxName  string  `json:"max_name"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
}

// AnalyzeAppearances counts the distinct scenes each character has evidence
// in. Clue density does not matter here, only presence.
func AnalyzeAppearances(characters map[string]mystery.Character, evidence []mystery.SceneEvidence) map[string]int {
	appearances := make(map[string]int, len(characters))

	for name := range characters {
		scenes := make(map[int]bool)
		for _, ev := range evidence {
			if ev.CharacterName == name {
				scenes[ev.SceneNumber] = true
			}
		}
		appearances[name] = len(scenes)
	}

	return appearances
}

// SummarizeAppearances computes the min/max/mean/median of per-character
// appearance counts. Ties on min or max resolve to the first name in sorted
// order so the summary is deterministic.
func SummarizeAppearances(appearances map[string]int) AppearanceSummary {
	if len(appearances) == 0 {
		return AppearanceSummary{}
	}

	names := make([]string, 0, len(appearances))
	for name := range appearances {
		names = append(names, name)
	}
	sort.Strings(names)

	summary := AppearanceSummary{MinCount: -1, MaxCount: -1}
	counts := make([]float64, 0, len(names))
	for _, name := range names {
		count := appearances[name]
		counts = append(counts, float64(count))
		if summary.MinCount < 0 || count < summary.MinCount {
			summary.MinCount = count
			summary.MinName = name
		}
		if count > summary.MaxCount {
			summary.MaxCount = count
			summary.MaxName = name
		}
	}

	// Errors only occur on empty input, which is handled above.
	summary.Mean, _ = stats.Mean(counts)
	summary.Median, _ = stats.Median(counts)

	return summary
}
