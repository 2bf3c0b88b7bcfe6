package validation

import (
	"sort"
	"strconv"
	"strings"

	"mysterycheck/domain/mystery"
	"mysterycheck/internal/analysis"
)

// Result is the outcome of a single consistency check: a pass/fail flag and
// a human-readable multi-line details string enumerating every violation
// found (or a short confirmation on success). Checks accumulate all
// violations before returning; none short-circuit on the first failure.
type Result struct {
	CheckName string `json:"check_name"`
	Passed    bool   `json:"passed"`
	Details   string `json:"details"`
}

// Inputs bundles the immutable snapshots the battery consumes. Analysis
// outputs are precomputed once and shared; no check mutates anything here.
type Inputs struct {
	Dataset          *mystery.Dataset
	ClueAnalysis     map[string]analysis.CharacterClues
	DifficultyGroups map[analysis.Difficulty][]string
	SceneComplexity  map[int]analysis.SceneComplexity
}

// Check pairs a display name with a runner over the shared inputs.
type Check struct {
	Name string
	Run  func(in Inputs) Result
}

// Battery returns the full ordered battery of consistency and balance
// checks. Order only affects report layout; the checks are independent.
func Battery() []Check {
	return []Check{
		{"Everyone Appears", func(in Inputs) Result {
			return CheckEveryoneAppears(in.Dataset.Characters, in.Dataset.Evidence)
		}},
		{"Death Scenes Valid", func(in Inputs) Result {
			return CheckDeathScenesValid(in.Dataset.Characters, in.Dataset.Evidence)
		}},
		{"Characters Have Identifying Clues", func(in Inputs) Result {
			return CheckIdentifyingClues(in.Dataset.Characters, in.Dataset.Evidence)
		}},
		{"Scenes Have Characters", func(in Inputs) Result {
			return CheckScenesHaveCharacters(in.Dataset.Evidence)
		}},
		{"Dialogue Speakers Exist", func(in Inputs) Result {
			return CheckDialogueSpeakers(in.Dataset.Characters, in.Dataset.Dialogue)
		}},
		{"Timeline Consistency (No Ghosts)", func(in Inputs) Result {
			return CheckTimelineConsistency(in.Dataset.Characters, in.Dataset.Evidence)
		}},
		{"Difficulty Balance", func(in Inputs) Result {
			return CheckDifficultyBalance(in.DifficultyGroups)
		}},
		{"Scene Complexity", func(in Inputs) Result {
			return CheckSceneComplexity(in.SceneComplexity)
		}},
		{"Clue Type Diversity", func(in Inputs) Result {
			return CheckClueTypeDiversity(in.ClueAnalysis)
		}},
		{"Death Attribution Complete", func(in Inputs) Result {
			return CheckDeathAttribution(in.Dataset.Characters)
		}},
	}
}

// joinIssues renders accumulated violation lines as one details block.
func joinIssues(issues []string) string {
	return strings.Join(issues, "\n")
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}

func joinSceneNumbers(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedCharacterNames(characters map[string]mystery.Character) []string {
	names := make([]string, 0, len(characters))
	for name := range characters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
