package validation

import (
	"fmt"
	"sort"
	"strings"

	"mysterycheck/domain/mystery"
	"mysterycheck/internal/analysis"
)

// CheckDifficultyBalance validates the shape of the difficulty distribution.
// Hard errors fail the check: no EASY/VERY EASY entry points, or VERY HARD
// characters above 15% of the cast. Fewer than 5 entry points or MEDIUM below
// 20% only produce warnings, which never fail the check.
func CheckDifficultyBalance(groups map[analysis.Difficulty][]string) Result {
	total := 0
	for _, chars := range groups {
		total += len(chars)
	}

	veryEasy := len(groups[analysis.VeryEasy])
	easy := len(groups[analysis.Easy])
	medium := len(groups[analysis.Medium])
	hard := len(groups[analysis.Hard])
	veryHard := len(groups[analysis.VeryHard])

	var issues, warnings []string

	entryPoints := veryEasy + easy
	if entryPoints == 0 {
		issues = append(issues, "No EASY or VERY EASY characters - players will struggle to get started")
	}
	if total > 0 && float64(veryHard) > float64(total)*0.15 {
		issues = append(issues, fmt.Sprintf(
			"%d VERY HARD characters (%.0f%%) - too many near-impossible characters",
			veryHard, float64(veryHard)/float64(total)*100))
	}

	if entryPoints < 5 {
		warnings = append(warnings, fmt.Sprintf(
			"Only %d easy entry points (VERY EASY + EASY) - consider adding more for player onboarding",
			entryPoints))
	}
	if total > 0 && float64(medium) < float64(total)*0.2 {
		warnings = append(warnings, fmt.Sprintf(
			"Only %d MEDIUM characters (%.0f%%) - consider adding more mid-difficulty challenges",
			medium, float64(medium)/float64(total)*100))
	}

	lines := []string{fmt.Sprintf(
		"Difficulty distribution: VERY EASY=%d, EASY=%d, MEDIUM=%d, HARD=%d, VERY HARD=%d",
		veryEasy, easy, medium, hard, veryHard)}
	lines = append(lines, issues...)
	lines = append(lines, warnings...)

	return Result{
		CheckName: "Difficulty Balance",
		Passed:    len(issues) == 0,
		Details:   joinIssues(lines),
	}
}

// CheckSceneComplexity validates the per-scene character counts. Any scene
// with more than 10 characters is a hard error; more than 30% of scenes
// having exactly one character is only a warning.
func CheckSceneComplexity(sceneComplexity map[int]analysis.SceneComplexity) Result {
	var issues, warnings []string

	var singleScenes []int
	var overwhelming []analysis.SceneComplexity
	for num, info := range sceneComplexity {
		if info.CharacterCount == 1 {
			singleScenes = append(singleScenes, num)
		} else if info.CharacterCount > 10 {
			overwhelming = append(overwhelming, info)
		}
	}
	sort.Ints(singleScenes)
	sort.Slice(overwhelming, func(i, j int) bool {
		return overwhelming[i].SceneNumber < overwhelming[j].SceneNumber
	})

	if len(overwhelming) > 0 {
		parts := make([]string, len(overwhelming))
		for i, info := range overwhelming {
			parts[i] = fmt.Sprintf("Scene %d (%d chars)", info.SceneNumber, info.CharacterCount)
		}
		issues = append(issues, fmt.Sprintf("Overwhelming scenes (>10 characters): %s", joinNames(parts)))
	}

	if len(sceneComplexity) > 0 && float64(len(singleScenes)) > float64(len(sceneComplexity))*0.3 {
		warnings = append(warnings, fmt.Sprintf(
			"%d scenes have only 1 character (%.0f%%) - limits cross-referencing opportunities",
			len(singleScenes), float64(len(singleScenes))/float64(len(sceneComplexity))*100))
	}

	ratingCounts := make(map[analysis.ComplexityRating]int)
	for _, info := range sceneComplexity {
		ratingCounts[info.ComplexityRating]++
	}

	lines := []string{fmt.Sprintf(
		"Scene complexity: SIMPLE=%d, BALANCED=%d, COMPLEX=%d, OVERWHELMING=%d",
		ratingCounts[analysis.Simple], ratingCounts[analysis.Balanced],
		ratingCounts[analysis.Complex], ratingCounts[analysis.Overwhelming])}
	lines = append(lines, issues...)
	lines = append(lines, warnings...)

	return Result{
		CheckName: "Scene Complexity",
		Passed:    len(issues) == 0,
		Details:   joinIssues(lines),
	}
}

// CheckClueTypeDiversity flags characters whose clues lean too heavily on a
// single category: with at least 5 total clues, one category above 80% of the
// total counts as unbalanced. The check is advisory by design and always
// passes; its details only summarize the findings.
func CheckClueTypeDiversity(clueAnalysis map[string]analysis.CharacterClues) Result {
	var unbalanced []string

	for _, name := range sortedClueNames(clueAnalysis) {
		data := clueAnalysis[name]
		if data.TotalClues == 0 {
			continue
		}

		maxCat, maxCount := dominantCategory(data.ClueTypes)
		if data.TotalClues >= 5 && float64(maxCount) > float64(data.TotalClues)*0.8 {
			unbalanced = append(unbalanced, fmt.Sprintf(
				"%s: %d/%d clues are %s", name, maxCount, data.TotalClues, maxCat))
		}
	}

	var lines []string
	if len(unbalanced) == 0 {
		lines = append(lines, "All characters have diverse clue types - good variety!")
	} else {
		lines = append(lines, fmt.Sprintf("%d characters have unbalanced clue distributions", len(unbalanced)))
		if len(unbalanced) > 10 {
			lines = append(lines, fmt.Sprintf(
				"%d characters rely heavily on one clue type - reduces gameplay variety", len(unbalanced)))
		} else {
			lines = append(lines, "Characters with unbalanced clue types:\n    "+
				joinIssuesIndented(unbalanced))
		}
	}

	return Result{
		CheckName: "Clue Type Diversity",
		Passed:    true,
		Details:   joinIssues(lines),
	}
}

// CheckDeathAttribution verifies that every dead character carries a
// complete death record: non-empty cause of death, non-empty killer (a name
// or a sentinel), and a death scene. Each missing field category is reported
// on its own line.
func CheckDeathAttribution(characters map[string]mystery.Character) Result {
	var missingCause, missingKiller, missingScene []string
	deadCount := 0

	for _, name := range sortedCharacterNames(characters) {
		character := characters[name]
		if !character.IsDead() {
			continue
		}
		deadCount++

		if strings.TrimSpace(character.CauseOfDeath) == "" {
			missingCause = append(missingCause, name)
		}
		if strings.TrimSpace(character.Killer) == "" {
			missingKiller = append(missingKiller, name)
		}
		if character.DeathScene == nil {
			missingScene = append(missingScene, name)
		}
	}

	var issues []string
	if len(missingCause) > 0 {
		issues = append(issues, fmt.Sprintf("Missing cause of death: %s", joinNames(missingCause)))
	}
	if len(missingKiller) > 0 {
		issues = append(issues, fmt.Sprintf("Missing responsible party: %s", joinNames(missingKiller)))
	}
	if len(missingScene) > 0 {
		issues = append(issues, fmt.Sprintf("Missing death scene: %s", joinNames(missingScene)))
	}

	if len(issues) > 0 {
		return Result{CheckName: "Death Attribution Complete", Passed: false, Details: joinIssues(issues)}
	}

	return Result{
		CheckName: "Death Attribution Complete",
		Passed:    true,
		Details:   fmt.Sprintf("All %d deaths have complete attribution (cause, killer, scene).", deadCount),
	}
}

// dominantCategory returns the category with the highest count, breaking
// ties by category order so results stay deterministic.
func dominantCategory(types map[mystery.ClueCategory]int) (mystery.ClueCategory, int) {
	var maxCat mystery.ClueCategory
	maxCount := -1
	for _, cat := range mystery.ClueCategories {
		if types[cat] > maxCount {
			maxCat = cat
			maxCount = types[cat]
		}
	}
	return maxCat, maxCount
}

func sortedClueNames(clueAnalysis map[string]analysis.CharacterClues) []string {
	names := make([]string, 0, len(clueAnalysis))
	for name := range clueAnalysis {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func joinIssuesIndented(lines []string) string {
	out := ""
	for i, line := range lines {
		if i > 0 {
			out += "\n    "
		}
		out += line
	}
	return out
}
