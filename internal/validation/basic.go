package validation

import (
	"fmt"
	"sort"
	"strings"

	"mysterycheck/domain/mystery"
)

// CheckEveryoneAppears verifies that the set of character names seen in the
// evidence covers the full character roster. Evidence rows that reference an
// unknown character are reported as a distinct error class rather than
// silently dropped; they are an integrity risk the one-directional set
// difference of the roster check would otherwise miss.
func CheckEveryoneAppears(characters map[string]mystery.Character, evidence []mystery.SceneEvidence) Result {
	appeared := make(map[string]bool)
	unknown := make(map[string]bool)

	for _, ev := range evidence {
		appeared[ev.CharacterName] = true
		if _, ok := characters[ev.CharacterName]; !ok {
			unknown[ev.CharacterName] = true
		}
	}

	var missing []string
	for name := range characters {
		if !appeared[name] {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)

	var issues []string
	if len(missing) > 0 {
		issues = append(issues, fmt.Sprintf("These characters do not appear in any scenes: %s", joinNames(missing)))
	}
	if len(unknown) > 0 {
		issues = append(issues, fmt.Sprintf("Evidence references unknown characters: %s", joinNames(sortedKeys(unknown))))
	}

	if len(issues) > 0 {
		return Result{CheckName: "Everyone Appears", Passed: false, Details: joinIssues(issues)}
	}

	return Result{
		CheckName: "Everyone Appears",
		Passed:    true,
		Details:   fmt.Sprintf("All %d characters appear in at least one scene.", len(characters)),
	}
}

// CheckDeathScenesValid verifies that every dead character's recorded death
// scene is backed by evidence: the scene number exists, exactly one evidence
// record carries the death flag, and that record's scene matches the
// character's death scene. All violations across all dead characters
// accumulate before the result is returned.
func CheckDeathScenesValid(characters map[string]mystery.Character, evidence []mystery.SceneEvidence) Result {
	sceneNumbers := make(map[int]bool)
	for _, ev := range evidence {
		sceneNumbers[ev.SceneNumber] = true
	}

	var issues []string
	deadCount := 0

	for _, name := range sortedCharacterNames(characters) {
		character := characters[name]
		if !character.IsDead() {
			continue
		}
		deadCount++
		deathScene := *character.DeathScene

		if !sceneNumbers[deathScene] {
			issues = append(issues, fmt.Sprintf(
				"%s dies in scene %d but no evidence exists for that scene", name, deathScene))
		}

		var deathRecords []mystery.SceneEvidence
		for _, ev := range evidence {
			if ev.CharacterName == name && ev.DiesInThisScene {
				deathRecords = append(deathRecords, ev)
			}
		}

		switch {
		case len(deathRecords) == 0:
			issues = append(issues, fmt.Sprintf(
				"%s is marked as dead but no scene evidence shows them dying", name))
		case len(deathRecords) > 1:
			issues = append(issues, fmt.Sprintf(
				"%s has %d evidence records marked as the death event (expected exactly one)",
				name, len(deathRecords)))
		}
		for _, ev := range deathRecords {
			if ev.SceneNumber != deathScene {
				issues = append(issues, fmt.Sprintf(
					"%s death scene mismatch: character death_scene=%d but evidence shows dying in scene %d",
					name, deathScene, ev.SceneNumber))
			}
		}
	}

	if len(issues) > 0 {
		return Result{CheckName: "Death Scenes Valid", Passed: false, Details: joinIssues(issues)}
	}

	return Result{
		CheckName: "Death Scenes Valid",
		Passed:    true,
		Details:   fmt.Sprintf("All %d dead characters have valid death scenes.", deadCount),
	}
}

// CheckIdentifyingClues verifies that every character fires at least one of
// the 14 clue signals somewhere across their evidence records.
func CheckIdentifyingClues(characters map[string]mystery.Character, evidence []mystery.SceneEvidence) Result {
	hasClues := make(map[string]bool)
	for _, ev := range evidence {
		if ev.HasAnyClue() {
			hasClues[ev.CharacterName] = true
		}
	}

	var withoutClues []string
	for name := range characters {
		if !hasClues[name] {
			withoutClues = append(withoutClues, name)
		}
	}
	sort.Strings(withoutClues)

	if len(withoutClues) > 0 {
		return Result{
			CheckName: "Characters Have Identifying Clues",
			Passed:    false,
			Details:   fmt.Sprintf("These characters have no identifying clues: %s", joinNames(withoutClues)),
		}
	}

	return Result{
		CheckName: "Characters Have Identifying Clues",
		Passed:    true,
		Details:   fmt.Sprintf("All %d characters have at least one identifying clue.", len(characters)),
	}
}

// CheckScenesHaveCharacters verifies that no scene maps to an empty
// character set. Over evidence-derived data a scene number only exists
// because at least one record created it, so this check cannot fail; it is
// kept as a guard for future scene sources that declare scenes up front.
func CheckScenesHaveCharacters(evidence []mystery.SceneEvidence) Result {
	scenes := make(map[int][]string)
	for _, ev := range evidence {
		scenes[ev.SceneNumber] = append(scenes[ev.SceneNumber], ev.CharacterName)
	}

	var empty []int
	for num, chars := range scenes {
		if len(chars) == 0 {
			empty = append(empty, num)
		}
	}
	sort.Ints(empty)

	if len(empty) > 0 {
		return Result{
			CheckName: "Scenes Have Characters",
			Passed:    false,
			Details:   fmt.Sprintf("These scenes have no characters: %s", joinSceneNumbers(empty)),
		}
	}

	return Result{
		CheckName: "Scenes Have Characters",
		Passed:    true,
		Details:   fmt.Sprintf("All %d scenes have at least one character.", len(scenes)),
	}
}

// CheckDialogueSpeakers verifies that every dialogue line has a non-empty
// speaker that exists in the character roster. Empty speakers and unknown
// speakers are reported separately; either fails the check.
func CheckDialogueSpeakers(characters map[string]mystery.Character, dialogue []mystery.Dialogue) Result {
	unknown := make(map[string]bool)
	emptyCount := 0
	validSpeakers := make(map[string]bool)

	for _, line := range dialogue {
		speaker := strings.TrimSpace(line.Speaker)
		switch {
		case speaker == "":
			emptyCount++
		default:
			if _, ok := characters[line.Speaker]; !ok {
				unknown[line.Speaker] = true
			} else {
				validSpeakers[line.Speaker] = true
			}
		}
	}

	var issues []string
	if emptyCount > 0 {
		issues = append(issues, fmt.Sprintf("%d dialogue lines have empty/missing speakers", emptyCount))
	}
	if len(unknown) > 0 {
		issues = append(issues, fmt.Sprintf("Unknown speakers: %s", joinNames(sortedKeys(unknown))))
	}

	if len(issues) > 0 {
		return Result{CheckName: "Dialogue Speakers Exist", Passed: false, Details: joinIssues(issues)}
	}

	return Result{
		CheckName: "Dialogue Speakers Exist",
		Passed:    true,
		Details:   fmt.Sprintf("All %d dialogue speakers are valid characters.", len(validSpeakers)),
	}
}
