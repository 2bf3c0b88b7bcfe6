package validation

import (
	"fmt"

	"mysterycheck/domain/mystery"
)

// CheckTimelineConsistency detects causal inconsistencies around deaths:
//
//   - Ghost appearances: a dead character with an evidence record at a scene
//     strictly after their death scene where the record is not itself the
//     death event. Re-appearing in the death scene itself is always legal
//     (pre-death evidence in the same scene).
//   - Killer absence: when the killer is a known character (not a sentinel
//     value), they must have an evidence record at the victim's death scene.
//     A killer name absent from the roster is skipped, not failed; that
//     leniency covers off-screen killers and is deliberate.
//
// All violations across all dead characters accumulate before returning.
func CheckTimelineConsistency(characters map[string]mystery.Character, evidence []mystery.SceneEvidence) Result {
	var issues []string
	deadCount := 0

	for _, name := range sortedCharacterNames(characters) {
		character := characters[name]
		if !character.IsDead() {
			continue
		}
		deadCount++
		deathScene := *character.DeathScene

		for _, ev := range evidence {
			if ev.CharacterName != name {
				continue
			}
			if ev.SceneNumber > deathScene && !ev.DiesInThisScene {
				issues = append(issues, fmt.Sprintf(
					"GHOST: %s appears in scene %d but died in scene %d",
					name, ev.SceneNumber, deathScene))
			}
		}

		if character.Killer == "" || character.KillerIsSentinel() {
			continue
		}
		if _, known := characters[character.Killer]; !known {
			continue // cannot verify an off-screen killer
		}

		killerPresent := false
		for _, ev := range evidence {
			if ev.CharacterName == character.Killer && ev.SceneNumber == deathScene {
				killerPresent = true
				break
			}
		}
		if !killerPresent {
			issues = append(issues, fmt.Sprintf(
				"TIMELINE ERROR: %s killed %s in scene %d but killer was not present in that scene",
				character.Killer, name, deathScene))
		}
	}

	if len(issues) > 0 {
		return Result{CheckName: "Timeline Consistency (No Ghosts)", Passed: false, Details: joinIssues(issues)}
	}

	return Result{
		CheckName: "Timeline Consistency (No Ghosts)",
		Passed:    true,
		Details:   fmt.Sprintf("Timeline consistent for all %d deaths - no ghosts detected.", deadCount),
	}
}
