package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mysterycheck/domain/mystery"
)

func scenePtr(n int) *int { return &n }

func TestCheckEveryoneAppears_Pass(t *testing.T) {
	characters := map[string]mystery.Character{
		"Alice": {Name: "Alice"},
		"Bob":   {Name: "Bob"},
	}
	evidence := []mystery.SceneEvidence{
		{CharacterName: "Alice", SceneNumber: 1},
		{CharacterName: "Bob", SceneNumber: 2},
	}

	result := CheckEveryoneAppears(characters, evidence)

	assert.True(t, result.Passed)
	assert.Contains(t, result.Details, "All 2 characters")
}

func TestCheckEveryoneAppears_MissingCharacter(t *testing.T) {
	characters := map[string]mystery.Character{
		"Alice": {Name: "Alice"},
		"Bob":   {Name: "Bob"},
	}
	evidence := []mystery.SceneEvidence{
		{CharacterName: "Alice", SceneNumber: 1},
	}

	result := CheckEveryoneAppears(characters, evidence)

	assert.False(t, result.Passed)
	assert.Contains(t, result.Details, "do not appear in any scenes")
	assert.Contains(t, result.Details, "Bob")
}

func TestCheckEveryoneAppears_UnknownEvidenceCharacter(t *testing.T) {
	characters := map[string]mystery.Character{"Alice": {Name: "Alice"}}
	evidence := []mystery.SceneEvidence{
		{CharacterName: "Alice", SceneNumber: 1},
		{CharacterName: "Impostor", SceneNumber: 2},
	}

	result := CheckEveryoneAppears(characters, evidence)

	assert.False(t, result.Passed)
	assert.Contains(t, result.Details, "unknown characters")
	assert.Contains(t, result.Details, "Impostor")
}

func TestCheckDeathScenesValid_Pass(t *testing.T) {
	characters := map[string]mystery.Character{
		"Alice": {Name: "Alice", DeathScene: scenePtr(3)},
		"Bob":   {Name: "Bob"},
	}
	evidence := []mystery.SceneEvidence{
		{CharacterName: "Alice", SceneNumber: 1},
		{CharacterName: "Alice", SceneNumber: 3, DiesInThisScene: true},
	}

	result := CheckDeathScenesValid(characters, evidence)

	assert.True(t, result.Passed)
	assert.Contains(t, result.Details, "All 1 dead characters")
}

func TestCheckDeathScenesValid_NoDeathRecord(t *testing.T) {
	characters := map[string]mystery.Character{
		"Alice": {Name: "Alice", DeathScene: scenePtr(3)},
	}
	evidence := []mystery.SceneEvidence{
		{CharacterName: "Alice", SceneNumber: 3},
	}

	result := CheckDeathScenesValid(characters, evidence)

	assert.False(t, result.Passed)
	assert.Contains(t, result.Details, "no scene evidence shows them dying")
}

func TestCheckDeathScenesValid_DuplicateDeathRecords(t *testing.T) {
	characters := map[string]mystery.Character{
		"Alice": {Name: "Alice", DeathScene: scenePtr(3)},
	}
	evidence := []mystery.SceneEvidence{
		{CharacterName: "Alice", SceneNumber: 3, DiesInThisScene: true},
		{CharacterName: "Alice", SceneNumber: 3, DiesInThisScene: true},
	}

	result := CheckDeathScenesValid(characters, evidence)

	assert.False(t, result.Passed)
	assert.Contains(t, result.Details, "expected exactly one")
}

func TestCheckDeathScenesValid_SceneMismatch(t *testing.T) {
	characters := map[string]mystery.Character{
		"Alice": {Name: "Alice", DeathScene: scenePtr(3)},
	}
	evidence := []mystery.SceneEvidence{
		{CharacterName: "Alice", SceneNumber: 3},
		{CharacterName: "Alice", SceneNumber: 4, DiesInThisScene: true},
	}

	result := CheckDeathScenesValid(characters, evidence)

	assert.False(t, result.Passed)
	assert.Contains(t, result.Details, "death scene mismatch")
	assert.Contains(t, result.Details, "death_scene=3")
}

func TestCheckDeathScenesValid_MissingScene(t *testing.T) {
	characters := map[string]mystery.Character{
		"Alice": {Name: "Alice", DeathScene: scenePtr(9)},
	}
	evidence := []mystery.SceneEvidence{
		{CharacterName: "Alice", SceneNumber: 1},
	}

	result := CheckDeathScenesValid(characters, evidence)

	assert.False(t, result.Passed)
	assert.Contains(t, result.Details, "dies in scene 9 but no evidence exists for that scene")
}

func TestCheckIdentifyingClues(t *testing.T) {
	characters := map[string]mystery.Character{
		"Alice": {Name: "Alice"},
		"Bob":   {Name: "Bob"},
	}
	evidence := []mystery.SceneEvidence{
		{CharacterName: "Alice", SceneNumber: 1, UniformVisible: true},
		{CharacterName: "Bob", SceneNumber: 1}, // present but no clue signals
	}

	result := CheckIdentifyingClues(characters, evidence)

	assert.False(t, result.Passed)
	assert.Contains(t, result.Details, "Bob")
	assert.NotContains(t, result.Details, "Alice")
}

func TestCheckScenesHaveCharacters(t *testing.T) {
	evidence := []mystery.SceneEvidence{
		{CharacterName: "Alice", SceneNumber: 1},
		{CharacterName: "Bob", SceneNumber: 2},
	}

	result := CheckScenesHaveCharacters(evidence)

	assert.True(t, result.Passed)
	assert.Contains(t, result.Details, "All 2 scenes")
}

func TestCheckDialogueSpeakers_Pass(t *testing.T) {
	characters := map[string]mystery.Character{"Alice": {Name: "Alice"}}
	dialogue := []mystery.Dialogue{
		{SceneNumber: 1, LineNumber: 1, Speaker: "Alice", Text: "Hello."},
	}

	result := CheckDialogueSpeakers(characters, dialogue)

	assert.True(t, result.Passed)
}

func TestCheckDialogueSpeakers_EmptyAndUnknown(t *testing.T) {
	characters := map[string]mystery.Character{"Alice": {Name: "Alice"}}
	dialogue := []mystery.Dialogue{
		{SceneNumber: 1, LineNumber: 1, Speaker: "", Text: "..."},
		{SceneNumber: 1, LineNumber: 2, Speaker: "Stranger", Text: "Who goes there?"},
	}

	result := CheckDialogueSpeakers(characters, dialogue)

	assert.False(t, result.Passed)
	assert.Contains(t, result.Details, "1 dialogue lines have empty/missing speakers")
	assert.Contains(t, result.Details, "Unknown speakers: Stranger")
}

func TestBattery_CoversAllChecks(t *testing.T) {
	battery := Battery()

	assert.Len(t, battery, 10)
	names := make(map[string]bool, len(battery))
	for _, check := range battery {
		assert.NotEmpty(t, check.Name)
		assert.NotNil(t, check.Run)
		assert.False(t, names[check.Name], "duplicate check name %s", check.Name)
		names[check.Name] = true
	}
}
