package tabular

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeFixtureFiles(t *testing.T, dir string) (string, string, string) {
	t.Helper()
	charactersPath := writeTempFile(t, dir, "characters.csv",
		"name,role,nationality,build,cause_of_death,killer,death_scene\n"+
			"Alice,Captain,British,slim,Stabbed,Bob,3\n"+
			"Bob,Steward,French,stocky,,,\n")
	evidencePath := writeTempFile(t, dir, "scene_evidence.csv",
		"character_name,scene_number,dies_in_this_scene,uniform_visible,accent_audible,additional_visual_clues\n"+
			"Alice,1,false,true,false,red scarf\n"+
			"Alice,3,true,false,false,\n"+
			"Bob,3,false,false,yes,\n")
	dialoguePath := writeTempFile(t, dir, "dialogue.csv",
		"scene_number,line_number,speaker,text,display_time\n"+
			"1,1,Alice,Good evening.,00:01\n"+
			"3,1,Bob,What happened here?,00:12\n")
	return charactersPath, evidencePath, dialoguePath
}

func TestDataReader_Load(t *testing.T) {
	dir := t.TempDir()
	charactersPath, evidencePath, dialoguePath := writeFixtureFiles(t, dir)

	reader := NewDataReader(charactersPath, evidencePath, dialoguePath)
	dataset, err := reader.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, dataset.Characters, 2)
	alice := dataset.Characters["Alice"]
	assert.Equal(t, "Captain", alice.Role)
	assert.Equal(t, "Bob", alice.Killer)
	require.NotNil(t, alice.DeathScene)
	assert.Equal(t, 3, *alice.DeathScene)
	assert.True(t, alice.IsDead())

	bob := dataset.Characters["Bob"]
	assert.Nil(t, bob.DeathScene)
	assert.False(t, bob.IsDead())

	require.Len(t, dataset.Evidence, 3)
	assert.True(t, dataset.Evidence[0].UniformVisible)
	assert.Equal(t, "red scarf", dataset.Evidence[0].AdditionalVisualClues)
	assert.True(t, dataset.Evidence[1].DiesInThisScene)
	assert.True(t, dataset.Evidence[2].AccentAudible) // "yes" spelling

	require.Len(t, dataset.Dialogue, 2)
	assert.Equal(t, "Alice", dataset.Dialogue[0].Speaker)
	assert.Equal(t, "00:12", dataset.Dialogue[1].DisplayTime)
}

func TestDataReader_MissingFile(t *testing.T) {
	dir := t.TempDir()
	_, evidencePath, dialoguePath := writeFixtureFiles(t, dir)

	reader := NewDataReader(filepath.Join(dir, "nope.csv"), evidencePath, dialoguePath)
	_, err := reader.Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "data file not found")
}

func TestDataReader_DuplicateCharacterName(t *testing.T) {
	dir := t.TempDir()
	_, evidencePath, dialoguePath := writeFixtureFiles(t, dir)
	charactersPath := writeTempFile(t, dir, "dupes.csv",
		"name,role\nAlice,Captain\nAlice,Impostor\n")

	reader := NewDataReader(charactersPath, evidencePath, dialoguePath)
	_, err := reader.Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate character name")
}

func TestDataReader_MissingRequiredColumns(t *testing.T) {
	dir := t.TempDir()
	_, evidencePath, dialoguePath := writeFixtureFiles(t, dir)
	charactersPath := writeTempFile(t, dir, "headless.csv",
		"nickname,job\nAlice,Captain\n")

	reader := NewDataReader(charactersPath, evidencePath, dialoguePath)
	_, err := reader.Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns")
}

func TestParseBool(t *testing.T) {
	for _, truthy := range []string{"true", "TRUE", "yes", "1", "x", "X"} {
		assert.True(t, parseBool(truthy), "%q should parse as true", truthy)
	}
	for _, falsy := range []string{"", "false", "no", "0", "maybe"} {
		assert.False(t, parseBool(falsy), "%q should parse as false", falsy)
	}
}

func TestParseOptionalInt(t *testing.T) {
	value, err := parseOptionalInt("")
	require.NoError(t, err)
	assert.Nil(t, value)

	value, err = parseOptionalInt("7")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, 7, *value)

	_, err = parseOptionalInt("seven")
	assert.Error(t, err)
}
