package tabular

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"mysterycheck/domain/mystery"
	"mysterycheck/internal"
	"mysterycheck/internal/errors"
)

// DataReader loads the three exported dataset files (characters, scene
// evidence, dialogue) into a typed Dataset. Both CSV and XLSX files are
// supported; the extension decides the format per file.
type DataReader struct {
	charactersPath string
	evidencePath   string
	dialoguePath   string
	logger         *internal.Logger
}

// NewDataReader creates a reader over the three dataset files.
func NewDataReader(charactersPath, evidencePath, dialoguePath string) *DataReader {
	return &DataReader{
		charactersPath: charactersPath,
		evidencePath:   evidencePath,
		dialoguePath:   dialoguePath,
		logger:         internal.DefaultLogger,
	}
}

// Load reads and decodes all three files. The file reads run concurrently
// since they are independent; decoding failures abort the whole load.
func (r *DataReader) Load(ctx context.Context) (*mystery.Dataset, error) {
	var characterRows, evidenceRows, dialogueRows [][]string

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := readRows(r.charactersPath)
		characterRows = rows
		return err
	})
	g.Go(func() error {
		rows, err := readRows(r.evidencePath)
		evidenceRows = rows
		return err
	})
	g.Go(func() error {
		rows, err := readRows(r.dialoguePath)
		dialogueRows = rows
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	characters, err := decodeCharacters(characterRows)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", r.charactersPath)
	}
	evidence, err := decodeEvidence(evidenceRows)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", r.evidencePath)
	}
	dialogue, err := decodeDialogue(dialogueRows)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", r.dialoguePath)
	}

	r.logger.Info("[DataReader] Loaded %d characters, %d evidence records, %d dialogue lines",
		len(characters), len(evidence), len(dialogue))

	return &mystery.Dataset{
		Characters: characters,
		Evidence:   evidence,
		Dialogue:   dialogue,
	}, nil
}

// readRows reads a tabular file into raw string rows, header first.
func readRows(path string) ([][]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.LoaderError(fmt.Sprintf("data file not found: %s", path), err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readExcelRows(path)
	default:
		return readCSVRows(path)
	}
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.LoaderError(fmt.Sprintf("failed to open CSV file %s", path), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.LoaderError(fmt.Sprintf("failed to parse CSV file %s", path), err)
	}
	return rows, nil
}

func readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.LoaderError(fmt.Sprintf("failed to open Excel file %s", path), err)
	}
	defer f.Close()

	// Always use Sheet1, matching the exporter's layout.
	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, errors.LoaderError(fmt.Sprintf("failed to read Sheet1 of %s", path), err)
	}
	return rows, nil
}

// header maps column names to indices for positional row access.
type header map[string]int

func newHeader(row []string) header {
	h := make(header, len(row))
	for i, name := range row {
		h[strings.TrimSpace(name)] = i
	}
	return h
}

func (h header) require(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, ok := h[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return errors.InvalidInput(fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")))
	}
	return nil
}

func (h header) cell(row []string, name string) string {
	idx, ok := h[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func decodeCharacters(rows [][]string) (map[string]mystery.Character, error) {
	if len(rows) == 0 {
		return nil, errors.InvalidInput("characters file has no header row")
	}
	h := newHeader(rows[0])
	if err := h.require("name", "role"); err != nil {
		return nil, err
	}

	characters := make(map[string]mystery.Character, len(rows)-1)
	for i, row := range rows[1:] {
		name := h.cell(row, "name")
		if name == "" {
			return nil, errors.InvalidInput(fmt.Sprintf("row %d: character name is empty", i+2))
		}
		if _, exists := characters[name]; exists {
			return nil, errors.InvalidInput(fmt.Sprintf("row %d: duplicate character name %q", i+2, name))
		}

		deathScene, err := parseOptionalInt(h.cell(row, "death_scene"))
		if err != nil {
			return nil, errors.Wrapf(err, "row %d: invalid death_scene for %s", i+2, name)
		}

		characters[name] = mystery.Character{
			Name:         name,
			Role:         h.cell(row, "role"),
			Nationality:  h.cell(row, "nationality"),
			Build:        h.cell(row, "build"),
			CauseOfDeath: h.cell(row, "cause_of_death"),
			Killer:       h.cell(row, "killer"),
			DeathScene:   deathScene,
		}
	}
	return characters, nil
}

func decodeEvidence(rows [][]string) ([]mystery.SceneEvidence, error) {
	if len(rows) == 0 {
		return nil, errors.InvalidInput("scene evidence file has no header row")
	}
	h := newHeader(rows[0])
	if err := h.require("character_name", "scene_number"); err != nil {
		return nil, err
	}

	evidence := make([]mystery.SceneEvidence, 0, len(rows)-1)
	for i, row := range rows[1:] {
		sceneNumber, err := strconv.Atoi(h.cell(row, "scene_number"))
		if err != nil {
			return nil, errors.InvalidInput(fmt.Sprintf("row %d: invalid scene_number %q", i+2, h.cell(row, "scene_number")))
		}

		evidence = append(evidence, mystery.SceneEvidence{
			CharacterName:   h.cell(row, "character_name"),
			SceneNumber:     sceneNumber,
			DiesInThisScene: parseBool(h.cell(row, "dies_in_this_scene")),

			UniformVisible:              parseBool(h.cell(row, "uniform_visible")),
			HoldingSomethingDistinctive: parseBool(h.cell(row, "holding_something_distinctive")),
			DistinctiveFeaturesVisible:  parseBool(h.cell(row, "distinctive_features_visible")),
			BodyPositionRelevant:        parseBool(h.cell(row, "body_position_relevant")),
			AdditionalVisualClues:       h.cell(row, "additional_visual_clues"),

			AccentAudible:           parseBool(h.cell(row, "accent_audible")),
			NameMentionedInDialogue: parseBool(h.cell(row, "name_mentioned_in_dialogue")),
			AdditionalDialogueClues: h.cell(row, "additional_dialogue_clues"),

			EnvironmentalContextRelevant: parseBool(h.cell(row, "environmental_context_relevant")),
			SpatialRelationshipVisible:   parseBool(h.cell(row, "spatial_relationship_visible")),
			AdditionalContextualClues:    h.cell(row, "additional_contextual_clues"),

			RelationshipMentioned: parseBool(h.cell(row, "relationship_mentioned")),

			RoleMentioned:        parseBool(h.cell(row, "role_mentioned")),
			RoleBehaviourVisible: parseBool(h.cell(row, "role_behaviour_visible")),
		})
	}
	return evidence, nil
}

func decodeDialogue(rows [][]string) ([]mystery.Dialogue, error) {
	if len(rows) == 0 {
		return nil, errors.InvalidInput("dialogue file has no header row")
	}
	h := newHeader(rows[0])
	if err := h.require("scene_number", "line_number", "speaker", "text"); err != nil {
		return nil, err
	}

	dialogue := make([]mystery.Dialogue, 0, len(rows)-1)
	for i, row := range rows[1:] {
		sceneNumber, err := strconv.Atoi(h.cell(row, "scene_number"))
		if err != nil {
			return nil, errors.InvalidInput(fmt.Sprintf("row %d: invalid scene_number %q", i+2, h.cell(row, "scene_number")))
		}
		lineNumber, err := strconv.Atoi(h.cell(row, "line_number"))
		if err != nil {
			return nil, errors.InvalidInput(fmt.Sprintf("row %d: invalid line_number %q", i+2, h.cell(row, "line_number")))
		}

		dialogue = append(dialogue, mystery.Dialogue{
			SceneNumber: sceneNumber,
			LineNumber:  lineNumber,
			Speaker:     h.cell(row, "speaker"),
			Text:        h.cell(row, "text"),
			DisplayTime: h.cell(row, "display_time"),
		})
	}
	return dialogue, nil
}

// parseBool accepts the boolean spellings seen in the exported files.
func parseBool(value string) bool {
	switch strings.ToLower(value) {
	case "true", "yes", "1", "x":
		return true
	default:
		return false
	}
}

// parseOptionalInt returns nil for an empty cell.
func parseOptionalInt(value string) (*int, error) {
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, errors.InvalidInput(fmt.Sprintf("not an integer: %q", value))
	}
	return &n, nil
}
