package tabular

import (
	"sort"

	"github.com/xuri/excelize/v2"

	"mysterycheck/domain/mystery"
	"mysterycheck/internal/analysis"
	"mysterycheck/internal/errors"
)

// AnalysisWriter exports the per-character clue analysis and the per-scene
// complexity analysis as an XLSX workbook with one sheet per record set.
type AnalysisWriter struct {
	outputPath string
}

// NewAnalysisWriter creates a writer targeting the given .xlsx path.
func NewAnalysisWriter(outputPath string) *AnalysisWriter {
	return &AnalysisWriter{outputPath: outputPath}
}

// Write renders both sheets and saves the workbook.
func (w *AnalysisWriter) Write(
	clueAnalysis map[string]analysis.CharacterClues,
	appearances map[string]int,
	sceneComplexity map[int]analysis.SceneComplexity,
) error {
	f := excelize.NewFile()
	defer f.Close()

	const charactersSheet = "Characters"
	if err := f.SetSheetName("Sheet1", charactersSheet); err != nil {
		return errors.Wrap(err, "failed to rename sheet")
	}

	charHeader := []interface{}{
		"name", "total_clues", "visual", "dialogue", "contextual",
		"relationship", "role", "scenes_with_clues", "appearances", "difficulty",
	}
	if err := setRow(f, charactersSheet, 1, charHeader); err != nil {
		return err
	}

	names := make([]string, 0, len(clueAnalysis))
	for name := range clueAnalysis {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		a := clueAnalysis[name]
		row := []interface{}{
			name,
			a.TotalClues,
			a.ClueTypes[mystery.ClueVisual],
			a.ClueTypes[mystery.ClueDialogue],
			a.ClueTypes[mystery.ClueContextual],
			a.ClueTypes[mystery.ClueRelationship],
			a.ClueTypes[mystery.ClueRole],
			len(a.ScenesWithClues),
			appearances[name],
			string(a.Difficulty),
		}
		if err := setRow(f, charactersSheet, i+2, row); err != nil {
			return err
		}
	}

	const scenesSheet = "Scenes"
	if _, err := f.NewSheet(scenesSheet); err != nil {
		return errors.Wrap(err, "failed to create scenes sheet")
	}
	if err := setRow(f, scenesSheet, 1, []interface{}{"scene_number", "character_count", "complexity_rating"}); err != nil {
		return err
	}

	sceneNumbers := make([]int, 0, len(sceneComplexity))
	for num := range sceneComplexity {
		sceneNumbers = append(sceneNumbers, num)
	}
	sort.Ints(sceneNumbers)

	for i, num := range sceneNumbers {
		info := sceneComplexity[num]
		row := []interface{}{info.SceneNumber, info.CharacterCount, string(info.ComplexityRating)}
		if err := setRow(f, scenesSheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(w.outputPath); err != nil {
		return errors.Wrapf(err, "failed to save workbook %s", w.outputPath)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return errors.Wrap(err, "invalid cell coordinates")
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return errors.Wrapf(err, "failed to set cell %s!%s", sheet, cell)
		}
	}
	return nil
}
