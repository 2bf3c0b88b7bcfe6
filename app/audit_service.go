package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mysterycheck/internal"
	"mysterycheck/internal/analysis"
	"mysterycheck/internal/errors"
	"mysterycheck/internal/validation"
	"mysterycheck/ports"
)

// AuditReport is the aggregated output of one validation run: the analysis
// records plus every check result. It is the sole contract with the
// reporting and dashboard layers.
type AuditReport struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`

	CharacterCount int `json:"character_count"`
	EvidenceCount  int `json:"evidence_count"`
	DialogueCount  int `json:"dialogue_count"`
	DeadCount      int `json:"dead_count"`

	ClueAnalysis      map[string]analysis.CharacterClues     `json:"clue_analysis"`
	Appearances       map[string]int                         `json:"appearances"`
	AppearanceSummary analysis.AppearanceSummary             `json:"appearance_summary"`
	ClueDistribution  analysis.ClueDistribution              `json:"clue_distribution"`
	DifficultyGroups  map[analysis.Difficulty][]string       `json:"difficulty_groups"`
	SceneComplexity   map[int]analysis.SceneComplexity       `json:"scene_complexity"`

	Results   []validation.Result `json:"results"`
	AllPassed bool                `json:"all_passed"`
}

// PassedCount returns how many checks passed.
func (r *AuditReport) PassedCount() int {
	count := 0
	for _, result := range r.Results {
		if result.Passed {
			count++
		}
	}
	return count
}

// AuditService runs the full batch pipeline: load, analyze, validate,
// aggregate. Single pass, no shared mutable state between checks.
type AuditService struct {
	loader ports.DatasetLoader
	logger *internal.Logger
}

// NewAuditService creates the service over any dataset loader.
func NewAuditService(loader ports.DatasetLoader) *AuditService {
	return &AuditService{
		loader: loader,
		logger: internal.DefaultLogger,
	}
}

// Run executes one audit. A loader failure is fatal; validator findings are
// never errors, they land in the report results.
func (s *AuditService) Run(ctx context.Context) (*AuditReport, error) {
	start := time.Now()

	dataset, err := s.loader.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load dataset")
	}
	s.logger.Info("[AuditService] Dataset loaded in %s", time.Since(start).Round(time.Millisecond))

	clueAnalysis := analysis.AnalyzeClues(dataset.Characters, dataset.Evidence)
	appearances := analysis.AnalyzeAppearances(dataset.Characters, dataset.Evidence)
	difficultyGroups := analysis.GroupByDifficulty(clueAnalysis)
	sceneComplexity := analysis.AnalyzeSceneComplexity(dataset.Evidence)

	inputs := validation.Inputs{
		Dataset:          dataset,
		ClueAnalysis:     clueAnalysis,
		DifficultyGroups: difficultyGroups,
		SceneComplexity:  sceneComplexity,
	}

	battery := validation.Battery()
	results := make([]validation.Result, 0, len(battery))
	allPassed := true
	for _, check := range battery {
		result := check.Run(inputs)
		if !result.Passed {
			allPassed = false
			s.logger.Warn("[AuditService] Check failed: %s", check.Name)
		}
		results = append(results, result)
	}

	report := &AuditReport{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now(),

		CharacterCount: len(dataset.Characters),
		EvidenceCount:  len(dataset.Evidence),
		DialogueCount:  len(dataset.Dialogue),
		DeadCount:      dataset.DeadCount(),

		ClueAnalysis:      clueAnalysis,
		Appearances:       appearances,
		AppearanceSummary: analysis.SummarizeAppearances(appearances),
		ClueDistribution:  analysis.SummarizeClueDistribution(clueAnalysis),
		DifficultyGroups:  difficultyGroups,
		SceneComplexity:   sceneComplexity,

		Results:   results,
		AllPassed: allPassed,
	}

	s.logger.Info("[AuditService] Run %s finished: %d/%d checks passed in %s",
		report.RunID, report.PassedCount(), len(results), time.Since(start).Round(time.Millisecond))

	return report, nil
}
