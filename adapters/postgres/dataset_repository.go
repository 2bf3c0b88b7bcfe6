package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver

	"mysterycheck/domain/mystery"
	"mysterycheck/ports"
)

// datasetRepository loads the mystery dataset from a Postgres export. Read
// only: the validator never writes back.
type datasetRepository struct {
	db *sqlx.DB
}

// NewDatasetRepository creates a dataset loader over an open connection.
func NewDatasetRepository(db *sqlx.DB) ports.DatasetLoader {
	return &datasetRepository{db: db}
}

// Connect opens a Postgres connection and verifies it.
func Connect(ctx context.Context, databaseURL string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// characterRow mirrors the characters table.
type characterRow struct {
	Name         string        `db:"name"`
	Role         string        `db:"role"`
	Nationality  string        `db:"nationality"`
	Build        string        `db:"build"`
	CauseOfDeath string        `db:"cause_of_death"`
	Killer       string        `db:"killer"`
	DeathScene   sql.NullInt64 `db:"death_scene"`
}

// evidenceRow mirrors the scene_evidence table.
type evidenceRow struct {
	CharacterName   string `db:"character_name"`
	SceneNumber     int    `db:"scene_number"`
	DiesInThisScene bool   `db:"dies_in_this_scene"`

	UniformVisible              bool   `db:"uniform_visible"`
	HoldingSomethingDistinctive bool   `db:"holding_something_distinctive"`
	DistinctiveFeaturesVisible  bool   `db:"distinctive_features_visible"`
	BodyPositionRelevant        bool   `db:"body_position_relevant"`
	AdditionalVisualClues       string `db:"additional_visual_clues"`

	AccentAudible           bool   `db:"accent_audible"`
	NameMentionedInDialogue bool   `db:"name_mentioned_in_dialogue"`
	AdditionalDialogueClues string `db:"additional_dialogue_clues"`

	EnvironmentalContextRelevant bool   `db:"environmental_context_relevant"`
	SpatialRelationshipVisible   bool   `db:"spatial_relationship_visible"`
	AdditionalContextualClues    string `db:"additional_contextual_clues"`

	RelationshipMentioned bool `db:"relationship_mentioned"`
	RoleMentioned         bool `db:"role_mentioned"`
	RoleBehaviourVisible  bool `db:"role_behaviour_visible"`
}

// dialogueRow mirrors the dialogue table.
type dialogueRow struct {
	SceneNumber int    `db:"scene_number"`
	LineNumber  int    `db:"line_number"`
	Speaker     string `db:"speaker"`
	Text        string `db:"text"`
	DisplayTime string `db:"display_time"`
}

// Load reads all three record sets and assembles the dataset snapshot.
func (r *datasetRepository) Load(ctx context.Context) (*mystery.Dataset, error) {
	var charRows []characterRow
	query := `SELECT
		name, role, COALESCE(nationality, '') AS nationality, COALESCE(build, '') AS build,
		COALESCE(cause_of_death, '') AS cause_of_death, COALESCE(killer, '') AS killer, death_scene
	FROM characters`
	if err := r.db.SelectContext(ctx, &charRows, query); err != nil {
		return nil, fmt.Errorf("failed to load characters: %w", err)
	}

	characters := make(map[string]mystery.Character, len(charRows))
	for _, row := range charRows {
		if _, exists := characters[row.Name]; exists {
			return nil, fmt.Errorf("duplicate character name %q in characters table", row.Name)
		}
		var deathScene *int
		if row.DeathScene.Valid {
			n := int(row.DeathScene.Int64)
			deathScene = &n
		}
		characters[row.Name] = mystery.Character{
			Name:         row.Name,
			Role:         row.Role,
			Nationality:  row.Nationality,
			Build:        row.Build,
			CauseOfDeath: row.CauseOfDeath,
			Killer:       row.Killer,
			DeathScene:   deathScene,
		}
	}

	var evRows []evidenceRow
	query = `SELECT
		character_name, scene_number, dies_in_this_scene,
		uniform_visible, holding_something_distinctive, distinctive_features_visible,
		body_position_relevant, COALESCE(additional_visual_clues, '') AS additional_visual_clues,
		accent_audible, name_mentioned_in_dialogue, COALESCE(additional_dialogue_clues, '') AS additional_dialogue_clues,
		environmental_context_relevant, spatial_relationship_visible,
		COALESCE(additional_contextual_clues, '') AS additional_contextual_clues,
		relationship_mentioned, role_mentioned, role_behaviour_visible
	FROM scene_evidence`
	if err := r.db.SelectContext(ctx, &evRows, query); err != nil {
		return nil, fmt.Errorf("failed to load scene evidence: %w", err)
	}

	evidence := make([]mystery.SceneEvidence, 0, len(evRows))
	for _, row := range evRows {
		evidence = append(evidence, mystery.SceneEvidence{
			CharacterName:   row.CharacterName,
			SceneNumber:     row.SceneNumber,
			DiesInThisScene: row.DiesInThisScene,

			UniformVisible:              row.UniformVisible,
			HoldingSomethingDistinctive: row.HoldingSomethingDistinctive,
			DistinctiveFeaturesVisible:  row.DistinctiveFeaturesVisible,
			BodyPositionRelevant:        row.BodyPositionRelevant,
			AdditionalVisualClues:       row.AdditionalVisualClues,

			AccentAudible:           row.AccentAudible,
			NameMentionedInDialogue: row.NameMentionedInDialogue,
			AdditionalDialogueClues: row.AdditionalDialogueClues,

			EnvironmentalContextRelevant: row.EnvironmentalContextRelevant,
			SpatialRelationshipVisible:   row.SpatialRelationshipVisible,
			AdditionalContextualClues:    row.AdditionalContextualClues,

			RelationshipMentioned: row.RelationshipMentioned,
			RoleMentioned:         row.RoleMentioned,
			RoleBehaviourVisible:  row.RoleBehaviourVisible,
		})
	}

	var dlgRows []dialogueRow
	query = `SELECT
		scene_number, line_number, speaker, text, COALESCE(display_time, '') AS display_time
	FROM dialogue ORDER BY scene_number, line_number`
	if err := r.db.SelectContext(ctx, &dlgRows, query); err != nil {
		return nil, fmt.Errorf("failed to load dialogue: %w", err)
	}

	dialogue := make([]mystery.Dialogue, 0, len(dlgRows))
	for _, row := range dlgRows {
		dialogue = append(dialogue, mystery.Dialogue{
			SceneNumber: row.SceneNumber,
			LineNumber:  row.LineNumber,
			Speaker:     row.Speaker,
			Text:        row.Text,
			DisplayTime: row.DisplayTime,
		})
	}

	return &mystery.Dataset{
		Characters: characters,
		Evidence:   evidence,
		Dialogue:   dialogue,
	}, nil
}
