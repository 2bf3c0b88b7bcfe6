package mystery

// ClueCategory groups the identifying clue signals of a scene-evidence
// record. The five categories cover 14 signals in total; the death flag and
// scene metadata are not clues.
type ClueCategory string

const (
	ClueVisual       ClueCategory = "visual"
	ClueDialogue     ClueCategory = "dialogue"
	ClueContextual   ClueCategory = "contextual"
	ClueRelationship ClueCategory = "relationship"
	ClueRole         ClueCategory = "role"
)

// ClueCategories lists all categories in reporting order.
var ClueCategories = []ClueCategory{
	ClueVisual,
	ClueDialogue,
	ClueContextual,
	ClueRelationship,
	ClueRole,
}

// ClueCounts counts how many signals fire per category in one evidence
// record. Boolean flags count one each; the optional "additional" text
// fields count one when non-empty.
func (ev SceneEvidence) ClueCounts() map[ClueCategory]int {
	counts := make(map[ClueCategory]int, len(ClueCategories))

	visual := 0
	if ev.UniformVisible {
		visual++
	}
	if ev.HoldingSomethingDistinctive {
		visual++
	}
	if ev.DistinctiveFeaturesVisible {
		visual++
	}
	if ev.BodyPositionRelevant {
		visual++
	}
	if ev.AdditionalVisualClues != "" {
		visual++
	}
	counts[ClueVisual] = visual

	dialogue := 0
	if ev.AccentAudible {
		dialogue++
	}
	if ev.NameMentionedInDialogue {
		dialogue++
	}
	if ev.AdditionalDialogueClues != "" {
		dialogue++
	}
	counts[ClueDialogue] = dialogue

	contextual := 0
	if ev.EnvironmentalContextRelevant {
		contextual++
	}
	if ev.SpatialRelationshipVisible {
		contextual++
	}
	if ev.AdditionalContextualClues != "" {
		contextual++
	}
	counts[ClueContextual] = contextual

	relationship := 0
	if ev.RelationshipMentioned {
		relationship++
	}
	counts[ClueRelationship] = relationship

	role := 0
	if ev.RoleMentioned {
		role++
	}
	if ev.RoleBehaviourVisible {
		role++
	}
	counts[ClueRole] = role

	return counts
}

// HasAnyClue reports whether any of the 14 clue signals fire in this record.
func (ev SceneEvidence) HasAnyClue() bool {
	for _, n := range ev.ClueCounts() {
		if n > 0 {
			return true
		}
	}
	return false
}
