package mystery

// Killer sentinel values for deaths with no culpable character.
const (
	KillerAccident      = "Accident"
	KillerSelfInflicted = "Self-inflicted"
)

// Character represents one cast member of the mystery, keyed by unique name.
// Records are created once at load time and never mutated afterwards.
type Character struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	Nationality  string `json:"nationality"`
	Build        string `json:"build"`
	CauseOfDeath string `json:"cause_of_death,omitempty"`
	Killer       string `json:"killer,omitempty"`      // character name or a sentinel value
	DeathScene   *int   `json:"death_scene,omitempty"` // nil for living characters
}

// IsDead reports whether the character has a recorded death scene.
func (c Character) IsDead() bool {
	return c.DeathScene != nil && *c.DeathScene > 0
}

// KillerIsSentinel reports whether the killer field names a non-culpable
// cause rather than a character.
func (c Character) KillerIsSentinel() bool {
	return c.Killer == KillerAccident || c.Killer == KillerSelfInflicted
}

// SceneEvidence is one (character, scene) occurrence with its identifying
// clue signals. Multiple records may share a scene number or a character
// name; duplicates are legal and additive for clue counting.
type SceneEvidence struct {
	CharacterName   string `json:"character_name"`
	SceneNumber     int    `json:"scene_number"`
	DiesInThisScene bool   `json:"dies_in_this_scene"`

	// Visual clues
	UniformVisible              bool   `json:"uniform_visible"`
	HoldingSomethingDistinctive bool   `json:"holding_something_distinctive"`
	DistinctiveFeaturesVisible  bool   `json:"distinctive_features_visible"`
	BodyPositionRelevant        bool   `json:"body_position_relevant"`
	AdditionalVisualClues       string `json:"additional_visual_clues,omitempty"`

	// Dialogue clues
	AccentAudible           bool   `json:"accent_audible"`
	NameMentionedInDialogue bool   `json:"name_mentioned_in_dialogue"`
	AdditionalDialogueClues string `json:"additional_dialogue_clues,omitempty"`

	// Contextual clues
	EnvironmentalContextRelevant bool   `json:"environmental_context_relevant"`
	SpatialRelationshipVisible   bool   `json:"spatial_relationship_visible"`
	AdditionalContextualClues    string `json:"additional_contextual_clues,omitempty"`

	// Relationship clues
	RelationshipMentioned bool `json:"relationship_mentioned"`

	// Role clues
	RoleMentioned        bool `json:"role_mentioned"`
	RoleBehaviourVisible bool `json:"role_behaviour_visible"`
}

// Dialogue is a single spoken line attributed to a character.
type Dialogue struct {
	SceneNumber int    `json:"scene_number"`
	LineNumber  int    `json:"line_number"`
	Speaker     string `json:"speaker"`
	Text        string `json:"text"`
	DisplayTime string `json:"display_time,omitempty"`
}

// Dataset is the immutable snapshot every validator and analysis pass
// receives. Characters are keyed by name.
type Dataset struct {
	Characters map[string]Character `json:"characters"`
	Evidence   []SceneEvidence      `json:"evidence"`
	Dialogue   []Dialogue           `json:"dialogue"`
}

// DeadCharacters returns all characters with a recorded death, in map order.
func (d *Dataset) DeadCharacters() []Character {
	var dead []Character
	for _, c := range d.Characters {
		if c.IsDead() {
			dead = append(dead, c)
		}
	}
	return dead
}

// DeadCount returns the number of dead characters.
func (d *Dataset) DeadCount() int {
	count := 0
	for _, c := range d.Characters {
		if c.IsDead() {
			count++
		}
	}
	return count
}

// SceneNumbers returns the set of scene numbers present in the evidence.
func (d *Dataset) SceneNumbers() map[int]bool {
	scenes := make(map[int]bool)
	for _, ev := range d.Evidence {
		scenes[ev.SceneNumber] = true
	}
	return scenes
}

// EvidenceFor returns all evidence records for one character.
func (d *Dataset) EvidenceFor(name string) []SceneEvidence {
	var out []SceneEvidence
	for _, ev := range d.Evidence {
		if ev.CharacterName == name {
			out = append(out, ev)
		}
	}
	return out
}
