// Package worldgen derives the "world state" of an alternate Buffalo timeline:
// it classifies the glitch slider, builds the prompt that asks the text model
// for a world state, validates the model's answer, and derives one image
// prompt per landmark from it.
package worldgen

// GlobalStyle describes the shared photographic style across all three images.
type GlobalStyle struct {
	Realism  string `json:"realism"`
	Lighting string `json:"lighting"`
	Palette  string `json:"palette"`
	Camera   string `json:"camera"`
	Mood     string `json:"mood"`
}

// LandmarkPlan is the per-landmark slice of a world state: what must stay
// recognizable and what the timeline changes.
//
// Every field comes from the text model and is untrusted until
// [ValidateWorld] has run; consumers must tolerate missing lists.
type LandmarkPlan struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// BuffaloAnchors are Buffalo-specific background cues. At least two are
	// required per plan as a good-faith proxy for the model actually
	// grounding the scene in Buffalo rather than a generic city.
	BuffaloAnchors []string `json:"buffaloAnchors"`
	// MustKeep lists what must remain recognizable to preserve landmark identity.
	MustKeep []string `json:"mustKeep"`
	// Changes lists the future changes this timeline applies to the landmark.
	Changes []string `json:"changes"`
	// CameraHint is an optional per-landmark framing hint.
	CameraHint string `json:"cameraHint,omitempty"`
}

// World is the model-generated narrative plan that anchors all three image
// prompts to a single coherent alternate-history scenario. It lives for one
// request: produced once, validated once, consumed to build exactly three
// image prompts, then discarded.
type World struct {
	Year   int    `json:"year"`
	Theme  string `json:"theme"`
	Glitch Tier   `json:"glitch"`

	// TimelineName is a short title like "Steel Bloom Paradox".
	TimelineName string      `json:"timelineName"`
	GlobalStyle  GlobalStyle `json:"globalStyle"`

	// Motifs are recurring details reused across all images.
	Motifs []string `json:"motifs"`
	// GlitchSignature describes how the glitch should look visually.
	GlitchSignature []string `json:"glitchSignature"`
	// GlitchNotes is a short summary for the UI.
	GlitchNotes string `json:"glitchNotes"`

	Landmarks []LandmarkPlan `json:"landmarks"`
}
