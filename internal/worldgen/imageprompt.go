package worldgen

import (
	"fmt"
	"strings"
)

const defaultCameraHint = "street-level view"

// negativeConstraints is the fixed block appended to every image prompt.
// Strong negatives to reduce: borders, mats, vignettes, cinematic bars,
// posters, PIP frames, other-city drift and sci-fi elements.
var negativeConstraints = []string{
	"no text, no readable signage, no captions, no logos, no watermarks",
	"no borders, no frames, no matte, no mat board, no film frame, no poster layout",
	"no letterboxing, no pillarboxing, no black bars, no white bars, no embedded margins",
	"no vignette, no heavy corner shading, no dark rounded corners",
	"no picture-in-picture, no photo-within-a-photo, no mockup, no gallery framing",
	"no split-screen, no collage, no multiple panels",
	"no extreme wide cinematic bars",
	"no distorted anatomy (avoid extra limbs/faces if people appear)",
	"do not depict NYC/Chicago/Toronto skylines or iconic landmarks from other cities",
	"no flying cars, no sci-fi spacecraft, no fantasy architecture",
}

// glitchStrength maps a tier to the adjective used in image prompts.
func glitchStrength(tier Tier) string {
	switch tier {
	case TierMinor:
		return "subtle, barely noticeable"
	case TierUnstable:
		return "visible but controlled"
	default:
		return "strong and dramatic (still photorealistic)"
	}
}

func bullets(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}

// BuildImagePrompt derives the image-model prompt for the landmark at idx.
// It is pure and total over invariant-passing world states: list fields
// missing from the model output degrade to empty bullet lists and a missing
// camera hint falls back to a default, so a partially-malformed world never
// panics here.
func BuildImagePrompt(world *World, idx int) string {
	lm := world.Landmarks[idx]

	cameraHint := lm.CameraHint
	if cameraHint == "" {
		cameraHint = defaultCameraHint
	}

	return strings.TrimSpace(fmt.Sprintf(`
Generate ONE photorealistic image of %s in Buffalo, New York in the year %d.

This image is part of the SAME alternate timeline:
Timeline name: %s
Theme: %s

Global style:
- Lighting: %s
- Palette: %s
- Camera: %s
- Mood: %s

Buffalo anchors (must include at least 2-3 as subtle background cues):
%s

Recurring motifs (include a few if relevant):
%s

Landmark identity constraints (must keep):
%s

Timeline changes for this landmark (apply plausibly):
%s

Camera hint:
- %s

Timeline glitch:
- Level: %s (%s)
- Visual glitch signature (use some, but keep realistic):
%s

Framing & output rules (VERY IMPORTANT):
- Output ONE single image only.
- Full-bleed, edge-to-edge scene: the image MUST fill the entire canvas.
- NO borders of any kind (no black/white borders, no frames, no mats).
- NO letterboxing or pillarboxing (no black bars).
- NO vignette or heavy corner darkening.
- Do not depict a poster, print, phone screen, gallery display, or photo-within-a-photo.

Hard rules:
- Keep the landmark clearly recognizable and Buffalo-specific.
- Grounded realism: no fantasy/sci-fi elements like flying cars.
- Avoid readable text/logos/watermarks.
- Output a single full-frame image with no borders/letterboxing.

Negative prompts:
%s
`,
		lm.Name, world.Year,
		world.TimelineName, world.Theme,
		world.GlobalStyle.Lighting, world.GlobalStyle.Palette, world.GlobalStyle.Camera, world.GlobalStyle.Mood,
		bullets(lm.BuffaloAnchors),
		bullets(world.Motifs),
		bullets(lm.MustKeep),
		bullets(lm.Changes),
		cameraHint,
		world.Glitch, glitchStrength(world.Glitch),
		bullets(world.GlitchSignature),
		bullets(negativeConstraints)))
}
