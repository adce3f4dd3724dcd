package worldgen

import (
	"fmt"
	"strings"

	"github.com/myrjola/glitchcity/internal/landmark"
)

// themeGuardrails keeps each theme from drifting into a neighboring aesthetic.
// Keys match the theme strings offered by the UI; unknown themes fall back to
// genericGuardrail so the builder never fails on free-text input.
var themeGuardrails = map[string]string{
	"Climate-Adaptive Waterfront": "Show flood-resilient infrastructure, raised walkways, wetland buffers and " +
		"weathered water-facing materials. Avoid disaster-movie destruction and sci-fi debris.",
	"Industrial Revival": "Lean on working brick, steel, grain elevators and freight activity brought back to " +
		"life. Avoid abandoned-ruin clichés and avoid glossy corporate campus looks.",
	"Bills Dynasty City": "Civic pride everywhere: red-white-blue banners (without readable text), game-day " +
		"crowds, stadium-adjacent energy. Avoid depicting real player likenesses or readable team logos.",
	"Retro-Futurism 1980s": "Period-plausible 1980s futurism: boxy concrete, neon accents, CRT-era signage " +
		"shapes, period cars. Avoid modern cyberpunk drift and avoid holograms.",
	"Tech Boom Buffalo": "Converted industrial buildings as offices, discreet sensor installations, transit " +
		"upgrades, street-level prosperity. Avoid glass-megatower skylines that erase the existing city.",
	"Post-Snowpocalypse Survival": "Deep persistent snow, improvised insulation, plowed canyon streets, " +
		"survival adaptations on familiar buildings. Avoid apocalyptic ruin and avoid sci-fi debris.",
	"Utopian Transit Era": "Light rail, bike corridors, car-free plazas and green medians woven through the " +
		"existing fabric. Avoid monorail fantasy and avoid erasing the historic architecture.",
}

const genericGuardrail = "Keep changes plausible for the theme, grounded in real urbanism and materials. " +
	"Avoid fantasy architecture and avoid generic futuristic clichés."

// tierGuardrails tells the text model how strongly the timeline glitch may
// surface in the visual plan. All tiers stay within camera-realistic
// artifacts; fantastical transformation is excluded at every tier.
var tierGuardrails = map[Tier]string{
	TierMinor: "Glitch is barely there: faint chromatic aberration at hard edges, a hint of sensor noise in " +
		"shadows, one subtly doubled reflection. A viewer might miss it on first look.",
	TierUnstable: "Glitch is visible but controlled: noticeable chromatic fringing, ghosted duplicate edges on " +
		"one or two structures, scanline shimmer in reflective surfaces. The scene stays believable.",
	TierChaotic: "Glitch is strong and dramatic: heavy chromatic aberration, layered ghosting, smeared motion " +
		"trails, aggressive sensor noise. Still photorealistic camera artifacts, never fantastical transformation.",
}

// ThemeGuardrail returns the stylistic boundary text for a theme, degrading to
// generic guidance for unknown themes.
func ThemeGuardrail(theme string) string {
	if g, ok := themeGuardrails[theme]; ok {
		return g
	}
	return genericGuardrail
}

// BuildWorldPrompt composes the instruction for the text model. It is pure:
// the same inputs always produce the same string, which keeps golden-prompt
// tests possible.
func BuildWorldPrompt(year int, theme string, tier Tier, landmarks []landmark.Landmark) string {
	var landmarkBlock strings.Builder
	for _, lm := range landmarks {
		fmt.Fprintf(&landmarkBlock, "- id: %s\n  name: %s\n  baseFacts: %s\n", lm.ID, lm.Name, lm.BaseFacts)
	}

	return strings.TrimSpace(fmt.Sprintf(`
You are an assistant that generates a SINGLE JSON object describing a coherent alternate-timeline "world state" for Buffalo, NY.

Hard requirements:
- Output MUST be valid JSON only. No markdown, no code fences, no commentary.
- The JSON must include plans for ALL provided landmarks (same order), matching their id values exactly.
- Keep landmarks recognizable. Use baseFacts to avoid drifting to other cities.
- The style must be photorealistic and grounded (no sci-fi fantasy).
- No readable text, signage, or logos anywhere in the planned scenes.

User inputs:
- year: %d
- theme: %s
- glitch: %s

Theme guardrails:
%s

Glitch guardrails:
%s

Landmarks (fixed facts):
%s
Return JSON with this exact shape:

{
  "year": number,
  "theme": string,
  "glitch": "minor" | "unstable" | "chaotic",
  "timelineName": string,
  "globalStyle": {
    "realism": "photorealistic",
    "lighting": string,
    "palette": string,
    "camera": string,
    "mood": string
  },
  "motifs": [string, string, string],
  "glitchSignature": [string, string, string],
  "glitchNotes": string,
  "landmarks": [
    {
      "id": string,
      "name": string,
      "buffaloAnchors": [string, string],
      "mustKeep": [string, string],
      "changes": [string, string, string],
      "cameraHint": string
    }
  ]
}

Rules:
- motifs must be reusable across all landmarks (2-5 items).
- glitchSignature must describe visual distortions (2-5 items) that match the glitch tier and stay within realistic camera artifacts (chromatic aberration, ghosting, sensor noise).
- buffaloAnchors: 2-4 Buffalo-specific background cues per landmark (lake, grain elevators, regional weather, street grid) that tie the scene to Buffalo.
- mustKeep: 2-4 short bullet strings that preserve identity.
- changes: 3-6 short bullet strings describing plausible future changes for that landmark under the theme + year.
- cameraHint should be short and different per landmark (e.g., "from waterfront promenade", "ground-level plaza looking up").
- Keep everything Buffalo-specific and geographically plausible.

Now output JSON only.
`, year, theme, tier, ThemeGuardrail(theme), tierGuardrails[tier], landmarkBlock.String()))
}
