package worldgen_test

import (
	"testing"

	"github.com/myrjola/glitchcity/internal/landmark"
	"github.com/myrjola/glitchcity/internal/worldgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWorldPromptIsDeterministic(t *testing.T) {
	selected := landmark.PickRandomSeeded(3, 7)
	first := worldgen.BuildWorldPrompt(2075, "Tech Boom Buffalo", worldgen.TierUnstable, selected)
	second := worldgen.BuildWorldPrompt(2075, "Tech Boom Buffalo", worldgen.TierUnstable, selected)
	require.Equal(t, first, second)
}

func TestBuildWorldPromptContent(t *testing.T) {
	selected := landmark.PickRandomSeeded(3, 7)
	prompt := worldgen.BuildWorldPrompt(2075, "Tech Boom Buffalo", worldgen.TierUnstable, selected)

	assert.Contains(t, prompt, "year: 2075")
	assert.Contains(t, prompt, "theme: Tech Boom Buffalo")
	assert.Contains(t, prompt, "glitch: unstable")
	assert.Contains(t, prompt, `"buffaloAnchors": [string, string]`)
	assert.Contains(t, prompt, "valid JSON only")
	for _, lm := range selected {
		assert.Contains(t, prompt, "id: "+lm.ID)
		assert.Contains(t, prompt, lm.BaseFacts)
	}
}

func TestThemeGuardrailFallsBackForUnknownThemes(t *testing.T) {
	known := worldgen.ThemeGuardrail("Tech Boom Buffalo")
	generic := worldgen.ThemeGuardrail("Pierogi Renaissance")
	require.NotEqual(t, known, generic)
	require.NotEmpty(t, generic)

	// The builder must not fail on an unknown theme, only degrade.
	selected := landmark.PickRandomSeeded(3, 7)
	prompt := worldgen.BuildWorldPrompt(2030, "Pierogi Renaissance", worldgen.TierMinor, selected)
	assert.Contains(t, prompt, generic)
}
