package worldgen_test

import (
	"testing"

	"github.com/myrjola/glitchcity/internal/worldgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildImagePromptIsPure(t *testing.T) {
	world := conformantWorld(testSelection())
	first := worldgen.BuildImagePrompt(world, 0)
	second := worldgen.BuildImagePrompt(world, 0)
	require.Equal(t, first, second)

	other := worldgen.BuildImagePrompt(world, 1)
	require.NotEqual(t, first, other)
}

func TestBuildImagePromptContent(t *testing.T) {
	selected := testSelection()
	world := conformantWorld(selected)
	prompt := worldgen.BuildImagePrompt(world, 0)

	assert.Contains(t, prompt, selected[0].Name)
	assert.Contains(t, prompt, "year 2075")
	assert.Contains(t, prompt, "Steel Bloom Paradox")
	assert.Contains(t, prompt, "- Lighting: overcast winter daylight")
	assert.Contains(t, prompt, "- Lake Erie horizon")
	assert.Contains(t, prompt, "- from the promenade")
	assert.Contains(t, prompt, "Level: unstable (visible but controlled)")
	assert.Contains(t, prompt, "no flying cars")
}

func TestBuildImagePromptToleratesMissingOptionalFields(t *testing.T) {
	world := conformantWorld(testSelection())
	world.Motifs = nil
	world.GlitchSignature = nil
	world.Landmarks[0].CameraHint = ""
	world.Landmarks[0].MustKeep = nil
	world.Landmarks[0].Changes = nil

	require.NotPanics(t, func() {
		prompt := worldgen.BuildImagePrompt(world, 0)
		assert.Contains(t, prompt, "- street-level view")
	})
}

func TestGlitchStrengthPerTier(t *testing.T) {
	world := conformantWorld(testSelection())

	world.Glitch = worldgen.TierMinor
	assert.Contains(t, worldgen.BuildImagePrompt(world, 0), "subtle, barely noticeable")

	world.Glitch = worldgen.TierChaotic
	assert.Contains(t, worldgen.BuildImagePrompt(world, 0), "strong and dramatic (still photorealistic)")
}
