package worldgen_test

import (
	"io"
	"testing"

	"github.com/myrjola/glitchcity/internal/landmark"
	"github.com/myrjola/glitchcity/internal/testhelpers"
	"github.com/myrjola/glitchcity/internal/worldgen"
	"github.com/stretchr/testify/require"
)

func TestExtractFirstJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{
			name: "conversational wrapper",
			raw:  `Sure! {"a":1} thanks`,
			want: `{"a":1}`,
		},
		{
			name: "nested object returns outer braces",
			raw:  `{"a":{"b":1}}`,
			want: `{"a":{"b":1}}`,
		},
		{
			name:    "no braces",
			raw:     "no braces here",
			wantErr: worldgen.ErrNoJSONFound,
		},
		{
			name:    "closing brace before opening",
			raw:     "} nothing {",
			wantErr: worldgen.ErrNoJSONFound,
		},
		{
			name:    "only opening brace",
			raw:     "here it comes {",
			wantErr: worldgen.ErrNoJSONFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := worldgen.ExtractFirstJSONObject(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func testSelection() []landmark.Landmark {
	return landmark.PickRandomSeeded(3, 1)
}

func conformantWorld(selected []landmark.Landmark) *worldgen.World {
	world := &worldgen.World{
		Year:         2075,
		Theme:        "Tech Boom Buffalo",
		Glitch:       worldgen.TierUnstable,
		TimelineName: "Steel Bloom Paradox",
		GlobalStyle: worldgen.GlobalStyle{
			Realism:  "photorealistic",
			Lighting: "overcast winter daylight",
			Palette:  "cool neutrals with industrial rust accents",
			Camera:   "street-level wide lens",
			Mood:     "optimistic but unstable",
		},
		Motifs:          []string{"lake-effect mist", "repurposed grain elevators"},
		GlitchSignature: []string{"chromatic fringing", "ghosted edges"},
		GlitchNotes:     "signals bleed at the edges",
	}
	for _, lm := range selected {
		world.Landmarks = append(world.Landmarks, worldgen.LandmarkPlan{
			ID:             lm.ID,
			Name:           lm.Name,
			BuffaloAnchors: []string{"Lake Erie horizon", "brick warehouse rooflines"},
			MustKeep:       []string{"recognizable silhouette", "original materials"},
			Changes:        []string{"new transit line", "green retrofit", "denser street life"},
			CameraHint:     "from the promenade",
		})
	}
	return world
}

func TestValidateWorld(t *testing.T) {
	logger := testhelpers.NewLogger(io.Discard)
	selected := testSelection()

	t.Run("conformant world passes", func(t *testing.T) {
		world := conformantWorld(selected)
		require.NoError(t, worldgen.ValidateWorld(logger, world, selected))
	})

	t.Run("two landmarks fail", func(t *testing.T) {
		world := conformantWorld(selected)
		world.Landmarks = world.Landmarks[:2]
		err := worldgen.ValidateWorld(logger, world, selected)
		require.ErrorIs(t, err, worldgen.ErrInvalidWorld)
		require.Contains(t, err.Error(), "too short")
	})

	t.Run("single anchor fails", func(t *testing.T) {
		world := conformantWorld(selected)
		world.Landmarks[1].BuffaloAnchors = []string{"just one"}
		err := worldgen.ValidateWorld(logger, world, selected)
		require.ErrorIs(t, err, worldgen.ErrInvalidWorld)
		require.Contains(t, err.Error(), "anchors")
	})

	t.Run("nil world fails", func(t *testing.T) {
		require.ErrorIs(t, worldgen.ValidateWorld(logger, nil, selected), worldgen.ErrInvalidWorld)
	})

	t.Run("drifted ids are normalized to the selection", func(t *testing.T) {
		world := conformantWorld(selected)
		world.Landmarks[0].ID = "somewhere-else"
		world.Landmarks[0].Name = "Somewhere Else"
		require.NoError(t, worldgen.ValidateWorld(logger, world, selected))
		require.Equal(t, selected[0].ID, world.Landmarks[0].ID)
		require.Equal(t, selected[0].Name, world.Landmarks[0].Name)
	})
}

func TestParseWorldState(t *testing.T) {
	raw := `Here is your timeline: {"year": 2075, "theme": "Tech Boom Buffalo", "glitch": "unstable",
		"timelineName": "Steel Bloom Paradox", "landmarks": []} enjoy!`
	world, err := worldgen.ParseWorldState(raw)
	require.NoError(t, err)
	require.Equal(t, 2075, world.Year)
	require.Equal(t, worldgen.TierUnstable, world.Glitch)
	require.Empty(t, world.Landmarks)

	_, err = worldgen.ParseWorldState("model rambled { incomplete")
	require.ErrorIs(t, err, worldgen.ErrNoJSONFound)

	_, err = worldgen.ParseWorldState(`leading {not json} trailing`)
	require.Error(t, err)
	require.NotErrorIs(t, err, worldgen.ErrNoJSONFound)
}
