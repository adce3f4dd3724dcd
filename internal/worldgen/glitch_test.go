package worldgen_test

import (
	"testing"

	"github.com/myrjola/glitchcity/internal/worldgen"
	"github.com/stretchr/testify/require"
)

func TestTierFromSlider(t *testing.T) {
	tests := []struct {
		slider float64
		want   worldgen.Tier
	}{
		{0, worldgen.TierMinor},
		{33, worldgen.TierMinor},
		{33.9, worldgen.TierMinor},
		{34, worldgen.TierUnstable},
		{50, worldgen.TierUnstable},
		{66, worldgen.TierUnstable},
		{66.9, worldgen.TierUnstable},
		{67, worldgen.TierChaotic},
		{100, worldgen.TierChaotic},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, worldgen.TierFromSlider(tt.slider), "slider %v", tt.slider)
	}
}
