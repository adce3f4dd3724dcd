package worldgen

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/myrjola/glitchcity/internal/errors"
	"github.com/myrjola/glitchcity/internal/landmark"
)

var (
	// ErrNoJSONFound means the model output contained no JSON object at all.
	ErrNoJSONFound = errors.NewSentinel("no JSON object found in model output")
	// ErrInvalidWorld means the parsed world state broke a structural invariant.
	ErrInvalidWorld = errors.NewSentinel("model returned an invalid world state")
)

// RequiredLandmarks is how many landmark plans every request needs; the
// service always asks the catalog for exactly three.
const RequiredLandmarks = 3

// minBuffaloAnchors is the per-plan anchor floor that stands in for "the
// model actually grounded this in Buffalo".
const minBuffaloAnchors = 2

// ExtractFirstJSONObject slices raw from the first '{' to the last '}'. This
// tolerates conversational wrapper text like "Sure! {...} thanks" around the
// payload. It is deliberately not brace-balance aware: output containing
// multiple top-level objects or braces inside the surrounding commentary can
// mis-extract, and the downstream JSON parse is the safety net.
func ExtractFirstJSONObject(raw string) (string, error) {
	first := strings.Index(raw, "{")
	last := strings.LastIndex(raw, "}")
	if first == -1 || last == -1 || last <= first {
		return "", errors.Wrap(ErrNoJSONFound, "extract JSON object")
	}
	return raw[first : last+1], nil
}

// ParseWorldState extracts and parses a world state from raw model output.
func ParseWorldState(raw string) (*World, error) {
	jsonStr, err := ExtractFirstJSONObject(raw)
	if err != nil {
		return nil, err
	}

	var world World
	if err := json.Unmarshal([]byte(jsonStr), &world); err != nil {
		return nil, errors.Wrap(err, "parse world state JSON")
	}
	return &world, nil
}

// ValidateWorld checks the structural invariants of a model-produced world
// state against the landmarks that were requested:
//
//   - the landmark list exists and covers at least the requested count
//   - each of the first RequiredLandmarks plans has at least minBuffaloAnchors anchors
//
// The id/name echo of each plan is then normalized to the request selection so
// that plan i always refers to selected[i] regardless of how faithfully the
// model echoed ids. Drift is logged, not failed, since the positional contract
// is what the image prompts rely on.
func ValidateWorld(logger *slog.Logger, world *World, selected []landmark.Landmark) error {
	if world == nil {
		return errors.Wrap(ErrInvalidWorld, "world state is missing")
	}
	if len(world.Landmarks) < RequiredLandmarks {
		return errors.Wrap(ErrInvalidWorld, "landmark list too short",
			slog.Int("got", len(world.Landmarks)),
			slog.Int("want", RequiredLandmarks))
	}
	for i := range RequiredLandmarks {
		if len(world.Landmarks[i].BuffaloAnchors) < minBuffaloAnchors {
			return errors.Wrap(ErrInvalidWorld, "landmark plan is missing Buffalo anchors",
				slog.Int("index", i),
				slog.String("id", world.Landmarks[i].ID),
				slog.Int("got", len(world.Landmarks[i].BuffaloAnchors)),
				slog.Int("want", minBuffaloAnchors))
		}
	}

	for i, lm := range selected {
		if i >= len(world.Landmarks) {
			break
		}
		if world.Landmarks[i].ID != lm.ID {
			logger.Warn("model drifted from requested landmark order",
				slog.Int("index", i),
				slog.String("got", world.Landmarks[i].ID),
				slog.String("want", lm.ID))
		}
		world.Landmarks[i].ID = lm.ID
		world.Landmarks[i].Name = lm.Name
	}

	return nil
}
