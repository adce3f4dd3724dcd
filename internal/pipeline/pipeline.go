// Package pipeline orchestrates one generation request end to end: landmark
// selection, glitch classification, the world-state round trip to the text
// model, and the three sequential image calls.
package pipeline

import (
	"context"
	"encoding/base64"
	"log/slog"
	"math"
	"time"

	"github.com/myrjola/glitchcity/internal/ai"
	"github.com/myrjola/glitchcity/internal/errors"
	"github.com/myrjola/glitchcity/internal/landmark"
	"github.com/myrjola/glitchcity/internal/logging"
	"github.com/myrjola/glitchcity/internal/worldgen"
)

// DefaultImageTimeout is the hard wall-clock budget for one image call,
// wrapping the whole retrying call rather than each individual attempt.
const DefaultImageTimeout = 45 * time.Second

// TextModel generates raw world-state text from a prompt.
type TextModel interface {
	GenerateWorldState(ctx context.Context, prompt string) (string, error)
}

// ImageModel generates one image from a prompt.
type ImageModel interface {
	GenerateImage(ctx context.Context, prompt string) (ai.Image, error)
}

// Request carries the validated user inputs for one generation.
type Request struct {
	Year   int
	Theme  string
	Glitch float64
	// Seed, when set, makes the landmark selection reproducible.
	Seed *int64
}

// GeneratedImage is one finished landmark image ready for the response payload.
type GeneratedImage struct {
	ID       string `json:"id"`
	Landmark string `json:"landmark"`
	MIMEType string `json:"mimeType"`
	Base64   string `json:"base64"`
}

// Debug carries the raw prompts and landmark selection. Only populated when
// the server-side debug flag is on; never exposed by default.
type Debug struct {
	Selection    []landmark.Landmark `json:"selection"`
	WorldPrompt  string              `json:"worldPrompt"`
	ImagePrompts []string            `json:"imagePrompts"`
}

// Result is the assembled success payload: the validated world state plus all
// three images. Failures never produce partial results.
type Result struct {
	World  *worldgen.World  `json:"world"`
	Images []GeneratedImage `json:"images"`
	Debug  *Debug           `json:"debug,omitempty"`
}

// Options configures a Pipeline.
type Options struct {
	Text   TextModel
	Image  ImageModel
	Logger *slog.Logger
	// Debug attaches raw prompts and the landmark selection to results.
	Debug bool
	// ImageTimeout overrides DefaultImageTimeout, mainly for tests.
	ImageTimeout time.Duration
}

type Pipeline struct {
	text         TextModel
	image        ImageModel
	logger       *slog.Logger
	debug        bool
	imageTimeout time.Duration
}

func New(opts Options) *Pipeline {
	timeout := opts.ImageTimeout
	if timeout == 0 {
		timeout = DefaultImageTimeout
	}
	return &Pipeline{
		text:         opts.Text,
		image:        opts.Image,
		logger:       opts.Logger,
		debug:        opts.Debug,
		imageTimeout: timeout,
	}
}

// Run executes the full pipeline for one request. Any stage failure
// short-circuits; transient overload escalates as [*OverloadError] with a
// suggested client retry delay instead of retrying indefinitely here.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	ctx = logging.WithAttrs(ctx,
		slog.Int("year", req.Year),
		slog.String("theme", req.Theme))

	selected := p.selectLandmarks(req)
	tier := worldgen.TierFromSlider(req.Glitch)
	worldPrompt := worldgen.BuildWorldPrompt(req.Year, req.Theme, tier, selected)

	p.logger.LogAttrs(ctx, slog.LevelInfo, "calling text model",
		slog.String("tier", string(tier)),
		slog.Int("promptLen", len(worldPrompt)))

	raw, err := p.text.GenerateWorldState(ctx, worldPrompt)
	if err != nil {
		if ai.IsTransient(err) {
			return nil, newOverloadError("text", err)
		}
		return nil, errors.Wrap(err, "call text model")
	}

	world, err := worldgen.ParseWorldState(raw)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedModelOutput, err.Error())
	}
	if err = worldgen.ValidateWorld(p.logger, world, selected); err != nil {
		return nil, errors.Wrap(ErrMalformedModelOutput, err.Error())
	}

	// The three image calls are strictly sequential: parallel calls would
	// trip per-key upstream rate limits and blur which image an overload
	// belongs to.
	images := make([]GeneratedImage, 0, worldgen.RequiredLandmarks)
	imagePrompts := make([]string, 0, worldgen.RequiredLandmarks)
	for i := range worldgen.RequiredLandmarks {
		imagePrompt := worldgen.BuildImagePrompt(world, i)
		imagePrompts = append(imagePrompts, imagePrompt)

		img, err := p.generateImage(ctx, imagePrompt, i)
		if err != nil {
			return nil, err
		}

		images = append(images, GeneratedImage{
			ID:       world.Landmarks[i].ID,
			Landmark: world.Landmarks[i].Name,
			MIMEType: img.MIMEType,
			Base64:   base64.StdEncoding.EncodeToString(img.Data),
		})
	}

	result := &Result{
		World:  world,
		Images: images,
		Debug:  nil,
	}
	if p.debug {
		result.Debug = &Debug{
			Selection:    selected,
			WorldPrompt:  worldPrompt,
			ImagePrompts: imagePrompts,
		}
	}
	return result, nil
}

// generateImage runs one image call under the hard wall-clock budget. The
// timeout wraps the whole retrying call; since the context is threaded down
// into the upstream HTTP request, hitting the budget genuinely cancels the
// call instead of abandoning it.
func (p *Pipeline) generateImage(ctx context.Context, prompt string, index int) (ai.Image, error) {
	callCtx, cancel := context.WithTimeout(ctx, p.imageTimeout)
	defer cancel()

	img, err := p.image.GenerateImage(callCtx, prompt)
	if err == nil {
		return img, nil
	}

	if callCtx.Err() == context.DeadlineExceeded {
		timeoutErr := errors.Wrap(context.DeadlineExceeded, "image call exceeded wall-clock budget",
			slog.Int("imageIndex", index),
			slog.Duration("budget", p.imageTimeout))
		return ai.Image{}, newOverloadError("image", timeoutErr)
	}
	if ai.IsTransient(err) {
		return ai.Image{}, newOverloadError("image", err)
	}
	return ai.Image{}, errors.Wrap(err, "call image model", slog.Int("imageIndex", index))
}

func (p *Pipeline) selectLandmarks(req Request) []landmark.Landmark {
	if req.Seed != nil {
		return landmark.PickRandomSeeded(worldgen.RequiredLandmarks, *req.Seed)
	}
	return landmark.PickRandom(worldgen.RequiredLandmarks)
}

func validateRequest(req Request) error {
	if math.IsNaN(req.Glitch) || math.IsInf(req.Glitch, 0) {
		return errors.Wrap(ErrInvalidInput, "glitch must be a finite number")
	}
	if req.Theme == "" {
		return errors.Wrap(ErrInvalidInput, "theme is required")
	}
	return nil
}
