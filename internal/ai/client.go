// Package ai wraps the hosted Gemini models behind two narrow operations:
// generating a world-state JSON document and generating a single landmark
// image. Both share the same transient-failure retry discipline.
package ai

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/myrjola/glitchcity/internal/errors"
	"google.golang.org/genai"
)

const (
	textModel  = "gemini-2.5-flash"
	imageModel = "gemini-2.5-flash-image"

	worldStateTemperature float32 = 0.7

	// maxDiagnosticText bounds the text snippet attached to a missing-image
	// error so logs stay readable.
	maxDiagnosticText = 300
)

var (
	// ErrMissingAPIKey means the upstream credential was not configured.
	ErrMissingAPIKey = errors.NewSentinel("GEMINI_API_KEY is not set")
	// ErrNoImageReturned means the image model answered without an inline image part.
	ErrNoImageReturned = errors.NewSentinel("no image returned from image model")
)

// Image is one generated image with its MIME type and optional accompanying
// model commentary.
type Image struct {
	MIMEType string
	Data     []byte
	// Text is the model's accompanying text part, if any. Diagnostic only.
	Text string
}

type Client struct {
	genai  *genai.Client
	logger *slog.Logger
}

// NewClient creates a Gemini client for the given API key. The key is the one
// required secret of the whole service.
func NewClient(ctx context.Context, apiKey string, logger *slog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, errors.Wrap(ErrMissingAPIKey, "new ai client")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{ //nolint:exhaustruct // defaults are fine
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "new genai client")
	}
	return &Client{
		genai:  client,
		logger: logger,
	}, nil
}

// GenerateWorldState asks the text model for a world-state JSON document and
// returns the raw response text. The response-format hint requests JSON but
// the output is still treated as untrusted free text by the caller.
func (c *Client) GenerateWorldState(ctx context.Context, prompt string) (string, error) {
	resp, err := withRetry(ctx, c.logger, retryOptions{
		retries:   2,
		baseDelay: 450 * time.Millisecond,
		maxDelay:  2200 * time.Millisecond,
	}, func(ctx context.Context) (*genai.GenerateContentResponse, error) {
		return c.genai.Models.GenerateContent(ctx, textModel, genai.Text(prompt),
			&genai.GenerateContentConfig{ //nolint:exhaustruct // defaults are fine
				ResponseMIMEType: "application/json",
				Temperature:      genai.Ptr(worldStateTemperature),
			})
	})
	if err != nil {
		return "", errors.Wrap(err, "generate world state")
	}
	return resp.Text(), nil
}

// GenerateImage asks the image model for a single image. It fails with
// [ErrNoImageReturned] when the response carries no inline image part, with a
// truncated text snippet attached for diagnostics when the model answered in
// prose instead.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (Image, error) {
	resp, err := withRetry(ctx, c.logger, retryOptions{
		retries:   2,
		baseDelay: 700 * time.Millisecond,
		maxDelay:  3 * time.Second,
	}, func(ctx context.Context) (*genai.GenerateContentResponse, error) {
		return c.genai.Models.GenerateContent(ctx, imageModel, genai.Text(prompt), nil)
	})
	if err != nil {
		return Image{}, errors.Wrap(err, "generate image")
	}
	return imageFromResponse(resp)
}

// imageFromResponse scans the candidate parts for the first inline image.
func imageFromResponse(resp *genai.GenerateContentResponse) (Image, error) {
	var (
		image Image
		text  string
	)
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part == nil {
				continue
			}
			if part.Text != "" && text == "" {
				text = part.Text
			}
			inline := part.InlineData
			if image.Data == nil && inline != nil && len(inline.Data) > 0 &&
				strings.HasPrefix(inline.MIMEType, "image/") {
				image.MIMEType = inline.MIMEType
				image.Data = inline.Data
			}
		}
	}

	if image.Data == nil {
		snippet := text
		if len(snippet) > maxDiagnosticText {
			snippet = snippet[:maxDiagnosticText]
		}
		return Image{}, errors.Wrap(ErrNoImageReturned, "scan response parts", slog.String("text", snippet))
	}

	image.Text = text
	return image, nil
}
