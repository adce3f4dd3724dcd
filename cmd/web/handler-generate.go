package main

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/myrjola/glitchcity/internal/ai"
	"github.com/myrjola/glitchcity/internal/errors"
	"github.com/myrjola/glitchcity/internal/pipeline"
	"github.com/myrjola/glitchcity/internal/worldgen"
)

// generateRequest mirrors the inbound JSON body. Pointer fields distinguish
// missing keys from zero values.
type generateRequest struct {
	Year   *float64 `json:"year"`
	Theme  *string  `json:"theme"`
	Glitch *float64 `json:"glitch"`
	// Seed pins the landmark selection. Honored only in debug mode.
	Seed *int64 `json:"seed"`
}

type generateResponse struct {
	OK     bool                      `json:"ok"`
	World  *worldgen.World           `json:"world"`
	Images []pipeline.GeneratedImage `json:"images"`
	Debug  *pipeline.Debug           `json:"debug,omitempty"`
}

type overloadResponse struct {
	OK           bool   `json:"ok"`
	ErrorCode    string `json:"errorCode"`
	Phase        string `json:"phase"`
	Message      string `json:"message"`
	RetryAfterMs int64  `json:"retryAfterMs"`
	Detail       string `json:"detail,omitempty"`
}

// generateAlive is the liveness probe on the generation path.
func (app *application) generateAlive(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, map[string]any{
		"ok":      true,
		"message": "API route is alive",
	})
}

// generate runs the whole pipeline for one request.
func (app *application) generate(w http.ResponseWriter, r *http.Request) {
	var body generateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		app.clientError(w, r, http.StatusBadRequest, errors.Wrap(err, "invalid input"))
		return
	}
	if body.Year == nil || body.Theme == nil || body.Glitch == nil {
		app.clientError(w, r, http.StatusBadRequest,
			errors.New("invalid input: year, theme and glitch are required"))
		return
	}
	if math.IsNaN(*body.Year) || math.IsInf(*body.Year, 0) {
		// Unreachable through JSON, but the contract demands finite numbers.
		app.clientError(w, r, http.StatusBadRequest, errors.New("invalid input: year must be finite"))
		return
	}

	req := pipeline.Request{ //nolint:exhaustruct // seed applied below
		Year:   int(*body.Year),
		Theme:  *body.Theme,
		Glitch: *body.Glitch,
	}
	if app.debug {
		req.Seed = body.Seed
	}

	result, err := app.pipeline.Run(r.Context(), req)
	if err != nil {
		app.pipelineError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, generateResponse{
		OK:     true,
		World:  result.World,
		Images: result.Images,
		Debug:  result.Debug,
	})
}

// pipelineError converts raw pipeline errors into the external response
// taxonomy. This is the only place that mapping happens.
func (app *application) pipelineError(w http.ResponseWriter, r *http.Request, err error) {
	var overload *pipeline.OverloadError
	switch {
	case errors.Is(err, pipeline.ErrInvalidInput):
		app.clientError(w, r, http.StatusBadRequest, err)

	case errors.As(err, &overload):
		app.logger.LogAttrs(r.Context(), slog.LevelWarn, "model overloaded",
			slog.String("phase", overload.Phase),
			slog.Duration("retryAfter", overload.RetryAfter),
			errors.SlogError(err))

		resp := overloadResponse{ //nolint:exhaustruct // detail only in debug mode
			OK:           false,
			ErrorCode:    "MODEL_OVERLOADED",
			Phase:        overload.Phase,
			Message:      "The model is overloaded right now. Please wait a moment and retry.",
			RetryAfterMs: overload.RetryAfter.Milliseconds(),
		}
		if app.debug {
			resp.Detail = err.Error()
		}
		// Same delay as retryAfterMs, expressed in whole seconds.
		retryAfterSeconds := int64(math.Ceil(overload.RetryAfter.Seconds()))
		w.Header().Set("Retry-After", strconv.FormatInt(retryAfterSeconds, 10))
		app.writeJSON(w, r, http.StatusServiceUnavailable, resp)

	case errors.Is(err, pipeline.ErrMalformedModelOutput), errors.Is(err, ai.ErrNoImageReturned):
		app.logger.LogAttrs(r.Context(), slog.LevelError, "bad model output", errors.SlogError(err))
		app.writeJSON(w, r, http.StatusBadGateway, errorResponse{Error: err.Error()})

	default:
		app.serverError(w, r, err)
	}
}
