package gen

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/myrjola/glitchcity/internal/ai"
	"github.com/myrjola/glitchcity/internal/pipeline"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "gen",
	Title: "World generation",
}

func init() {
	World.Flags().Int("year", 2075, "target year for the alternate timeline")
	World.Flags().String("theme", "Tech Boom Buffalo", "theme for the alternate timeline")
	World.Flags().Float64("glitch", 50, "glitch intensity from 0 to 100")
	World.Flags().Int64("seed", 0, "landmark selection seed, 0 picks randomly")
	World.Flags().String("out", "./out", "directory for world.json and landmark images")
}

var World = &cobra.Command{
	Use:     "gen",
	GroupID: "gen",
	Short:   "Generate a world state with landmark images",
	Long:    `Runs the full generation pipeline once and writes world.json plus one image per landmark to the output directory.`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := context.Background()

		year, _ := cmd.Flags().GetInt("year")
		theme, _ := cmd.Flags().GetString("theme")
		glitch, _ := cmd.Flags().GetFloat64("glitch")
		seed, _ := cmd.Flags().GetInt64("seed")
		outDir, _ := cmd.Flags().GetString("out")

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		client, err := ai.NewClient(ctx, os.Getenv("GEMINI_API_KEY"), logger)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "AI client error: %v\n", err)
			return
		}

		req := pipeline.Request{Year: year, Theme: theme, Glitch: glitch, Seed: nil}
		if seed != 0 {
			req.Seed = &seed
		}
		p := pipeline.New(pipeline.Options{ //nolint:exhaustruct // default image timeout
			Text:   client,
			Image:  client,
			Logger: logger,
			// Seeds only apply in debug mode on the server, the CLI always
			// honours them.
			Debug: true,
		})

		result, err := p.Run(ctx, req)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Generation error: %v\n", err)
			return
		}

		if err = writeResult(outDir, result); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Write error: %v\n", err)
			return
		}
		fmt.Printf("World and %d images saved under %s\n", len(result.Images), outDir)
	},
}

func writeResult(outDir string, result *pipeline.Result) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	worldPath := filepath.Join(outDir, "world.json")
	raw, err := json.MarshalIndent(result.World, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal world: %w", err)
	}
	if err = os.WriteFile(worldPath, raw, 0o644); err != nil {
		return fmt.Errorf("write world.json: %w", err)
	}

	for _, img := range result.Images {
		name := img.ID + extensionFor(img.MIMEType)
		data, err := base64.StdEncoding.DecodeString(img.Base64)
		if err != nil {
			return fmt.Errorf("decode image %s: %w", img.ID, err)
		}
		if err = os.WriteFile(filepath.Join(outDir, name), data, 0o644); err != nil {
			return fmt.Errorf("write image %s: %w", name, err)
		}
	}
	return nil
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
