package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/crabe/delivnote/internal/barcode/ean13"
	"github.com/crabe/delivnote/internal/compiler/pdflatex"
	"github.com/crabe/delivnote/internal/config"
	"github.com/crabe/delivnote/internal/domain"
	"github.com/crabe/delivnote/internal/logging"
	"github.com/crabe/delivnote/internal/payload"
	"github.com/crabe/delivnote/internal/pipeline"
	"github.com/crabe/delivnote/internal/vision"
	claudevision "github.com/crabe/delivnote/internal/vision/claude"
	geminivision "github.com/crabe/delivnote/internal/vision/gemini"
	"github.com/crabe/delivnote/internal/web"
)

func main() {
	cmd := &cli.Command{
		Name:   "delivnote",
		Usage:  "Transform delivery-note scans into a harmonised, barcode-annotated PDF",
		Action: runTransform,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "images",
				Aliases: []string{"i"},
				Usage:   "Delivery-note image files (JPEG, PNG, GIF, WebP)",
			},
			&cli.StringFlag{
				Name:  "items-json",
				Usage: "Structured payload file (bypasses the vision call)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output PDF path",
				Value:   "bon_livraison.pdf",
			},
			&cli.BoolFlag{
				Name:  "keep-tex",
				Usage: "Keep the intermediate LaTeX source next to the PDF",
			},
			&cli.StringFlag{
				Name:  "model",
				Usage: "Vision model name (overrides the configured default)",
			},
			&cli.StringFlag{
				Name:    "api-key",
				Usage:   "Vision API key",
				Sources: cli.EnvVars("DELIVNOTE_API_KEY"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Expose the transformation pipeline over HTTP",
				Action: runServe,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address (overrides LISTEN_ADDR)",
					},
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func runTransform(ctx context.Context, cmd *cli.Command) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer cleanup()

	images := cmd.StringSlice("images")
	itemsJSON := cmd.String("items-json")
	if len(images) == 0 && itemsJSON == "" {
		return fmt.Errorf("specify --items-json or at least one file via --images")
	}

	note, err := buildNote(ctx, cfg, cmd, images, itemsJSON)
	if err != nil {
		return err
	}

	p := pipeline.New(ean13.NewRenderer(), pdflatex.NewWithBinary(cfg.LatexBinary), logger)
	outputPath, err := p.TransformToFile(ctx, note, cmd.String("output"), cmd.Bool("keep-tex"))
	if err != nil {
		return err
	}

	fmt.Println(outputPath)
	return nil
}

// buildNote resolves the input source: a structured payload file wins over
// image extraction.
func buildNote(ctx context.Context, cfg *config.Config, cmd *cli.Command, imagePaths []string, itemsJSON string) (*domain.Note, error) {
	if itemsJSON != "" {
		data, err := os.ReadFile(itemsJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to read items file: %w", err)
		}
		return payload.Decode(data)
	}

	images := make([]vision.Image, 0, len(imagePaths))
	for _, path := range imagePaths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read image %s: %w", path, err)
		}
		mimeType, ok := vision.SniffMIME(data)
		if !ok {
			return nil, fmt.Errorf("unsupported image format: %s", path)
		}
		images = append(images, vision.Image{Data: data, MIMEType: mimeType})
	}

	extractor, err := newExtractor(cfg, cmd.String("model"), cmd.String("api-key"))
	if err != nil {
		return nil, err
	}
	return vision.ExtractNote(ctx, extractor, images)
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer cleanup()

	if cfg.APIKey() == "" {
		logger.Warn("no vision API key configured; only items_json requests will succeed",
			"backend", cfg.VisionBackend)
	}

	p := pipeline.New(ean13.NewRenderer(), pdflatex.NewWithBinary(cfg.LatexBinary), logger)
	factory := func(model string) vision.Extractor {
		e, _ := newExtractor(cfg, model, "")
		return e
	}

	addr := cmd.String("addr")
	if addr == "" {
		addr = cfg.ListenAddr
	}

	server := web.NewServer(p, factory, cfg.Model(), logger)
	return server.ListenAndServe(addr)
}

// newExtractor builds the configured vision backend, with optional per-call
// model and key overrides.
func newExtractor(cfg *config.Config, model, apiKey string) (vision.Extractor, error) {
	if model == "" {
		model = cfg.Model()
	}
	if apiKey == "" {
		apiKey = cfg.APIKey()
	}
	if apiKey == "" {
		return nil, fmt.Errorf("no API key for vision backend %q (use --api-key or the environment)", cfg.VisionBackend)
	}

	switch cfg.VisionBackend {
	case config.BackendClaude:
		return claudevision.NewExtractor(apiKey, model), nil
	default:
		return geminivision.NewExtractor(apiKey, model), nil
	}
}
