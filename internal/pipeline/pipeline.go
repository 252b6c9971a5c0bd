// Package pipeline sequences the transformation stages for one delivery
// note: grouping, barcode asset collection, document assembly, and the
// external compilation call. Each run works in its own temporary directory,
// so independent notes can be transformed concurrently by the caller.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/crabe/delivnote/internal/assets"
	"github.com/crabe/delivnote/internal/barcode"
	"github.com/crabe/delivnote/internal/classify"
	"github.com/crabe/delivnote/internal/compiler"
	"github.com/crabe/delivnote/internal/domain"
	"github.com/crabe/delivnote/internal/latex"
)

// texFileName is the document source name inside the working directory.
const texFileName = "bon_livraison.tex"

type Pipeline struct {
	renderer barcode.Renderer
	compiler compiler.Compiler
	logger   *slog.Logger
}

func New(renderer barcode.Renderer, comp compiler.Compiler, logger *slog.Logger) *Pipeline {
	return &Pipeline{renderer: renderer, compiler: comp, logger: logger}
}

// Result is the outcome of one transformation run.
type Result struct {
	// PDF holds the compiled artifact.
	PDF []byte
	// TeXSource is the intermediate document source that produced PDF.
	TeXSource string
}

// Transform runs the full pipeline on a validated note and returns the
// compiled PDF together with the document source. Any stage failure aborts
// the run with its specific error; there is no partial-success mode.
func (p *Pipeline) Transform(ctx context.Context, note *domain.Note) (*Result, error) {
	p.logger.Info("transform started", "items", len(note.Items))

	grouped, err := classify.Group(note.Items)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("items grouped", "sections", len(grouped))

	workDir, err := os.MkdirTemp("", "delivnote-*")
	if err != nil {
		return nil, fmt.Errorf("create working directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			p.logger.Error("failed to clean working directory", "dir", workDir, "error", err)
		}
	}()

	barcodeDir := filepath.Join(workDir, assets.Subdir)
	assetMap, err := assets.Collect(note.Items, func(code string) (string, error) {
		return p.renderer.Render(code, barcodeDir)
	})
	if err != nil {
		return nil, err
	}
	p.logger.Debug("barcode assets rendered", "count", len(assetMap))

	source, err := latex.Assemble(note, grouped, assetMap)
	if err != nil {
		return nil, err
	}

	texPath := filepath.Join(workDir, texFileName)
	if err := os.WriteFile(texPath, []byte(source), 0644); err != nil {
		return nil, fmt.Errorf("write document source: %w", err)
	}

	p.logger.Info("compilation started", "workdir", workDir)
	pdfPath, err := p.compiler.Compile(ctx, workDir, texFileName)
	if err != nil {
		return nil, err
	}

	pdf, err := os.ReadFile(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("read compiled artifact: %w", err)
	}

	p.logger.Info("transform complete", "pdf_bytes", len(pdf), "sections", len(grouped))
	return &Result{PDF: pdf, TeXSource: source}, nil
}

// TransformToFile runs Transform and writes the PDF to outputPath, creating
// parent directories as needed. When keepTeX is set, the document source is
// retained alongside the PDF with a .tex extension.
func (p *Pipeline) TransformToFile(ctx context.Context, note *domain.Note, outputPath string, keepTeX bool) (string, error) {
	result, err := p.Transform(ctx, note)
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, result.PDF, 0644); err != nil {
		return "", fmt.Errorf("write PDF: %w", err)
	}

	if keepTeX {
		texPath := texSiblingPath(outputPath)
		if err := os.WriteFile(texPath, []byte(result.TeXSource), 0644); err != nil {
			return "", fmt.Errorf("write document source: %w", err)
		}
	}
	return outputPath, nil
}

func texSiblingPath(pdfPath string) string {
	ext := filepath.Ext(pdfPath)
	return pdfPath[:len(pdfPath)-len(ext)] + ".tex"
}
