// Package ean13 renders EAN-13 barcode images as PNG files.
package ean13

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/ean"
)

// Default image dimensions in pixels. 330x120 keeps the bars scannable when
// the image is shrunk to table-cell height in the printed document.
const (
	defaultWidth  = 330
	defaultHeight = 120
)

type Renderer struct {
	width  int
	height int
}

func NewRenderer() *Renderer {
	return &Renderer{width: defaultWidth, height: defaultHeight}
}

// Render encodes code and writes <code>.png into dir, creating dir if needed.
// Rendering the same code twice overwrites the file with identical content,
// so re-invocation is harmless.
func (r *Renderer) Render(code, dir string) (string, error) {
	encoded, err := ean.Encode(code)
	if err != nil {
		return "", fmt.Errorf("encode ean13: %w", err)
	}

	scaled, err := barcode.Scale(encoded, r.width, r.height)
	if err != nil {
		return "", fmt.Errorf("scale barcode: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create barcode directory: %w", err)
	}

	filename := code + ".png"
	f, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("create barcode file: %w", err)
	}
	if err := png.Encode(f, scaled); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write barcode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close barcode file: %w", err)
	}
	return filename, nil
}
