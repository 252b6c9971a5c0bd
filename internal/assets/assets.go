// Package assets coordinates barcode image generation for a note: one
// rendered asset per distinct canonical code, exposed to the document
// assembler as relative paths.
package assets

import (
	"path"

	"github.com/crabe/delivnote/internal/apperr"
	"github.com/crabe/delivnote/internal/domain"
)

// Subdir is the conventional subdirectory, relative to the document working
// directory, where rendered barcode images live. The compiler resolves
// \includegraphics paths against the working directory, so the same relative
// path works for both asset placement and document references.
const Subdir = "barcodes"

// RenderFunc renders the image for one canonical 13-digit code and returns
// the generated file's name within the asset subdirectory.
type RenderFunc func(code string) (filename string, err error)

// Collect renders one asset per distinct barcode across items (barcode-less
// items are skipped) and returns the code-to-relative-path map. Codes are
// rendered in first-seen item order, each exactly once. A renderer failure
// aborts immediately with an AssetRenderError naming the code: rendering has
// no partial-success mode, and retry policy belongs to the renderer, not
// here.
func Collect(items []domain.Item, render RenderFunc) (domain.AssetMap, error) {
	assetMap := make(domain.AssetMap)
	for _, item := range items {
		if item.Barcode == "" {
			continue
		}
		if _, done := assetMap[item.Barcode]; done {
			continue
		}
		filename, err := render(item.Barcode)
		if err != nil {
			return nil, &apperr.AssetRenderError{Code: item.Barcode, Err: err}
		}
		assetMap[item.Barcode] = path.Join(Subdir, filename)
	}
	return assetMap, nil
}
