// Package barcode defines the rendering collaborator boundary: given a
// canonical 13-digit code and an output directory, produce one image file.
package barcode

// Renderer rasterizes barcode images. Implementations must be idempotent per
// code: rendering the same code twice into the same directory must not
// corrupt the earlier output.
type Renderer interface {
	// Render writes the image for code into dir and returns the generated
	// file's base name.
	Render(code, dir string) (filename string, err error)
}
