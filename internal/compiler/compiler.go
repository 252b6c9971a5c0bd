// Package compiler defines the typesetting-compiler boundary: given a
// document source file inside a working directory that already holds its
// assets, produce the compiled PDF.
package compiler

import "context"

// Compiler compiles one document source file. texFile is the base name of
// the .tex file inside workDir; relative asset paths in the source resolve
// against workDir. The returned path points at the produced PDF. A non-zero
// compiler exit must surface as an apperr.CompilationError carrying the
// compiler's combined diagnostic output verbatim.
type Compiler interface {
	Compile(ctx context.Context, workDir, texFile string) (pdfPath string, err error)
}
