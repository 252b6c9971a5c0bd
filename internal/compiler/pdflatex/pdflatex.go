// Package pdflatex invokes the pdflatex binary as a blocking subprocess.
package pdflatex

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/crabe/delivnote/internal/apperr"
)

const defaultBinary = "pdflatex"

type Compiler struct {
	binary string
}

func New() *Compiler {
	return &Compiler{binary: defaultBinary}
}

// NewWithBinary uses a specific pdflatex executable, for installations where
// it is not on PATH.
func NewWithBinary(binary string) *Compiler {
	if binary == "" {
		binary = defaultBinary
	}
	return &Compiler{binary: binary}
}

// Compile runs pdflatex on texFile inside workDir. Diagnostics from stdout
// and stderr are captured together; on a non-zero exit they are returned
// verbatim inside a CompilationError, unparsed.
func (c *Compiler) Compile(ctx context.Context, workDir, texFile string) (string, error) {
	cmd := exec.CommandContext(ctx, c.binary, "-interaction=nonstopmode", "-halt-on-error", texFile)
	cmd.Dir = workDir

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", &apperr.CompilationError{Output: string(output), Err: err}
	}

	pdfPath := filepath.Join(workDir, strings.TrimSuffix(texFile, filepath.Ext(texFile))+".pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		return "", &apperr.CompilationError{
			Output: string(output),
			Err:    fmt.Errorf("compiler exited cleanly but produced no PDF: %w", err),
		}
	}
	return pdfPath, nil
}
