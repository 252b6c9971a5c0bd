// Package apperr defines the typed error taxonomy for the transformation
// pipeline. A note either fully produces an artifact or fails with exactly
// one of these errors; every error names the offending item or code so the
// failure is actionable without log correlation.
package apperr

import "fmt"

// ValidationError reports a malformed or missing field in the input payload.
// Err, when set, carries the underlying cause so typed errors such as
// FormatError stay reachable through errors.As.
type ValidationError struct {
	Msg string
	Err error
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Unwrap() error { return e.Err }

// Validationf builds a ValidationError with a formatted message.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ValidationWrap builds a ValidationError with a formatted message that keeps
// err on the chain.
func ValidationWrap(err error, format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...), Err: err}
}

// FormatError reports a barcode that violates the EAN length or digit rules.
type FormatError struct {
	Code   string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Code == "" {
		return "ean: " + e.Reason
	}
	return fmt.Sprintf("ean %q: %s", e.Code, e.Reason)
}

// EmptyDocumentError reports that grouping or assembly produced zero sections.
type EmptyDocumentError struct{}

func (e *EmptyDocumentError) Error() string {
	return "no items were grouped; nothing to render"
}

// AssetRenderError reports a barcode-rendering failure for a specific code.
type AssetRenderError struct {
	Code string
	Err  error
}

func (e *AssetRenderError) Error() string {
	return fmt.Sprintf("render barcode %s: %v", e.Code, e.Err)
}

func (e *AssetRenderError) Unwrap() error { return e.Err }

// CompilationError reports a non-zero exit from the external LaTeX compiler,
// carrying its combined diagnostic output verbatim.
type CompilationError struct {
	Output string
	Err    error
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("latex compilation failed: %v\n%s", e.Err, e.Output)
}

func (e *CompilationError) Unwrap() error { return e.Err }
