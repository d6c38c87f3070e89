// Package surface defines output rendering for resumate results.
// Implementations handle different output targets: terminal, JSON, Markdown.
package surface

import (
	"fmt"
	"io"

	"github.com/resumate/resumate/pkg/scoring"
	"github.com/resumate/resumate/pkg/validation"
)

// Renderer produces formatted output from an AnalysisResult.
type Renderer interface {
	// Render writes the formatted analysis to the writer.
	Render(w io.Writer, result *scoring.AnalysisResult) error
	// RenderValidation writes a validation outcome to the writer.
	RenderValidation(w io.Writer, result validation.Result) error
}

// ForFormat returns the renderer for an output format name.
func ForFormat(format string) (Renderer, error) {
	switch format {
	case "", "text":
		return &TerminalRenderer{}, nil
	case "json":
		return &JSONRenderer{}, nil
	case "markdown", "md":
		return &MarkdownRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or markdown)", format)
	}
}
