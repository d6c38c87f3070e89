package surface

import (
	"encoding/json"
	"io"

	"github.com/resumate/resumate/pkg/scoring"
	"github.com/resumate/resumate/pkg/validation"
)

// JSONRenderer marshals results to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, result *scoring.AnalysisResult) error {
	return encode(w, result)
}

func (r *JSONRenderer) RenderValidation(w io.Writer, result validation.Result) error {
	return encode(w, result)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
