package report

import (
	"encoding/json"
	"io"

	"github.com/orcaflat/orcaflat/pkg/validator"
)

// JSONFormatter writes the report as indented JSON.
type JSONFormatter struct {
	writer io.Writer
}

func (f *JSONFormatter) Format(rep *validator.Report) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rep)
}
