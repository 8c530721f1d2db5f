// Package report renders validation reports in terminal and machine
// formats.
package report

import (
	"fmt"
	"io"

	"github.com/orcaflat/orcaflat/pkg/validator"
)

// Formatter renders a validation report to its writer.
type Formatter interface {
	Format(rep *validator.Report) error
}

// New returns a formatter for the given format name.
func New(format string, w io.Writer) (Formatter, error) {
	switch format {
	case "table", "":
		return &TableFormatter{writer: w}, nil
	case "json":
		return &JSONFormatter{writer: w}, nil
	case "yaml":
		return &YAMLFormatter{writer: w}, nil
	case "sarif":
		return &SARIFFormatter{writer: w}, nil
	default:
		return nil, fmt.Errorf("unknown report format: %s (supported: %v)", format, SupportedFormats())
	}
}

// SupportedFormats lists the format names New accepts.
func SupportedFormats() []string {
	return []string{"table", "json", "yaml", "sarif"}
}
