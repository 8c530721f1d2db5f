package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/orcaflat/orcaflat/pkg/validator"
)

// YAMLFormatter writes the report as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

func (f *YAMLFormatter) Format(rep *validator.Report) error {
	data, err := yaml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("failed to marshal report to YAML: %w", err)
	}
	_, err = f.writer.Write(data)
	return err
}
