package report

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"

	"github.com/orcaflat/orcaflat/pkg/validator"
)

// SARIFFormatter writes the report as SARIF 2.1.0 JSON, one rule per
// validator rule and one result per finding.
type SARIFFormatter struct {
	writer io.Writer

	// Version is embedded as the tool version when set.
	Version string
}

func (f *SARIFFormatter) Format(rep *validator.Report) error {
	sarifReport := sarif.NewReport()
	run := sarif.NewRunWithInformationURI("orcaflat", "https://github.com/orcaflat/orcaflat")
	if f.Version != "" {
		run.Tool.Driver.Version = &f.Version
	}

	for _, rule := range validator.Rules() {
		descriptor := sarif.NewReportingDescriptor().WithID(rule.ID())
		descriptor.WithName(rule.ID())
		run.Tool.Driver.AddRule(descriptor)
	}

	for _, finding := range rep.Findings {
		result := sarif.NewRuleResult(finding.RuleID)
		result.Level = levelFor(finding.Severity)
		result.Message = sarif.NewTextMessage(finding.Message)
		if finding.Path != "" {
			pLoc := sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithURI(filepath.ToSlash(finding.Path)))
			result.Locations = []*sarif.Location{sarif.NewLocation().WithPhysicalLocation(pLoc)}
		}
		run.AddResult(result)
	}

	sarifReport.AddRun(run)
	if err := sarifReport.Write(f.writer); err != nil {
		return fmt.Errorf("failed to write SARIF output: %w", err)
	}
	_, err := f.writer.Write([]byte("\n"))
	return err
}

func levelFor(sev validator.Severity) string {
	if sev == validator.SeverityError {
		return "error"
	}
	return "warning"
}
