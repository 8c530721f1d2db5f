package validator

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// External bridges to a secondary validator binary. The binary is invoked
// with the profile path appended to Args; its stdout lines become findings
// and a non-zero exit becomes an error finding if none were parsed.
type External struct {
	Command string
	Args    []string
}

// Run executes the external validator against a profile file and converts
// its output into a report.
func (e *External) Run(ctx context.Context, profilePath string) (*Report, error) {
	if e.Command == "" {
		return nil, errors.New("external validator command not configured")
	}

	args := append(append([]string(nil), e.Args...), profilePath)
	cmd := exec.CommandContext(ctx, e.Command, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stdout

	runErr := cmd.Run()
	var exitErr *exec.ExitError
	if runErr != nil && !errors.As(runErr, &exitErr) {
		return nil, fmt.Errorf("failed to run external validator %s: %w", e.Command, runErr)
	}

	report := &Report{FilesChecked: 1}
	scanner := bufio.NewScanner(&stdout)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		severity, message := classifyLine(line)
		if severity == "" {
			continue
		}
		report.Findings = append(report.Findings, Finding{
			Severity: severity,
			RuleID:   "external",
			Message:  message,
			Path:     profilePath,
		})
	}

	if exitErr != nil && !report.HasErrors() {
		report.Findings = append(report.Findings, Finding{
			Severity: SeverityError,
			RuleID:   "external",
			Message:  fmt.Sprintf("external validator exited with status %d", exitErr.ExitCode()),
			Path:     profilePath,
		})
	}
	return report, nil
}

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// classifyLine maps the external validator's [ERROR]/[WARNING] prefixes to
// severities. The checker colors its prefixes with ANSI escapes, so those
// are stripped before matching. Unprefixed lines are informational and
// dropped.
func classifyLine(line string) (Severity, string) {
	line = strings.TrimSpace(ansiEscape.ReplaceAllString(line, ""))
	switch {
	case strings.HasPrefix(line, "[ERROR]"):
		return SeverityError, strings.TrimSpace(strings.TrimPrefix(line, "[ERROR]"))
	case strings.HasPrefix(line, "[WARNING]"):
		return SeverityWarning, strings.TrimSpace(strings.TrimPrefix(line, "[WARNING]"))
	default:
		return "", ""
	}
}
