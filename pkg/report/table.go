package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/orcaflat/orcaflat/pkg/validator"
)

// TableFormatter writes findings as an aligned terminal table with a
// summary footer.
type TableFormatter struct {
	writer io.Writer
}

func (f *TableFormatter) Format(rep *validator.Report) error {
	if len(rep.Findings) > 0 {
		tw := tabwriter.NewWriter(f.writer, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SEVERITY\tRULE\tMESSAGE")
		fmt.Fprintln(tw, strings.Repeat("-", 80))
		for _, finding := range rep.Findings {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", strings.ToUpper(string(finding.Severity)), finding.RuleID, finding.Message)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(f.writer)
	}

	fmt.Fprintln(f.writer, strings.Repeat("=", 50))
	fmt.Fprintf(f.writer, "Files checked : %d\n", rep.FilesChecked)
	fmt.Fprintf(f.writer, "Errors        : %d\n", len(rep.Errors()))
	fmt.Fprintf(f.writer, "Warnings      : %d\n", len(rep.Warnings()))
	fmt.Fprintln(f.writer, strings.Repeat("=", 50))
	return nil
}
