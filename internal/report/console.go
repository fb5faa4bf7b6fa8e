package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/optipenn/uxaudit/internal/result"
)

// ConsoleReporter prints the run summary to a terminal.
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a reporter writing to out.
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

// Print writes the results table, the aggregate summary, the recommendations
// and the overall verdict.
func (c *ConsoleReporter) Print(results []result.Result, summary result.Summary, recommendations []string, reportPath string) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, bold("TEST SUMMARY"))

	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Test", "Status", "UX Score", "Error"})
	table.SetBorder(false)
	table.SetColumnSeparator(" ")

	for _, r := range results {
		status := green("PASSED")
		if !r.Passed {
			status = red("FAILED")
		}

		table.Append([]string{r.Name, status, fmt.Sprintf("%d/10", r.UXScore), r.Error})
	}

	table.Render()

	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "Total Tests:      %d\n", summary.Total)
	fmt.Fprintf(c.out, "Passed:           %s\n", green(summary.Passed))
	fmt.Fprintf(c.out, "Failed:           %s\n", red(summary.Failed))
	fmt.Fprintf(c.out, "Average UX Score: %.1f/10\n", summary.AvgUXScore)
	fmt.Fprintf(c.out, "Success Rate:     %.1f%%\n", summary.SuccessRate())
	fmt.Fprintf(c.out, "Duration:         %.1fs\n", summary.Duration.Seconds())

	if len(recommendations) > 0 {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, bold("RECOMMENDATIONS"))

		for _, rec := range recommendations {
			fmt.Fprintf(c.out, "  - %s\n", rec)
		}
	}

	if reportPath != "" {
		fmt.Fprintln(c.out)
		fmt.Fprintf(c.out, "Detailed HTML report: %s\n", reportPath)
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, verdict(summary))
}

// verdict is the one-line overall assessment closing the console output.
func verdict(summary result.Summary) string {
	switch {
	case summary.Failed == 0 && summary.Total > 0 && summary.AvgUXScore >= 8:
		return color.GreenString("EXCELLENT! Your application is ready for enterprise use.")
	case summary.Failed == 0 && summary.Total > 0 && summary.AvgUXScore >= 6:
		return color.GreenString("GOOD! Your application is functional with room for UX improvements.")
	case summary.Failed == 0:
		return color.YellowString("FUNCTIONAL, but UX needs improvement for enterprise users.")
	default:
		return color.RedString("NEEDS WORK! Address failing tests and improve UX for enterprise readiness.")
	}
}
