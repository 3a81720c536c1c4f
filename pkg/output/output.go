package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/releasegate/pkg/check"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// FprintResult outputs a check result with colored status.
func FprintResult(w io.Writer, r check.Result) {
	if r.OK() {
		fmt.Fprintf(w, "%s[OK]%s %s\n", green, reset, r.Name)
	} else {
		fmt.Fprintf(w, "%s[FAIL]%s %s\n", red, reset, r.Name)
	}
	for _, d := range r.Details {
		fmt.Fprintf(w, "      %s\n", formatLabel(d))
	}
}

// FprintSummary outputs the final banner line for a gate report.
func FprintSummary(w io.Writer, rep check.Report) {
	n := len(rep.Results)
	if rep.AllPassed() {
		fmt.Fprintf(w, "%sall %d checks passed%s\n", green, n, reset)
		return
	}
	fmt.Fprintf(w, "%s%d of %d checks failed%s\n", red, rep.Failed(), n, reset)
}

// FprintReport outputs every result in report order followed by the summary.
func FprintReport(w io.Writer, rep check.Report) {
	for _, r := range rep.Results {
		FprintResult(w, r)
	}
	FprintSummary(w, rep)
}

// formatLabel dims the "label:" prefix of a detail line, if present.
func formatLabel(detail string) string {
	idx := strings.Index(detail, ": ")
	if idx < 0 {
		return detail
	}
	return dim + detail[:idx+1] + reset + detail[idx+1:]
}
