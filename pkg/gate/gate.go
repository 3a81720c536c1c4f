// Package gate runs an ordered list of checks and aggregates their results
// into a single publish/no-publish verdict.
package gate

import "github.com/vertti/releasegate/pkg/check"

// Evaluate runs every check in declaration order and collects the results
// into a Report. Evaluation is strictly sequential and never aborts early:
// a failed check is recorded and the next check still runs. Individual check
// failures (missing files, malformed manifests, failed subprocesses) surface
// only as failed entries in the report, never as errors from Evaluate.
func Evaluate(checks []check.Checker) check.Report {
	results := make([]check.Result, 0, len(checks))
	for _, c := range checks {
		results = append(results, c.Run())
	}
	return check.Report{Results: results}
}

// ExitCode translates a report into the process exit code contract:
// 0 when every check passed, 1 otherwise.
func ExitCode(rep check.Report) int {
	if rep.AllPassed() {
		return 0
	}
	return 1
}
