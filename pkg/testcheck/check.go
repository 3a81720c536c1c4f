package testcheck

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/vertti/releasegate/pkg/check"
)

// Policy decides how much test failure the check tolerates.
type Policy string

const (
	// PolicyStrict passes only if the test command exits with code 0.
	PolicyStrict Policy = "strict"
	// PolicyRanAtAll passes if the output proves the suite executed,
	// regardless of individual test outcomes.
	PolicyRanAtAll Policy = "ran-at-all"
	// PolicyThreshold passes if the parsed pass rate meets a minimum.
	PolicyThreshold Policy = "threshold"
)

// ParsePolicy converts a config string into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyStrict, PolicyRanAtAll, PolicyThreshold:
		return Policy(s), nil
	case "":
		return PolicyStrict, nil
	default:
		return "", fmt.Errorf("unknown policy %q (use strict, ran-at-all, or threshold)", s)
	}
}

// DefaultTimeout bounds the test command. Test suites run far longer than
// the version probes elsewhere, so this is generous.
const DefaultTimeout = 10 * time.Minute

// DefaultMarker is the jest-style summary banner proving the suite ran.
const DefaultMarker = "Tests:"

// summaryRegex extracts a "<failed> failed, <passed> passed" summary token.
var summaryRegex = regexp.MustCompile(`(\d+) failed, (\d+) passed`)

// Check runs the test suite as a subprocess and judges its health under a
// tolerance policy. The summary may land on stdout or stderr depending on
// the runner, so both streams are inspected.
//
// Under PolicyThreshold an output with no parsable summary token passes.
// This leniency is deliberate: a gate must not start blocking releases just
// because the test runner changed its banner format. It also means a runner
// that crashes before printing a summary slips through; use PolicyStrict if
// that risk is unacceptable.
type Check struct {
	Command     []string      // test command and its args
	Policy      Policy        // tolerance policy (default: strict)
	MinPassRate float64       // threshold policy: minimum passed/(passed+failed)
	Marker      string        // ran-at-all policy: token proving the suite executed
	Timeout     time.Duration // bound on the subprocess (default: 10m)
	Runner      Runner        // injected for testing
}

// Run executes the test-health check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("tests: %s", strings.Join(c.Command, " ")),
	}

	if len(c.Command) == 0 {
		return result.Failf("test command is required")
	}

	policy := c.Policy
	if policy == "" {
		policy = PolicyStrict
	}
	result.AddDetailf("policy: %s", policy)

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stdout, stderr, runErr := c.Runner.RunContext(ctx, c.Command[0], c.Command[1:]...)
	if ctx.Err() == context.DeadlineExceeded {
		return result.Failf("test command timed out after %s", timeout)
	}

	combined := stdout
	if stderr != "" {
		combined += "\n" + stderr
	}

	switch policy {
	case PolicyRanAtAll:
		return c.checkMarker(combined, result)
	case PolicyThreshold:
		return c.checkThreshold(combined, result)
	default:
		return c.checkStrict(runErr, stderr, result)
	}
}

func (c *Check) checkStrict(runErr error, stderr string, result check.Result) check.Result {
	if runErr != nil {
		if stderr != "" {
			result.AddDetailf("stderr: %s", lastLine(stderr))
		}
		return result.Failf("test command failed: %v", runErr)
	}
	result.AddDetail("exit: 0")
	result.Status = check.StatusOK
	return result
}

func (c *Check) checkMarker(combined string, result check.Result) check.Result {
	marker := c.Marker
	if marker == "" {
		marker = DefaultMarker
	}
	if !strings.Contains(combined, marker) {
		return result.Failf("output does not contain marker %q, test suite may not have run", marker)
	}
	result.AddDetailf("marker found: %s", marker)
	result.Status = check.StatusOK
	return result
}

func (c *Check) checkThreshold(combined string, result check.Result) check.Result {
	failed, passed, found := parseSummary(combined)
	if !found {
		// Deliberate leniency, see the type doc comment.
		result.AddDetail("no test summary found in output, assuming pass")
		result.Status = check.StatusOK
		return result
	}

	total := failed + passed
	result.AddDetailf("failed: %d, passed: %d", failed, passed)
	if total == 0 {
		result.AddDetail("no tests ran")
		result.Status = check.StatusOK
		return result
	}

	rate := float64(passed) / float64(total)
	result.AddDetailf("pass rate: %.4f", rate)

	if rate < c.MinPassRate {
		return result.Failf("pass rate %.4f < minimum %.4f", rate, c.MinPassRate)
	}

	result.Status = check.StatusOK
	return result
}

// parseSummary locates a "<failed> failed, <passed> passed" token in the
// combined output.
func parseSummary(output string) (failed, passed int, found bool) {
	m := summaryRegex.FindStringSubmatch(output)
	if m == nil {
		return 0, 0, false
	}
	failed, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	passed, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}
	return failed, passed, true
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return lines[len(lines)-1]
}
