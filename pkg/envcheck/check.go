package envcheck

import (
	"fmt"

	"github.com/vertti/releasegate/pkg/check"
)

// Check verifies that an environment variable needed for publishing
// (typically a registry credential) is set and non-empty.
type Check struct {
	Name      string    // env var name
	Match     string    // --match: regex pattern the value must match
	HideValue bool      // --hide-value: don't show value in output
	MaskValue bool      // --mask-value: show first/last 3 chars
	Getter    EnvGetter // injected for testing
}

// Run executes the environment variable check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("env: %s", c.Name),
	}

	value, exists := c.Getter.LookupEnv(c.Name)
	if !exists {
		return result.Fail("not set", fmt.Errorf("environment variable %s is not set", c.Name))
	}
	if value == "" {
		return result.Fail("empty value", fmt.Errorf("environment variable %s is empty", c.Name))
	}

	if c.Match != "" {
		re, err := check.CompileRegex(c.Match)
		if err != nil {
			return result.Failf("invalid regex pattern: %v", err)
		}
		if !re.MatchString(value) {
			return result.Failf("value does not match pattern %q", c.Match)
		}
	}

	result.Status = check.StatusOK
	result.AddDetailf("value: %s", c.formatValue(value))
	return result
}

func (c *Check) formatValue(value string) string {
	if c.HideValue {
		return "[hidden]"
	}
	if c.MaskValue {
		return maskValue(value)
	}
	return value
}

func maskValue(value string) string {
	if len(value) <= 6 {
		return "•••"
	}
	return value[:3] + "•••" + value[len(value)-3:]
}
