package manifestcheck

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/vertti/releasegate/pkg/check"
)

// Check verifies that a package manifest is valid JSON and that a named
// field meets expectations. A missing manifest, invalid JSON, missing field,
// or value mismatch all degrade to a failed result, never an error.
type Check struct {
	File     string     // path to the manifest (e.g., package.json)
	HasField string     // --has-field: field must exist (dot notation)
	Field    string     // --field: field to check the value of
	Exact    string     // --exact: expected exact value (requires --field)
	Match    string     // --match: regex pattern for value (requires --field)
	FS       FileSystem // injected for testing
}

// Run executes the manifest check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("manifest: %s", c.File),
	}

	content, err := c.FS.ReadFile(c.File)
	if err != nil {
		return result.Failf("failed to read manifest: %v", err)
	}

	jsonStr := string(content)
	if !gjson.Valid(jsonStr) {
		return result.Fail("invalid JSON", fmt.Errorf("invalid JSON syntax"))
	}

	result.AddDetail("syntax: valid")

	if c.HasField != "" {
		if !gjson.Get(jsonStr, c.HasField).Exists() {
			return result.Failf("field %q not found", c.HasField)
		}
		result.AddDetailf("has field: %s", c.HasField)
	}

	if c.Field != "" {
		value := gjson.Get(jsonStr, c.Field)
		if !value.Exists() {
			return result.Failf("field %q not found", c.Field)
		}

		valueStr := value.String()
		if value.Type == gjson.Null {
			valueStr = "null"
		}

		if c.Exact != "" && valueStr != c.Exact {
			return result.Failf("field %s is %q, expected %q", c.Field, valueStr, c.Exact)
		}

		if c.Match != "" {
			re, err := check.CompileRegex(c.Match)
			if err != nil {
				return result.Failf("invalid regex pattern: %v", err)
			}
			if !re.MatchString(valueStr) {
				return result.Failf("field %s value %q does not match pattern %q", c.Field, valueStr, c.Match)
			}
		}

		result.AddDetailf("field %s: %s", c.Field, valueStr)
	}

	result.Status = check.StatusOK
	return result
}
