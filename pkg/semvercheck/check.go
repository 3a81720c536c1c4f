// Package semvercheck validates the version field of a package manifest
// before publishing: the value must be a semantic version and may be
// constrained against the last published release.
package semvercheck

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/tidwall/gjson"

	"github.com/vertti/releasegate/pkg/check"
)

// DefaultField is the manifest field holding the version.
const DefaultField = "version"

// Check verifies the manifest version field.
type Check struct {
	File        string     // path to the manifest (e.g., package.json)
	Field       string     // field holding the version (default: "version")
	Min         string     // --min: version must be >= this
	Exact       string     // --exact: version must equal this
	GreaterThan string     // --greater-than: version must be > this (e.g., the last published one)
	FS          FileSystem // injected for testing
}

// Run executes the semver check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("semver: %s", c.File),
	}

	content, err := c.FS.ReadFile(c.File)
	if err != nil {
		return result.Failf("failed to read manifest: %v", err)
	}

	jsonStr := string(content)
	if !gjson.Valid(jsonStr) {
		return result.Fail("invalid JSON", fmt.Errorf("invalid JSON syntax"))
	}

	field := c.Field
	if field == "" {
		field = DefaultField
	}

	value := gjson.Get(jsonStr, field)
	if !value.Exists() {
		return result.Failf("field %q not found", field)
	}

	v, err := semver.NewVersion(value.String())
	if err != nil {
		return result.Failf("field %s value %q is not a semantic version: %v", field, value.String(), err)
	}

	result.AddDetailf("version: %s", v)

	if c.Exact != "" {
		want, err := semver.NewVersion(c.Exact)
		if err != nil {
			return result.Failf("invalid exact version %q: %v", c.Exact, err)
		}
		if !v.Equal(want) {
			return result.Failf("version %s != required %s", v, want)
		}
	}

	if c.Min != "" {
		min, err := semver.NewVersion(c.Min)
		if err != nil {
			return result.Failf("invalid minimum version %q: %v", c.Min, err)
		}
		if v.LessThan(min) {
			return result.Failf("version %s < minimum %s", v, min)
		}
	}

	if c.GreaterThan != "" {
		prev, err := semver.NewVersion(c.GreaterThan)
		if err != nil {
			return result.Failf("invalid version %q: %v", c.GreaterThan, err)
		}
		if !v.GreaterThan(prev) {
			return result.Failf("version %s must be greater than %s", v, prev)
		}
	}

	result.Status = check.StatusOK
	return result
}
