package check

// Checker is implemented by all check types.
// Each check validates one publish-readiness condition
// and returns a Result indicating success or failure.
//
// Implementations:
//   - filecheck.Check: verifies build artifacts and required files
//   - manifestcheck.Check: asserts package manifest field values
//   - testcheck.Check: runs the test suite under a tolerance policy
//   - semvercheck.Check: validates the manifest version field
//   - envcheck.Check: verifies publish credentials in the environment
//   - gitcheck.Check: checks repository state (clean tree, branch, tags)
type Checker interface {
	Run() Result
}
