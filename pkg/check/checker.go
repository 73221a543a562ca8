package check

// Checker is implemented by all check types.
// Each check inspects one aspect of the build output
// and returns a Result indicating success or failure.
//
// Implementations:
//   - structcheck.Check: verifies an expected directory or file exists
//   - contentcheck.Check: verifies required and forbidden markers in a file
//   - sourcemapcheck.Check: validates a sourcemap's required fields
//   - tscheck.Check: runs the external type checker on the declarations
//   - manifestcheck.Check: verifies the build tool block in package.json
type Checker interface {
	Run() Result
}
