package reqrestests

import (
	"context"

	"github.com/reqres-contract-tests/reqres-contract-tests/framework"
)

// T represents a test or subtest in the contract test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is
// outside of the Go test runner, and with debug logging of every request and response. Those
// features are provided by the lower-level framework package.
//
// To make test assertions, you can use the assert and require packages, passing the *T as if it
// were a *testing.T, or the response assertions defined on T.
type T struct {
	context *framework.Context
	harness *framework.TestHarness
}

func newTestScope(context *framework.Context, harness *framework.TestHarness) *T {
	return &T{
		context: context,
		harness: harness,
	}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.harness))
	})
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Send makes one request to the service and returns the response. If no response could be
// obtained at all, the test is reported as errored and exits immediately. There are no
// retries.
func (t *T) Send(req framework.Request) framework.Response {
	resp, err := t.harness.Do(context.Background(), req, t.context.DebugLogger())
	if err != nil {
		t.context.Abort(err)
	}
	return resp
}
