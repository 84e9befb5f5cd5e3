// Package reqrestests contains the contract tests for the user/resource API and the test
// API they are written against.
//
// Each test sends exactly one request and checks the response. Infrastructure that is not
// specific to this API, such as the test context and the HTTP plumbing, is in the
// lower-level framework package.
package reqrestests
