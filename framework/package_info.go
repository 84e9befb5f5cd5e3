// Package framework contains the low-level implementation of test harness infrastructure
// that is not specific to any one API.
//
// The general model is:
//
// 1. The test harness talks to a remote HTTP service over plain HTTP. Each request is sent
// exactly once and its whole response is captured; a network failure is reported as such
// rather than as a wrong answer.
//
// 2. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results. Tests that could not get a response are "errored", which is
// distinct from "failed".
//
// The domain-specific code that knows what is being tested is responsible for deciding
// which requests to send and what to assert about the responses.
package framework
