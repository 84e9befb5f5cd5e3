package framework

import (
	"strings"
	"time"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
	Errors   []TestResult
}

type TestResult struct {
	TestID   TestID
	Errors   []error
	Skipped  bool
	Errored  bool
	Duration time.Duration
}

// TestStatus is the outcome of a single test, as reported to a TestLogger.
type TestStatus int

const (
	StatusPassed TestStatus = iota
	StatusFailed
	StatusErrored
)

func (s TestStatus) String() string {
	switch s {
	case StatusFailed:
		return "failed"
	case StatusErrored:
		return "errored"
	default:
		return "passed"
	}
}

// ResultCounts summarizes a test run.
type ResultCounts struct {
	Passed  int
	Failed  int
	Errored int
	Skipped int
}

func (r Results) OK() bool {
	return len(r.Failures) == 0 && len(r.Errors) == 0
}

func (r Results) Counts() ResultCounts {
	var c ResultCounts
	for _, t := range r.Tests {
		switch {
		case t.Skipped:
			c.Skipped++
		case t.Errored:
			c.Errored++
		case len(t.Errors) != 0:
			c.Failed++
		default:
			c.Passed++
		}
	}
	return c
}

// Find returns the result for the test with the specified ID, if any.
func (r Results) Find(id string) (TestResult, bool) {
	for _, t := range r.Tests {
		if t.TestID.String() == id {
			return t, true
		}
	}
	return TestResult{}, false
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}
