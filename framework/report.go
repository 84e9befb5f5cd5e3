package framework

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	failedLabel  = color.New(color.FgRed, color.Bold).SprintFunc()
	erroredLabel = color.New(color.FgMagenta, color.Bold).SprintFunc()
	passedLabel  = color.New(color.FgGreen, color.Bold).SprintFunc()
)

func PrintFilterDescription(out io.Writer, filters RegexFilters) {
	if !filters.IsDefined() {
		return
	}
	fmt.Fprintln(out, "Some tests will be skipped based on the filter criteria for this test run:")
	if filters.MustMatch.IsDefined() {
		fmt.Fprintf(out, "  skip any not matching %s\n", filters.MustMatch)
	}
	if filters.MustNotMatch.IsDefined() {
		fmt.Fprintf(out, "  skip any matching %s\n", filters.MustNotMatch)
	}
	fmt.Fprintln(out)
}

// PrintResults writes a plain-text summary of a test run: errored tests first, since
// those usually mean the service could not be reached, then failures, then the totals.
func PrintResults(out io.Writer, results Results) {
	printResultList(out, erroredLabel("ERRORED TESTS"), results.Errors)
	printResultList(out, failedLabel("FAILED TESTS"), results.Failures)

	counts := results.Counts()
	summary := fmt.Sprintf("%d passed, %d failed, %d errored, %d skipped",
		counts.Passed, counts.Failed, counts.Errored, counts.Skipped)
	if results.OK() {
		fmt.Fprintf(out, "%s (%s)\n", passedLabel("All tests passed"), summary)
	} else {
		fmt.Fprintf(out, "%s (%s)\n", failedLabel("Test run failed"), summary)
	}
}

func printResultList(out io.Writer, heading string, list []TestResult) {
	if len(list) == 0 {
		return
	}
	fmt.Fprintf(out, "%s (%d):\n", heading, len(list))
	for _, r := range list {
		fmt.Fprintf(out, "  %s\n", r.TestID)
		for _, err := range r.Errors {
			for _, line := range strings.Split(err.Error(), "\n") {
				fmt.Fprintf(out, "    %s\n", line)
			}
		}
	}
	fmt.Fprintln(out)
}

type jsonResults struct {
	OK      bool             `json:"ok"`
	Passed  int              `json:"passed"`
	Failed  int              `json:"failed"`
	Errored int              `json:"errored"`
	Skipped int              `json:"skipped"`
	Tests   []jsonTestResult `json:"tests"`
}

type jsonTestResult struct {
	ID         string   `json:"id"`
	Status     string   `json:"status"`
	DurationMS int64    `json:"durationMs"`
	Errors     []string `json:"errors,omitempty"`
}

// WriteJSONResults writes the results of a test run as a single JSON document.
func WriteJSONResults(out io.Writer, results Results) error {
	counts := results.Counts()
	doc := jsonResults{
		OK:      results.OK(),
		Passed:  counts.Passed,
		Failed:  counts.Failed,
		Errored: counts.Errored,
		Skipped: counts.Skipped,
		Tests:   make([]jsonTestResult, 0, len(results.Tests)),
	}
	for _, t := range results.Tests {
		jt := jsonTestResult{
			ID:         t.TestID.String(),
			Status:     resultStatus(t),
			DurationMS: t.Duration.Milliseconds(),
		}
		for _, err := range t.Errors {
			jt.Errors = append(jt.Errors, err.Error())
		}
		doc.Tests = append(doc.Tests, jt)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func resultStatus(t TestResult) string {
	switch {
	case t.Skipped:
		return "skipped"
	case t.Errored:
		return StatusErrored.String()
	case len(t.Errors) != 0:
		return StatusFailed.String()
	default:
		return StatusPassed.String()
	}
}
