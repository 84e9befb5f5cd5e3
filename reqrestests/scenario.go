package reqrestests

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/reqres-contract-tests/reqres-contract-tests/framework"
	"github.com/reqres-contract-tests/reqres-contract-tests/schemas"
)

// Scenario is one request together with everything that is checked about its response.
type Scenario struct {
	Name    string
	Request framework.Request

	// ExpectStatus is not checked if it is zero.
	ExpectStatus int

	// Schema is not checked if it is empty.
	Schema schemas.Name

	// ExpectFields maps top-level body fields to their exact expected values.
	ExpectFields map[string]ldvalue.Value

	ExpectDataNotEmpty bool
	ExpectBodyEmpty    bool
	ExpectBodyNotEmpty bool
}

func (s Scenario) checkCount() int {
	n := len(s.ExpectFields)
	for _, set := range []bool{s.ExpectStatus != 0, s.Schema != "", s.ExpectDataNotEmpty,
		s.ExpectBodyEmpty, s.ExpectBodyNotEmpty} {
		if set {
			n++
		}
	}
	return n
}

// Check runs every check the scenario defines against a response. A failed check does not
// prevent the remaining ones from running.
func (s Scenario) Check(t *T, resp framework.Response) {
	if s.checkCount() == 0 {
		t.Errorf("scenario %q does not check anything", s.Name)
		return
	}
	if s.ExpectStatus != 0 {
		t.AssertStatus(resp, s.ExpectStatus)
	}
	if s.ExpectDataNotEmpty {
		t.AssertDataNotEmpty(resp)
	}
	if s.ExpectBodyEmpty {
		t.AssertBodyEmpty(resp)
	}
	if s.ExpectBodyNotEmpty {
		t.AssertBodyNotEmpty(resp)
	}
	if s.Schema != "" {
		t.AssertSchema(resp, s.Schema)
	}
	if len(s.ExpectFields) != 0 {
		t.AssertFields(resp, s.ExpectFields)
	}
}

// RunScenario runs a scenario as a subtest named after it.
func (t *T) RunScenario(s Scenario) {
	t.Run(s.Name, func(t *T) {
		resp := t.Send(s.Request)
		s.Check(t, resp)
	})
}

func (t *T) RunScenarios(scenarios ...Scenario) {
	for _, s := range scenarios {
		t.RunScenario(s)
	}
}
