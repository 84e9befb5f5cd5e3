package reqrestests

import (
	"fmt"
	"sort"

	"github.com/stretchr/testify/assert"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/reqres-contract-tests/reqres-contract-tests/framework"
	"github.com/reqres-contract-tests/reqres-contract-tests/schemas"
)

const dataField = "data"

// AssertStatus checks the status code. Like the other response assertions it does not stop
// the test, so that every check of a scenario is reported.
func (t *T) AssertStatus(resp framework.Response, expected int) bool {
	return assert.Equal(t, expected, resp.StatusCode, "unexpected HTTP status; response body: %s",
		bodyForMessage(resp))
}

// AssertDataNotEmpty checks that the body has a non-empty "data" collection.
func (t *T) AssertDataNotEmpty(resp framework.Response) bool {
	if !t.assertJSONBody(resp) {
		return false
	}
	data := resp.Body.GetByKey(dataField)
	switch data.Type() {
	case ldvalue.ArrayType, ldvalue.ObjectType:
		if data.Count() == 0 {
			return assert.Fail(t, `"data" was empty`, "response body: %s", bodyForMessage(resp))
		}
		return true
	default:
		return assert.Fail(t, `response has no "data" collection`, "response body: %s", bodyForMessage(resp))
	}
}

// AssertBodyEmpty checks that the body is an empty JSON object, array or string, or absent.
func (t *T) AssertBodyEmpty(resp framework.Response) bool {
	if !resp.HasBody() {
		return true
	}
	if !t.assertJSONBody(resp) {
		return false
	}
	if isEmptyValue(resp.Body) {
		return true
	}
	return assert.Fail(t, "expected an empty response body", "response body: %s", bodyForMessage(resp))
}

// AssertBodyNotEmpty checks that the body is a JSON value with some content, such as an
// object describing an error.
func (t *T) AssertBodyNotEmpty(resp framework.Response) bool {
	if !resp.HasBody() {
		return assert.Fail(t, "expected a non-empty response body, but there was no body")
	}
	if !t.assertJSONBody(resp) {
		return false
	}
	v := resp.Body
	if (isCollection(v) || v.Type() == ldvalue.StringType) && !isEmptyValue(v) {
		return true
	}
	return assert.Fail(t, "expected a non-empty response body", "response body: %s", bodyForMessage(resp))
}

// AssertSchema validates the body against one of the schema fixtures. Every violated
// constraint is included in the failure message.
func (t *T) AssertSchema(resp framework.Response, name schemas.Name) bool {
	if !resp.HasBody() {
		return assert.Fail(t, fmt.Sprintf("expected a body conforming to schema %q, but there was no body", name))
	}
	return assert.NoError(t, schemas.Validate(name, resp.Raw))
}

// AssertFields checks that each named top-level field of the body has exactly the expected
// value, including its JSON type.
func (t *T) AssertFields(resp framework.Response, expected map[string]ldvalue.Value) bool {
	if !t.assertJSONBody(resp) {
		return false
	}
	names := make([]string, 0, len(expected))
	for name := range expected {
		names = append(names, name)
	}
	sort.Strings(names)
	ok := true
	for _, name := range names {
		want, got := expected[name], resp.Body.GetByKey(name)
		if !want.Equal(got) {
			ok = assert.Fail(t, fmt.Sprintf("field %q has the wrong value", name),
				"expected: %s\nactual  : %s", want.JSONString(), got.JSONString())
		}
	}
	return ok
}

func (t *T) assertJSONBody(resp framework.Response) bool {
	if resp.BodyErr != nil {
		return assert.Fail(t, resp.BodyErr.Error(), "response body: %s", bodyForMessage(resp))
	}
	return true
}

func isCollection(v ldvalue.Value) bool {
	return v.Type() == ldvalue.ObjectType || v.Type() == ldvalue.ArrayType
}

func isEmptyValue(v ldvalue.Value) bool {
	switch v.Type() {
	case ldvalue.ObjectType, ldvalue.ArrayType:
		return v.Count() == 0
	case ldvalue.StringType:
		return v.StringValue() == ""
	default:
		return false
	}
}

func bodyForMessage(resp framework.Response) string {
	if !resp.HasBody() {
		return "(empty)"
	}
	const maxLength = 500
	if len(resp.Raw) > maxLength {
		return string(resp.Raw[:maxLength]) + "..."
	}
	return string(resp.Raw)
}
