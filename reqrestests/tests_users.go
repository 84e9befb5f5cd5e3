package reqrestests

import (
	"net/http"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/reqres-contract-tests/reqres-contract-tests/framework"
	"github.com/reqres-contract-tests/reqres-contract-tests/schemas"
	"github.com/reqres-contract-tests/reqres-contract-tests/servicedef"
)

func DoUserTests(t *T) {
	t.RunScenarios(
		Scenario{
			Name: "list users page 2",
			Request: framework.Request{
				Path:  servicedef.UsersPath,
				Query: servicedef.ListQuery{Page: ldvalue.NewOptionalInt(listPage)}.Values(),
			},
			ExpectStatus:       http.StatusOK,
			ExpectDataNotEmpty: true,
		},
		Scenario{
			Name:         "get existing user",
			Request:      framework.Request{Path: servicedef.UserPath(existingUserID)},
			ExpectStatus: http.StatusOK,
			Schema:       schemas.SingleUser,
		},
		Scenario{
			Name:            "get missing user",
			Request:         framework.Request{Path: servicedef.UserPath(missingUserID)},
			ExpectStatus:    http.StatusNotFound,
			ExpectBodyEmpty: true,
		},
		Scenario{
			Name:         "get user beyond the data set",
			Request:      framework.Request{Path: servicedef.UserPath(outOfRangeUserID)},
			ExpectStatus: http.StatusNotFound,
		},
	)
}
