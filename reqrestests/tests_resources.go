package reqrestests

import (
	"net/http"

	"github.com/reqres-contract-tests/reqres-contract-tests/framework"
	"github.com/reqres-contract-tests/reqres-contract-tests/schemas"
	"github.com/reqres-contract-tests/reqres-contract-tests/servicedef"
)

func DoResourceTests(t *T) {
	t.RunScenarios(
		Scenario{
			Name:               "list resources",
			Request:            framework.Request{Path: servicedef.ResourcesPath},
			ExpectStatus:       http.StatusOK,
			ExpectDataNotEmpty: true,
		},
		Scenario{
			Name:               "get existing resource",
			Request:            framework.Request{Path: servicedef.ResourcePath(existingResourceID)},
			ExpectStatus:       http.StatusOK,
			ExpectDataNotEmpty: true,
			Schema:             schemas.SingleResource,
		},
		Scenario{
			Name:            "get missing resource",
			Request:         framework.Request{Path: servicedef.ResourcePath(missingResourceID)},
			ExpectStatus:    http.StatusNotFound,
			ExpectBodyEmpty: true,
		},
	)
}
