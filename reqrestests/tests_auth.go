package reqrestests

import (
	"net/http"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/reqres-contract-tests/reqres-contract-tests/framework"
	"github.com/reqres-contract-tests/reqres-contract-tests/schemas"
	"github.com/reqres-contract-tests/reqres-contract-tests/servicedef"
)

func postCredentials(path string, c servicedef.Credentials) framework.Request {
	return framework.Request{Method: http.MethodPost, Path: path, Form: c.Values()}
}

func DoRegisterTests(t *T) {
	t.RunScenarios(
		Scenario{
			Name:         "register with email and password",
			Request:      postCredentials(servicedef.RegisterPath, validRegistration),
			ExpectStatus: http.StatusOK,
			Schema:       schemas.RegisterUser,
			ExpectFields: map[string]ldvalue.Value{
				"id":    ldvalue.Int(registeredUserID),
				"token": ldvalue.String(fixedToken),
			},
		},
		Scenario{
			Name:               "register without password",
			Request:            postCredentials(servicedef.RegisterPath, missingPasswordReg),
			ExpectStatus:       http.StatusBadRequest,
			ExpectBodyNotEmpty: true,
		},
	)
}

func DoLoginTests(t *T) {
	t.RunScenarios(
		Scenario{
			Name:         "login with email and password",
			Request:      postCredentials(servicedef.LoginPath, validLogin),
			ExpectStatus: http.StatusOK,
			ExpectFields: map[string]ldvalue.Value{"token": ldvalue.String(fixedToken)},
		},
		Scenario{
			Name:               "login without password",
			Request:            postCredentials(servicedef.LoginPath, missingPasswordAuth),
			ExpectStatus:       http.StatusBadRequest,
			ExpectBodyNotEmpty: true,
		},
	)
}
