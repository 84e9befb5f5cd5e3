package reqrestests

import (
	"net/http"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/reqres-contract-tests/reqres-contract-tests/framework"
	"github.com/reqres-contract-tests/reqres-contract-tests/schemas"
	"github.com/reqres-contract-tests/reqres-contract-tests/servicedef"
)

// All of the update and delete tests target the same user, so they must run one at a time
// and in this order; the framework never runs tests concurrently.

func DoCreateUserTests(t *T) {
	t.RunScenario(Scenario{
		Name: "create user",
		Request: framework.Request{
			Method: http.MethodPost,
			Path:   servicedef.UsersPath,
			Form:   newUser.Values(),
		},
		ExpectStatus: http.StatusCreated,
		Schema:       schemas.CreateUser,
		ExpectFields: map[string]ldvalue.Value{
			servicedef.ParamName: ldvalue.String(newUser.Name),
			servicedef.ParamJob:  ldvalue.String(newUser.Job),
		},
	})
}

func DoUpdateUserTests(t *T) {
	update := func(method string) Scenario {
		return Scenario{
			Name: method + " user",
			Request: framework.Request{
				Method: method,
				Path:   servicedef.UserPath(existingUserID),
				Form:   updatedUser.Values(),
			},
			ExpectStatus: http.StatusOK,
			Schema:       schemas.UpdateUser,
			ExpectFields: map[string]ldvalue.Value{servicedef.ParamJob: ldvalue.String(updatedUser.Job)},
		}
	}

	// The value checks for both update methods have always sent the update with POST, so
	// they stay separate from the PUT and PATCH scenarios and do not check the status.
	resentAsPost := func(method string) Scenario {
		return Scenario{
			Name: method + " user value check resent as POST",
			Request: framework.Request{
				Method: http.MethodPost,
				Path:   servicedef.UserPath(existingUserID),
				Form:   updatedUser.Values(),
			},
			ExpectFields: map[string]ldvalue.Value{servicedef.ParamJob: ldvalue.String(updatedUser.Job)},
		}
	}

	t.RunScenarios(
		update(http.MethodPut),
		resentAsPost(http.MethodPut),
		update(http.MethodPatch),
		resentAsPost(http.MethodPatch),
	)
}

func DoDeleteUserTests(t *T) {
	t.RunScenario(Scenario{
		Name: "delete user",
		Request: framework.Request{
			Method: http.MethodDelete,
			Path:   servicedef.UserPath(existingUserID),
		},
		ExpectStatus: http.StatusNoContent,
	})
}
