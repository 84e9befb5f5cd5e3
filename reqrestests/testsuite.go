package reqrestests

import (
	"github.com/reqres-contract-tests/reqres-contract-tests/framework"
)

func RunTestSuite(
	harness *framework.TestHarness,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, harness)

		t.Run("users", DoUserTests)
		t.Run("resources", DoResourceTests)
		t.Run("delayed response", DoDelayedResponseTests)
		t.Run("create user", DoCreateUserTests)
		t.Run("update user", DoUpdateUserTests)
		t.Run("delete user", DoDeleteUserTests)
		t.Run("register", DoRegisterTests)
		t.Run("login", DoLoginTests)
	})
}
