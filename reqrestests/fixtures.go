package reqrestests

import (
	"github.com/reqres-contract-tests/reqres-contract-tests/servicedef"
)

// Canned values from the service's fixed data set. If the service changes its data, the
// tests that use them fail.
const (
	existingUserID     = 2
	missingUserID      = 23
	outOfRangeUserID   = 102
	existingResourceID = 2
	missingResourceID  = 23
	listPage           = 2
	delaySeconds       = 3

	registeredUserID = 4
	fixedToken       = "QpwL5tke4Pnpja7X4"
)

var (
	newUser     = servicedef.UserParams{Name: "morpheus", Job: "leader"}
	updatedUser = servicedef.UserParams{Name: "morpheus", Job: "zion resident"}

	validRegistration   = servicedef.Credentials{Email: "eve.holt@reqres.in", Password: "pistol"}
	missingPasswordReg  = servicedef.Credentials{Email: "sydney@fife"}
	validLogin          = servicedef.Credentials{Email: "eve.holt@reqres.in", Password: "cityslicka"}
	missingPasswordAuth = servicedef.Credentials{Email: "peter@klaven"}
)
