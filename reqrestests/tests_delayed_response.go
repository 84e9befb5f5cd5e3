package reqrestests

import (
	"net/http"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/reqres-contract-tests/reqres-contract-tests/framework"
	"github.com/reqres-contract-tests/reqres-contract-tests/servicedef"
)

func DoDelayedResponseTests(t *T) {
	s := Scenario{
		Name: "list users with delay",
		Request: framework.Request{
			Path:  servicedef.UsersPath,
			Query: servicedef.ListQuery{Delay: ldvalue.NewOptionalInt(delaySeconds)}.Values(),
		},
		ExpectStatus:       http.StatusOK,
		ExpectDataNotEmpty: true,
	}
	t.Run(s.Name, func(t *T) {
		resp := t.Send(s.Request)
		// the service decides how long the delay really is, so this is informational only
		t.Debug("Delayed response arrived after %s", resp.Elapsed.Round(time.Millisecond))
		s.Check(t, resp)
	})
}
