package reqrestwin

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reqres-contract-tests/reqres-contract-tests/framework"
	"github.com/reqres-contract-tests/reqres-contract-tests/servicedef"
)

var fixedTime = time.Date(2024, 5, 6, 7, 8, 9, 123000000, time.UTC)

func newTestTwin(t *testing.T, opts Options) *httptest.Server {
	t.Helper()
	if opts.Now == nil {
		opts.Now = func() time.Time { return fixedTime }
	}
	if opts.DelayUnit == 0 {
		opts.DelayUnit = time.Millisecond
	}
	handler, err := NewHandler(opts)
	require.NoError(t, err)
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func doRequest(t *testing.T, method, target string, form url.Values) (int, map[string]interface{}) {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequest(method, target, body)
	require.NoError(t, err)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(data) == 0 {
		return resp.StatusCode, nil
	}
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &parsed), "body was: %s", string(data))
	return resp.StatusCode, parsed
}

func TestDefaultSeedIsValid(t *testing.T) {
	seed, err := DefaultSeed()
	require.NoError(t, err)
	assert.Len(t, seed.Users, 12)
	assert.Len(t, seed.Resources, 12)
	assert.Equal(t, 6, seed.PerPage)
	assert.Equal(t, "QpwL5tke4Pnpja7X4", seed.Token)

	eve, ok := seed.userByEmail("eve.holt@reqres.in")
	require.True(t, ok)
	assert.Equal(t, 4, eve.ID)
}

func TestParseSeedRejectsUnknownFields(t *testing.T) {
	_, err := ParseSeed([]byte("per_page: 6\ntoken: x\nuserz: []\n"))
	assert.Error(t, err)
}

func TestParseSeedRejectsDuplicateIDs(t *testing.T) {
	_, err := ParseSeed([]byte(`
per_page: 6
token: x
users:
  - {id: 1, email: a@b}
  - {id: 1, email: c@d}
`))
	assert.ErrorContains(t, err, "duplicate user id 1")
}

func TestListUsersPage2(t *testing.T) {
	server := newTestTwin(t, Options{})
	status, body := doRequest(t, "GET", server.URL+servicedef.UsersPath+"?page=2", nil)

	assert.Equal(t, 200, status)
	assert.Equal(t, float64(2), body["page"])
	assert.Equal(t, float64(12), body["total"])
	assert.Equal(t, float64(2), body["total_pages"])
	data := body["data"].([]interface{})
	require.Len(t, data, 6)
	assert.Equal(t, float64(7), data[0].(map[string]interface{})["id"])
}

func TestListPageBeyondEndIsEmpty(t *testing.T) {
	server := newTestTwin(t, Options{})
	status, body := doRequest(t, "GET", server.URL+servicedef.UsersPath+"?page=5", nil)

	assert.Equal(t, 200, status)
	assert.Equal(t, []interface{}{}, body["data"])
}

func TestListWithHugePageValues(t *testing.T) {
	server := newTestTwin(t, Options{})

	status, body := doRequest(t, "GET", server.URL+servicedef.UsersPath+"?page=9223372036854775807", nil)
	assert.Equal(t, 200, status)
	assert.Equal(t, []interface{}{}, body["data"])
	assert.Equal(t, float64(2), body["total_pages"])

	status, body = doRequest(t, "GET", server.URL+servicedef.ResourcesPath+"?page=2&per_page=9223372036854775807", nil)
	assert.Equal(t, 200, status)
	assert.Equal(t, []interface{}{}, body["data"])
	assert.Equal(t, float64(1), body["total_pages"])

	status, body = doRequest(t, "GET", server.URL+servicedef.UsersPath+"?per_page=9223372036854775807", nil)
	assert.Equal(t, 200, status)
	assert.Len(t, body["data"], 12)
	assert.Equal(t, float64(1), body["total_pages"])
}

func TestListLastPartialPage(t *testing.T) {
	server := newTestTwin(t, Options{})
	status, body := doRequest(t, "GET", server.URL+servicedef.UsersPath+"?page=3&per_page=5", nil)

	assert.Equal(t, 200, status)
	assert.Equal(t, float64(3), body["total_pages"])
	data := body["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, float64(11), data[0].(map[string]interface{})["id"])
}

func TestGetSingleUser(t *testing.T) {
	server := newTestTwin(t, Options{})
	status, body := doRequest(t, "GET", server.URL+servicedef.UserPath(2), nil)

	assert.Equal(t, 200, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "janet.weaver@reqres.in", data["email"])
	assert.NotNil(t, body["support"])
}

func TestUnknownIDsAreEmpty404s(t *testing.T) {
	server := newTestTwin(t, Options{})
	for _, path := range []string{servicedef.UserPath(23), servicedef.ResourcePath(23), "/api/users/abc"} {
		t.Run(path, func(t *testing.T) {
			status, body := doRequest(t, "GET", server.URL+path, nil)
			assert.Equal(t, 404, status)
			assert.Empty(t, body)
		})
	}
}

func TestGetSingleResource(t *testing.T) {
	server := newTestTwin(t, Options{})
	status, body := doRequest(t, "GET", server.URL+servicedef.ResourcePath(2), nil)

	assert.Equal(t, 200, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "fuchsia rose", data["name"])
	assert.Equal(t, float64(2001), data["year"])
}

func TestCreateUserEchoesFields(t *testing.T) {
	server := newTestTwin(t, Options{})
	params := servicedef.UserParams{Name: "morpheus", Job: "leader"}
	status, body := doRequest(t, "POST", server.URL+servicedef.UsersPath, params.Values())

	assert.Equal(t, 201, status)
	assert.Equal(t, "morpheus", body["name"])
	assert.Equal(t, "leader", body["job"])
	assert.Equal(t, "100", body["id"])
	assert.Equal(t, "2024-05-06T07:08:09.123Z", body["createdAt"])

	_, body = doRequest(t, "POST", server.URL+servicedef.UserPath(2), params.Values())
	assert.Equal(t, "101", body["id"])
}

func TestCreateUserAcceptsJSON(t *testing.T) {
	server := newTestTwin(t, Options{})
	resp, err := http.Post(server.URL+servicedef.UsersPath, "application/json",
		strings.NewReader(`{"name":"neo","job":"the one","level":7}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 201, resp.StatusCode)
	assert.Equal(t, "neo", body["name"])
	assert.Equal(t, float64(7), body["level"])
}

func TestUpdateUser(t *testing.T) {
	server := newTestTwin(t, Options{})
	params := servicedef.UserParams{Name: "morpheus", Job: "zion resident"}
	for _, method := range []string{"PUT", "PATCH"} {
		t.Run(method, func(t *testing.T) {
			status, body := doRequest(t, method, server.URL+servicedef.UserPath(2), params.Values())
			assert.Equal(t, 200, status)
			assert.Equal(t, "zion resident", body["job"])
			assert.Equal(t, "2024-05-06T07:08:09.123Z", body["updatedAt"])
			assert.NotContains(t, body, "createdAt")
		})
	}
}

func TestDeleteUser(t *testing.T) {
	server := newTestTwin(t, Options{})
	status, body := doRequest(t, "DELETE", server.URL+servicedef.UserPath(2), nil)
	assert.Equal(t, 204, status)
	assert.Nil(t, body)
}

func TestRegister(t *testing.T) {
	server := newTestTwin(t, Options{})
	target := server.URL + servicedef.RegisterPath

	status, body := doRequest(t, "POST", target,
		servicedef.Credentials{Email: "eve.holt@reqres.in", Password: "pistol"}.Values())
	assert.Equal(t, 200, status)
	assert.Equal(t, map[string]interface{}{"id": float64(4), "token": "QpwL5tke4Pnpja7X4"}, body)

	status, body = doRequest(t, "POST", target, servicedef.Credentials{Email: "sydney@fife"}.Values())
	assert.Equal(t, 400, status)
	assert.Equal(t, map[string]interface{}{"error": "Missing password"}, body)

	status, body = doRequest(t, "POST", target,
		servicedef.Credentials{Email: "sydney@fife", Password: "x"}.Values())
	assert.Equal(t, 400, status)
	assert.Equal(t, errUndefinedUser, body["error"])

	status, body = doRequest(t, "POST", target, servicedef.Credentials{Password: "x"}.Values())
	assert.Equal(t, 400, status)
	assert.Equal(t, errMissingEmail, body["error"])
}

func TestLogin(t *testing.T) {
	server := newTestTwin(t, Options{})
	target := server.URL + servicedef.LoginPath

	status, body := doRequest(t, "POST", target,
		servicedef.Credentials{Email: "eve.holt@reqres.in", Password: "cityslicka"}.Values())
	assert.Equal(t, 200, status)
	assert.Equal(t, map[string]interface{}{"token": "QpwL5tke4Pnpja7X4"}, body)

	status, body = doRequest(t, "POST", target, servicedef.Credentials{Email: "peter@klaven"}.Values())
	assert.Equal(t, 400, status)
	assert.Equal(t, "Missing password", body["error"])

	status, body = doRequest(t, "POST", target,
		servicedef.Credentials{Email: "peter@klaven", Password: "x"}.Values())
	assert.Equal(t, 400, status)
	assert.Equal(t, errUserNotFound, body["error"])
}

func TestDelayParameter(t *testing.T) {
	server := newTestTwin(t, Options{DelayUnit: 20 * time.Millisecond})
	startTime := time.Now()
	status, body := doRequest(t, "GET", server.URL+servicedef.UsersPath+"?delay=3", nil)

	assert.Equal(t, 200, status)
	assert.NotEmpty(t, body["data"])
	assert.GreaterOrEqual(t, time.Since(startTime), 60*time.Millisecond)
}

func TestHugeDelayIsCapped(t *testing.T) {
	server := newTestTwin(t, Options{DelayUnit: time.Millisecond})
	startTime := time.Now()
	status, body := doRequest(t, "GET", server.URL+servicedef.UsersPath+"?delay=9223372036854775807", nil)

	assert.Equal(t, 200, status)
	assert.NotEmpty(t, body["data"])
	elapsed := time.Since(startTime)
	assert.GreaterOrEqual(t, elapsed, maxDelayUnits*time.Millisecond)
	assert.Less(t, elapsed, 5*time.Second)
}

func TestAPIKeyEnforcement(t *testing.T) {
	server := newTestTwin(t, Options{APIKey: "secret"})

	status, body := doRequest(t, "GET", server.URL+servicedef.UserPath(2), nil)
	assert.Equal(t, 401, status)
	assert.Equal(t, "Missing API key", body["error"])

	req, _ := http.NewRequest("GET", server.URL+servicedef.UserPath(2), nil)
	req.Header.Set(framework.DefaultAPIKeyHeader, "secret")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)

	status, _ = doRequest(t, "GET", server.URL+"/", nil)
	assert.Equal(t, 200, status, "root path should not require a key")
}

func TestRequestsAreLogged(t *testing.T) {
	var logger framework.CapturingLogger
	server := newTestTwin(t, Options{Logger: &logger})

	req, _ := http.NewRequest("GET", server.URL+servicedef.UserPath(23), nil)
	req.Header.Set("X-Request-Id", "abc-123")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	output := logger.Output()
	require.Len(t, output, 1)
	assert.Contains(t, output[0].Message, "GET /api/users/23 -> 404")
	assert.Contains(t, output[0].Message, "request abc-123")
}
