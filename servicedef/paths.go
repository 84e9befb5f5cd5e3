// Package servicedef describes the wire protocol of the service under test: its resource
// paths, its parameter names, and the shapes of its response bodies. It is shared by the
// tests and by the twin that imitates the service.
package servicedef

import (
	"net/url"
	"strconv"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	UsersPath     = "/api/users"
	ResourcesPath = "/api/unknown"
	RegisterPath  = "/api/register"
	LoginPath     = "/api/login"
)

const (
	ParamPage     = "page"
	ParamPerPage  = "per_page"
	ParamDelay    = "delay"
	ParamName     = "name"
	ParamJob      = "job"
	ParamEmail    = "email"
	ParamPassword = "password"
)

func UserPath(id int) string {
	return UsersPath + "/" + strconv.Itoa(id)
}

func ResourcePath(id int) string {
	return ResourcesPath + "/" + strconv.Itoa(id)
}

// ListQuery holds the optional query parameters of the list endpoints.
type ListQuery struct {
	Page    ldvalue.OptionalInt
	PerPage ldvalue.OptionalInt
	// Delay asks the service to wait this many seconds before responding.
	Delay ldvalue.OptionalInt
}

// Values encodes the parameters that are set.
func (q ListQuery) Values() url.Values {
	values := url.Values{}
	add := func(name string, v ldvalue.OptionalInt) {
		if v.IsDefined() {
			values.Set(name, strconv.Itoa(v.IntValue()))
		}
	}
	add(ParamPage, q.Page)
	add(ParamPerPage, q.PerPage)
	add(ParamDelay, q.Delay)
	return values
}

// UserParams is the payload of the create and update requests.
type UserParams struct {
	Name string
	Job  string
}

func (p UserParams) Values() url.Values {
	return url.Values{ParamName: {p.Name}, ParamJob: {p.Job}}
}

// Credentials is the payload of the register and login requests. An empty field is left
// out of the request entirely rather than being sent as an empty string.
type Credentials struct {
	Email    string
	Password string
}

func (c Credentials) Values() url.Values {
	values := url.Values{}
	if c.Email != "" {
		values.Set(ParamEmail, c.Email)
	}
	if c.Password != "" {
		values.Set(ParamPassword, c.Password)
	}
	return values
}
