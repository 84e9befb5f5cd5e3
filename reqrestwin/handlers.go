package reqrestwin

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/reqres-contract-tests/reqres-contract-tests/servicedef"
)

const maxBodySize = 1 << 20

const (
	errMissingEmail    = "Missing email or username"
	errMissingPassword = "Missing password"
	errUndefinedUser   = "Note: Only defined users succeed registration"
	errUserNotFound    = "user not found"
)

func (t *twin) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"service": "reqres twin"})
}

func (t *twin) handleListUsers(w http.ResponseWriter, r *http.Request) {
	page, perPage := t.pagination(r)
	writeJSON(w, http.StatusOK, paginate(t.seed.Users, page, perPage, t.seed.Support))
}

func (t *twin) handleListResources(w http.ResponseWriter, r *http.Request) {
	page, perPage := t.pagination(r)
	writeJSON(w, http.StatusOK, paginate(t.seed.Resources, page, perPage, t.seed.Support))
}

func (t *twin) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeEmptyObject(w, http.StatusNotFound)
		return
	}
	user, ok := t.seed.userByID(id)
	if !ok {
		writeEmptyObject(w, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, servicedef.Single[servicedef.User]{Data: user, Support: t.seed.Support})
}

func (t *twin) handleGetResource(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeEmptyObject(w, http.StatusNotFound)
		return
	}
	resource, ok := t.seed.resourceByID(id)
	if !ok {
		writeEmptyObject(w, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, servicedef.Single[servicedef.Resource]{Data: resource, Support: t.seed.Support})
}

// handleCreateUser echoes back whatever fields were sent, plus a new id and a creation time.
// The service treats a POST to an individual user path the same way.
func (t *twin) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	params, err := readParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, servicedef.ErrorBody{Error: err.Error()})
		return
	}
	body := copyObject(params).
		Set("id", ldvalue.String(strconv.Itoa(t.nextUserID()))).
		Set("createdAt", ldvalue.String(t.timestamp())).
		Build()
	writeJSON(w, http.StatusCreated, body)
}

func (t *twin) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	params, err := readParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, servicedef.ErrorBody{Error: err.Error()})
		return
	}
	body := copyObject(params).
		Set("updatedAt", ldvalue.String(t.timestamp())).
		Build()
	writeJSON(w, http.StatusOK, body)
}

func (t *twin) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (t *twin) handleRegister(w http.ResponseWriter, r *http.Request) {
	email, ok := t.readCredentials(w, r)
	if !ok {
		return
	}
	user, found := t.seed.userByEmail(email)
	if !found {
		writeJSON(w, http.StatusBadRequest, servicedef.ErrorBody{Error: errUndefinedUser})
		return
	}
	writeJSON(w, http.StatusOK, servicedef.RegisterResult{ID: user.ID, Token: t.seed.Token})
}

func (t *twin) handleLogin(w http.ResponseWriter, r *http.Request) {
	email, ok := t.readCredentials(w, r)
	if !ok {
		return
	}
	if _, found := t.seed.userByEmail(email); !found {
		writeJSON(w, http.StatusBadRequest, servicedef.ErrorBody{Error: errUserNotFound})
		return
	}
	writeJSON(w, http.StatusOK, servicedef.LoginResult{Token: t.seed.Token})
}

// readCredentials writes a 400 response and returns false if either credential is missing.
// The service accepts any password for a defined user, so only the email is returned.
func (t *twin) readCredentials(w http.ResponseWriter, r *http.Request) (string, bool) {
	params, err := readParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, servicedef.ErrorBody{Error: err.Error()})
		return "", false
	}
	email := params.GetByKey(servicedef.ParamEmail).StringValue()
	password := params.GetByKey(servicedef.ParamPassword).StringValue()
	switch {
	case email == "":
		writeJSON(w, http.StatusBadRequest, servicedef.ErrorBody{Error: errMissingEmail})
		return "", false
	case password == "":
		writeJSON(w, http.StatusBadRequest, servicedef.ErrorBody{Error: errMissingPassword})
		return "", false
	}
	return email, true
}

func (t *twin) pagination(r *http.Request) (page, perPage int) {
	page, perPage = 1, t.seed.PerPage
	if p, ok := queryInt(r, servicedef.ParamPage); ok && p > 0 {
		page = p
	}
	if p, ok := queryInt(r, servicedef.ParamPerPage); ok && p > 0 {
		perPage = p
	}
	return page, perPage
}

// paginate works by division so that arbitrarily large page and per_page values cannot
// overflow.
func paginate[T any](all []T, page, perPage int, support servicedef.Support) servicedef.Page[T] {
	totalPages := len(all) / perPage
	if len(all)%perPage != 0 {
		totalPages++
	}
	result := servicedef.Page[T]{
		Page:       page,
		PerPage:    perPage,
		Total:      len(all),
		TotalPages: totalPages,
		Data:       []T{},
		Support:    support,
	}
	if page-1 >= totalPages {
		return result
	}
	start := (page - 1) * perPage
	end := len(all)
	if perPage < end-start {
		end = start + perPage
	}
	result.Data = all[start:end]
	return result
}

// readParams returns the request payload as a JSON object, whether it was sent as a form
// or as JSON. A missing body is an empty object.
func readParams(r *http.Request) (ldvalue.Value, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		data, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
		if err != nil {
			return ldvalue.Null(), err
		}
		if len(data) == 0 {
			return ldvalue.ObjectBuild().Build(), nil
		}
		var v ldvalue.Value
		if err := json.Unmarshal(data, &v); err != nil {
			return ldvalue.Null(), errors.New("malformed JSON body")
		}
		if v.Type() != ldvalue.ObjectType {
			return ldvalue.Null(), errors.New("JSON body must be an object")
		}
		return v, nil
	default:
		r.Body = http.MaxBytesReader(nil, r.Body, maxBodySize)
		if err := r.ParseForm(); err != nil {
			return ldvalue.Null(), errors.New("malformed form body")
		}
		b := ldvalue.ObjectBuild()
		for k, values := range r.PostForm {
			if len(values) > 0 {
				b.Set(k, ldvalue.String(values[0]))
			}
		}
		return b.Build(), nil
	}
}

func copyObject(v ldvalue.Value) ldvalue.ObjectBuilder {
	b := ldvalue.ObjectBuild()
	for _, k := range v.Keys() {
		b.Set(k, v.GetByKey(k))
	}
	return b
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil
}

func queryInt(r *http.Request, name string) (int, bool) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeEmptyObject(w http.ResponseWriter, status int) {
	writeJSON(w, status, ldvalue.ObjectBuild().Build())
}
