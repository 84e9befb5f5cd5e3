// Package schemas contains the JSON-schema documents that describe the successful response
// bodies of the service, and validation against them.
//
// The documents are fixed, versioned fixtures (see their $id); the test suite never
// derives them from responses.
package schemas

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// Name identifies one of the schema documents.
type Name string

const (
	SingleUser     Name = "single_user"
	SingleResource Name = "single_resource"
	CreateUser     Name = "create_user"
	UpdateUser     Name = "update_user"
	RegisterUser   Name = "register_user"
)

//go:embed data/*.json
var documents embed.FS

var (
	compileOnce sync.Once
	compiled    map[Name]*gojsonschema.Schema
	compileErr  error
)

// All returns the names of all schema documents.
func All() []Name {
	return []Name{SingleUser, SingleResource, CreateUser, UpdateUser, RegisterUser}
}

// Document returns the raw JSON of a schema document.
func Document(name Name) ([]byte, error) {
	data, err := documents.ReadFile("data/" + string(name) + ".json")
	if err != nil {
		return nil, fmt.Errorf("unknown schema %q", name)
	}
	return data, nil
}

func compileAll() {
	compiled = make(map[Name]*gojsonschema.Schema)
	for _, name := range All() {
		data, err := Document(name)
		if err != nil {
			compileErr = err
			return
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
		if err != nil {
			compileErr = fmt.Errorf("schema %q is not a valid JSON schema: %w", name, err)
			return
		}
		compiled[name] = schema
	}
}

func lookup(name Name) (*gojsonschema.Schema, error) {
	compileOnce.Do(compileAll)
	if compileErr != nil {
		return nil, compileErr
	}
	schema, ok := compiled[name]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q", name)
	}
	return schema, nil
}

// Violation is one constraint in a schema that a document did not satisfy.
type Violation struct {
	Field       string
	Type        string
	Description string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Description)
}

// ValidationError is returned by Validate when a document does not conform to a schema.
type ValidationError struct {
	Schema     Name
	Violations []Violation
}

func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Violations)+1)
	lines = append(lines, fmt.Sprintf("response body does not conform to schema %q:", e.Schema))
	for _, v := range e.Violations {
		lines = append(lines, "  - "+v.String())
	}
	return strings.Join(lines, "\n")
}

// Validate checks a JSON document against the named schema. It returns a *ValidationError
// if the document is well-formed JSON but does not conform, or some other error if the
// document could not be checked at all.
func Validate(name Name, body []byte) error {
	schema, err := lookup(name)
	if err != nil {
		return err
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("could not validate response body against schema %q: %w", name, err)
	}
	if result.Valid() {
		return nil
	}
	verr := &ValidationError{Schema: name}
	for _, re := range result.Errors() {
		verr.Violations = append(verr.Violations, Violation{
			Field:       re.Field(),
			Type:        re.Type(),
			Description: re.Description(),
		})
	}
	return verr
}
