package reqrestwin

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/reqres-contract-tests/reqres-contract-tests/servicedef"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the fixed data set served by the twin.
type Seed struct {
	Support   servicedef.Support    `yaml:"support"`
	PerPage   int                   `yaml:"per_page"`
	Token     string                `yaml:"token"`
	Users     []servicedef.User     `yaml:"users"`
	Resources []servicedef.Resource `yaml:"resources"`
}

// DefaultSeed returns the built-in data set.
func DefaultSeed() (Seed, error) {
	return ParseSeed(defaultSeed)
}

// ParseSeed decodes a seed document. Unknown fields are rejected so that typos do not
// silently produce an empty data set.
func ParseSeed(data []byte) (Seed, error) {
	var s Seed
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return Seed{}, fmt.Errorf("failed to parse seed data: %w", err)
	}
	if err := s.validate(); err != nil {
		return Seed{}, fmt.Errorf("invalid seed data: %w", err)
	}
	return s, nil
}

func (s Seed) validate() error {
	if s.PerPage <= 0 {
		return errors.New("per_page must be positive")
	}
	if s.Token == "" {
		return errors.New("token is required")
	}
	seen := make(map[int]bool)
	for _, u := range s.Users {
		if u.ID <= 0 || u.Email == "" {
			return fmt.Errorf("user %d must have a positive id and an email", u.ID)
		}
		if seen[u.ID] {
			return fmt.Errorf("duplicate user id %d", u.ID)
		}
		seen[u.ID] = true
	}
	seen = make(map[int]bool)
	for _, r := range s.Resources {
		if r.ID <= 0 {
			return fmt.Errorf("resource %q must have a positive id", r.Name)
		}
		if seen[r.ID] {
			return fmt.Errorf("duplicate resource id %d", r.ID)
		}
		seen[r.ID] = true
	}
	return nil
}

func (s Seed) userByID(id int) (servicedef.User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return servicedef.User{}, false
}

func (s Seed) userByEmail(email string) (servicedef.User, bool) {
	for _, u := range s.Users {
		if u.Email == email {
			return u, true
		}
	}
	return servicedef.User{}, false
}

func (s Seed) resourceByID(id int) (servicedef.Resource, bool) {
	for _, r := range s.Resources {
		if r.ID == id {
			return r, true
		}
	}
	return servicedef.Resource{}, false
}
