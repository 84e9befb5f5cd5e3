// Package reqrestwin is an in-process imitation ("twin") of the public user/resource API
// that the contract tests target. It serves the same canned data with the same status
// codes, so that the test suite itself can be tested without network access, and so that
// the suite can be pointed at a local server while developing.
//
// The twin keeps no state between requests except a counter for the ids of created users.
package reqrestwin

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/reqres-contract-tests/reqres-contract-tests/framework"
	"github.com/reqres-contract-tests/reqres-contract-tests/servicedef"
)

const firstCreatedUserID = 100

// maxDelayUnits caps the "delay" query parameter.
const maxDelayUnits = 60

// Options configures a twin. The zero value is usable.
type Options struct {
	// APIKey, if set, must be present in the APIKeyHeader header of every API request.
	APIKey       string
	APIKeyHeader string

	// DelayUnit is the length of one unit of the "delay" query parameter. The real service
	// uses seconds; tests use something much shorter.
	DelayUnit time.Duration

	// Seed replaces the built-in data set if it is non-nil.
	Seed *Seed

	Logger framework.Logger

	// Now is used for the timestamps in create and update responses.
	Now func() time.Time
}

type twin struct {
	seed      Seed
	opts      Options
	lastID    int
	lastIDMtx sync.Mutex
}

// NewHandler returns an http.Handler that serves the twin's API.
func NewHandler(opts Options) (http.Handler, error) {
	if opts.APIKeyHeader == "" {
		opts.APIKeyHeader = framework.DefaultAPIKeyHeader
	}
	if opts.DelayUnit <= 0 {
		opts.DelayUnit = time.Second
	}
	if opts.Logger == nil {
		opts.Logger = framework.NullLogger()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	var seed Seed
	if opts.Seed != nil {
		if err := opts.Seed.validate(); err != nil {
			return nil, err
		}
		seed = *opts.Seed
	} else {
		s, err := DefaultSeed()
		if err != nil {
			return nil, err
		}
		seed = s
	}

	t := &twin{seed: seed, opts: opts, lastID: firstCreatedUserID - 1}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(t.requestLog)

	r.Get("/", t.handleRoot)
	r.Route("/api", func(r chi.Router) {
		r.Use(t.requireAPIKey)
		r.Use(t.delay)

		r.Get("/users", t.handleListUsers)
		r.Post("/users", t.handleCreateUser)
		r.Get("/users/{id}", t.handleGetUser)
		r.Post("/users/{id}", t.handleCreateUser)
		r.Put("/users/{id}", t.handleUpdateUser)
		r.Patch("/users/{id}", t.handleUpdateUser)
		r.Delete("/users/{id}", t.handleDeleteUser)

		r.Get("/unknown", t.handleListResources)
		r.Get("/unknown/{id}", t.handleGetResource)

		r.Post("/register", t.handleRegister)
		r.Post("/login", t.handleLogin)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeEmptyObject(w, http.StatusNotFound)
	})
	return r, nil
}

func (t *twin) nextUserID() int {
	t.lastIDMtx.Lock()
	defer t.lastIDMtx.Unlock()
	t.lastID++
	return t.lastID
}

func (t *twin) timestamp() string {
	return t.opts.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}

func (t *twin) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		startTime := time.Now()
		next.ServeHTTP(ww, r)
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = "-"
		}
		t.opts.Logger.Printf("%s %s -> %d in %s (request %s)", r.Method, r.URL.RequestURI(),
			ww.Status(), time.Since(startTime).Round(time.Millisecond), requestID)
	})
}

func (t *twin) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if t.opts.APIKey != "" && strings.TrimSpace(r.Header.Get(t.opts.APIKeyHeader)) != t.opts.APIKey {
			writeJSON(w, http.StatusUnauthorized, servicedef.ErrorBody{Error: "Missing API key"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// delay holds the response for the number of units given in the "delay" query parameter,
// at most maxDelayUnits, or until the client goes away.
func (t *twin) delay(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if units, ok := queryInt(r, servicedef.ParamDelay); ok && units > 0 {
			if units > maxDelayUnits {
				units = maxDelayUnits
			}
			timer := time.NewTimer(time.Duration(units) * t.opts.DelayUnit)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-r.Context().Done():
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
