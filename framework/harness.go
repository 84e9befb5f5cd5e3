package framework

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// TestHarness holds everything the tests need in order to talk to the service under test:
// its base URL, the HTTP client, and the credentials to send.
type TestHarness struct {
	baseURL *url.URL
	config  Config
	client  *http.Client
	logger  Logger
}

// NewTestHarness creates a TestHarness from a validated configuration. It does not contact the
// service; call CheckService for that.
func NewTestHarness(config Config, debugLogger Logger) (*TestHarness, error) {
	if debugLogger == nil {
		debugLogger = NullLogger()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	baseURL, err := url.Parse(strings.TrimRight(config.BaseURL, "/"))
	if err != nil {
		return nil, err
	}
	return &TestHarness{
		baseURL: baseURL,
		config:  config,
		client:  &http.Client{Timeout: config.RequestTimeout},
		logger:  debugLogger,
	}, nil
}

// BaseURL returns the base URL of the service under test, without a trailing slash.
func (h *TestHarness) BaseURL() string {
	return h.baseURL.String()
}

// Config returns the configuration the harness was created with.
func (h *TestHarness) Config() Config {
	return h.config
}

// CheckService makes a single request to the service's base URL to verify that it can be
// reached at all. Any HTTP response counts as success; only a transport error is a failure.
// There are no retries.
func (h *TestHarness) CheckService(output io.Writer) error {
	fmt.Fprintf(output, "Connecting to service at %s\n", h.BaseURL())
	req, err := http.NewRequest(http.MethodGet, h.BaseURL(), nil)
	if err != nil {
		return err
	}
	h.addStandardHeaders(req)
	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("service is not reachable: %w", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	h.logger.Printf("Service status query returned HTTP %d", resp.StatusCode)
	fmt.Fprintf(output, "Service responded with HTTP %d\n", resp.StatusCode)
	return nil
}

func (h *TestHarness) addStandardHeaders(req *http.Request) {
	if h.config.UserAgent != "" {
		req.Header.Set("User-Agent", h.config.UserAgent)
	}
	if h.config.APIKey != "" {
		req.Header.Set(h.config.APIKeyHeader, h.config.APIKey)
	}
}
