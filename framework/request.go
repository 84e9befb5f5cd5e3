package framework

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	requestIDHeader     = "X-Request-Id"
	formContentType     = "application/x-www-form-urlencoded"
	maxLoggedBodyLength = 4000
)

// Request describes a single HTTP call to the service under test. Path is relative to the
// harness base URL.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Form    url.Values
	Headers http.Header
}

func (r Request) method() string {
	if r.Method == "" {
		return http.MethodGet
	}
	return r.Method
}

func (r Request) String() string {
	s := r.method() + " " + r.Path
	if len(r.Query) != 0 {
		s += "?" + r.Query.Encode()
	}
	return s
}

// Response is what came back from a Request. Body is the parsed JSON body; it is a null
// value if the response had no body, or if the body was not valid JSON, in which case
// BodyErr says why.
type Response struct {
	StatusCode int
	Header     http.Header
	Raw        []byte
	Body       ldvalue.Value
	BodyErr    error
	Elapsed    time.Duration
	RequestID  string
}

// HasBody returns true if the response contained anything other than whitespace.
func (r Response) HasBody() bool {
	return len(bytes.TrimSpace(r.Raw)) != 0
}

// TransportError means that no HTTP response was received at all.
type TransportError struct {
	Request Request
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s failed before a response was received: %s", e.Request, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// URL returns the absolute URL for a request.
func (h *TestHarness) URL(r Request) string {
	u := *h.baseURL
	u.Path = h.baseURL.Path + "/" + strings.TrimLeft(r.Path, "/")
	u.RawQuery = r.Query.Encode()
	return u.String()
}

// Do sends one request and reads the whole response. A non-nil error is always a
// *TransportError; HTTP error statuses are not errors.
func (h *TestHarness) Do(ctx context.Context, r Request, logger Logger) (Response, error) {
	if logger == nil {
		logger = h.logger
	}

	var body io.Reader
	var encodedForm string
	if r.Form != nil {
		encodedForm = r.Form.Encode()
		body = strings.NewReader(encodedForm)
	}
	target := h.URL(r)
	req, err := http.NewRequestWithContext(ctx, r.method(), target, body)
	if err != nil {
		return Response{}, &TransportError{Request: r, Err: err}
	}
	h.addStandardHeaders(req)
	for name, values := range r.Headers {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	if r.Form != nil {
		req.Header.Set("Content-Type", formContentType)
	}
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)

	logger.Printf("Request %s: %s", requestID, curlCommand(req, encodedForm, h.config.APIKeyHeader))

	startTime := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		logger.Printf("Request %s failed: %s", requestID, err)
		return Response{}, &TransportError{Request: r, Err: err}
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	elapsed := time.Since(startTime)
	if err != nil {
		logger.Printf("Request %s failed while reading the body: %s", requestID, err)
		return Response{}, &TransportError{Request: r, Err: err}
	}

	result := Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Raw:        raw,
		Elapsed:    elapsed,
		RequestID:  requestID,
	}
	result.Body, result.BodyErr = parseBody(raw)
	logger.Printf("Response %s: HTTP %d after %s\n%s", requestID, resp.StatusCode,
		elapsed.Round(time.Millisecond), truncateForLog(raw))
	return result, nil
}

func parseBody(raw []byte) (ldvalue.Value, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return ldvalue.Null(), nil
	}
	var v ldvalue.Value
	if err := json.Unmarshal(raw, &v); err != nil {
		return ldvalue.Null(), fmt.Errorf("response body is not valid JSON: %w", err)
	}
	return v, nil
}

func truncateForLog(raw []byte) string {
	if len(raw) == 0 {
		return "(empty body)"
	}
	if len(raw) > maxLoggedBodyLength {
		return string(raw[:maxLoggedBodyLength]) + "... (truncated)"
	}
	return string(raw)
}
