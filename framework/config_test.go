package framework

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	c, err := LoadConfigFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, Config{
		BaseURL:      DefaultBaseURL,
		APIKeyHeader: DefaultAPIKeyHeader,
		UserAgent:    "reqres-contract-tests",
	}, c)
	assert.NoError(t, c.Validate())
}

func TestConfigFromEnvironment(t *testing.T) {
	c, err := LoadConfigFrom(map[string]string{
		"REQRES_BASE_URL":        "http://localhost:8111",
		"REQRES_API_KEY":         "reqres-free-v1",
		"REQRES_API_KEY_HEADER":  "Authorization",
		"REQRES_REQUEST_TIMEOUT": "5s",
		"REQRES_USER_AGENT":      "ci",
	})
	require.NoError(t, err)

	assert.Equal(t, Config{
		BaseURL:        "http://localhost:8111",
		APIKey:         "reqres-free-v1",
		APIKeyHeader:   "Authorization",
		RequestTimeout: 5 * time.Second,
		UserAgent:      "ci",
	}, c)
}

func TestConfigRejectsBadDuration(t *testing.T) {
	_, err := LoadConfigFrom(map[string]string{"REQRES_REQUEST_TIMEOUT": "soon"})
	assert.ErrorContains(t, err, "invalid environment configuration")
}

func TestConfigValidate(t *testing.T) {
	valid := Config{BaseURL: "https://reqres.in", APIKeyHeader: DefaultAPIKeyHeader}

	for _, p := range []struct {
		name   string
		modify func(*Config)
		err    string
	}{
		{"valid", func(c *Config) {}, ""},
		{"http scheme", func(c *Config) { c.BaseURL = "http://localhost:8111/prefix" }, ""},
		{"no base URL", func(c *Config) { c.BaseURL = "" }, "base URL is required"},
		{"relative URL", func(c *Config) { c.BaseURL = "/api" }, "must use http or https"},
		{"other scheme", func(c *Config) { c.BaseURL = "ftp://reqres.in" }, "must use http or https"},
		{"no host", func(c *Config) { c.BaseURL = "http://" }, "has no host"},
		{"key without header", func(c *Config) {
			c.APIKey = "k"
			c.APIKeyHeader = " "
		}, "header name is required"},
		{"negative timeout", func(c *Config) { c.RequestTimeout = -time.Second }, "must not be negative"},
	} {
		t.Run(p.name, func(t *testing.T) {
			c := valid
			p.modify(&c)
			err := c.Validate()
			if p.err == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, p.err)
			}
		})
	}
}
