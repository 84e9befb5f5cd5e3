package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/reqres-contract-tests/reqres-contract-tests/framework"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type commandParams struct {
	serviceURL string
	apiKey     string
	filters    framework.RegexFilters
	debug      bool
	debugAll   bool
	format     string
	noColor    bool
	skipProbe  bool
}

func (c *commandParams) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&c.serviceURL, "url", "", "service base URL (overrides REQRES_BASE_URL)")
	fs.StringVar(&c.apiKey, "api-key", "", "API key to send with every request (overrides REQRES_API_KEY)")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.StringVar(&c.format, "format", formatText, "results format (text|json)")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored output")
	fs.BoolVar(&c.skipProbe, "skip-probe", false, "do not check that the service is reachable before running")
}

// applyTo returns the configuration with any values given on the command line taking
// precedence over the environment.
func (c *commandParams) applyTo(config framework.Config) framework.Config {
	if c.serviceURL != "" {
		config.BaseURL = c.serviceURL
	}
	if c.apiKey != "" {
		config.APIKey = c.apiKey
	}
	return config
}

func (c *commandParams) validate() error {
	if c.format != formatText && c.format != formatJSON {
		return fmt.Errorf("invalid format %q: must be %q or %q", c.format, formatText, formatJSON)
	}
	return nil
}

type twinParams struct {
	port      int
	apiKey    string
	delayUnit time.Duration
}

func (p *twinParams) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&p.port, "port", defaultTwinPort, "port to listen on")
	fs.StringVar(&p.apiKey, "api-key", "", "require this API key on every API request")
	fs.DurationVar(&p.delayUnit, "delay-unit", time.Second, `length of one unit of the "delay" parameter`)
}
