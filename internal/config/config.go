// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package config loads the provider configuration from the process
// environment set by the Lambda runtime and the deploying stack.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/mapstructure"
)

// Names of the handlers the provider binary can serve.
const (
	HandlerOnEvent    = "on_event"
	HandlerIsComplete = "is_complete"
)

// Config is the provider configuration. Field tags are the environment
// variable names.
type Config struct {
	// Handler selects the handler to serve. If unset the handler configured
	// for the function (_HANDLER) is used and finally HandlerOnEvent.
	Handler string `mapstructure:"HANDLER"`

	// LambdaHandler is set by the Lambda runtime to the handler configured
	// on the function, e.g. "index.on_event" or "bootstrap".
	LambdaHandler string `mapstructure:"_HANDLER"`

	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Region overrides the region from the default AWS configuration.
	Region string `mapstructure:"AWS_REGION"`

	// IoTEndpoint overrides the IoT service endpoint.
	IoTEndpoint string `mapstructure:"IOT_ENDPOINT_URL"`
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	return FromEnviron(os.Environ())
}

// FromEnviron reads the configuration from a list of "KEY=value" strings
// in the format of os.Environ.
func FromEnviron(environ []string) (*Config, error) {
	raw := make(map[string]interface{}, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		raw[k] = v
	}

	result := &Config{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           result,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := result.Validate(); err != nil {
		return nil, err
	}

	return result, nil
}

// HandlerName returns the normalized name of the handler to serve.
func (c *Config) HandlerName() string {
	for _, v := range []string{c.Handler, c.LambdaHandler} {
		if name := normalizeHandler(v); name != "" {
			return name
		}
	}

	return HandlerOnEvent
}

// Level returns the configured log level, defaulting to info.
func (c *Config) Level() hclog.Level {
	if c.LogLevel == "" {
		return hclog.Info
	}

	return hclog.LevelFromString(c.LogLevel)
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	var result error

	if c.Handler != "" && normalizeHandler(c.Handler) == "" {
		result = multierror.Append(result, fmt.Errorf(
			"HANDLER: unknown handler %q, expected %q or %q",
			c.Handler, HandlerOnEvent, HandlerIsComplete))
	}
	if c.Level() == hclog.NoLevel {
		result = multierror.Append(result, fmt.Errorf(
			"LOG_LEVEL: unknown log level %q", c.LogLevel))
	}
	if strings.ContainsAny(c.IoTEndpoint, " \t\n") {
		result = multierror.Append(result, errors.New(
			"IOT_ENDPOINT_URL: must not contain whitespace"))
	}

	return result
}

// normalizeHandler maps handler names such as "index.on_event",
// "onEvent" or "is_complete" to a handler constant. Unknown names return "".
func normalizeHandler(v string) string {
	if i := strings.LastIndex(v, "."); i >= 0 {
		v = v[i+1:]
	}

	switch strings.ToLower(strings.ReplaceAll(v, "_", "")) {
	case "onevent":
		return HandlerOnEvent
	case "iscomplete":
		return HandlerIsComplete
	}

	return ""
}
