// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/hashicorp/go-hclog"

	"github.com/hashicorp/cfn-iot-thinggroup/dispatch"
	"github.com/hashicorp/cfn-iot-thinggroup/framework/resource"
	envconfig "github.com/hashicorp/cfn-iot-thinggroup/internal/config"
	"github.com/hashicorp/cfn-iot-thinggroup/internal/iotapi"
	"github.com/hashicorp/cfn-iot-thinggroup/thinggroup"
)

// Main is the primary entrypoint for the provider function. This function
// never returns; it blocks serving invocations until the Lambda runtime
// stops the process. This should be called immediately in main() of the
// function binary, no prior setup should be done.
func Main(opts ...Option) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	if c.Config == nil {
		cfg, err := envconfig.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid configuration: %s\n", err)
			os.Exit(1)
		}
		c.Config = cfg
	}

	// Create our logger. We also set this as the default logger in case
	// any other libraries are using hclog and we don't properly chain it
	// along.
	log := c.Logger
	if log == nil {
		log = hclog.New(&hclog.LoggerOptions{
			Name:   "thinggroup",
			Level:  c.Config.Level(),
			Output: os.Stderr,

			// JSON-formatted so that the log lines land in CloudWatch as
			// structured events.
			JSONFormat: true,
		})
	}
	hclog.SetDefault(log)

	handler, err := newHandler(context.Background(), &c, log)
	if err != nil {
		log.Error("failed to initialize handler", "error", err)
		os.Exit(1)
	}

	log.Info("serving handler", "handler", c.Config.HandlerName())
	lambda.Start(handler)
}

// newHandler builds the handler function selected by the configuration.
// The IoT client is built once here and shared by every invocation.
func newHandler(ctx context.Context, c *config, log hclog.Logger) (interface{}, error) {
	client := c.Client
	if client == nil {
		awsCfg, err := iotapi.LoadConfig(ctx, c.Config.Region)
		if err != nil {
			return nil, err
		}
		client = iotapi.NewClient(awsCfg, c.Config.IoTEndpoint)
	}

	m := resource.NewManager(
		resource.WithLogger(log.Named("resource")),
		resource.WithResource(thinggroup.Resource()),
		resource.WithValueProvider(func() iotapi.ThingGroupAPI { return client }),
	)

	d, err := dispatch.New(m, dispatch.WithLogger(log))
	if err != nil {
		return nil, err
	}

	switch name := c.Config.HandlerName(); name {
	case envconfig.HandlerOnEvent:
		return d.HandleEvent, nil
	case envconfig.HandlerIsComplete:
		return d.IsComplete, nil
	default:
		return nil, fmt.Errorf("unknown handler %q", name)
	}
}

// config is the configuration for Main. This can only be modified using
// Option implementations.
type config struct {
	// Config is the provider configuration. If nil it is loaded from the
	// process environment.
	Config *envconfig.Config

	// Client is the IoT client. If nil one is built from the default AWS
	// configuration.
	Client iotapi.ThingGroupAPI

	Logger hclog.Logger
}

// Option modifies config. Zero or more can be passed to Main.
type Option func(*config)

// WithConfig specifies the provider configuration, replacing the one
// loaded from the environment.
func WithConfig(cfg *envconfig.Config) Option {
	return func(c *config) { c.Config = cfg }
}

// WithClient specifies the IoT client lifecycle operations are run with.
func WithClient(client iotapi.ThingGroupAPI) Option {
	return func(c *config) { c.Client = client }
}

// WithLogger specifies the logger to use.
func WithLogger(l hclog.Logger) Option {
	return func(c *config) { c.Logger = l }
}
