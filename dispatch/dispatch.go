// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package dispatch routes custom resource lifecycle events from the
// provisioning framework to the resource that handles them.
//
// The framework invokes two handlers. HandleEvent runs the requested
// lifecycle operation and IsComplete is polled afterwards to learn whether
// that operation finished.
package dispatch

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/hashicorp/go-hclog"

	"github.com/hashicorp/cfn-iot-thinggroup/component"
	"github.com/hashicorp/cfn-iot-thinggroup/framework/resource"
	"github.com/hashicorp/cfn-iot-thinggroup/internal/iotapi"
)

// Dispatcher is the lifecycle dispatcher. It holds no per-invocation
// state and may serve any number of invocations.
type Dispatcher struct {
	manager *resource.Manager
	logger  hclog.Logger
}

// New returns a Dispatcher routing events to the resources of m. The
// manager is validated once here so configuration errors surface at
// startup instead of on the first event.
func New(m *resource.Manager, opts ...Option) (*Dispatcher, error) {
	d := &Dispatcher{
		manager: m,
		logger:  hclog.L(),
	}
	for _, opt := range opts {
		opt(d)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resource configuration: %w", err)
	}

	return d, nil
}

// HandleEvent runs the lifecycle operation requested by raw and reports
// its status. Errors from parsing the event and from the resource are
// returned unmodified so the framework marks the operation failed.
func (d *Dispatcher) HandleEvent(ctx context.Context, raw cfn.Event) (component.Result, error) {
	log := d.requestLogger(ctx)
	log.Info("received lifecycle event", "event", raw)

	ev, err := component.ParseEvent(raw)
	if err != nil {
		log.Error("rejected lifecycle event", "error", err)
		return component.Result{}, err
	}

	meta := ev.Metadata()
	log = log.With(
		"request_type", ev.RequestType().String(),
		"logical_resource_id", meta.LogicalResourceID,
	)

	args := []interface{}{ctx, log, ev}
	var status string
	switch ev.(type) {
	case *component.CreateEvent:
		err = d.manager.Create(meta.ResourceType, args...)
		status = component.StatusCreated

	case *component.UpdateEvent:
		err = d.manager.Update(meta.ResourceType, args...)
		status = component.StatusUpdated

	case *component.DeleteEvent:
		err = d.manager.Destroy(meta.ResourceType, args...)
		status = component.StatusDeleted

	default:
		// ParseEvent only returns the variants above.
		panic(fmt.Sprintf("unhandled event type %T", ev))
	}
	if err != nil {
		log.Error("lifecycle operation failed",
			"error", err,
			"error_code", iotapi.ErrorCode(err),
		)
		return component.Result{}, err
	}

	log.Info("lifecycle operation finished", "status", status)
	return component.NewResult(status), nil
}

// IsComplete reports whether the operation started by HandleEvent has
// finished. It is answered by the completion function of the resource;
// resources without one, like the thing group, finish every operation
// before HandleEvent returns and so are always complete, whatever the
// request type. Nothing remote is called for them.
func (d *Dispatcher) IsComplete(ctx context.Context, raw cfn.Event) (component.CompletionResult, error) {
	log := d.requestLogger(ctx).With(
		"request_type", string(raw.RequestType),
		"logical_resource_id", raw.LogicalResourceID,
	)

	done, err := d.manager.Complete(raw.ResourceType, ctx, log, raw)
	if err != nil {
		log.Error("completion check failed", "error", err)
		return component.CompletionResult{}, err
	}

	log.Debug("completion check", "is_complete", done)
	return component.CompletionResult{IsComplete: done}, nil
}

// requestLogger returns the logger annotated with the Lambda request ID,
// if the context carries one.
func (d *Dispatcher) requestLogger(ctx context.Context) hclog.Logger {
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		return d.logger.With("aws_request_id", lc.AwsRequestID)
	}

	return d.logger
}

// Option configures New.
type Option func(*Dispatcher)

// WithLogger specifies the logger to use. If this is not set then this
// will use the default hclog logger.
func WithLogger(l hclog.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}
