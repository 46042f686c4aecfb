// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package resource

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-argmapper"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// ErrUnknownResourceType is returned when the manager has no resource for
// the resource type named by a lifecycle event.
var ErrUnknownResourceType = errors.New("unknown resource type")

// Manager manages the lifecycle of one or more resource types.
//
// A resource manager routes lifecycle operations to the resource declared
// for a resource type and makes the values from its value providers (such
// as API clients) available to the resource lifecycle functions.
//
// Create a Manager with NewManager and a set of options.
type Manager struct {
	resources      map[string]*Resource
	logger         hclog.Logger
	valueProviders []interface{}
}

// NewManager creates a new resource manager.
//
// Callers should call Validate on the result to check for errors.
func NewManager(opts ...ManagerOption) *Manager {
	var m Manager
	m.resources = map[string]*Resource{}
	m.logger = hclog.L()
	for _, opt := range opts {
		opt(&m)
	}
	return &m
}

// Validate checks that the manager and all the resources that are part
// of this manager are configured correctly. This will always be called
// prior to any lifecycle operation, but users may call this earlier to
// better control when this happens.
func (m *Manager) Validate() error {
	var result error

	if len(m.resources) == 0 {
		result = multierror.Append(result, errors.New("at least one resource must be set"))
	}

	seen := map[string]string{}
	for key, r := range m.resources {
		err := r.Validate()
		if err != nil {
			// We prefix all the error messages with the resource name so
			// that users can better identify them.
			prefix := r.name
			if prefix == "" {
				prefix = "unnamed resource"
			}
			err = multierror.Prefix(err, prefix+": ")

			result = multierror.Append(result, err)
		}

		if other, ok := seen[r.resourceType]; ok {
			result = multierror.Append(result, fmt.Errorf(
				"resources %q and %q share the resource type %q",
				other, key, r.resourceType))
		}
		seen[r.resourceType] = key
	}

	return result
}

// Resource returns the resource with the given name. This will return nil
// if the resource is not known.
func (m *Manager) Resource(n string) *Resource {
	return m.resources[n]
}

// ResourceFor returns the resource handling resourceType. A manager with a
// single resource serves every resource type, since templates commonly
// declare custom resources with the generic
// "AWS::CloudFormation::CustomResource" type.
func (m *Manager) ResourceFor(resourceType string) (*Resource, error) {
	for _, r := range m.resources {
		if r.resourceType == resourceType {
			return r, nil
		}
	}

	if len(m.resources) == 1 {
		for _, r := range m.resources {
			return r, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownResourceType, resourceType)
}

// Create calls the creation function of the resource for resourceType.
// args are made available to it in addition to the manager's values.
func (m *Manager) Create(resourceType string, args ...interface{}) error {
	r, mapperArgs, err := m.prepare(resourceType, args)
	if err != nil {
		return err
	}

	m.logger.Debug("creating resource", "resource", r.name, "type", resourceType)
	return r.create(mapperArgs)
}

// Update calls the update function of the resource for resourceType.
func (m *Manager) Update(resourceType string, args ...interface{}) error {
	r, mapperArgs, err := m.prepare(resourceType, args)
	if err != nil {
		return err
	}

	m.logger.Debug("updating resource", "resource", r.name, "type", resourceType)
	return r.update(mapperArgs)
}

// Destroy calls the destroy function of the resource for resourceType.
func (m *Manager) Destroy(resourceType string, args ...interface{}) error {
	r, mapperArgs, err := m.prepare(resourceType, args)
	if err != nil {
		return err
	}

	m.logger.Debug("destroying resource", "resource", r.name, "type", resourceType)
	return r.destroy(mapperArgs)
}

// Complete calls the completion function of the resource for resourceType.
func (m *Manager) Complete(resourceType string, args ...interface{}) (bool, error) {
	r, mapperArgs, err := m.prepare(resourceType, args)
	if err != nil {
		return false, err
	}

	return r.complete(mapperArgs)
}

func (m *Manager) prepare(resourceType string, args []interface{}) (*Resource, []argmapper.Arg, error) {
	if err := m.Validate(); err != nil {
		return nil, nil, err
	}

	r, err := m.ResourceFor(resourceType)
	if err != nil {
		return nil, nil, err
	}

	mapperArgs, err := m.mapperArgs()
	if err != nil {
		return nil, nil, err
	}

	return r, append(mapperArgs, typedArgs(args)...), nil
}

func (m *Manager) mapperArgs() ([]argmapper.Arg, error) {
	result := []argmapper.Arg{
		argmapper.Logger(m.logger),
	}

	// Add our value providers which are always available
	for _, raw := range m.valueProviders {
		f, err := argmapper.NewFunc(raw, argmapper.FuncOnce())
		if err != nil {
			return nil, err
		}

		result = append(result, argmapper.ConverterFunc(f))
	}

	return result, nil
}

// ManagerOption is used to configure NewManager.
type ManagerOption func(*Manager)

// WithLogger specifies the logger to use. If this is not set then this
// will use the default hclog logger.
func WithLogger(l hclog.Logger) ManagerOption {
	return func(m *Manager) { m.logger = l }
}

// WithResource specifies a resource for the manager. This can be called
// multiple times and the resources will be appended to the manager.
func WithResource(r *Resource) ManagerOption {
	return func(m *Manager) {
		name := r.name

		// If we have no name set, this is an error that will be caught
		// during validation. For now, we generate a ULID so that we can
		// store the resource.
		if name == "" {
			name = newID()
		}

		m.resources[name] = r
	}
}

// WithValueProvider specifies a function that can provide values for
// the arguments for resource lifecycle functions. This is useful for example
// to setup an API client. The value provider will be called AT MOST once
// per lifecycle operation (but may be called zero times if the lifecycle
// function does not depend on the value it returns).
//
// The argument f should be a function. The function may accept arguments
// from any other value providers as well as the operation arguments.
func WithValueProvider(f interface{}) ManagerOption {
	return func(m *Manager) {
		m.valueProviders = append(m.valueProviders, f)
	}
}
