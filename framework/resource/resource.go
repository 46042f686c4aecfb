// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package resource

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/hashicorp/go-argmapper"
	"github.com/hashicorp/go-multierror"
)

// Resource is a single resource type with an associated lifecycle.
// A "resource" is any external thing the provider manages on behalf of
// the provisioning framework such as a thing group. Each lifecycle
// operation maps to one function set on the resource.
type Resource struct {
	name         string
	resourceType string
	createFunc   interface{}
	updateFunc   interface{}
	destroyFunc  interface{}
	completeFunc interface{}
}

// NewResource creates a new resource.
//
// Callers should call Validate on the result to check for errors. If
// a resource is used in a resource manager, the resource manager Validate
// function will also validate all the resources part of it.
func NewResource(opts ...ResourceOption) *Resource {
	var r Resource
	for _, opt := range opts {
		opt(&r)
	}

	// Default resource type to the name, if not specified
	if r.resourceType == "" {
		r.resourceType = r.name
	}

	return &r
}

// Name returns the name of the resource.
func (r *Resource) Name() string { return r.name }

// Type returns the resource type, e.g. "Custom::ThingGroup".
func (r *Resource) Type() string { return r.resourceType }

// Validate checks that the resource structure is configured correctly.
// This is always called prior to any operation.
func (r *Resource) Validate() error {
	var result error
	if r.name == "" {
		result = multierror.Append(result, errors.New("name must be set"))
	}
	if r.createFunc == nil {
		result = multierror.Append(result, errors.New("creation function must be set"))
	}
	for name, f := range map[string]interface{}{
		"creation":   r.createFunc,
		"update":     r.updateFunc,
		"destroy":    r.destroyFunc,
		"completion": r.completeFunc,
	} {
		if f != nil && reflect.TypeOf(f).Kind() != reflect.Func {
			result = multierror.Append(result, fmt.Errorf("%s function must be a func, got %T", name, f))
		}
	}
	if f := r.completeFunc; f != nil {
		t := reflect.TypeOf(f)
		if t.Kind() == reflect.Func && (t.NumOut() == 0 || t.Out(0).Kind() != reflect.Bool) {
			result = multierror.Append(result, errors.New("completion function must return a bool first"))
		}
	}

	return result
}

// Create creates this resource. args is a list of arguments to make
// available to the creation function via dependency injection (matching
// types in the arguments).
//
// The error returned by the creation function is returned as-is.
func (r *Resource) Create(args ...interface{}) error {
	return r.create(typedArgs(args))
}

// Update updates this resource in place. Resources without an update
// function treat update as a successful no-op.
func (r *Resource) Update(args ...interface{}) error {
	return r.update(typedArgs(args))
}

// Destroy destroys this resource. Resources without a destroy function
// treat destroy as a successful no-op (some resources aren't destroyed or
// are destroyed via some other functions).
func (r *Resource) Destroy(args ...interface{}) error {
	return r.destroy(typedArgs(args))
}

// Complete reports whether the last lifecycle operation has finished.
// Resources without a completion function are always complete since their
// operations finish before returning.
func (r *Resource) Complete(args ...interface{}) (bool, error) {
	return r.complete(typedArgs(args))
}

func (r *Resource) create(args []argmapper.Arg) error {
	if err := r.Validate(); err != nil {
		return err
	}

	_, err := r.call(r.createFunc, args)
	return err
}

func (r *Resource) update(args []argmapper.Arg) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.updateFunc == nil {
		return nil
	}

	_, err := r.call(r.updateFunc, args)
	return err
}

func (r *Resource) destroy(args []argmapper.Arg) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.destroyFunc == nil {
		return nil
	}

	_, err := r.call(r.destroyFunc, args)
	return err
}

func (r *Resource) complete(args []argmapper.Arg) (bool, error) {
	if err := r.Validate(); err != nil {
		return false, err
	}
	if r.completeFunc == nil {
		return true, nil
	}

	result, err := r.call(r.completeFunc, args)
	if err != nil {
		return false, err
	}

	done, ok := result.Out(0).(bool)
	if !ok {
		return false, fmt.Errorf(
			"resource %q: completion function returned %T, expected bool",
			r.name, result.Out(0))
	}

	return done, nil
}

// call invokes f with args injected by type. Return values other than a
// final error are available on the result. An error from f is returned
// unmodified.
func (r *Resource) call(f interface{}, args []argmapper.Arg) (*argmapper.Result, error) {
	fn, err := argmapper.NewFunc(f)
	if err != nil {
		return nil, fmt.Errorf("resource %q: %w", r.name, err)
	}

	result := fn.Call(args...)
	if err := result.Err(); err != nil {
		return nil, err
	}

	return &result, nil
}

func typedArgs(args []interface{}) []argmapper.Arg {
	result := make([]argmapper.Arg, len(args))
	for i, v := range args {
		result[i] = argmapper.Typed(v)
	}

	return result
}

// ResourceOption is used to configure NewResource.
type ResourceOption func(*Resource)

// WithName sets the resource name. This name is used in log output so it
// should be descriptive but short, such as "thing group". It must be unique
// among the resources of a manager.
func WithName(n string) ResourceOption {
	return func(r *Resource) { r.name = n }
}

// WithType sets the resource type the resource is declared as in templates,
// e.g. "Custom::ThingGroup". If not specified, type will default to the
// resource's name.
func WithType(t string) ResourceOption {
	return func(r *Resource) { r.resourceType = t }
}

// WithCreate sets the creation function for this resource.
//
// The function may take as inputs any arguments it requires. The inputs
// will be automatically populated with available values that are given to
// the operation or configured on the resource manager, such as the
// context.Context, the hclog.Logger and the parsed lifecycle event.
//
// The return values are ignored, except for a final "error" value. A final
// "error" type value will be used to determine success or failure of the
// function call.
func WithCreate(f interface{}) ResourceOption {
	return func(r *Resource) { r.createFunc = f }
}

// WithUpdate sets the function to update this resource in place. Please
// see the docs for WithCreate since the semantics are identical.
func WithUpdate(f interface{}) ResourceOption {
	return func(r *Resource) { r.updateFunc = f }
}

// WithDestroy sets the function to destroy this resource. Please see the
// docs for WithCreate since the semantics are identical.
func WithDestroy(f interface{}) ResourceOption {
	return func(r *Resource) { r.destroyFunc = f }
}

// WithComplete sets the function polled by the provisioning framework to
// learn whether an asynchronous operation has finished. Its first return
// value must be a bool.
func WithComplete(f interface{}) ResourceOption {
	return func(r *Resource) { r.completeFunc = f }
}
