// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package component

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedRequestType is matched (errors.Is) by every
	// *UnsupportedRequestTypeError.
	ErrUnsupportedRequestType = errors.New("unsupported request type")

	// ErrMissingProperty is returned, wrapped in a *PropertyError, when a
	// resource property required by the request type is absent or empty.
	ErrMissingProperty = errors.New("missing resource property")
)

// UnsupportedRequestTypeError is returned when a lifecycle event carries a
// request type other than Create, Update or Delete.
type UnsupportedRequestTypeError struct {
	RequestType string
}

func (e *UnsupportedRequestTypeError) Error() string {
	return fmt.Sprintf("invalid request type: %q", e.RequestType)
}

func (e *UnsupportedRequestTypeError) Is(target error) bool {
	return target == ErrUnsupportedRequestType
}

// PropertyError reports a problem with a single resource property.
type PropertyError struct {
	// Name is the property name as it appears in ResourceProperties.
	Name string
	Err  error
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("resource property %q: %s", e.Name, e.Err)
}

func (e *PropertyError) Unwrap() error {
	return e.Err
}
