// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package component has the types shared by everything that handles a
// custom resource lifecycle: the request types, the typed lifecycle events
// and the result payloads returned to the provisioning framework.
//
// Lifecycle events arrive on the wire as loosely typed cfn.Event values.
// ParseEvent is the only way to turn one into a component.Event, so a value
// of that type is always one of CreateEvent, UpdateEvent or DeleteEvent and
// always carries the properties its variant requires.
package component

//go:generate stringer -type=RequestType -linecomment

// RequestType is an enum of the lifecycle operations the provisioning
// framework can request for a custom resource.
type RequestType uint

const (
	InvalidRequestType RequestType = iota // Invalid
	CreateRequestType                     // Create
	UpdateRequestType                     // Update
	DeleteRequestType                     // Delete
)

// ParseRequestType converts the wire literal of a request type. The match
// is exact; anything other than "Create", "Update" or "Delete" returns an
// *UnsupportedRequestTypeError.
func ParseRequestType(s string) (RequestType, error) {
	switch s {
	case CreateRequestType.String():
		return CreateRequestType, nil
	case UpdateRequestType.String():
		return UpdateRequestType, nil
	case DeleteRequestType.String():
		return DeleteRequestType, nil
	}

	return InvalidRequestType, &UnsupportedRequestTypeError{RequestType: s}
}

// Status values reported in Result.Data. Delete reports a lowercase value;
// callers of the provider have always seen it that way so it is kept.
const (
	StatusCreated = "Created"
	StatusUpdated = "Updated"
	StatusDeleted = "success"
)

// Result is the value returned from the on-event handler. The provisioning
// framework exposes Data as the attributes of the custom resource.
type Result struct {
	Data map[string]string `json:"Data"`
}

// NewResult returns a Result reporting the given status.
func NewResult(status string) Result {
	return Result{Data: map[string]string{"Status": status}}
}

// Status returns the reported status, or "" if there is none.
func (r Result) Status() string {
	return r.Data["Status"]
}

// CompletionResult is the value returned from the is-complete handler.
type CompletionResult struct {
	IsComplete bool `json:"IsComplete"`
}
