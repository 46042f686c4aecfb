// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package component

import (
	"fmt"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/mitchellh/mapstructure"
)

// PropertyThingGroupName is the resource property naming the thing group.
const PropertyThingGroupName = "thingGroupName"

// Event is a parsed lifecycle event. The concrete type is always one of
// *CreateEvent, *UpdateEvent or *DeleteEvent.
type Event interface {
	RequestType() RequestType
	Metadata() *Meta
}

// Meta is the information common to every lifecycle event.
type Meta struct {
	RequestID         string
	StackID           string
	LogicalResourceID string

	// ResourceType is the custom resource type from the template, for
	// example "Custom::ThingGroup" or "AWS::CloudFormation::CustomResource".
	ResourceType string
}

// Properties are the resource properties this provider understands. Any
// other properties on the event are ignored.
type Properties struct {
	ThingGroupName string `mapstructure:"thingGroupName"`

	// StackName and RegionName are passed through by the stack that
	// declares the resource. They are only used for logging.
	StackName  string `mapstructure:"stackName"`
	RegionName string `mapstructure:"regionName"`

	ServiceToken string `mapstructure:"ServiceToken"`
}

// CreateEvent requests creation of the resource.
type CreateEvent struct {
	Meta
	Properties Properties
}

// UpdateEvent requests an in-place update of the resource. The properties
// are deliberately not decoded: there is nothing about a thing group this
// provider can change.
type UpdateEvent struct {
	Meta
	PhysicalResourceID string
}

// DeleteEvent requests deletion of the resource.
type DeleteEvent struct {
	Meta
	PhysicalResourceID string
	Properties         Properties
}

func (e *CreateEvent) RequestType() RequestType { return CreateRequestType }
func (e *UpdateEvent) RequestType() RequestType { return UpdateRequestType }
func (e *DeleteEvent) RequestType() RequestType { return DeleteRequestType }

func (e *CreateEvent) Metadata() *Meta { return &e.Meta }
func (e *UpdateEvent) Metadata() *Meta { return &e.Meta }
func (e *DeleteEvent) Metadata() *Meta { return &e.Meta }

// ParseEvent validates a raw lifecycle event and converts it to its typed
// variant. Errors are *UnsupportedRequestTypeError for an unknown request
// type and *PropertyError when Create or Delete lack a thing group name.
func ParseEvent(raw cfn.Event) (Event, error) {
	rt, err := ParseRequestType(string(raw.RequestType))
	if err != nil {
		return nil, err
	}

	meta := Meta{
		RequestID:         raw.RequestID,
		StackID:           raw.StackID,
		LogicalResourceID: raw.LogicalResourceID,
		ResourceType:      raw.ResourceType,
	}

	switch rt {
	case CreateRequestType:
		props, err := requiredProperties(raw.ResourceProperties)
		if err != nil {
			return nil, err
		}

		return &CreateEvent{Meta: meta, Properties: *props}, nil

	case UpdateRequestType:
		return &UpdateEvent{Meta: meta, PhysicalResourceID: raw.PhysicalResourceID}, nil

	case DeleteRequestType:
		props, err := requiredProperties(raw.ResourceProperties)
		if err != nil {
			return nil, err
		}

		return &DeleteEvent{
			Meta:               meta,
			PhysicalResourceID: raw.PhysicalResourceID,
			Properties:         *props,
		}, nil
	}

	// ParseRequestType never returns another valid value.
	panic(fmt.Sprintf("unhandled request type %s", rt))
}

// DecodeProperties decodes raw resource properties. Values are weakly
// typed since templates frequently pass numbers and booleans as strings.
func DecodeProperties(raw map[string]interface{}) (*Properties, error) {
	var result Properties
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &result,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode resource properties: %w", err)
	}

	return &result, nil
}

func requiredProperties(raw map[string]interface{}) (*Properties, error) {
	props, err := DecodeProperties(raw)
	if err != nil {
		return nil, err
	}
	if props.ThingGroupName == "" {
		return nil, &PropertyError{Name: PropertyThingGroupName, Err: ErrMissingProperty}
	}

	return props, nil
}
