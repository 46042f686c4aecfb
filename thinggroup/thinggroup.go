// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package thinggroup declares the IoT thing group custom resource.
package thinggroup

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iot"
	"github.com/hashicorp/go-hclog"

	"github.com/hashicorp/cfn-iot-thinggroup/component"
	"github.com/hashicorp/cfn-iot-thinggroup/framework/resource"
	"github.com/hashicorp/cfn-iot-thinggroup/internal/iotapi"
)

// ResourceType is the template type of the thing group resource.
const ResourceType = "Custom::ThingGroup"

// Resource returns the thing group resource. The lifecycle functions need
// an iotapi.ThingGroupAPI, which the resource manager must provide.
//
// A thing group has nothing this provider updates in place, so update is
// a no-op and never calls IoT.
func Resource() *resource.Resource {
	return resource.NewResource(
		resource.WithName("thing group"),
		resource.WithType(ResourceType),
		resource.WithCreate(create),
		resource.WithDestroy(destroy),
	)
}

func create(
	ctx context.Context,
	log hclog.Logger,
	client iotapi.ThingGroupAPI,
	ev *component.CreateEvent,
) error {
	name := ev.Properties.ThingGroupName
	log.Debug("creating thing group", "thing_group_name", name)

	// The response is discarded, nothing from it is reported back.
	_, err := client.CreateThingGroup(ctx, &iot.CreateThingGroupInput{
		ThingGroupName: aws.String(name),
	})
	return err
}

func destroy(
	ctx context.Context,
	log hclog.Logger,
	client iotapi.ThingGroupAPI,
	ev *component.DeleteEvent,
) error {
	name := ev.Properties.ThingGroupName
	log.Debug("deleting thing group", "thing_group_name", name)

	_, err := client.DeleteThingGroup(ctx, &iot.DeleteThingGroupInput{
		ThingGroupName: aws.String(name),
	})
	return err
}
