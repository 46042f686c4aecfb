// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package thinggroup

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iot"
	"github.com/aws/aws-sdk-go-v2/service/iot/types"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp/cfn-iot-thinggroup/component"
	"github.com/hashicorp/cfn-iot-thinggroup/internal/iotapi"
	"github.com/hashicorp/cfn-iot-thinggroup/internal/iotapi/mocks"
)

func withName(name string) interface{} {
	return mock.MatchedBy(func(in interface{}) bool {
		switch in := in.(type) {
		case *iot.CreateThingGroupInput:
			return aws.ToString(in.ThingGroupName) == name
		case *iot.DeleteThingGroupInput:
			return aws.ToString(in.ThingGroupName) == name
		}
		return false
	})
}

func TestResource(t *testing.T) {
	r := Resource()
	require.NoError(t, r.Validate())
	require.Equal(t, ResourceType, r.Type())
}

func TestResourceCreate(t *testing.T) {
	require := require.New(t)

	client := mocks.NewThingGroupAPI(t)
	client.On("CreateThingGroup", mock.Anything, withName("fleet-A")).
		Return(&iot.CreateThingGroupOutput{ThingGroupName: aws.String("fleet-A")}, nil).
		Once()

	ev := &component.CreateEvent{
		Properties: component.Properties{ThingGroupName: "fleet-A"},
	}
	require.NoError(Resource().Create(
		context.Background(), hclog.NewNullLogger(), iotapi.ThingGroupAPI(client), ev))

	client.AssertNumberOfCalls(t, "CreateThingGroup", 1)
}

func TestResourceCreate_error(t *testing.T) {
	expected := &types.ResourceAlreadyExistsException{Message: aws.String("already exists")}

	client := mocks.NewThingGroupAPI(t)
	client.On("CreateThingGroup", mock.Anything, withName("fleet-A")).
		Return(nil, expected).
		Once()

	ev := &component.CreateEvent{
		Properties: component.Properties{ThingGroupName: "fleet-A"},
	}
	err := Resource().Create(context.Background(), hclog.NewNullLogger(), iotapi.ThingGroupAPI(client), ev)
	require.Error(t, err)

	var actual *types.ResourceAlreadyExistsException
	require.True(t, errors.As(err, &actual))
	require.Equal(t, "ResourceAlreadyExistsException", iotapi.ErrorCode(err))
}

func TestResourceUpdate(t *testing.T) {
	client := mocks.NewThingGroupAPI(t)

	ev := &component.UpdateEvent{}
	require.NoError(t, Resource().Update(
		context.Background(), hclog.NewNullLogger(), iotapi.ThingGroupAPI(client), ev))

	client.AssertNotCalled(t, "CreateThingGroup", mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "DeleteThingGroup", mock.Anything, mock.Anything)
}

func TestResourceDestroy(t *testing.T) {
	client := mocks.NewThingGroupAPI(t)
	client.On("DeleteThingGroup", mock.Anything, withName("fleet-A")).
		Return(&iot.DeleteThingGroupOutput{}, nil).
		Once()

	ev := &component.DeleteEvent{
		Properties: component.Properties{ThingGroupName: "fleet-A"},
	}
	require.NoError(t, Resource().Destroy(
		context.Background(), hclog.NewNullLogger(), iotapi.ThingGroupAPI(client), ev))

	client.AssertNumberOfCalls(t, "DeleteThingGroup", 1)
}
