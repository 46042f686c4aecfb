// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package iotapi wraps the AWS IoT management API used to manage thing
// groups.
package iotapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/iot"
	"github.com/aws/smithy-go"
)

//go:generate mockery --name ThingGroupAPI --output mocks --case underscore

// ThingGroupAPI is the subset of the IoT API the provider calls. It is
// satisfied by *iot.Client.
type ThingGroupAPI interface {
	CreateThingGroup(ctx context.Context, params *iot.CreateThingGroupInput, optFns ...func(*iot.Options)) (*iot.CreateThingGroupOutput, error)
	DeleteThingGroup(ctx context.Context, params *iot.DeleteThingGroupInput, optFns ...func(*iot.Options)) (*iot.DeleteThingGroupOutput, error)
}

var _ ThingGroupAPI = (*iot.Client)(nil)

// LoadConfig loads the AWS configuration from the default credential chain
// of the execution environment. region overrides the configured region if
// it is set.
func LoadConfig(ctx context.Context, region string) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return cfg, nil
}

// NewClient returns an IoT client. A non-empty endpoint replaces the
// service endpoint, which is used to point the provider at localstack.
func NewClient(cfg aws.Config, endpoint string) *iot.Client {
	if endpoint == "" {
		return iot.NewFromConfig(cfg)
	}

	return iot.NewFromConfig(cfg, func(o *iot.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})
}

// ErrorCode returns the AWS error code of err, such as
// "ResourceAlreadyExistsException", or "" if err is not an API error.
func ErrorCode(err error) string {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		return ae.ErrorCode()
	}

	return ""
}
