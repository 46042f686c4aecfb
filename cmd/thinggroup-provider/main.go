// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Command thinggroup-provider is the Lambda function serving the thing
// group custom resource. The handler it serves is selected with the
// HANDLER environment variable.
package main

import (
	provider "github.com/hashicorp/cfn-iot-thinggroup"
)

func main() {
	provider.Main()
}
