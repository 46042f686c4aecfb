// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package resource contains helpers around managing the lifecycle of
// custom resources. A "resource" is any external element the provider
// manages on behalf of the provisioning framework, such as an IoT thing
// group. Each resource declares the functions run for the create, update,
// delete and completion steps of its lifecycle.
//
// Lifecycle functions declare what they need as arguments and those
// arguments are injected by type from the operation arguments and the
// manager's value providers. Even if your provider only has a single
// resource, this library is highly recommended.
package resource
