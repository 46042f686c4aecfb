// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package resource

import (
	"crypto/rand"
	"strings"

	"github.com/oklog/ulid"
)

// newID returns a unique, lowercase ULID.
func newID() string {
	return strings.ToLower(ulid.MustNew(ulid.Now(), rand.Reader).String())
}
