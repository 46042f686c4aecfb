// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnviron(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		require := require.New(t)

		c, err := FromEnviron([]string{"PATH=/usr/bin", "HOME=/root"})
		require.NoError(err)
		require.Equal(HandlerOnEvent, c.HandlerName())
		require.Equal(hclog.Info, c.Level())
		require.Empty(c.Region)
		require.Empty(c.IoTEndpoint)
	})

	t.Run("values", func(t *testing.T) {
		require := require.New(t)

		c, err := FromEnviron([]string{
			"HANDLER=is_complete",
			"LOG_LEVEL=debug",
			"AWS_REGION=us-west-2",
			"IOT_ENDPOINT_URL=http://localhost:4566",
			"MALFORMED",
			"=ignored",
		})
		require.NoError(err)
		require.Equal(HandlerIsComplete, c.HandlerName())
		require.Equal(hclog.Debug, c.Level())
		require.Equal("us-west-2", c.Region)
		require.Equal("http://localhost:4566", c.IoTEndpoint)
	})

	t.Run("value containing equals sign", func(t *testing.T) {
		c, err := FromEnviron([]string{"IOT_ENDPOINT_URL=http://localhost:4566/?a=b"})
		require.NoError(t, err)
		require.Equal(t, "http://localhost:4566/?a=b", c.IoTEndpoint)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := FromEnviron([]string{
			"HANDLER=on_delete",
			"LOG_LEVEL=loud",
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "HANDLER")
		require.Contains(t, err.Error(), "LOG_LEVEL")
	})
}

func TestConfigHandlerName(t *testing.T) {
	cases := []struct {
		Handler       string
		LambdaHandler string
		Expected      string
	}{
		{"", "", HandlerOnEvent},
		{"", "index.on_event", HandlerOnEvent},
		{"", "index.is_complete", HandlerIsComplete},
		{"", "bootstrap", HandlerOnEvent},
		{"isComplete", "index.on_event", HandlerIsComplete},
		{"onEvent", "index.is_complete", HandlerOnEvent},
	}

	for _, tt := range cases {
		t.Run(tt.Handler+"/"+tt.LambdaHandler, func(t *testing.T) {
			c := &Config{Handler: tt.Handler, LambdaHandler: tt.LambdaHandler}
			assert.Equal(t, tt.Expected, c.HandlerName())
		})
	}
}
