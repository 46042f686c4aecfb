// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package resource

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResourceCreate(t *testing.T) {
	require := require.New(t)

	var actual int
	r := NewResource(
		WithName("test"),
		WithCreate(func(v int) error {
			actual = v
			return nil
		}),
	)

	// Create
	require.NoError(r.Create(int(42)))

	// Ensure we were called with the proper value
	require.Equal(42, actual)
}

func TestResourceCreate_interfaceArg(t *testing.T) {
	require := require.New(t)

	type ctxKey struct{}

	var actual interface{}
	r := NewResource(
		WithName("test"),
		WithCreate(func(ctx context.Context) error {
			actual = ctx.Value(ctxKey{})
			return nil
		}),
	)

	ctx := context.WithValue(context.Background(), ctxKey{}, "value")
	require.NoError(r.Create(ctx))
	require.Equal("value", actual)
}

func TestResourceCreate_errorUnmodified(t *testing.T) {
	expected := errors.New("whelp")
	r := NewResource(
		WithName("test"),
		WithCreate(func() error { return expected }),
	)

	err := r.Create()
	require.Error(t, err)
	require.Equal(t, "whelp", err.Error())
	require.True(t, errors.Is(err, expected))
}

func TestResourceCreate_missingArg(t *testing.T) {
	called := false
	r := NewResource(
		WithName("test"),
		WithCreate(func(v int) error {
			called = true
			return nil
		}),
	)

	require.Error(t, r.Create("not an int"))
	require.False(t, called)
}

func TestResourceUpdate(t *testing.T) {
	t.Run("no update function", func(t *testing.T) {
		r := NewResource(
			WithName("test"),
			WithCreate(func() error { return nil }),
		)

		require.NoError(t, r.Update(int(42)))
	})

	t.Run("with update function", func(t *testing.T) {
		var actual int
		r := NewResource(
			WithName("test"),
			WithCreate(func() error { return nil }),
			WithUpdate(func(v int) error {
				actual = v
				return nil
			}),
		)

		require.NoError(t, r.Update(int(42)))
		require.Equal(t, 42, actual)
	})
}

func TestResourceDestroy(t *testing.T) {
	t.Run("no destroy function", func(t *testing.T) {
		r := NewResource(
			WithName("test"),
			WithCreate(func() error { return nil }),
		)

		require.NoError(t, r.Destroy())
	})

	t.Run("with destroy function", func(t *testing.T) {
		expected := errors.New("not empty")
		r := NewResource(
			WithName("test"),
			WithCreate(func() error { return nil }),
			WithDestroy(func(v string) error {
				if v != "group" {
					return errors.New("wrong value")
				}
				return expected
			}),
		)

		err := r.Destroy("group")
		require.True(t, errors.Is(err, expected))
	})
}

func TestResourceComplete(t *testing.T) {
	t.Run("no completion function", func(t *testing.T) {
		r := NewResource(
			WithName("test"),
			WithCreate(func() error { return nil }),
		)

		done, err := r.Complete()
		require.NoError(t, err)
		require.True(t, done)
	})

	t.Run("with completion function", func(t *testing.T) {
		r := NewResource(
			WithName("test"),
			WithCreate(func() error { return nil }),
			WithComplete(func(v int) (bool, error) {
				return v > 1, nil
			}),
		)

		done, err := r.Complete(int(1))
		require.NoError(t, err)
		require.False(t, done)

		done, err = r.Complete(int(2))
		require.NoError(t, err)
		require.True(t, done)
	})

	t.Run("completion function error", func(t *testing.T) {
		r := NewResource(
			WithName("test"),
			WithCreate(func() error { return nil }),
			WithComplete(func() (bool, error) {
				return true, errors.New("whelp")
			}),
		)

		done, err := r.Complete()
		require.Error(t, err)
		require.False(t, done)
	})
}

func TestResourceValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r := NewResource(
			WithName("test"),
			WithCreate(func() error { return nil }),
		)

		require.NoError(t, r.Validate())
		require.Equal(t, "test", r.Type())
	})

	t.Run("missing name and create", func(t *testing.T) {
		err := NewResource().Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "name must be set")
		require.Contains(t, err.Error(), "creation function must be set")
	})

	t.Run("create is not a func", func(t *testing.T) {
		r := NewResource(
			WithName("test"),
			WithCreate(42),
		)

		err := r.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "creation function must be a func")
		require.Error(t, r.Create())
	})

	t.Run("completion without bool", func(t *testing.T) {
		r := NewResource(
			WithName("test"),
			WithCreate(func() error { return nil }),
			WithComplete(func() error { return nil }),
		)

		err := r.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "must return a bool")
	})
}
