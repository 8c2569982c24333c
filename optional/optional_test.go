package optional_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gvsucis/f25-spherical-easel/optional"
)

func TestOptional(t *testing.T) {
	t.Run("can create new optional with value", func(t *testing.T) {
		x := optional.New(55)
		assert.True(t, x.Present())
		assert.False(t, x.IsEmpty())
	})
	t.Run("can create an empty optional", func(t *testing.T) {
		x := optional.Optional[int]{}
		assert.True(t, x.IsEmpty())
	})
	t.Run("can update an empty optional", func(t *testing.T) {
		x := optional.Optional[int]{}
		x.Set(45)
		assert.Equal(t, 45, x.ValueOrZero())
	})
	t.Run("can make a value to none", func(t *testing.T) {
		x := optional.New(12)
		x.Clear()
		assert.True(t, x.IsEmpty())
	})
	t.Run("can print a value", func(t *testing.T) {
		x := optional.New(12)
		assert.Equal(t, "12", fmt.Sprint(x))
	})
	t.Run("can print an empty optional", func(t *testing.T) {
		x := optional.Optional[int]{}
		assert.Equal(t, "<empty>", fmt.Sprint(x))
	})
	t.Run("should return value when set", func(t *testing.T) {
		x := optional.New(12)
		got, err := x.Value()
		if assert.NoError(t, err) {
			assert.Equal(t, 12, got)
		}
	})
	t.Run("should return error when empty", func(t *testing.T) {
		x := optional.Optional[int]{}
		_, err := x.Value()
		assert.ErrorIs(t, err, optional.ErrIsEmpty)
	})
	t.Run("should return fallback when empty", func(t *testing.T) {
		x := optional.Optional[int]{}
		assert.Equal(t, 4, x.ValueOrFallback(4))
	})
	t.Run("should return zero value when empty", func(t *testing.T) {
		x := optional.Optional[string]{}
		assert.Equal(t, "", x.ValueOrZero())
	})
}
