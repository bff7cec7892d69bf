package optional_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/distribution-auth/optional"
)

func TestMap(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		o := optional.Map(optional.Of(42), func(v int) int { return v * 2 })

		assert.Equal(t, 84, o.OrElse(0))
	})

	t.Run("TypeChange", func(t *testing.T) {
		o := optional.Map(optional.Of(42), strconv.Itoa)

		assert.Equal(t, "42", o.MustGet())
	})

	t.Run("Empty", func(t *testing.T) {
		var calls int

		o := optional.Map(optional.Empty[int](), func(v int) int {
			calls++

			return v * 2
		})

		assert.Equal(t, 0, o.OrElse(0))
		assert.Equal(t, 0, calls)
	})

	t.Run("NilResult", func(t *testing.T) {
		o := optional.Map(optional.Of(42), func(int) *string { return nil })

		assert.True(t, o.IsEmpty())
	})
}

func TestFlatMap(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		o := optional.FlatMap(optional.Of(1), func(v int) optional.Optional[int] {
			return optional.Of(v + 1)
		})

		assert.Equal(t, 2, o.MustGet())
	})

	t.Run("ToEmpty", func(t *testing.T) {
		o := optional.FlatMap(optional.Of(1), func(int) optional.Optional[string] {
			return optional.Empty[string]()
		})

		assert.True(t, o.IsEmpty())
	})

	t.Run("Empty", func(t *testing.T) {
		var calls int

		o := optional.FlatMap(optional.Empty[int](), func(v int) optional.Optional[int] {
			calls++

			return optional.Of(v)
		})

		assert.True(t, o.IsEmpty())
		assert.Equal(t, 0, calls)
	})
}

func TestMapOr(t *testing.T) {
	t.Run("Present", func(t *testing.T) {
		value := optional.MapOr(optional.Of(21), 0, func(v int) int { return v * 2 })

		assert.Equal(t, 42, value)
	})

	t.Run("Empty", func(t *testing.T) {
		var calls int

		value := optional.MapOr(optional.Empty[int](), -1, func(v int) int {
			calls++

			return v * 2
		})

		assert.Equal(t, -1, value)
		assert.Equal(t, 0, calls)
	})
}
