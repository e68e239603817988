package composite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"embedded-value/composite"
)

func TestIsNil(t *testing.T) {
	assert.True(t, composite.IsNil(nil))
	assert.True(t, composite.IsNil((*point)(nil)))
	assert.True(t, composite.IsNil(map[string]any(nil)))
	assert.True(t, composite.IsNil([]int(nil)))
	assert.False(t, composite.IsNil(0))
	assert.False(t, composite.IsNil(""))
	assert.False(t, composite.IsNil([]int{}))
}

func TestSequence(t *testing.T) {
	values, ok := composite.Sequence([]int{1, 2})
	assert.True(t, ok)
	assert.Equal(t, []any{1, 2}, values)

	values, ok = composite.Sequence([2]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, []any{"a", "b"}, values)

	_, ok = composite.Sequence("ab")
	assert.False(t, ok)

	_, ok = composite.Sequence(map[string]any{})
	assert.False(t, ok)
}

func TestKeyed(t *testing.T) {
	values, ok := composite.Keyed(map[string]int{"a": 1})
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"a": 1}, values)

	values, ok = composite.Keyed(map[any]any{"a": 1})
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"a": 1}, values)

	values, ok = composite.Keyed(composite.NewOpenStruct(map[string]any{"a": 1}))
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"a": 1}, values)

	_, ok = composite.Keyed(map[int]any{1: "a"})
	assert.False(t, ok)

	_, ok = composite.Keyed(map[any]any{1: "a"})
	assert.False(t, ok)

	_, ok = composite.Keyed([]any{"a"})
	assert.False(t, ok)
}
