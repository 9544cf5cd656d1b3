package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	stack := NewStack[rune]()
	_, ok := stack.Pop()
	assert.False(t, ok)

	stack.Push('{')
	stack.Push('[')
	require.Equal(t, 2, stack.Len())

	last, ok := stack.Pop()
	assert.True(t, ok)
	assert.Equal(t, '[', last)
	last, ok = stack.Pop()
	assert.True(t, ok)
	assert.Equal(t, '{', last)

	_, ok = stack.Pop()
	assert.False(t, ok)
	assert.Equal(t, 0, stack.Len())
}
