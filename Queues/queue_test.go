package Queues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Queue[int] = (*ArrayQueue[int])(nil)

func TestArrayQueue_FIFO(t *testing.T) {
	q := MakeArrayQueue[int](0)
	for i := 0; i < 100; i++ {
		q.Push(i)
	}
	assert.Equal(t, uint(100), q.Size())
	for i := 0; i < 100; i++ {
		v, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	assert.True(t, q.Empty())
}

func TestArrayQueue_Wraparound(t *testing.T) {
	q := MakeArrayQueue[int](4)
	next, want := 0, 0
	for round := 0; round < 50; round++ {
		for rep := 0; rep < round%3+1; rep++ {
			q.Push(next)
			next++
		}
		for rep := 0; rep < round%2; rep++ {
			v, err := q.Pop()
			require.NoError(t, err)
			require.Equal(t, want, v)
			want++
		}
	}
	for !q.Empty() {
		v, err := q.Pop()
		require.NoError(t, err)
		require.Equal(t, want, v)
		want++
	}
	assert.Equal(t, next, want)
}

func TestArrayQueue_Empty(t *testing.T) {
	q := MakeArrayQueue[string](2)
	_, ok := q.Peek()
	assert.False(t, ok)
	_, err := q.Pop()
	assert.IsType(t, &EmptyQueueError{}, err)

	q.Push("a")
	q.Push("b")
	v, ok := q.Peek()
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	q.Clear()
	assert.True(t, q.Empty())
}

func TestArrayQueue_Shrink(t *testing.T) {
	q := MakeArrayQueue[int](1)
	for i := 0; i < 20; i++ {
		q.Push(i)
	}
	for rep := 0; rep < 15; rep++ {
		_, _ = q.Pop()
	}
	q.Shrink()
	assert.Len(t, q.content, 5)
	for i := 15; i < 20; i++ {
		v, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
}
