package list

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect[T any](it Iterator[T]) []T {
	var values []T
	for it.Next() {
		values = append(values, it.Current().Value)
	}
	return values
}

func TestIterator(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		l := NewList[int]()
		it := l.Iterator()
		require.False(t, it.Next())
		require.False(t, it.Valid())
	})

	t.Run("walks front to back", func(t *testing.T) {
		l := NewList[int]()
		for _, v := range []int{1, 2, 3, 4} {
			l.PushBack(v)
		}
		require.Equal(t, []int{1, 2, 3, 4}, collect(l.Iterator()))
	})

	t.Run("survives removing the current element", func(t *testing.T) {
		l := NewList[int]()
		for _, v := range []int{1, 2, 3} {
			l.PushBack(v)
		}

		it := l.Iterator()
		var visited []int
		for it.Next() {
			visited = append(visited, it.Current().Value)
			_, err := l.Remove(it.Current())
			require.NoError(t, err)
		}
		require.Equal(t, []int{1, 2, 3}, visited)
		require.Equal(t, 0, l.Len())
	})

	t.Run("survives removing every other element", func(t *testing.T) {
		l := NewList[int]()
		for v := 1; v <= 10; v++ {
			l.PushBack(v)
		}

		it := l.Iterator()
		var visited, removed []int
		for it.Next() {
			visited = append(visited, it.Current().Value)
			if it.Current().Value%2 == 1 {
				removed = append(removed, it.Current().Value)
				_, err := l.Remove(it.Current())
				require.NoError(t, err)
			}
		}
		require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, visited)
		require.Equal(t, []int{1, 3, 5, 7, 9}, removed)
		require.Equal(t, 5, l.Len())
	})

	t.Run("stops after the list is cleaned", func(t *testing.T) {
		l := NewList[int]()
		l.PushBack(1)
		l.PushBack(2)

		it := l.Iterator()
		require.True(t, it.Next())
		l.Clean()
		require.False(t, it.Next())
	})
}

func TestListRemoveErrors(t *testing.T) {
	l := NewList[int]()
	other := NewList[int]()
	e := other.PushBack(1)

	_, err := l.Remove(nil)
	require.ErrorIs(t, err, ErrNilElement)

	_, err = l.Remove(e)
	require.ErrorIs(t, err, ErrElementNotInList)
}

func TestListPooled(t *testing.T) {
	pool := &sync.Pool{New: func() any { return new(Element[int]) }}
	l := NewListPooled[int](pool)

	for v := 1; v <= 8; v++ {
		l.PushBack(v)
	}
	require.Equal(t, 8, l.Len())
	require.Equal(t, 1, l.Front().Value)
	require.Equal(t, 8, l.Back().Value)

	_, err := l.Remove(l.Front())
	require.NoError(t, err)
	require.Equal(t, 2, l.Front().Value)

	l.Clean()
	require.Equal(t, 0, l.Len())
	require.Nil(t, l.Front())
	require.Nil(t, l.Back())
}
