package list

// Iterator walks a list front to back and stays valid when the current
// element is removed mid-iteration: the next Next() call resynchronizes from
// the last element known to still be linked.
type Iterator[T any] struct {
	list    *List[T]
	prev    *Element[T]
	current *Element[T]
	next    *Element[T]
}

// NewIterator creates an iterator positioned before the first element.
// Current is nil until the first Next() call.
func NewIterator[T any](list *List[T]) Iterator[T] {
	return Iterator[T]{
		list: list,
		prev: &list.root,
	}
}

// Iterator returns an iterator over the list, positioned before the first
// element.
func (l *List[T]) Iterator() Iterator[T] {
	return NewIterator(l)
}

// Current returns the element the iterator stands on, or nil.
func (it *Iterator[T]) Current() *Element[T] {
	return it.current
}

// Valid reports whether the iterator stands on an element.
func (it *Iterator[T]) Valid() bool {
	return it.current != nil
}

// Next advances the iterator and reports whether an element is available.
func (it *Iterator[T]) Next() bool {
	switch {
	case it.prev == &it.list.root && it.current == nil:
		// Iteration starts
		it.current = it.list.Front()
	case it.prev == &it.list.root && it.current != it.list.Front():
		// The front element was removed
		it.current = it.list.Front()
	case it.prev != &it.list.root && it.prev.Next() != it.current:
		// The current element was removed
		it.current = it.prev.Next()
	default:
		it.prev = it.current
		it.current = it.next
	}

	if it.current == nil {
		return false
	}
	it.next = it.current.Next()
	return true
}
