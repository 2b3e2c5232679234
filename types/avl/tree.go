package avl

import (
	"errors"
	"sync"

	"gopkg.in/typ.v4"
)

var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrKeyNotFound  = errors.New("key not found")
)

// Tree is a self-balancing (AVL) binary search tree with cached extreme
// nodes, so the smallest and largest keys are available in O(1). Insertion,
// lookup and removal are O(log n). The zero value is not usable, create
// trees through one of the constructors.
type Tree[K, V any] struct {
	compare   func(a, b K) int
	pool      *sync.Pool
	root      *Node[K, V]
	mostLeft  *Node[K, V]
	mostRight *Node[K, V]
	size      int
}

// NewTree creates a tree ordered by the given comparator. The comparator
// returns 0 if a == b, a negative value if a < b and a positive one if a > b.
func NewTree[K, V any](compare func(a, b K) int) Tree[K, V] {
	return Tree[K, V]{compare: compare}
}

// NewOrderedTree creates a tree for any ordered key type using the default
// comparator.
func NewOrderedTree[K typ.Ordered, V any]() Tree[K, V] {
	return NewTree[K, V](typ.Compare[K])
}

// NewTreePooled creates a tree that takes its nodes from the given pool and
// returns them on removal. The pool must produce *Node[K, V] values.
func NewTreePooled[K, V any](compare func(a, b K) int, pool *sync.Pool) Tree[K, V] {
	return Tree[K, V]{compare: compare, pool: pool}
}

// Size returns the number of nodes in the tree.
func (t *Tree[K, V]) Size() int {
	return t.size
}

// Contains reports whether a node with the given key exists.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.Find(key) != nil
}

// Find returns the node with the given key, or nil.
func (t *Tree[K, V]) Find(key K) *Node[K, V] {
	if t.root == nil {
		return nil
	}
	return t.root.lookup(key, t.compare)
}

// Add inserts a new key/value node. Duplicate keys are rejected with
// ErrDuplicateKey.
func (t *Tree[K, V]) Add(key K, value V) (*Node[K, V], error) {
	var node *Node[K, V]
	if t.pool != nil {
		node = t.pool.Get().(*Node[K, V])
		node.key = key
		node.value = value
	} else {
		node = &Node[K, V]{key: key, value: value}
	}

	if t.root == nil {
		t.root = node
	} else {
		newRoot, err := t.root.insert(node, t.compare)
		if err != nil {
			return nil, err
		}
		t.root = newRoot
	}
	t.size++

	if t.mostLeft == nil || t.compare(node.key, t.mostLeft.key) < 0 {
		t.mostLeft = node
	}
	if t.mostRight == nil || t.compare(node.key, t.mostRight.key) > 0 {
		t.mostRight = node
	}
	return node, nil
}

// Remove deletes the node with the given key and returns its value.
func (t *Tree[K, V]) Remove(key K) (value V, err error) {
	if t.root == nil {
		err = ErrKeyNotFound
		return
	}
	node, newRoot, err := t.root.erase(key, t.compare)
	if err != nil {
		return
	}
	t.root = newRoot
	if t.root != nil {
		t.root.parent = nil
	}
	value = node.value

	if t.pool != nil {
		*node = Node[K, V]{}
		t.pool.Put(node)
	}
	t.size--

	// The removed node's links cannot be trusted anymore, so the cached
	// extremes are recomputed from the root.
	if t.mostLeft == node {
		t.mostLeft = nil
		if t.root != nil {
			t.mostLeft = t.root.MostLeft()
		}
	}
	if t.mostRight == node {
		t.mostRight = nil
		if t.root != nil {
			t.mostRight = t.root.MostRight()
		}
	}
	return
}

// MostLeft returns the node with the smallest key, or nil on an empty tree.
func (t *Tree[K, V]) MostLeft() *Node[K, V] {
	return t.mostLeft
}

// MostRight returns the node with the largest key, or nil on an empty tree.
func (t *Tree[K, V]) MostRight() *Node[K, V] {
	return t.mostRight
}

// Clear resets the tree to empty, returning all nodes to the pool if one
// is used.
func (t *Tree[K, V]) Clear() {
	if t.root != nil {
		t.root.walkPostOrder(func(node *Node[K, V]) bool {
			if t.pool != nil {
				*node = Node[K, V]{}
				t.pool.Put(node)
			}
			return false
		})
	}
	t.root = nil
	t.mostLeft = nil
	t.mostRight = nil
	t.size = 0
}

// IterateInOrder visits all values in ascending key order. Returning true
// from f stops the iteration.
func (t *Tree[K, V]) IterateInOrder(f func(value V) bool) {
	if t.root == nil {
		return
	}
	t.root.walkInOrder(func(node *Node[K, V]) bool {
		return f(node.value)
	})
}

// IteratePostOrder visits all values children-first, so it is safe to
// release values during the walk. Returning true from f stops the iteration.
func (t *Tree[K, V]) IteratePostOrder(f func(value V) bool) {
	if t.root == nil {
		return
	}
	t.root.walkPostOrder(func(node *Node[K, V]) bool {
		return f(node.value)
	})
}
