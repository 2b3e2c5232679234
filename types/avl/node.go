package avl

type lean int8

const (
	leanEven  lean = 0
	leanRight lean = 1
	leanLeft  lean = -1
)

// Node is a single key/value entry of a Tree. Nodes keep parent links so
// callers can walk neighbouring keys without touching the tree itself.
type Node[K, V any] struct {
	key    K
	value  V
	parent *Node[K, V]
	left   *Node[K, V]
	right  *Node[K, V]
	height int
}

// Key returns the node key.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value returns the node value.
func (n *Node[K, V]) Value() V {
	return n.value
}

// MostLeft returns the smallest node of the subtree rooted at n.
func (n *Node[K, V]) MostLeft() *Node[K, V] {
	current := n
	for current.left != nil {
		current = current.left
	}
	return current
}

// MostRight returns the largest node of the subtree rooted at n.
func (n *Node[K, V]) MostRight() *Node[K, V] {
	current := n
	for current.right != nil {
		current = current.right
	}
	return current
}

// NextLeft returns the node with the next smaller key, or nil.
func (n *Node[K, V]) NextLeft() *Node[K, V] {
	if n.left != nil {
		return n.left.MostRight()
	}
	// Ascend until the current node is a right child: its parent holds
	// the next smaller key.
	current := n
	for current.parent != nil && current == current.parent.left {
		current = current.parent
	}
	return current.parent
}

// NextRight returns the node with the next larger key, or nil.
func (n *Node[K, V]) NextRight() *Node[K, V] {
	if n.right != nil {
		return n.right.MostLeft()
	}
	// Ascend until the current node is a left child: its parent holds
	// the next larger key.
	current := n
	for current.parent != nil && current == current.parent.right {
		current = current.parent
	}
	return current.parent
}

func (n *Node[K, V]) lookup(key K, compare func(a, b K) int) *Node[K, V] {
	current := n
	for {
		cmp := compare(key, current.key)
		switch {
		case cmp == 0:
			return current
		case cmp < 0 && current.left != nil:
			current = current.left
		case cmp > 0 && current.right != nil:
			current = current.right
		default:
			return nil
		}
	}
}

// insert places node into the subtree rooted at n and returns the new
// subtree root after rebalancing.
func (n *Node[K, V]) insert(node *Node[K, V], compare func(a, b K) int) (*Node[K, V], error) {
	cmp := compare(node.key, n.key)
	switch {
	case cmp < 0:
		if n.left == nil {
			n.left = node
			node.parent = n
		} else {
			subtree, err := n.left.insert(node, compare)
			if err != nil {
				return nil, err
			}
			n.left = subtree
			subtree.parent = n
		}
	case cmp > 0:
		if n.right == nil {
			n.right = node
			node.parent = n
		} else {
			subtree, err := n.right.insert(node, compare)
			if err != nil {
				return nil, err
			}
			n.right = subtree
			subtree.parent = n
		}
	default:
		return nil, ErrDuplicateKey
	}
	return n.rebalance(), nil
}

// erase removes the node with the given key from the subtree rooted at n.
// It returns the removed node and the new subtree root.
func (n *Node[K, V]) erase(key K, compare func(a, b K) int) (removed, root *Node[K, V], err error) {
	cmp := compare(key, n.key)
	if cmp == 0 {
		switch {
		case n.left == nil && n.right == nil:
			return n, nil, nil
		case n.left == nil:
			return n, n.right, nil
		case n.right == nil:
			return n, n.left, nil
		default:
			// Two children: the in-order successor takes n's place.
			newRight, successor := n.right.detachLeftmost()
			successor.parent = n.parent
			successor.left = n.left
			successor.left.parent = successor
			successor.right = newRight
			if newRight != nil {
				newRight.parent = successor
			}
			successor.height = successor.recalcHeight()
			return n, successor.rebalance(), nil
		}
	}

	if cmp < 0 && n.left != nil {
		removed, subtree, err := n.left.erase(key, compare)
		if err != nil {
			return nil, nil, err
		}
		n.left = subtree
		n.height = n.recalcHeight()
		if subtree != nil {
			subtree.parent = n
		}
		return removed, n.rebalance(), nil
	}
	if n.right != nil {
		removed, subtree, err := n.right.erase(key, compare)
		if err != nil {
			return nil, nil, err
		}
		n.right = subtree
		n.height = n.recalcHeight()
		if subtree != nil {
			subtree.parent = n
		}
		return removed, n.rebalance(), nil
	}
	return nil, nil, ErrKeyNotFound
}

// detachLeftmost unlinks the smallest node of the subtree rooted at n and
// returns the remaining subtree plus the detached node.
func (n *Node[K, V]) detachLeftmost() (subtree, leftmost *Node[K, V]) {
	if n.left == nil {
		return n.right, n
	}
	newLeft, detached := n.left.detachLeftmost()
	if newLeft != nil {
		newLeft.parent = n
	}
	n.left = newLeft
	n.height = n.recalcHeight()
	return n, detached
}

func (n *Node[K, V]) walkInOrder(f func(node *Node[K, V]) bool) bool {
	if n.left != nil && n.left.walkInOrder(f) {
		return true
	}
	if f(n) {
		return true
	}
	return n.right != nil && n.right.walkInOrder(f)
}

func (n *Node[K, V]) walkPostOrder(f func(node *Node[K, V]) bool) bool {
	if n.left != nil && n.left.walkPostOrder(f) {
		return true
	}
	if n.right != nil && n.right.walkPostOrder(f) {
		return true
	}
	return f(n)
}

////////////////////////////////////////////////////////////////
// Balancing
////////////////////////////////////////////////////////////////

func (n *Node[K, V]) rebalance() *Node[K, V] {
	switch n.lean() {
	case leanRight:
		if n.right != nil && n.right.lean() == leanLeft {
			n.right = n.right.rotateRight()
			return n.rotateLeft()
		}
		return n.rotateLeft()
	case leanLeft:
		if n.left != nil && n.left.lean() == leanRight {
			n.left = n.left.rotateLeft()
			return n.rotateRight()
		}
		return n.rotateRight()
	}
	return n
}

func (n *Node[K, V]) lean() lean {
	left, right := n.leftHeight(), n.rightHeight()
	if left-right > 1 {
		return leanLeft
	}
	if right-left > 1 {
		return leanRight
	}
	return leanEven
}

func (n *Node[K, V]) leftHeight() int {
	if n.left == nil {
		return 0
	}
	return n.left.height
}

func (n *Node[K, V]) rightHeight() int {
	if n.right == nil {
		return 0
	}
	return n.right.height
}

func (n *Node[K, V]) recalcHeight() int {
	switch {
	case n.left == nil && n.right == nil:
		return 0
	case n.left == nil:
		return 1 + n.rightHeight()
	case n.right == nil:
		return 1 + n.leftHeight()
	default:
		left, right := n.leftHeight(), n.rightHeight()
		if left > right {
			return 1 + left
		}
		return 1 + right
	}
}

func (n *Node[K, V]) rotateLeft() *Node[K, V] {
	pivot := n.right
	n.parent = pivot
	n.right = pivot.left
	if n.right != nil {
		n.right.parent = n
		n.right.height = n.right.recalcHeight()
	}
	n.height = n.recalcHeight()
	pivot.parent = nil
	pivot.left = n
	pivot.height = pivot.recalcHeight()
	return pivot
}

func (n *Node[K, V]) rotateRight() *Node[K, V] {
	pivot := n.left
	n.parent = pivot
	n.left = pivot.right
	if n.left != nil {
		n.left.parent = n
		n.left.height = n.left.recalcHeight()
	}
	n.height = n.recalcHeight()
	pivot.parent = nil
	pivot.right = n
	pivot.height = pivot.recalcHeight()
	return pivot
}
