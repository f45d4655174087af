package hashtable

type chainNode[V any] struct {
	key   string
	value V
	next  *chainNode[V]
}

// chain is an ordered singly-linked list of key/value entries. Each bucket of
// a Table owns exactly one chain; every operation is a linear scan from the
// head. A key appears in at most one node.
type chain[V any] struct {
	head *chainNode[V]
}

// insertOrUpdate replaces the value in place if the key is already present,
// otherwise appends a new node at the tail. Returns true if a new node was
// inserted, false if an existing one was updated.
func (c *chain[V]) insertOrUpdate(key string, value V) bool {
	if c.head == nil {
		c.head = &chainNode[V]{key: key, value: value}
		return true
	}

	node := c.head
	for {
		if node.key == key {
			node.value = value
			return false
		}
		if node.next == nil {
			break
		}
		node = node.next
	}

	node.next = &chainNode[V]{key: key, value: value}
	return true
}

func (c *chain[V]) find(key string) (V, bool) {
	for node := c.head; node != nil; node = node.next {
		if node.key == key {
			return node.value, true
		}
	}

	var zero V
	return zero, false
}

// remove unlinks the node holding key and returns its value. The predecessor
// takes over the removed node's next link, or the head moves forward when the
// first node is removed.
func (c *chain[V]) remove(key string) (V, bool) {
	var prev *chainNode[V]
	for node := c.head; node != nil; node = node.next {
		if node.key == key {
			if prev == nil {
				c.head = node.next
			} else {
				prev.next = node.next
			}
			node.next = nil
			return node.value, true
		}
		prev = node
	}

	var zero V
	return zero, false
}

func (c *chain[V]) isEmpty() bool {
	return c.head == nil
}

func (c *chain[V]) len() int {
	count := 0
	for node := c.head; node != nil; node = node.next {
		count++
	}
	return count
}

// each calls fn for every entry in chain order, stopping early if fn returns
// false.
func (c *chain[V]) each(fn func(key string, value V) bool) {
	for node := c.head; node != nil; node = node.next {
		if !fn(node.key, node.value) {
			return
		}
	}
}
