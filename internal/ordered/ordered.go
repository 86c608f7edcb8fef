// Package ordered keeps entries in insertion order: a hash index from key
// to node plus a doubly linked list running from the newest entry (head) to
// the oldest (tail).
package ordered

type entry[K comparable, V any] struct {
	key   K
	value V

	prev *entry[K, V]
	next *entry[K, V]
}

// Map is not safe for concurrent use; callers hold their own lock.
type Map[K comparable, V any] struct {
	data map[K]*entry[K, V]
	head *entry[K, V]
	tail *entry[K, V]
}

func New[K comparable, V any](sizeHint int) *Map[K, V] {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Map[K, V]{
		data: make(map[K]*entry[K, V], sizeHint),
	}
}

func (m *Map[K, V]) Len() int {
	return len(m.data)
}

func (m *Map[K, V]) Contains(key K) bool {
	_, has := m.data[key]
	return has
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	if node, has := m.data[key]; has {
		return node.value, true
	}

	var zero V
	return zero, false
}

// PushNewest inserts key as the newest entry. A resident key keeps its node,
// gets the new value and moves to the head.
func (m *Map[K, V]) PushNewest(key K, value V) {
	if node, has := m.data[key]; has {
		node.value = value
		m.moveToFront(node)
		return
	}

	node := &entry[K, V]{
		key:   key,
		value: value,
	}
	m.data[key] = node
	m.addToFront(node)
}

// Touch moves a resident key to the head.
func (m *Map[K, V]) Touch(key K) bool {
	node, has := m.data[key]
	if !has {
		return false
	}
	m.moveToFront(node)
	return true
}

func (m *Map[K, V]) Remove(key K) (V, bool) {
	node, has := m.data[key]
	if !has {
		var zero V
		return zero, false
	}
	m.removeFromList(node)
	delete(m.data, key)
	return node.value, true
}

func (m *Map[K, V]) Oldest() (K, V, bool) {
	return peek(m.tail)
}

func (m *Map[K, V]) Newest() (K, V, bool) {
	return peek(m.head)
}

func (m *Map[K, V]) PopOldest() (K, V, bool) {
	return m.pop(m.tail)
}

func (m *Map[K, V]) PopNewest() (K, V, bool) {
	return m.pop(m.head)
}

// Keys returns keys from oldest to newest.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.data))
	for node := m.tail; node != nil; node = node.prev {
		keys = append(keys, node.key)
	}
	return keys
}

// Snapshot copies the entries into a plain map.
func (m *Map[K, V]) Snapshot() map[K]V {
	out := make(map[K]V, len(m.data))
	for key, node := range m.data {
		out[key] = node.value
	}
	return out
}

func (m *Map[K, V]) Clear() {
	clear(m.data)
	m.head = nil
	m.tail = nil
}

func (m *Map[K, V]) pop(node *entry[K, V]) (K, V, bool) {
	if node == nil {
		var (
			key   K
			value V
		)
		return key, value, false
	}
	m.removeFromList(node)
	delete(m.data, node.key)
	return node.key, node.value, true
}

func peek[K comparable, V any](node *entry[K, V]) (K, V, bool) {
	if node == nil {
		var (
			key   K
			value V
		)
		return key, value, false
	}
	return node.key, node.value, true
}

func (m *Map[K, V]) moveToFront(node *entry[K, V]) {
	if node == m.head {
		return
	}
	m.removeFromList(node)
	m.addToFront(node)
}

func (m *Map[K, V]) addToFront(node *entry[K, V]) {
	node.prev = nil
	node.next = nil
	if m.head == nil {
		m.head = node
		m.tail = node
		return
	}
	node.next = m.head
	m.head.prev = node
	m.head = node
}

func (m *Map[K, V]) removeFromList(node *entry[K, V]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		m.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		m.tail = node.prev
	}
	node.prev = nil
	node.next = nil
}
