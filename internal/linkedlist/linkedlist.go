package linkedlist

// Node - One record in a chain
type Node struct {
	Key   string
	Value any
	next  *Node
}

// List - A singly linked list of key/value nodes used as the chain of a bucket in separate chaining
type List struct {
	head   *Node
	length int64
}

// New - Returns a pointer to a new and empty List
func New() *List {
	return &List{}
}

// Insert - Inserts a new node at the front of the list. It does not check for an existing node with the same key,
// that is up to the caller.
func (L *List) Insert(key string, value any) {
	L.head = &Node{Key: key, Value: value, next: L.head}
	L.length++
}

// Remove - Removes the first node matching key.
// It returns true if a node was removed, removing a key that is not in the list is a no-op returning false.
func (L *List) Remove(key string) bool {
	var prev *Node
	for node := L.head; node != nil; node = node.next {
		if node.Key == key {
			if prev == nil {
				L.head = node.next
			} else {
				prev.next = node.next
			}
			L.length--
			return true
		}
		prev = node
	}

	return false
}

// Contains - Returns the first node matching key, or nil if there is no such node
func (L *List) Contains(key string) *Node {
	for node := L.head; node != nil; node = node.next {
		if node.Key == key {
			return node
		}
	}

	return nil
}

// Length - Returns the number of nodes in the list
func (L *List) Length() int64 {
	return L.length
}

// Iterator - Returns a new Records iterator positioned at the front of the list
func (L *List) Iterator() *Records {
	return NewRecords(L.head)
}
