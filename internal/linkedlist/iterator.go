package linkedlist

import "github.com/gostonefire/primehashmap/crt"

// Records - Is used to iterate over chain nodes one by one.
type Records struct {
	node *Node
}

// NewRecords - Returns a pointer to a new Records struct starting at node
func NewRecords(node *Node) *Records {

	return &Records{
		node: node,
	}
}

// HasNext - Returns true if there are more nodes to be fetched from a call to Next.
func (R *Records) HasNext() bool {
	return R.node != nil
}

// Next - Returns node.
// It returns:
//   - node is the next node in the chain.
//   - err is an error of type crt.NoRecordFound if there are no more nodes when calling this function.
func (R *Records) Next() (node *Node, err error) {
	if R.node == nil {
		err = crt.NoRecordFound{}
		return
	}

	node = R.node
	R.node = node.next

	return
}
