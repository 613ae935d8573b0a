package dynarray

import "github.com/gostonefire/primehashmap/crt"

// initialCapacity - Number of elements room is made for in an array created with New
const initialCapacity int64 = 4

// Array - A dynamic array managing its own backing storage. It grows by doubling when appending to a full array.
// The hash map uses it as a fixed length bucket array: it is filled once with Append and then only read and written
// by index.
type Array[T any] struct {
	data   []T
	length int64
}

// New - Returns a pointer to a new and empty Array
func New[T any]() *Array[T] {
	return &Array[T]{data: make([]T, initialCapacity)}
}

// NewFilled - Returns a pointer to a new Array of the given length where every element is produced by fill
func NewFilled[T any](length int64, fill func() T) *Array[T] {
	a := &Array[T]{data: make([]T, length), length: length}
	for i := int64(0); i < length; i++ {
		a.data[i] = fill()
	}

	return a
}

// Length - Returns the number of elements in the array
func (A *Array[T]) Length() int64 {
	return A.length
}

// Append - Adds item at the end of the array, doubling the backing storage if it is full
func (A *Array[T]) Append(item T) {
	if A.length == int64(len(A.data)) {
		newCap := 2 * int64(len(A.data))
		if newCap == 0 {
			newCap = initialCapacity
		}
		data := make([]T, newCap)
		copy(data, A.data[:A.length])
		A.data = data
	}

	A.data[A.length] = item
	A.length++
}

// GetAtIndex - Returns the element at index.
// It returns an error of type crt.IndexOutOfRange if index is outside 0 to Length() - 1
func (A *Array[T]) GetAtIndex(index int64) (item T, err error) {
	if index < 0 || index >= A.length {
		err = crt.IndexOutOfRange{Index: index, Length: A.length}
		return
	}

	item = A.data[index]

	return
}

// SetAtIndex - Replaces the element at index with item.
// It returns an error of type crt.IndexOutOfRange if index is outside 0 to Length() - 1
func (A *Array[T]) SetAtIndex(index int64, item T) (err error) {
	if index < 0 || index >= A.length {
		err = crt.IndexOutOfRange{Index: index, Length: A.length}
		return
	}

	A.data[index] = item

	return
}
