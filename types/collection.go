package types

// Iterator yields the successive items of a collection.
type Iterator[T any] interface {
	// HasNext reports whether another item is available.
	HasNext() bool
	// Next returns the next item. Calling Next after HasNext returned
	// false is undefined.
	Next() T
}

// Collection is a finite, re-iterable sequence of items. Iterator must hand
// out an independent iterator on every call so that multi-pass statistics
// never consume or mutate the caller's data; concurrent readers may each
// obtain their own iterator.
type Collection[T any] interface {
	Iterator() Iterator[T]
}

// Slice adapts a plain slice to the Collection contract.
type Slice[T any] []T

// Iterator implements Collection.
func (s Slice[T]) Iterator() Iterator[T] {
	return &sliceIterator[T]{items: s}
}

type sliceIterator[T any] struct {
	items []T
	pos   int
}

func (it *sliceIterator[T]) HasNext() bool {
	return it.pos < len(it.items)
}

func (it *sliceIterator[T]) Next() T {
	item := it.items[it.pos]
	it.pos++

	return item
}
