package types

// Frequency represents `Count` occurrences of `Value` in a weighted or
// grouped dataset, such as one bucket of a histogram. Pairs need not be
// sorted or deduplicated by value; duplicate values with separate counts are
// valid and their counts accumulate in the aggregate statistics.
type Frequency[T any] struct {
	Count uint64 // number of occurrences of Value
	Value T      // the observed value
}

// Pairs adapts a slice of frequency pairs to the Collection contract.
type Pairs[T any] []Frequency[T]

// Iterator implements Collection.
func (p Pairs[T]) Iterator() Iterator[Frequency[T]] {
	return &sliceIterator[Frequency[T]]{items: p}
}
