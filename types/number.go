// Package types holds the shared contracts of the statistics engine: the
// numeric capability constraint, the collection iteration contracts, and the
// frequency pair used by weighted datasets.
package types

// Number is the capability constraint a collection's element type must
// satisfy: the built-in signed and unsigned integers and the two floating
// point kinds. Conformance is structural; any collection of one of these
// types can instantiate every statistic.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}
