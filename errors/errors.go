// Package errors defines the closed error taxonomy shared by the plain and
// frequency statistics: a statistic is either undefined for an empty input,
// or a checked numeric conversion between two representations did not fit.
// No other failure kind exists; arithmetic overflow inside the element type's
// own operations is the element type's concern, not this layer's.
package errors

import (
	"fmt"

	"github.com/hyp3rd/ewrap"
)

var (
	// ErrEmptyCollection is returned when a statistic is undefined because
	// the collection holds no elements, or no total weight is available.
	ErrEmptyCollection = ewrap.New("empty collection")

	// ErrCouldNotConvert is the sentinel every ConversionError unwraps to.
	// Use errors.Is against it to detect any failed conversion without
	// caring which representations were involved.
	ErrCouldNotConvert = ewrap.New("could not convert between data types")
)

// DataType identifies one of the representations a statistic converts
// between. It exists only to populate ConversionError; it never drives
// control flow.
type DataType string

const (
	// DataTypeUsize is an unsigned element or occurrence count.
	DataTypeUsize DataType = "usize"
	// DataTypeF64 is the double-precision float used internally for
	// square-root computation.
	DataTypeF64 DataType = "f64"
	// DataTypeItem is the collection's numeric element type.
	DataTypeItem DataType = "item"
)

// String returns the string representation of the DataType.
func (d DataType) String() string {
	return string(d)
}

// ConversionError reports a checked numeric conversion whose destination
// representation could not hold the value.
type ConversionError struct {
	From DataType // representation the conversion was attempted from
	To   DataType // representation the conversion was attempted to
}

// NewConversionError builds a ConversionError for the given representations.
func NewConversionError(from, to DataType) error {
	return &ConversionError{From: from, To: to}
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("could not convert from %s to %s", e.From, e.To)
}

// Unwrap makes every ConversionError match ErrCouldNotConvert.
func (e *ConversionError) Unwrap() error {
	return ErrCouldNotConvert
}
