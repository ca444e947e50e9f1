package freq

import "github.com/hyp3rd/numstats/types"

// Summary bundles every weighted statistic of a frequency dataset into one
// serializable value. Count is the total weight, not the number of pairs.
type Summary[T types.Number] struct {
	Count    uint64 `json:"count"`
	Sum      T      `json:"sum"`
	Mean     T      `json:"mean"`
	Variance T      `json:"variance"`
	StdDev   T      `json:"std_dev"`
	Min      T      `json:"min"`
	Max      T      `json:"max"`
	Range    T      `json:"range"`
	Mode     T      `json:"mode"`
}

// Describe computes the full Summary of a frequency dataset, returning the
// first failure encountered.
func Describe[T types.Number](collection types.Collection[types.Frequency[T]]) (*Summary[T], error) {
	summary := &Summary[T]{
		Count: Count(collection),
	}

	var err error

	summary.Sum, err = Sum(collection)
	if err != nil {
		return nil, err
	}

	summary.Mean, err = Mean(collection)
	if err != nil {
		return nil, err
	}

	summary.Variance, err = Variance(collection)
	if err != nil {
		return nil, err
	}

	summary.StdDev, err = StdDev(collection)
	if err != nil {
		return nil, err
	}

	summary.Min, err = Min(collection)
	if err != nil {
		return nil, err
	}

	summary.Max, err = Max(collection)
	if err != nil {
		return nil, err
	}

	summary.Range, err = Range(collection)
	if err != nil {
		return nil, err
	}

	summary.Mode, err = Mode(collection)
	if err != nil {
		return nil, err
	}

	return summary, nil
}
