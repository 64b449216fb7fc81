// Package stats provides the small set of descriptive statistics used to
// decide which entry names in a directory listing are unusually long.
package stats

import (
	"slices"
)

// outlierFactor is the Tukey fence multiplier applied to the interquartile range.
const outlierFactor = 1.5

// Median returns the median of values, which must already be sorted.
// The second return value is false for an empty slice.
func Median(values []int) (float64, bool) {
	n := len(values)
	if n == 0 {
		return 0, false
	}

	half := n / 2
	if n%2 == 0 {
		return (float64(values[half-1]) + float64(values[half])) / 2, true
	}

	return float64(values[half]), true
}

// Quartiles returns the first, second and third quartile of values.
// For an odd number of values the middle element belongs to neither half.
// The result is absent for fewer than two values.
func Quartiles(values []int, sorted bool) (q1, q2, q3 float64, ok bool) {
	n := len(values)
	if n < 2 {
		return 0, 0, 0, false
	}

	if !sorted {
		values = sortedCopy(values)
	}

	half := n / 2
	upperStart := half
	if n%2 != 0 {
		upperStart++
	}

	q1, _ = Median(values[:half])
	q2, _ = Median(values)
	q3, _ = Median(values[upperStart:])

	return q1, q2, q3, true
}

// Outliers partitions values lying outside the Tukey fences
// [Q1 - 1.5*IQR, Q3 + 1.5*IQR] into lower and upper outliers, both in
// ascending order. The result is absent when there are no outliers at all.
func Outliers(values []int, sorted bool) (lower, upper []int, ok bool) {
	if len(values) == 0 {
		return nil, nil, false
	}

	if !sorted {
		values = sortedCopy(values)
	}

	q1, _, q3, ok := Quartiles(values, true)
	if !ok {
		return nil, nil, false
	}

	// Fences are computed in floating point; Q1 - 1.5*IQR may be negative.
	iqr := q3 - q1
	lowerFence := q1 - outlierFactor*iqr
	upperFence := q3 + outlierFactor*iqr

	lower = []int{}
	upper = []int{}
	for _, v := range values {
		switch {
		case float64(v) < lowerFence:
			lower = append(lower, v)
		case float64(v) > upperFence:
			upper = append(upper, v)
		}
	}

	if len(lower) == 0 && len(upper) == 0 {
		return nil, nil, false
	}

	return lower, upper, true
}

// Average returns the arithmetic mean of values, or 0 for an empty slice.
func Average(values []int) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0
	for _, v := range values {
		sum += v
	}

	return float64(sum) / float64(len(values))
}

func sortedCopy(values []int) []int {
	out := slices.Clone(values)
	slices.Sort(out)
	return out
}
