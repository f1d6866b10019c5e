package stats

import (
	"sort"
)

// Mean returns the arithmetic mean, or 0 for an empty slice
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Median returns the middle value of values without reordering them.
// An even-length slice yields the mean of the two middle values.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return Mean(sorted[n/2-1 : n/2+1])
}

// MinMax returns the minimum and maximum value, or zeros for an empty slice
func MinMax(values []float64) (min, max float64) {
	if len(values) == 0 {
		return 0, 0
	}

	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Scale maps v from [min, max] linearly onto [outMin, outMax].
// A degenerate input range maps everything to the output midpoint.
func Scale(v, min, max, outMin, outMax float64) float64 {
	if max <= min {
		return (outMin + outMax) / 2
	}
	if v <= min {
		return outMin
	}
	if v >= max {
		return outMax
	}
	return outMin + (v-min)/(max-min)*(outMax-outMin)
}

// CountBy counts occurrences of each key
func CountBy(keys []string) map[string]int {
	counts := make(map[string]int, len(keys))
	for _, k := range keys {
		counts[k]++
	}
	return counts
}

// SortedKeys returns the keys of counts in ascending order
func SortedKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
