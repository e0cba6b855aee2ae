package utils

// FindIndex returns the position of the first element equal to item, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

func Contains[T comparable](slice []T, item T) bool {
	return FindIndex(slice, item) >= 0
}

// Sum adds up the values of a slice.
func Sum[T ~int | ~float64](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}
