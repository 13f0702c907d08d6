package utils

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](min T, value T, max T) bool {
	return min <= value && value <= max
}

// Clamp pulls value into the inclusive range [lo, hi].
// When the range is inverted, hi wins.
func Clamp[T number](lo T, value T, hi T) T {
	if value > hi {
		return hi
	}

	if value < lo && lo <= hi {
		return lo
	}

	return value
}
