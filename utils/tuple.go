package utils

// Unpack2 spreads the first two elements of a slice, missing elements stay zero.
func Unpack2[Slice ~[]T, T any](s Slice) (first T, second T) {
	switch len(s) {
	default:
		return s[0], s[1]
	case 0:
		return
	case 1:
		first = s[0]
		return
	}
}

// LastCut splits s around the last occurrence of sep.
// Without sep the whole string is returned as after.
func LastCut(s, sep string) (before, after string) {
	for i := len(s) - len(sep); i >= 0; i-- {
		if s[i:i+len(sep)] == sep {
			return s[:i], s[i+len(sep):]
		}
	}

	return "", s
}
