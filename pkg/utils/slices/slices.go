package slices

// Map converts a slice applying mapper to each element.
func Map[T any, R any](sli []T, mapper func(v T) R) []R {
	ret := make([]R, len(sli))
	for nth, v := range sli {
		ret[nth] = mapper(v)
	}
	return ret
}

// First returns the first element satisfying pred.
//
// When no element satisfies, it returns (zero-value, false).
func First[T any](sli []T, pred func(v T) bool) (T, bool) {
	for _, v := range sli {
		if pred(v) {
			return v, true
		}
	}
	return *new(T), false
}

// Concat joins slices into one.
func Concat[T any](sli ...[]T) []T {
	size := 0
	for _, s := range sli {
		size += len(s)
	}
	ret := make([]T, 0, size)
	for _, s := range sli {
		ret = append(ret, s...)
	}
	return ret
}
