package cmp

// MapEq detects that two maps have same keys and same values.
func MapEq[K comparable, V comparable](a, b map[K]V) bool {
	return MapEqWith(a, b, func(av, bv V) bool { return av == bv })
}

// MapEqWith detects that two maps have same keys
// and values equivalent in the sense of pred.
func MapEqWith[K comparable, V any, W any](a map[K]V, b map[K]W, pred func(a V, b W) bool) bool {
	if len(a) != len(b) {
		return false
	}
	return MapGeqWith(a, b, pred)
}

// MapGeq detects that a contains all entries of b. ( a ⊇ b )
func MapGeq[K comparable, V comparable](a, b map[K]V) bool {
	return MapGeqWith(a, b, func(av, bv V) bool { return av == bv })
}

// MapGeqWith detects that for each entry of b,
// a has an entry with same key and an equivalent value. ( a ⊇ b )
func MapGeqWith[K comparable, V any, W any](a map[K]V, b map[K]W, pred func(a V, b W) bool) bool {
	for k, bv := range b {
		av, ok := a[k]
		if !ok {
			return false
		}
		if !pred(av, bv) {
			return false
		}
	}
	return true
}

// MapLeq detects that b contains all entries of a. ( a ⊆ b )
func MapLeq[K comparable, V comparable](a, b map[K]V) bool {
	return MapLeqWith(a, b, func(av, bv V) bool { return av == bv })
}

// MapLeqWith detects that for each entry of a,
// b has an entry with same key and an equivalent value. ( a ⊆ b )
func MapLeqWith[K comparable, V any, W any](a map[K]V, b map[K]W, pred func(a V, b W) bool) bool {
	return MapGeqWith(b, a, func(bv W, av V) bool { return pred(av, bv) })
}

// MapMatch tests each entry of m with the predicator registered
// for its key. It holds when keys of m and predicators are identical
// and every predicator accepts its value.
func MapMatch[K comparable, V any](m map[K]V, predicators map[K]func(V) bool) bool {
	if len(m) != len(predicators) {
		return false
	}

	ok := true
	for k, pred := range predicators {
		v, found := m[k]
		if !found {
			ok = false
			continue
		}
		if !pred(v) {
			ok = false
		}
	}
	return ok
}
