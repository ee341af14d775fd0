package cmp

// SliceEq detects that two slices have same elements in same order.
func SliceEq[T comparable](a, b []T) bool {
	return SliceEqWith(a, b, func(ae, be T) bool { return ae == be })
}

// SliceEqWith detects that two slices are equal in order,
// comparing each pair of elements with pred.
func SliceEqWith[T any, U any](a []T, b []U, pred func(a T, b U) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for nth := range a {
		if !pred(a[nth], b[nth]) {
			return false
		}
	}
	return true
}

// SliceContains detects that needle is a contiguous sub-sequence of haystack.
//
// Empty needle is found in any haystack.
func SliceContains[T comparable](haystack, needle []T) bool {
	if len(haystack) < len(needle) {
		return false
	}
	for start := 0; start+len(needle) <= len(haystack); start++ {
		if SliceEq(haystack[start:start+len(needle)], needle) {
			return true
		}
	}
	return false
}

// SliceContentEq detects that two slices have same contents,
// ignoring ordering but not multiplicity.
func SliceContentEq[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}

	counts := map[T]int{}
	for _, ae := range a {
		counts[ae] += 1
	}
	for _, be := range b {
		counts[be] -= 1
	}

	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}

// SliceContentEqWith detects that two slices have same contents
// in the sense of equiv, ignoring ordering but not multiplicity.
//
// Each element of a is matched with a distinct element of b.
func SliceContentEqWith[T any, U any](a []T, b []U, equiv func(a T, b U) bool) bool {
	if len(a) != len(b) {
		return false
	}

	matched := make([]bool, len(b))

A:
	for _, ae := range a {
		for nth, be := range b {
			if matched[nth] {
				continue
			}
			if equiv(ae, be) {
				matched[nth] = true
				continue A
			}
		}
		return false
	}
	return true
}

// SliceSubsetWith detects that each element of sub can be matched
// with a distinct equivalent element of sup.
//
// Ordering does not matter. Multiplicity does: an element of sup
// never matches twice.
func SliceSubsetWith[T any, U any](sup []T, sub []U, equiv func(a T, b U) bool) bool {
	if len(sup) < len(sub) {
		return false
	}

	matched := make([]bool, len(sup))

B:
	for _, be := range sub {
		for nth, ae := range sup {
			if matched[nth] {
				continue
			}
			if equiv(ae, be) {
				matched[nth] = true
				continue B
			}
		}
		return false
	}
	return true
}
