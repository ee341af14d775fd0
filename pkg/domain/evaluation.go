package domain

import "github.com/opst/trackfab/pkg/utils/cmp"

// ConfusionMatrix summarises classification outcomes of a run.
//
// Counts[actual][predicted] is the number of samples with label
// Labels[actual] classified as Labels[predicted].
//
// A run has zero or one ConfusionMatrix. Absent is a legitimate,
// common state, not a failure.
type ConfusionMatrix struct {
	Labels []string   `json:"labels"`
	Counts [][]uint64 `json:"counts"`
}

func (m *ConfusionMatrix) Equal(o *ConfusionMatrix) bool {
	if (m == nil) || (o == nil) {
		return (m == nil) && (o == nil)
	}
	return cmp.SliceEq(m.Labels, o.Labels) &&
		cmp.SliceEqWith(
			m.Counts, o.Counts,
			func(a, b []uint64) bool { return cmp.SliceEq(a, b) },
		)
}
