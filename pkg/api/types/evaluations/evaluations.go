package evaluations

import (
	"github.com/opst/trackfab/pkg/domain"
	"github.com/opst/trackfab/pkg/utils/cmp"
)

// ConfusionMatrix is the wire form of a logged confusion matrix.
// Counts[i][j] counts samples of actual label i predicted as label j.
type ConfusionMatrix struct {
	Labels []string   `json:"labels"`
	Counts [][]uint64 `json:"counts"`
}

func Compose(m domain.ConfusionMatrix) ConfusionMatrix {
	return ConfusionMatrix{Labels: m.Labels, Counts: m.Counts}
}

func (m ConfusionMatrix) ToDomain() domain.ConfusionMatrix {
	return domain.ConfusionMatrix{Labels: m.Labels, Counts: m.Counts}
}

func (m *ConfusionMatrix) Equal(o *ConfusionMatrix) bool {
	if m == nil || o == nil {
		return m == nil && o == nil
	}
	return cmp.SliceEq(m.Labels, o.Labels) &&
		cmp.SliceEqWith(
			m.Counts, o.Counts,
			func(a, b []uint64) bool { return cmp.SliceEq(a, b) },
		)
}
