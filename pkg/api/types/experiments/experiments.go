package experiments

import (
	"github.com/opst/trackfab/pkg/domain"
	"github.com/opst/trackfab/pkg/utils/cmp"
)

// Spec is the request body registering an experiment.
type Spec struct {
	Name string `json:"name"`
}

type Summary struct {
	ExperimentId string `json:"experimentId"`
	Name         string `json:"name"`
}

func ComposeSummary(e domain.Experiment) Summary {
	return Summary{
		ExperimentId: e.Id,
		Name:         e.Name,
	}
}

func (s *Summary) Equal(o *Summary) bool {
	if s == nil || o == nil {
		return s == nil && o == nil
	}
	return s.ExperimentId == o.ExperimentId && s.Name == o.Name
}

type Detail struct {
	Summary
	RunIds []string `json:"runIds"`
}

func ComposeDetail(e domain.ExperimentDetail) Detail {
	return Detail{
		Summary: ComposeSummary(e.Experiment),
		RunIds:  e.RunIds,
	}
}

func (d *Detail) Equal(o *Detail) bool {
	if d == nil || o == nil {
		return d == nil && o == nil
	}
	return d.Summary.Equal(&o.Summary) &&
		cmp.SliceEq(d.RunIds, o.RunIds)
}
