package runs

import (
	"github.com/opst/trackfab/pkg/domain"
	"github.com/opst/trackfab/pkg/utils/cmp"
	"github.com/opst/trackfab/pkg/utils/rfctime"
	"github.com/opst/trackfab/pkg/utils/slices"
)

// Spec is the request body registering a run.
//
// Either ExperimentId or ExperimentName should be set. When only
// ExperimentName is set, the experiment is created if it is not there yet.
type Spec struct {
	ExperimentId   string `json:"experimentId,omitempty"`
	ExperimentName string `json:"experimentName,omitempty"`
	CommitSHA      string `json:"commitSha,omitempty"`
}

type TrainingTimeSpec struct {
	Seconds float64 `json:"seconds"`
}

type MetricSpec struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type HyperParameterSpec struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Metric struct {
	Name     string          `json:"name"`
	Value    float64         `json:"value"`
	LoggedAt rfctime.RFC3339 `json:"loggedAt"`
}

func ComposeMetric(m domain.Metric) Metric {
	return Metric{
		Name:     m.Name,
		Value:    m.Value,
		LoggedAt: rfctime.RFC3339(m.LoggedAt),
	}
}

func (m *Metric) Equal(o *Metric) bool {
	if m == nil || o == nil {
		return m == nil && o == nil
	}
	return m.Name == o.Name &&
		m.Value == o.Value &&
		m.LoggedAt.Equal(&o.LoggedAt)
}

type HyperParameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func ComposeHyperParameter(p domain.HyperParameter) HyperParameter {
	return HyperParameter{Name: p.Name, Value: p.Value}
}

type Summary struct {
	RunId               string          `json:"runId"`
	ExperimentId        string          `json:"experimentId"`
	CommitSHA           string          `json:"commitSha"`
	TrainingTimeSeconds *float64        `json:"trainingTimeSeconds,omitempty"`
	CreatedAt           rfctime.RFC3339 `json:"createdAt"`
}

func ComposeSummary(r domain.RunBody) Summary {
	var trainingTime *float64
	if r.TrainingTime != nil {
		secs := r.TrainingTime.Seconds()
		trainingTime = &secs
	}
	return Summary{
		RunId:               r.Id,
		ExperimentId:        r.ExperimentId,
		CommitSHA:           r.CommitSHA,
		TrainingTimeSeconds: trainingTime,
		CreatedAt:           rfctime.RFC3339(r.CreatedAt),
	}
}

func (s *Summary) Equal(o *Summary) bool {
	if s == nil || o == nil {
		return s == nil && o == nil
	}

	if (s.TrainingTimeSeconds == nil) != (o.TrainingTimeSeconds == nil) {
		return false
	}
	if s.TrainingTimeSeconds != nil && *s.TrainingTimeSeconds != *o.TrainingTimeSeconds {
		return false
	}

	return s.RunId == o.RunId &&
		s.ExperimentId == o.ExperimentId &&
		s.CommitSHA == o.CommitSHA &&
		s.CreatedAt.Equal(&o.CreatedAt)
}

type Detail struct {
	Summary
	Metrics         []Metric         `json:"metrics"`
	HyperParameters []HyperParameter `json:"hyperParameters"`
}

func ComposeDetail(r domain.Run) Detail {
	return Detail{
		Summary:         ComposeSummary(r.RunBody),
		Metrics:         slices.Map(r.Metrics, ComposeMetric),
		HyperParameters: slices.Map(r.HyperParameters, ComposeHyperParameter),
	}
}

func (d *Detail) Equal(o *Detail) bool {
	if d == nil || o == nil {
		return d == nil && o == nil
	}

	return d.Summary.Equal(&o.Summary) &&
		cmp.SliceEqWith(
			d.Metrics, o.Metrics,
			func(a, b Metric) bool { return a.Equal(&b) },
		) &&
		cmp.SliceEq(d.HyperParameters, o.HyperParameters)
}
