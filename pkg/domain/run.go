package domain

import (
	"time"

	"github.com/opst/trackfab/pkg/utils/cmp"
)

// Core part of run.
type RunBody struct {
	Id string

	// Id of the experiment the run belongs to.
	ExperimentId string

	// Git commit hash the run was built from.
	//
	// When no hash was given at creation, this is empty string, never null.
	CommitSHA string

	// Wall-clock time spent training, if recorded.
	//
	// nil until SetTrainingTime is called.
	TrainingTime *time.Duration

	CreatedAt time.Time
}

func (rb *RunBody) Equal(o *RunBody) bool {
	if (rb == nil) || (o == nil) {
		return (rb == nil) && (o == nil)
	}

	return rb.Id == o.Id &&
		rb.ExperimentId == o.ExperimentId &&
		rb.CommitSHA == o.CommitSHA &&
		((rb.TrainingTime == nil && o.TrainingTime == nil) ||
			(rb.TrainingTime != nil && o.TrainingTime != nil && *rb.TrainingTime == *o.TrainingTime)) &&
		rb.CreatedAt.Equal(o.CreatedAt)
}

// Run with its logged Metrics and HyperParameters, eagerly loaded.
type Run struct {
	RunBody

	// in logging order.
	Metrics []Metric

	// in logging order.
	HyperParameters []HyperParameter
}

func (r *Run) Equal(other *Run) bool {
	if (r == nil) || (other == nil) {
		return (r == nil) && (other == nil)
	}
	return r.RunBody.Equal(&other.RunBody) &&
		cmp.SliceEqWith(
			r.Metrics, other.Metrics,
			func(a, b Metric) bool { return a.Equal(&b) },
		) &&
		cmp.SliceEqWith(
			r.HyperParameters, other.HyperParameters,
			func(a, b HyperParameter) bool { return a.Equal(&b) },
		)
}

// A named numeric measurement logged against a run.
//
// Metrics are append-only. Logging a metric never overwrites
// a prior one, even with the same name.
type Metric struct {
	RunId    string
	Name     string
	Value    float64
	LoggedAt time.Time
}

func (m *Metric) Equal(o *Metric) bool {
	if (m == nil) || (o == nil) {
		return (m == nil) && (o == nil)
	}
	return m.RunId == o.RunId &&
		m.Name == o.Name &&
		m.Value == o.Value &&
		m.LoggedAt.Equal(o.LoggedAt)
}

// A named string-valued configuration setting logged against a run.
//
// Same append-only contract as Metric.
type HyperParameter struct {
	RunId string
	Name  string
	Value string
}

func (h *HyperParameter) Equal(o *HyperParameter) bool {
	if (h == nil) || (o == nil) {
		return (h == nil) && (o == nil)
	}
	return h.RunId == o.RunId &&
		h.Name == o.Name &&
		h.Value == o.Value
}
