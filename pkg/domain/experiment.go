package domain

import "github.com/opst/trackfab/pkg/utils/cmp"

// Experiment is a named grouping of training runs.
type Experiment struct {
	Id string

	// Name is the unique business key of the experiment.
	//
	// Creating an experiment with a name already taken
	// returns the id of the existing one.
	Name string
}

func (e *Experiment) Equal(o *Experiment) bool {
	if (e == nil) || (o == nil) {
		return (e == nil) && (o == nil)
	}
	return e.Id == o.Id && e.Name == o.Name
}

// Experiment with its run ids, ordered by run creation.
type ExperimentDetail struct {
	Experiment

	RunIds []string
}

func (e *ExperimentDetail) Equal(o *ExperimentDetail) bool {
	if (e == nil) || (o == nil) {
		return (e == nil) && (o == nil)
	}
	return e.Experiment.Equal(&o.Experiment) &&
		cmp.SliceEq(e.RunIds, o.RunIds)
}
