package db

import (
	"context"

	"github.com/opst/trackfab/pkg/domain"
)

type ExperimentInterface interface {
	// register an experiment by name, or find the registered one.
	//
	// Registering is an upsert keyed on name: when an experiment with
	// the given name exists already, its id is returned unchanged and
	// no new record is made. Safe to call repeatedly and concurrently
	// with the same name.
	//
	// Args
	//
	// - context.Context
	//
	// - string: name of the experiment.
	//
	// Returns
	//
	// - string: experiment id, newly created or existing.
	//
	// - error
	New(ctx context.Context, name string) (string, error)

	// retrieve an experiment by name, with ids of its runs.
	//
	// Args
	//
	// - context.Context
	//
	// - string: name of the experiment.
	//
	// Returns
	//
	// - domain.ExperimentDetail: found experiment.
	// RunIds are ordered by run creation time.
	//
	// - error: ErrMissing when no experiment has the name.
	Get(ctx context.Context, name string) (domain.ExperimentDetail, error)
}
