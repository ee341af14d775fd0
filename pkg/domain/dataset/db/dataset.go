package db

import (
	"context"

	"github.com/opst/trackfab/pkg/domain"
)

type DatasetInterface interface {
	// capture the column layout of data logged against the run.
	//
	// Captured once per logged dataset; logging again replaces
	// the columns atomically.
	//
	// Returns
	//
	// - error: ErrMissing when no run has the id.
	LogSchema(ctx context.Context, runId string, s domain.DataSchema) error

	// retrieve the captured column layout.
	//
	// Returns
	//
	// - domain.DataSchema
	//
	// - error: ErrMissing when no schema has been captured for the run
	// (or the run does not exist).
	GetSchema(ctx context.Context, runId string) (domain.DataSchema, error)
}
