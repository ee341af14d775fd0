package db

import (
	"context"
	"time"

	"github.com/opst/trackfab/pkg/domain"
	"github.com/opst/trackfab/pkg/utils/cmp"
)

// parameter to query runs.
//
// When all dimensions match a run, this query matches the run.
type RunFindQuery struct {
	// match if run belongs to one of these experiments.
	//
	// If it is nil or empty, it means "match any".
	ExperimentId []string

	// match if run was created with one of these commit hashes.
	//
	// If it is nil or empty, it means "match any".
	CommitSHA []string
}

func (rfq RunFindQuery) Equal(other RunFindQuery) bool {
	return cmp.SliceContentEq(rfq.ExperimentId, other.ExperimentId) &&
		cmp.SliceContentEq(rfq.CommitSHA, other.CommitSHA)
}

type RunInterface interface {
	// create a new run under an experiment.
	//
	// Args
	//
	// - context.Context
	//
	// - experimentId: id of the experiment the run belongs to.
	//
	// - commitSHA: git commit hash the run is built from.
	// May be empty; stored as empty string, so reads never see null.
	//
	// Returns
	//
	// - string: run id which is newly created.
	//
	// - error: ErrMissing when no experiment has the id.
	New(ctx context.Context, experimentId string, commitSHA string) (string, error)

	// find runs matching the query.
	//
	// Args
	//
	// - context.Context
	//
	// - RunFindQuery: find runs which the query matches.
	//
	// Returns
	//
	// - []string: found run ids, ordered by creation time.
	//
	// - error
	Find(ctx context.Context, query RunFindQuery) ([]string, error)

	// retrieve Runs with their Metrics and HyperParameters eagerly loaded.
	//
	// Args
	//
	// - context.Context
	//
	// - []string: run ids
	//
	// Returns
	//
	// - map[string]domain.Run: mapping runId->Run. Unknown ids are
	// left out silently; callers detect them by absent keys.
	//
	// - error
	Get(ctx context.Context, runId []string) (map[string]domain.Run, error)

	// record how long training took. Idempotent overwrite.
	//
	// Returns
	//
	// - error: ErrMissing when no run has the id.
	SetTrainingTime(ctx context.Context, runId string, d time.Duration) error

	// append a Metric to the run's log.
	//
	// Never overwrites prior metrics, even with the same name.
	//
	// Returns
	//
	// - error: ErrMissing when no run has the id.
	LogMetric(ctx context.Context, runId string, name string, value float64) error

	// all metrics logged for the run, in logging order.
	//
	// Returns
	//
	// - []domain.Metric
	//
	// - error: ErrMissing when no run has the id.
	GetMetrics(ctx context.Context, runId string) ([]domain.Metric, error)

	// append a HyperParameter to the run's log.
	//
	// Same append-only contract as LogMetric.
	//
	// Returns
	//
	// - error: ErrMissing when no run has the id.
	LogHyperParameter(ctx context.Context, runId string, name string, value string) error
}
