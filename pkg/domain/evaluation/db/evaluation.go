package db

import (
	"context"

	"github.com/opst/trackfab/pkg/domain"
)

type EvaluationInterface interface {
	// record the confusion matrix of the run.
	//
	// A run has at most one; setting again replaces it.
	//
	// Returns
	//
	// - error: ErrMissing when no run has the id.
	SetConfusionMatrix(ctx context.Context, runId string, m domain.ConfusionMatrix) error

	// retrieve the confusion matrix of the run.
	//
	// Returns
	//
	// - *domain.ConfusionMatrix: nil when none has been recorded.
	// That is a legitimate state, not an error.
	//
	// - error: ErrMissing when no run has the id.
	GetConfusionMatrix(ctx context.Context, runId string) (*domain.ConfusionMatrix, error)
}
