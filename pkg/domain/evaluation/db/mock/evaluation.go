package mock

import (
	"context"
	"errors"

	"github.com/opst/trackfab/pkg/domain"
	kdb "github.com/opst/trackfab/pkg/domain/evaluation/db"
	dbmock "github.com/opst/trackfab/pkg/domain/internal/db/mock"
)

type EvaluationInterface struct {
	Impl struct {
		SetConfusionMatrix func(ctx context.Context, runId string, matrix domain.ConfusionMatrix) error
		GetConfusionMatrix func(ctx context.Context, runId string) (*domain.ConfusionMatrix, error)
	}

	Calls struct {
		SetConfusionMatrix dbmock.CallLog[struct {
			RunId  string
			Matrix domain.ConfusionMatrix
		}]
		GetConfusionMatrix dbmock.CallLog[string]
	}
}

func NewEvaluationInterface() *EvaluationInterface {
	return &EvaluationInterface{}
}

var _ kdb.EvaluationInterface = &EvaluationInterface{}

func (m *EvaluationInterface) SetConfusionMatrix(ctx context.Context, runId string, matrix domain.ConfusionMatrix) error {
	m.Calls.SetConfusionMatrix = append(m.Calls.SetConfusionMatrix, struct {
		RunId  string
		Matrix domain.ConfusionMatrix
	}{RunId: runId, Matrix: matrix})
	if m.Impl.SetConfusionMatrix != nil {
		return m.Impl.SetConfusionMatrix(ctx, runId, matrix)
	}

	panic(errors.New("it should not be called"))
}

func (m *EvaluationInterface) GetConfusionMatrix(ctx context.Context, runId string) (*domain.ConfusionMatrix, error) {
	m.Calls.GetConfusionMatrix = append(m.Calls.GetConfusionMatrix, runId)
	if m.Impl.GetConfusionMatrix != nil {
		return m.Impl.GetConfusionMatrix(ctx, runId)
	}

	panic(errors.New("it should not be called"))
}
