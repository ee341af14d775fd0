package mock

import (
	"context"
	"errors"

	"github.com/opst/trackfab/pkg/domain"
	kdb "github.com/opst/trackfab/pkg/domain/dataset/db"
	dbmock "github.com/opst/trackfab/pkg/domain/internal/db/mock"
)

type DatasetInterface struct {
	Impl struct {
		LogSchema func(ctx context.Context, runId string, s domain.DataSchema) error
		GetSchema func(ctx context.Context, runId string) (domain.DataSchema, error)
	}

	Calls struct {
		LogSchema dbmock.CallLog[struct {
			RunId  string
			Schema domain.DataSchema
		}]
		GetSchema dbmock.CallLog[string]
	}
}

func NewDatasetInterface() *DatasetInterface {
	return &DatasetInterface{}
}

var _ kdb.DatasetInterface = &DatasetInterface{}

func (m *DatasetInterface) LogSchema(ctx context.Context, runId string, s domain.DataSchema) error {
	m.Calls.LogSchema = append(m.Calls.LogSchema, struct {
		RunId  string
		Schema domain.DataSchema
	}{RunId: runId, Schema: s})
	if m.Impl.LogSchema != nil {
		return m.Impl.LogSchema(ctx, runId, s)
	}

	panic(errors.New("it should not be called"))
}

func (m *DatasetInterface) GetSchema(ctx context.Context, runId string) (domain.DataSchema, error) {
	m.Calls.GetSchema = append(m.Calls.GetSchema, runId)
	if m.Impl.GetSchema != nil {
		return m.Impl.GetSchema(ctx, runId)
	}

	panic(errors.New("it should not be called"))
}
