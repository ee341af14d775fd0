package mock

import (
	"context"
	"errors"

	"github.com/opst/trackfab/pkg/domain"
	kdb "github.com/opst/trackfab/pkg/domain/experiment/db"
	dbmock "github.com/opst/trackfab/pkg/domain/internal/db/mock"
)

type ExperimentInterface struct {
	Impl struct {
		New func(ctx context.Context, name string) (string, error)
		Get func(ctx context.Context, name string) (domain.ExperimentDetail, error)
	}

	Calls struct {
		New dbmock.CallLog[string]
		Get dbmock.CallLog[string]
	}
}

func NewExperimentInterface() *ExperimentInterface {
	return &ExperimentInterface{}
}

var _ kdb.ExperimentInterface = &ExperimentInterface{}

func (m *ExperimentInterface) New(ctx context.Context, name string) (string, error) {
	m.Calls.New = append(m.Calls.New, name)
	if m.Impl.New != nil {
		return m.Impl.New(ctx, name)
	}

	panic(errors.New("it should not be called"))
}

func (m *ExperimentInterface) Get(ctx context.Context, name string) (domain.ExperimentDetail, error) {
	m.Calls.Get = append(m.Calls.Get, name)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, name)
	}

	panic(errors.New("it should not be called"))
}
