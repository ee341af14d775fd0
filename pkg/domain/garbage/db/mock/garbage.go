package mock

import (
	"context"
	"errors"

	kdb "github.com/opst/trackfab/pkg/domain/garbage/db"
	dbmock "github.com/opst/trackfab/pkg/domain/internal/db/mock"
)

type GarbageInterface struct {
	Impl struct {
		Truncate func(ctx context.Context) (int64, error)
	}

	Calls struct {
		Truncate dbmock.CallLog[struct{}]
	}
}

func NewGarbageInterface() *GarbageInterface {
	return &GarbageInterface{}
}

var _ kdb.GarbageInterface = &GarbageInterface{}

func (m *GarbageInterface) Truncate(ctx context.Context) (int64, error) {
	m.Calls.Truncate = append(m.Calls.Truncate, struct{}{})
	if m.Impl.Truncate != nil {
		return m.Impl.Truncate(ctx)
	}

	panic(errors.New("it should not be called"))
}
