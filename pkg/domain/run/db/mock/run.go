package mock

import (
	"context"
	"errors"
	"time"

	"github.com/opst/trackfab/pkg/domain"
	dbmock "github.com/opst/trackfab/pkg/domain/internal/db/mock"
	kdb "github.com/opst/trackfab/pkg/domain/run/db"
)

type RunInterface struct {
	Impl struct {
		New               func(ctx context.Context, experimentId string, commitSHA string) (string, error)
		Find              func(ctx context.Context, query kdb.RunFindQuery) ([]string, error)
		Get               func(ctx context.Context, runId []string) (map[string]domain.Run, error)
		SetTrainingTime   func(ctx context.Context, runId string, d time.Duration) error
		LogMetric         func(ctx context.Context, runId string, name string, value float64) error
		GetMetrics        func(ctx context.Context, runId string) ([]domain.Metric, error)
		LogHyperParameter func(ctx context.Context, runId string, name string, value string) error
	}

	Calls struct {
		New dbmock.CallLog[struct {
			ExperimentId string
			CommitSHA    string
		}]
		Find            dbmock.CallLog[kdb.RunFindQuery]
		Get             dbmock.CallLog[[]string]
		SetTrainingTime dbmock.CallLog[struct {
			RunId        string
			TrainingTime time.Duration
		}]
		LogMetric dbmock.CallLog[struct {
			RunId string
			Name  string
			Value float64
		}]
		GetMetrics        dbmock.CallLog[string]
		LogHyperParameter dbmock.CallLog[struct {
			RunId string
			Name  string
			Value string
		}]
	}
}

func NewRunInterface() *RunInterface {
	return &RunInterface{}
}

var _ kdb.RunInterface = &RunInterface{}

func (m *RunInterface) New(ctx context.Context, experimentId string, commitSHA string) (string, error) {
	m.Calls.New = append(m.Calls.New, struct {
		ExperimentId string
		CommitSHA    string
	}{ExperimentId: experimentId, CommitSHA: commitSHA})
	if m.Impl.New != nil {
		return m.Impl.New(ctx, experimentId, commitSHA)
	}

	panic(errors.New("it should not be called"))
}

func (m *RunInterface) Find(ctx context.Context, query kdb.RunFindQuery) ([]string, error) {
	m.Calls.Find = append(m.Calls.Find, query)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, query)
	}

	panic(errors.New("it should not be called"))
}

func (m *RunInterface) Get(ctx context.Context, runId []string) (map[string]domain.Run, error) {
	m.Calls.Get = append(m.Calls.Get, runId)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, runId)
	}

	panic(errors.New("it should not be called"))
}

func (m *RunInterface) SetTrainingTime(ctx context.Context, runId string, d time.Duration) error {
	m.Calls.SetTrainingTime = append(m.Calls.SetTrainingTime, struct {
		RunId        string
		TrainingTime time.Duration
	}{RunId: runId, TrainingTime: d})
	if m.Impl.SetTrainingTime != nil {
		return m.Impl.SetTrainingTime(ctx, runId, d)
	}

	panic(errors.New("it should not be called"))
}

func (m *RunInterface) LogMetric(ctx context.Context, runId string, name string, value float64) error {
	m.Calls.LogMetric = append(m.Calls.LogMetric, struct {
		RunId string
		Name  string
		Value float64
	}{RunId: runId, Name: name, Value: value})
	if m.Impl.LogMetric != nil {
		return m.Impl.LogMetric(ctx, runId, name, value)
	}

	panic(errors.New("it should not be called"))
}

func (m *RunInterface) GetMetrics(ctx context.Context, runId string) ([]domain.Metric, error) {
	m.Calls.GetMetrics = append(m.Calls.GetMetrics, runId)
	if m.Impl.GetMetrics != nil {
		return m.Impl.GetMetrics(ctx, runId)
	}

	panic(errors.New("it should not be called"))
}

func (m *RunInterface) LogHyperParameter(ctx context.Context, runId string, name string, value string) error {
	m.Calls.LogHyperParameter = append(m.Calls.LogHyperParameter, struct {
		RunId string
		Name  string
		Value string
	}{RunId: runId, Name: name, Value: value})
	if m.Impl.LogHyperParameter != nil {
		return m.Impl.LogHyperParameter(ctx, runId, name, value)
	}

	panic(errors.New("it should not be called"))
}
