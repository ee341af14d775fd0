package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	apidata "github.com/opst/trackfab/pkg/api/types/data"
	apievaluations "github.com/opst/trackfab/pkg/api/types/evaluations"
	apirun "github.com/opst/trackfab/pkg/api/types/runs"
)

func (c *TrackClient) postJson(ctx context.Context, url string, body any) (*http.Response, error) {
	return c.sendJson(ctx, http.MethodPost, url, body)
}

func (c *TrackClient) putJson(ctx context.Context, url string, body any) (*http.Response, error) {
	return c.sendJson(ctx, http.MethodPut, url, body)
}

func (c *TrackClient) sendJson(ctx context.Context, method string, url string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// RegisterRun creates a run per spec and returns its detail.
func (c *TrackClient) RegisterRun(ctx context.Context, spec apirun.Spec) (apirun.Detail, error) {
	resp, err := c.postJson(ctx, c.apipath("runs"), spec)
	if err != nil {
		return apirun.Detail{}, err
	}
	defer resp.Body.Close()

	detail := apirun.Detail{}
	if err := unmarshalJsonResponse(resp, &detail); err != nil {
		return apirun.Detail{}, err
	}
	return detail, nil
}

// GetRun reads a run by its id or commit hash.
func (c *TrackClient) GetRun(ctx context.Context, ref string) (apirun.Detail, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.apipath("runs", ref), nil,
	)
	if err != nil {
		return apirun.Detail{}, err
	}

	resp, err := c.do(req)
	if err != nil {
		return apirun.Detail{}, err
	}
	defer resp.Body.Close()

	detail := apirun.Detail{}
	if err := unmarshalJsonResponse(resp, &detail); err != nil {
		return apirun.Detail{}, err
	}
	return detail, nil
}

func (c *TrackClient) SetTrainingTime(ctx context.Context, runId string, seconds float64) error {
	resp, err := c.putJson(
		ctx, c.apipath("runs", runId, "trainingtime"),
		apirun.TrainingTimeSpec{Seconds: seconds},
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return responseError(resp)
}

func (c *TrackClient) LogMetric(ctx context.Context, runId string, name string, value float64) error {
	resp, err := c.postJson(
		ctx, c.apipath("runs", runId, "metrics"),
		apirun.MetricSpec{Name: name, Value: value},
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return responseError(resp)
}

func (c *TrackClient) GetMetrics(ctx context.Context, runId string) ([]apirun.Metric, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.apipath("runs", runId, "metrics"), nil,
	)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	metrics := []apirun.Metric{}
	if err := unmarshalJsonResponse(resp, &metrics); err != nil {
		return nil, err
	}
	return metrics, nil
}

func (c *TrackClient) LogHyperParameter(ctx context.Context, runId string, name string, value string) error {
	resp, err := c.postJson(
		ctx, c.apipath("runs", runId, "hyperparameters"),
		apirun.HyperParameterSpec{Name: name, Value: value},
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return responseError(resp)
}

func (c *TrackClient) PutConfusionMatrix(ctx context.Context, runId string, matrix apievaluations.ConfusionMatrix) error {
	resp, err := c.putJson(
		ctx, c.apipath("runs", runId, "confusionmatrix"), matrix,
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return responseError(resp)
}

// GetConfusionMatrix reads the logged matrix.
// A run which has not logged one yields nil without error.
func (c *TrackClient) GetConfusionMatrix(ctx context.Context, runId string) (*apievaluations.ConfusionMatrix, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.apipath("runs", runId, "confusionmatrix"), nil,
	)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var matrix *apievaluations.ConfusionMatrix
	if err := unmarshalJsonResponse(resp, &matrix); err != nil {
		return nil, err
	}
	return matrix, nil
}

// LogData posts a CSV document and returns the schema the server captured.
func (c *TrackClient) LogData(ctx context.Context, runId string, csv io.Reader) (apidata.SchemaDetail, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.apipath("runs", runId, "data"), csv,
	)
	if err != nil {
		return apidata.SchemaDetail{}, err
	}
	req.Header.Set("Content-Type", "text/csv")

	resp, err := c.do(req)
	if err != nil {
		return apidata.SchemaDetail{}, err
	}
	defer resp.Body.Close()

	schema := apidata.SchemaDetail{}
	if err := unmarshalJsonResponse(resp, &schema); err != nil {
		return apidata.SchemaDetail{}, err
	}
	return schema, nil
}

func (c *TrackClient) GetDataSchema(ctx context.Context, runId string) (apidata.SchemaDetail, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.apipath("runs", runId, "data"), nil,
	)
	if err != nil {
		return apidata.SchemaDetail{}, err
	}

	resp, err := c.do(req)
	if err != nil {
		return apidata.SchemaDetail{}, err
	}
	defer resp.Body.Close()

	schema := apidata.SchemaDetail{}
	if err := unmarshalJsonResponse(resp, &schema); err != nil {
		return apidata.SchemaDetail{}, err
	}
	return schema, nil
}
