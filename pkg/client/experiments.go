package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	apiexperiments "github.com/opst/trackfab/pkg/api/types/experiments"
)

// RegisterExperiment creates the named experiment, or finds the one
// already registered with the same name.
func (c *TrackClient) RegisterExperiment(ctx context.Context, name string) (apiexperiments.Summary, error) {
	payload, err := json.Marshal(apiexperiments.Spec{Name: name})
	if err != nil {
		return apiexperiments.Summary{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.apipath("experiments"), bytes.NewReader(payload),
	)
	if err != nil {
		return apiexperiments.Summary{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return apiexperiments.Summary{}, err
	}
	defer resp.Body.Close()

	summary := apiexperiments.Summary{}
	if err := unmarshalJsonResponse(resp, &summary); err != nil {
		return apiexperiments.Summary{}, err
	}
	return summary, nil
}

// GetExperiment reads an experiment, with its run ids, by name.
func (c *TrackClient) GetExperiment(ctx context.Context, name string) (apiexperiments.Detail, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.apipath("experiments", name), nil,
	)
	if err != nil {
		return apiexperiments.Detail{}, err
	}

	resp, err := c.do(req)
	if err != nil {
		return apiexperiments.Detail{}, err
	}
	defer resp.Body.Close()

	detail := apiexperiments.Detail{}
	if err := unmarshalJsonResponse(resp, &detail); err != nil {
		return apiexperiments.Detail{}, err
	}
	return detail, nil
}
