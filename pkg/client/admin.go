package client

import (
	"context"
	"net/http"

	apiadmin "github.com/opst/trackfab/pkg/api/types/admin"
)

// CleanupRecords removes every tracked record.
// The client should carry an admin token (WithAdminToken).
func (c *TrackClient) CleanupRecords(ctx context.Context) (apiadmin.CleanupResult, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodDelete, c.apipath("admin", "records"), nil,
	)
	if err != nil {
		return apiadmin.CleanupResult{}, err
	}

	resp, err := c.do(req)
	if err != nil {
		return apiadmin.CleanupResult{}, err
	}
	defer resp.Body.Close()

	result := apiadmin.CleanupResult{}
	if err := unmarshalJsonResponse(resp, &result); err != nil {
		return apiadmin.CleanupResult{}, err
	}
	return result, nil
}
