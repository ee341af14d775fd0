// Package client is a thin REST client of the tracker API.
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	apierr "github.com/opst/trackfab/pkg/api/types/errors"
)

type TrackClient struct {
	httpclient *http.Client
	api        string
	adminToken string
}

type Option func(*TrackClient)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *TrackClient) {
		c.httpclient = hc
	}
}

// WithAdminToken sends token as a bearer token on every request.
func WithAdminToken(token string) Option {
	return func(c *TrackClient) {
		c.adminToken = token
	}
}

// New creates a client for the server at base, e.g. "http://localhost:8080".
func New(base string, options ...Option) *TrackClient {
	c := &TrackClient{
		httpclient: new(http.Client),
		api:        strings.TrimSuffix(base, "/") + "/api",
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *TrackClient) apipath(parts ...string) string {
	p := path.Join(parts...)
	return c.api + "/" + p + "/"
}

func (c *TrackClient) do(req *http.Request) (*http.Response, error) {
	if c.adminToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.adminToken)
	}
	return c.httpclient.Do(req)
}

// unmarshal http response which has json content.
//
// Non-2xx responses are turned into an error carrying the server's
// error message when one can be parsed out of the body.
func unmarshalJsonResponse[T any](resp *http.Response, v *T) error {
	if err := responseError(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf(
			"unexpected response: %w (status code = %d)", err, resp.StatusCode,
		)
	}
	return nil
}

func responseError(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("server error (status code = %d)", resp.StatusCode)
	}

	envelope := apierr.ErrorResponse{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf(
			"server error (status code = %d): %s", resp.StatusCode, string(body),
		)
	}
	return fmt.Errorf(
		"server error (status code = %d): %s", resp.StatusCode, envelope.Message.String(),
	)
}
