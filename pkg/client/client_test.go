package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apiexperiments "github.com/opst/trackfab/pkg/api/types/experiments"
	apirun "github.com/opst/trackfab/pkg/api/types/runs"
	"github.com/opst/trackfab/pkg/client"
	"github.com/opst/trackfab/pkg/utils/try"
)

func TestRegisterExperiment(t *testing.T) {

	t.Run("it posts the name and parses the summary", func(t *testing.T) {
		var gotMethod, gotPath, gotBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(apiexperiments.Summary{
				ExperimentId: "experiment-id-1", Name: "sentiment-classifier",
			})
		}))
		defer server.Close()

		testee := client.New(server.URL)
		summary := try.To(
			testee.RegisterExperiment(context.Background(), "sentiment-classifier"),
		).OrFatal(t)

		if gotMethod != http.MethodPost {
			t.Errorf("method %s != POST", gotMethod)
		}
		if gotPath != "/api/experiments/" {
			t.Errorf("path %s != /api/experiments/", gotPath)
		}
		if !strings.Contains(gotBody, `"sentiment-classifier"`) {
			t.Errorf("body does not carry the name: %s", gotBody)
		}

		expected := apiexperiments.Summary{
			ExperimentId: "experiment-id-1", Name: "sentiment-classifier",
		}
		if !summary.Equal(&expected) {
			t.Errorf(
				"data does not match. (actual, expected) = (%+v, %+v)",
				summary, expected,
			)
		}
	})

	t.Run("it surfaces the server error message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message": {"reason": "bad request", "advice": "\"name\" is required"}}`))
		}))
		defer server.Close()

		testee := client.New(server.URL)
		_, err := testee.RegisterExperiment(context.Background(), "")
		if err == nil {
			t.Fatal("no error but it is not expected result")
		}
		if !strings.Contains(err.Error(), "bad request") {
			t.Errorf("error does not carry the server message: %v", err)
		}
	})
}

func TestGetRun(t *testing.T) {

	t.Run("it reads a run by reference", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"runId": "run-1",
				"experimentId": "experiment-id-1",
				"commitSha": "0123abcd",
				"createdAt": "2024-04-01T12:00:00+00:00",
				"metrics": [],
				"hyperParameters": []
			}`))
		}))
		defer server.Close()

		testee := client.New(server.URL)
		detail := try.To(testee.GetRun(context.Background(), "0123abcd")).OrFatal(t)

		if gotPath != "/api/runs/0123abcd/" {
			t.Errorf("path %s != /api/runs/0123abcd/", gotPath)
		}
		if detail.RunId != "run-1" {
			t.Errorf("runId %s != run-1", detail.RunId)
		}
		if detail.TrainingTimeSeconds != nil {
			t.Errorf("trainingTimeSeconds should be nil: %v", *detail.TrainingTimeSeconds)
		}
	})
}

func TestGetConfusionMatrix(t *testing.T) {

	t.Run("it yields nil for a null body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte("null"))
		}))
		defer server.Close()

		testee := client.New(server.URL)
		matrix := try.To(
			testee.GetConfusionMatrix(context.Background(), "run-1"),
		).OrFatal(t)

		if matrix != nil {
			t.Errorf("matrix should be nil: %+v", matrix)
		}
	})
}

func TestAdminToken(t *testing.T) {

	t.Run("it sends the bearer token", func(t *testing.T) {
		var gotAuthorization string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuthorization = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"removedRecords": 7}`))
		}))
		defer server.Close()

		testee := client.New(server.URL, client.WithAdminToken("token-1"))
		result := try.To(testee.CleanupRecords(context.Background())).OrFatal(t)

		if gotAuthorization != "Bearer token-1" {
			t.Errorf(`Authorization %q != "Bearer token-1"`, gotAuthorization)
		}
		if result.RemovedRecords != 7 {
			t.Errorf("removedRecords %d != 7", result.RemovedRecords)
		}
	})
}

func TestLogMetric(t *testing.T) {

	t.Run("it posts name and value", func(t *testing.T) {
		var gotBody apirun.MetricSpec
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"name": "accuracy", "value": 0.95}`))
		}))
		defer server.Close()

		testee := client.New(server.URL)
		if err := testee.LogMetric(context.Background(), "run-1", "accuracy", 0.95); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if gotBody.Name != "accuracy" || gotBody.Value != 0.95 {
			t.Errorf("unexpected body: %+v", gotBody)
		}
	})
}
