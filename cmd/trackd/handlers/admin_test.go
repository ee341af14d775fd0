package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	handlers "github.com/opst/trackfab/cmd/trackd/handlers"
	httptestutil "github.com/opst/trackfab/internal/testutils/http"
	apiadmin "github.com/opst/trackfab/pkg/api/types/admin"
	mockdb "github.com/opst/trackfab/pkg/domain/garbage/db/mock"
)

func TestCleanupRecordsHandler(t *testing.T) {

	t.Run("it removes all records and reports the count", func(t *testing.T) {
		mockGarbage := mockdb.NewGarbageInterface()
		mockGarbage.Impl.Truncate = func(ctx context.Context) (int64, error) {
			return 42, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Delete(e, "/api/admin/records/")

		testee := handlers.CleanupRecordsHandler(mockGarbage)
		if err := testee(c); err != nil {
			t.Fatalf("response is not illegal. error = %v", err)
		}

		if mockGarbage.Calls.Truncate.Times() != 1 {
			t.Errorf("GarbageInterface.Truncate should be called once")
		}
		if respRec.Result().StatusCode != http.StatusOK {
			t.Errorf("status code %d != %d", respRec.Result().StatusCode, http.StatusOK)
		}

		actual := apiadmin.CleanupResult{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not json: %v", err)
		}
		expected := apiadmin.CleanupResult{RemovedRecords: 42}
		if !actual.Equal(&expected) {
			t.Errorf(
				"data does not match. (actual, expected) = (%+v, %+v)",
				actual, expected,
			)
		}
	})

	t.Run("it returns Internal Server Error when Truncate cause error", func(t *testing.T) {
		mockGarbage := mockdb.NewGarbageInterface()
		mockGarbage.Impl.Truncate = func(ctx context.Context) (int64, error) {
			return 0, errors.New("dummy error")
		}

		e := echo.New()
		c, _ := httptestutil.Delete(e, "/api/admin/records/")

		testee := handlers.CleanupRecordsHandler(mockGarbage)

		err := testee(c)
		if err == nil {
			t.Fatalf("no error but it is not expected result")
		}
		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. acutal = %#v", err)
		}
		if echoErr.Code != http.StatusInternalServerError {
			t.Fatalf("unmatch error code:%d, expeced:%d", echoErr.Code, http.StatusInternalServerError)
		}
	})
}
