package auth_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	httptestutil "github.com/opst/trackfab/internal/testutils/http"
	"github.com/opst/trackfab/pkg/auth"
	"github.com/opst/trackfab/pkg/utils/try"
)

func TestAdminToken(t *testing.T) {

	key := []byte("test-admin-token-key")

	t.Run("a minted token verifies with the same key", func(t *testing.T) {
		token := try.To(auth.IssueAdminToken(key, time.Hour)).OrFatal(t)

		if err := auth.VerifyAdminToken(key, token); err != nil {
			t.Errorf("token does not verify: %v", err)
		}
	})

	t.Run("a token does not verify with another key", func(t *testing.T) {
		token := try.To(auth.IssueAdminToken(key, time.Hour)).OrFatal(t)

		err := auth.VerifyAdminToken([]byte("another-key"), token)
		if !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, but got: %v", err)
		}
	})

	t.Run("an expired token does not verify", func(t *testing.T) {
		token := try.To(auth.IssueAdminToken(key, -time.Minute)).OrFatal(t)

		err := auth.VerifyAdminToken(key, token)
		if !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, but got: %v", err)
		}
	})

	t.Run("garbage does not verify", func(t *testing.T) {
		err := auth.VerifyAdminToken(key, "not-a-token")
		if !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, but got: %v", err)
		}
	})
}

func TestMiddleware(t *testing.T) {

	key := []byte("test-admin-token-key")

	next := func(called *bool) echo.HandlerFunc {
		return func(c echo.Context) error {
			*called = true
			return c.NoContent(http.StatusOK)
		}
	}

	t.Run("it passes a request with a valid token", func(t *testing.T) {
		token := try.To(auth.IssueAdminToken(key, time.Hour)).OrFatal(t)

		e := echo.New()
		c, _ := httptestutil.Delete(
			e, "/api/admin/records/",
			httptestutil.WithHeader("Authorization", "Bearer "+token),
		)

		called := false
		testee := auth.Middleware(key)(next(&called))
		if err := testee(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !called {
			t.Error("the guarded handler should be called")
		}
	})

	for name, header := range map[string]string{
		"it rejects a request without Authorization": "",
		"it rejects a request with a broken token":   "Bearer not-a-token",
		"it rejects a non-bearer Authorization":      "Basic dXNlcjpwYXNz",
	} {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			opts := []httptestutil.RequestOption{}
			if header != "" {
				opts = append(opts, httptestutil.WithHeader("Authorization", header))
			}
			c, _ := httptestutil.Delete(e, "/api/admin/records/", opts...)

			called := false
			testee := auth.Middleware(key)(next(&called))

			err := testee(c)
			if err == nil {
				t.Fatalf("no error but it is not expected result")
			}
			var echoErr *echo.HTTPError
			if !errors.As(err, &echoErr) {
				t.Fatalf("error is not echo.HTTPError. acutal = %#v", err)
			}
			if echoErr.Code != http.StatusUnauthorized {
				t.Fatalf("unmatch error code:%d, expeced:%d", echoErr.Code, http.StatusUnauthorized)
			}
			if called {
				t.Error("the guarded handler should not be called")
			}
		})
	}
}
