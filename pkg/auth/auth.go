// Package auth issues and verifies admin tokens.
//
// Tokens are HS256 JWTs signed with a shared key from the server
// configuration. They guard destructive admin endpoints only.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apierr "github.com/opst/trackfab/pkg/api/types/errors"
)

const SubjectAdmin = "admin"

var ErrInvalidToken = errors.New("invalid admin token")

type AdminClaim struct {
	jwt.RegisteredClaims
}

// IssueAdminToken mints a token with subject "admin", valid for ttl.
func IssueAdminToken(key []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaim{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   SubjectAdmin,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString(key)
}

// VerifyAdminToken checks signature, expiry and subject.
func VerifyAdminToken(key []byte, token string) error {
	claim := &AdminClaim{}
	parsed, err := jwt.ParseWithClaims(
		token, claim,
		func(t *jwt.Token) (interface{}, error) { return key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil || !parsed.Valid {
		return ErrInvalidToken
	}
	if claim.Subject != SubjectAdmin {
		return ErrInvalidToken
	}
	return nil
}

// Middleware rejects requests without a valid "Authorization: Bearer" token.
func Middleware(key []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				return apierr.Unauthorized("bearer token is required", nil)
			}
			if err := VerifyAdminToken(key, token); err != nil {
				return apierr.Unauthorized("", err)
			}
			return next(c)
		}
	}
}
