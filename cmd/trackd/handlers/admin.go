package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	apiadmin "github.com/opst/trackfab/pkg/api/types/admin"
	apierr "github.com/opst/trackfab/pkg/api/types/errors"
	kdb "github.com/opst/trackfab/pkg/domain/garbage/db"
)

// CleanupRecordsHandler removes every tracked record.
// The route should sit behind the admin token middleware.
func CleanupRecordsHandler(dbGarbage kdb.GarbageInterface) echo.HandlerFunc {

	return func(c echo.Context) error {
		c.Response().Header().Add("Content-Type", "application/json")
		ctx := c.Request().Context()

		removed, err := dbGarbage.Truncate(ctx)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		c.JSON(http.StatusOK, apiadmin.CleanupResult{RemovedRecords: removed})

		return nil
	}
}
