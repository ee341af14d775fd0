package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	apidata "github.com/opst/trackfab/pkg/api/types/data"
	apierr "github.com/opst/trackfab/pkg/api/types/errors"
	domerr "github.com/opst/trackfab/pkg/domain/errors"
	kdb "github.com/opst/trackfab/pkg/domain/dataset/db"
	"github.com/opst/trackfab/pkg/tabular"
)

// LogDataHandler captures the schema of a CSV dataset posted for a run.
// Only the derived schema is stored; the rows themselves are discarded.
func LogDataHandler(dbDataset kdb.DatasetInterface, runIdParam string) echo.HandlerFunc {

	return func(c echo.Context) error {
		c.Response().Header().Add("Content-Type", "application/json")
		runId := c.Param(runIdParam)

		req := c.Request()
		if req.Body == nil {
			return apierr.BadRequest(`a CSV document is required in body`, nil)
		}

		table, err := tabular.Load(req.Body)
		if err != nil {
			return apierr.BadRequest(`could not parse body as CSV`, err)
		}

		ctx := req.Context()
		schema := table.Schema()
		if err := dbDataset.LogSchema(ctx, runId, schema); err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		c.JSON(http.StatusOK, apidata.ComposeSchemaDetail(schema))

		return nil
	}
}

func GetDataSchemaHandler(dbDataset kdb.DatasetInterface, runIdParam string) echo.HandlerFunc {

	return func(c echo.Context) error {
		c.Response().Header().Add("Content-Type", "application/json")
		runId := c.Param(runIdParam)
		ctx := c.Request().Context()

		schema, err := dbDataset.GetSchema(ctx, runId)
		if err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		c.JSON(http.StatusOK, apidata.ComposeSchemaDetail(schema))

		return nil
	}
}
