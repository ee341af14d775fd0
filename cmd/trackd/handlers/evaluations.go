package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	apierr "github.com/opst/trackfab/pkg/api/types/errors"
	apievaluations "github.com/opst/trackfab/pkg/api/types/evaluations"
	domerr "github.com/opst/trackfab/pkg/domain/errors"
	kdb "github.com/opst/trackfab/pkg/domain/evaluation/db"
)

func PutConfusionMatrixHandler(dbEvaluation kdb.EvaluationInterface, runIdParam string) echo.HandlerFunc {

	return func(c echo.Context) error {
		c.Response().Header().Add("Content-Type", "application/json")
		runId := c.Param(runIdParam)

		matrix := apievaluations.ConfusionMatrix{}
		if err := c.Bind(&matrix); err != nil {
			return apierr.BadRequest(`could not parse request body`, err)
		}
		if len(matrix.Counts) != len(matrix.Labels) {
			return apierr.BadRequest(
				`"counts" should have one row per label`, nil,
			)
		}
		for _, row := range matrix.Counts {
			if len(row) != len(matrix.Labels) {
				return apierr.BadRequest(
					`each row of "counts" should have one cell per label`, nil,
				)
			}
		}

		ctx := c.Request().Context()
		if err := dbEvaluation.SetConfusionMatrix(ctx, runId, matrix.ToDomain()); err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		c.JSON(http.StatusOK, matrix)

		return nil
	}
}

// GetConfusionMatrixHandler responds the logged matrix.
// A run which has not logged one gets 200 with body "null".
func GetConfusionMatrixHandler(dbEvaluation kdb.EvaluationInterface, runIdParam string) echo.HandlerFunc {

	return func(c echo.Context) error {
		c.Response().Header().Add("Content-Type", "application/json")
		runId := c.Param(runIdParam)
		ctx := c.Request().Context()

		matrix, err := dbEvaluation.GetConfusionMatrix(ctx, runId)
		if err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		if matrix == nil {
			c.JSON(http.StatusOK, nil)
			return nil
		}

		c.JSON(http.StatusOK, apievaluations.Compose(*matrix))

		return nil
	}
}
