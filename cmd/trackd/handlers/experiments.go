package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	apierr "github.com/opst/trackfab/pkg/api/types/errors"
	apiexperiments "github.com/opst/trackfab/pkg/api/types/experiments"
	domerr "github.com/opst/trackfab/pkg/domain/errors"
	kdb "github.com/opst/trackfab/pkg/domain/experiment/db"
)

// RegisterExperimentHandler creates an experiment, or finds the one
// already registered with the same name. Both cases respond 200.
func RegisterExperimentHandler(dbExperiment kdb.ExperimentInterface) echo.HandlerFunc {

	return func(c echo.Context) error {
		c.Response().Header().Add("Content-Type", "application/json")

		spec := apiexperiments.Spec{}
		if err := c.Bind(&spec); err != nil {
			return apierr.BadRequest(`could not parse request body`, err)
		}
		if spec.Name == "" {
			return apierr.BadRequest(`"name" is required`, nil)
		}

		ctx := c.Request().Context()
		experimentId, err := dbExperiment.New(ctx, spec.Name)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		c.JSON(http.StatusOK, apiexperiments.Summary{
			ExperimentId: experimentId,
			Name:         spec.Name,
		})

		return nil
	}
}

func GetExperimentHandler(dbExperiment kdb.ExperimentInterface) echo.HandlerFunc {

	return func(c echo.Context) error {
		c.Response().Header().Add("Content-Type", "application/json")
		name := c.Param("name")
		ctx := c.Request().Context()

		experiment, err := dbExperiment.Get(ctx, name)
		if err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		c.JSON(http.StatusOK, apiexperiments.ComposeDetail(experiment))

		return nil
	}
}
