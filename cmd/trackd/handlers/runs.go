package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	apierr "github.com/opst/trackfab/pkg/api/types/errors"
	apirun "github.com/opst/trackfab/pkg/api/types/runs"
	domerr "github.com/opst/trackfab/pkg/domain/errors"
	kexpdb "github.com/opst/trackfab/pkg/domain/experiment/db"
	kdb "github.com/opst/trackfab/pkg/domain/run/db"
	"github.com/opst/trackfab/pkg/utils/slices"
)

// RegisterRunHandler creates a run in an experiment.
//
// The experiment is named by id or by name. A name which is not
// registered yet registers the experiment on the fly.
func RegisterRunHandler(
	dbExperiment kexpdb.ExperimentInterface,
	dbRun kdb.RunInterface,
) echo.HandlerFunc {

	return func(c echo.Context) error {
		c.Response().Header().Add("Content-Type", "application/json")

		spec := apirun.Spec{}
		if err := c.Bind(&spec); err != nil {
			return apierr.BadRequest(`could not parse request body`, err)
		}

		ctx := c.Request().Context()

		experimentId := spec.ExperimentId
		if experimentId == "" {
			if spec.ExperimentName == "" {
				return apierr.BadRequest(
					`either "experimentId" or "experimentName" is required`, nil,
				)
			}
			var err error
			experimentId, err = dbExperiment.New(ctx, spec.ExperimentName)
			if err != nil {
				return apierr.InternalServerError(err)
			}
		}

		runId, err := dbRun.New(ctx, experimentId, spec.CommitSHA)
		if err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		runs, err := dbRun.Get(ctx, []string{runId})
		if err != nil {
			return apierr.InternalServerError(err)
		}
		run, ok := runs[runId]
		if !ok {
			return apierr.InternalServerError(
				errors.New("failed to get the newly created run"),
			)
		}

		c.JSON(http.StatusOK, apirun.ComposeDetail(run))

		return nil
	}
}

// GetRunHandler reads a run by its id. A reference which is not a run
// id falls back to commit hash lookup; of several runs sharing the
// hash, the most recently created one wins.
func GetRunHandler(dbRun kdb.RunInterface) echo.HandlerFunc {

	return func(c echo.Context) error {
		c.Response().Header().Add("Content-Type", "application/json")
		ref := c.Param("ref")
		ctx := c.Request().Context()

		runs, err := dbRun.Get(ctx, []string{ref})
		if err != nil {
			return apierr.InternalServerError(err)
		}

		if run, ok := runs[ref]; ok {
			c.JSON(http.StatusOK, apirun.ComposeDetail(run))
			return nil
		}

		runIds, err := dbRun.Find(ctx, kdb.RunFindQuery{CommitSHA: []string{ref}})
		if err != nil {
			return apierr.InternalServerError(err)
		}
		if len(runIds) == 0 {
			return apierr.NotFound()
		}

		// Find is ordered by creation time, ascending.
		runId := runIds[len(runIds)-1]
		runs, err = dbRun.Get(ctx, []string{runId})
		if err != nil {
			return apierr.InternalServerError(err)
		}
		run, ok := runs[runId]
		if !ok {
			return apierr.NotFound()
		}

		c.JSON(http.StatusOK, apirun.ComposeDetail(run))

		return nil
	}
}

func SetTrainingTimeHandler(dbRun kdb.RunInterface, runIdParam string) echo.HandlerFunc {

	return func(c echo.Context) error {
		c.Response().Header().Add("Content-Type", "application/json")
		runId := c.Param(runIdParam)

		spec := apirun.TrainingTimeSpec{}
		if err := c.Bind(&spec); err != nil {
			return apierr.BadRequest(`could not parse request body`, err)
		}
		if spec.Seconds < 0 {
			return apierr.BadRequest(`"seconds" should not be negative`, nil)
		}

		ctx := c.Request().Context()
		d := time.Duration(spec.Seconds * float64(time.Second))
		if err := dbRun.SetTrainingTime(ctx, runId, d); err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		c.JSON(http.StatusOK, spec)

		return nil
	}
}

func LogMetricHandler(dbRun kdb.RunInterface, runIdParam string) echo.HandlerFunc {

	return func(c echo.Context) error {
		c.Response().Header().Add("Content-Type", "application/json")
		runId := c.Param(runIdParam)

		spec := apirun.MetricSpec{}
		if err := c.Bind(&spec); err != nil {
			return apierr.BadRequest(`could not parse request body`, err)
		}
		if spec.Name == "" {
			return apierr.BadRequest(`"name" is required`, nil)
		}

		ctx := c.Request().Context()
		if err := dbRun.LogMetric(ctx, runId, spec.Name, spec.Value); err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		c.JSON(http.StatusOK, spec)

		return nil
	}
}

func GetMetricsHandler(dbRun kdb.RunInterface, runIdParam string) echo.HandlerFunc {

	return func(c echo.Context) error {
		c.Response().Header().Add("Content-Type", "application/json")
		runId := c.Param(runIdParam)
		ctx := c.Request().Context()

		metrics, err := dbRun.GetMetrics(ctx, runId)
		if err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		c.JSON(http.StatusOK, slices.Map(metrics, apirun.ComposeMetric))

		return nil
	}
}

func LogHyperParameterHandler(dbRun kdb.RunInterface, runIdParam string) echo.HandlerFunc {

	return func(c echo.Context) error {
		c.Response().Header().Add("Content-Type", "application/json")
		runId := c.Param(runIdParam)

		spec := apirun.HyperParameterSpec{}
		if err := c.Bind(&spec); err != nil {
			return apierr.BadRequest(`could not parse request body`, err)
		}
		if spec.Name == "" {
			return apierr.BadRequest(`"name" is required`, nil)
		}

		ctx := c.Request().Context()
		if err := dbRun.LogHyperParameter(ctx, runId, spec.Name, spec.Value); err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		c.JSON(http.StatusOK, spec)

		return nil
	}
}
