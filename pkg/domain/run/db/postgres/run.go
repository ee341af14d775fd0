package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	kpool "github.com/opst/trackfab/pkg/conn/db/postgres/pool"
	"github.com/opst/trackfab/pkg/conn/db/postgres/scanner"
	"github.com/opst/trackfab/pkg/domain"
	kpgerr "github.com/opst/trackfab/pkg/domain/errors/dberrors/postgres"
	krun "github.com/opst/trackfab/pkg/domain/run/db"
)

// a struct for DB operations related to Run
type runPG struct { // implements krun.RunInterface
	pool kpool.Pool
}

func New(pool kpool.Pool) *runPG {
	return &runPG{pool: pool}
}

var _ krun.RunInterface = &runPG{}

func (m *runPG) New(ctx context.Context, experimentId string, commitSHA string) (string, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	var found string
	if err := tx.QueryRow(
		ctx,
		`select "experiment_id" from "experiment" where "experiment_id" = $1;`,
		experimentId,
	).Scan(&found); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", kpgerr.Missing{Table: "experiment", Identity: experimentId}
		}
		return "", err
	}

	runId := uuid.NewString()
	if _, err := tx.Exec(
		ctx,
		`insert into "run" ("run_id", "experiment_id", "commit_sha") values ($1, $2, $3);`,
		runId, experimentId, commitSHA,
	); err != nil {
		return "", err
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}

	return runId, nil
}

func (m *runPG) Find(ctx context.Context, query krun.RunFindQuery) ([]string, error) {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	var experimentIds interface{} // nil means "match any"
	if 0 < len(query.ExperimentId) {
		experimentIds = query.ExperimentId
	}
	var commitSHAs interface{}
	if 0 < len(query.CommitSHA) {
		commitSHAs = query.CommitSHA
	}

	return scanner.New[string]().QueryAll(
		ctx, conn,
		`
		select "run_id" from "run"
		where ($1::varchar[] is null or "experiment_id" = any($1::varchar[]))
		  and ($2::varchar[] is null or "commit_sha" = any($2::varchar[]))
		order by "created_at", "run_id"
		`,
		experimentIds, commitSHAs,
	)
}

func (m *runPG) Get(ctx context.Context, runId []string) (map[string]domain.Run, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	runs, err := m.getBody(ctx, tx, runId)
	if err != nil {
		return nil, err
	}

	if err := m.loadMetrics(ctx, tx, runs); err != nil {
		return nil, err
	}
	if err := m.loadHyperParameters(ctx, tx, runs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	result := map[string]domain.Run{}
	for id, r := range runs {
		result[id] = *r
	}
	return result, nil
}

func (m *runPG) getBody(ctx context.Context, tx kpool.Tx, runId []string) (map[string]*domain.Run, error) {
	rows, err := tx.Query(
		ctx,
		`
		select "run_id", "experiment_id", "commit_sha", "training_time", "created_at"
		from "run" where "run_id" = any($1::varchar[])
		`,
		runId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := map[string]*domain.Run{}
	for rows.Next() {
		r := &domain.Run{
			Metrics:         []domain.Metric{},
			HyperParameters: []domain.HyperParameter{},
		}
		var trainingTime pgtype.Interval
		if err := rows.Scan(
			&r.Id, &r.ExperimentId, &r.CommitSHA, &trainingTime, &r.CreatedAt,
		); err != nil {
			return nil, err
		}
		if trainingTime.Status == pgtype.Present {
			d := asDuration(trainingTime)
			r.TrainingTime = &d
		}
		runs[r.Id] = r
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}

// training times are written with make_interval(secs => ...),
// so months/days can be non-zero only if someone edited rows by hand.
func asDuration(iv pgtype.Interval) time.Duration {
	return time.Duration(iv.Microseconds)*time.Microsecond +
		time.Duration(iv.Days)*24*time.Hour +
		time.Duration(iv.Months)*30*24*time.Hour
}

func (m *runPG) loadMetrics(ctx context.Context, tx kpool.Tx, runs map[string]*domain.Run) error {
	runIds := make([]string, 0, len(runs))
	for id := range runs {
		runIds = append(runIds, id)
	}

	metrics, err := scanner.New[domain.Metric]().QueryAll(
		ctx, tx,
		`
		select "run_id", "name", "value", "logged_at" from "metric"
		where "run_id" = any($1::varchar[])
		order by "id"
		`,
		runIds,
	)
	if err != nil {
		return err
	}

	for _, metric := range metrics {
		r := runs[metric.RunId]
		r.Metrics = append(r.Metrics, metric)
	}
	return nil
}

func (m *runPG) loadHyperParameters(ctx context.Context, tx kpool.Tx, runs map[string]*domain.Run) error {
	runIds := make([]string, 0, len(runs))
	for id := range runs {
		runIds = append(runIds, id)
	}

	params, err := scanner.New[domain.HyperParameter]().QueryAll(
		ctx, tx,
		`
		select "run_id", "name", "value" from "hyperparameter"
		where "run_id" = any($1::varchar[])
		order by "id"
		`,
		runIds,
	)
	if err != nil {
		return err
	}

	for _, param := range params {
		r := runs[param.RunId]
		r.HyperParameters = append(r.HyperParameters, param)
	}
	return nil
}

func (m *runPG) SetTrainingTime(ctx context.Context, runId string, d time.Duration) error {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tag, err := conn.Exec(
		ctx,
		`update "run" set "training_time" = make_interval(secs => $1::float8) where "run_id" = $2;`,
		d.Seconds(), runId,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return kpgerr.Missing{Table: "run", Identity: runId}
	}
	return nil
}

func (m *runPG) LogMetric(ctx context.Context, runId string, name string, value float64) error {
	return m.appendLog(
		ctx, runId,
		`insert into "metric" ("run_id", "name", "value") values ($1, $2, $3);`,
		runId, name, value,
	)
}

func (m *runPG) LogHyperParameter(ctx context.Context, runId string, name string, value string) error {
	return m.appendLog(
		ctx, runId,
		`insert into "hyperparameter" ("run_id", "name", "value") values ($1, $2, $3);`,
		runId, name, value,
	)
}

func (m *runPG) appendLog(ctx context.Context, runId string, sql string, args ...interface{}) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := ensureRun(ctx, tx, runId); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (m *runPG) GetMetrics(ctx context.Context, runId string) ([]domain.Metric, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := ensureRun(ctx, tx, runId); err != nil {
		return nil, err
	}

	metrics, err := scanner.New[domain.Metric]().QueryAll(
		ctx, tx,
		`
		select "run_id", "name", "value", "logged_at" from "metric"
		where "run_id" = $1
		order by "id"
		`,
		runId,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return metrics, nil
}

// ensureRun fails with Missing unless the run exists.
func ensureRun(ctx context.Context, tx kpool.Tx, runId string) error {
	var found string
	if err := tx.QueryRow(
		ctx, `select "run_id" from "run" where "run_id" = $1;`, runId,
	).Scan(&found); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return kpgerr.Missing{Table: "run", Identity: runId}
		}
		return err
	}
	return nil
}
