package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v4"
	kpool "github.com/opst/trackfab/pkg/conn/db/postgres/pool"
	"github.com/opst/trackfab/pkg/conn/db/postgres/scanner"
	"github.com/opst/trackfab/pkg/domain"
	domerr "github.com/opst/trackfab/pkg/domain/errors"
	kpgerr "github.com/opst/trackfab/pkg/domain/errors/dberrors/postgres"
	kexperiment "github.com/opst/trackfab/pkg/domain/experiment/db"
)

// a struct for DB operations related to Experiment
type experimentPG struct { // implements kexperiment.ExperimentInterface
	pool kpool.Pool
}

func New(pool kpool.Pool) *experimentPG {
	return &experimentPG{pool: pool}
}

var _ kexperiment.ExperimentInterface = &experimentPG{}

func (m *experimentPG) New(ctx context.Context, name string) (string, error) {
	for {
		experimentId, err := m.find(ctx, name)
		if err == nil {
			return experimentId, nil
		}
		if !errors.Is(err, domerr.ErrMissing) {
			return "", err
		}

		newId := uuid.NewString()
		if err := m.register(ctx, newId, name); err != nil {
			if pgerr := new(pgconn.PgError); errors.As(err, &pgerr) &&
				pgerr.Code == pgerrcode.UniqueViolation {
				// lost the race on name. pick up the winner's record.
				continue
			}
			return "", err
		}
		return newId, nil
	}
}

func (m *experimentPG) find(ctx context.Context, name string) (string, error) {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Release()

	var experimentId string
	if err := conn.QueryRow(
		ctx, `select "experiment_id" from "experiment" where "name" = $1;`, name,
	).Scan(&experimentId); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", kpgerr.Missing{Table: "experiment", Identity: name}
		}
		return "", err
	}
	return experimentId, nil
}

func (m *experimentPG) register(ctx context.Context, experimentId string, name string) error {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(
		ctx,
		`insert into "experiment" ("experiment_id", "name") values ($1, $2);`,
		experimentId, name,
	)
	return err
}

func (m *experimentPG) Get(ctx context.Context, name string) (domain.ExperimentDetail, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return domain.ExperimentDetail{}, err
	}
	defer tx.Rollback(ctx)

	var found domain.ExperimentDetail
	if err := tx.QueryRow(
		ctx,
		`select "experiment_id", "name" from "experiment" where "name" = $1;`,
		name,
	).Scan(&found.Id, &found.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ExperimentDetail{}, kpgerr.Missing{
				Table: "experiment", Identity: name,
			}
		}
		return domain.ExperimentDetail{}, err
	}

	runIds, err := scanner.New[string]().QueryAll(
		ctx, tx,
		`
		select "run_id" from "run"
		where "experiment_id" = $1
		order by "created_at", "run_id"
		`,
		found.Id,
	)
	if err != nil {
		return domain.ExperimentDetail{}, err
	}
	found.RunIds = runIds

	if err := tx.Commit(ctx); err != nil {
		return domain.ExperimentDetail{}, err
	}

	return found, nil
}
