package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v4"
	kpool "github.com/opst/trackfab/pkg/conn/db/postgres/pool"
	"github.com/opst/trackfab/pkg/domain"
	kpgerr "github.com/opst/trackfab/pkg/domain/errors/dberrors/postgres"
	kevaluation "github.com/opst/trackfab/pkg/domain/evaluation/db"
)

// a struct for DB operations related to evaluation artifacts
type evaluationPG struct { // implements kevaluation.EvaluationInterface
	pool kpool.Pool
}

func New(pool kpool.Pool) *evaluationPG {
	return &evaluationPG{pool: pool}
}

var _ kevaluation.EvaluationInterface = &evaluationPG{}

func (m *evaluationPG) SetConfusionMatrix(ctx context.Context, runId string, matrix domain.ConfusionMatrix) error {
	payload, err := json.Marshal(matrix)
	if err != nil {
		return err
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := ensureRun(ctx, tx, runId); err != nil {
		return err
	}

	if _, err := tx.Exec(
		ctx,
		`
		insert into "confusion_matrix" ("run_id", "payload") values ($1, $2)
		on conflict ("run_id") do update set "payload" = excluded."payload";
		`,
		runId, payload,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (m *evaluationPG) GetConfusionMatrix(ctx context.Context, runId string) (*domain.ConfusionMatrix, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := ensureRun(ctx, tx, runId); err != nil {
		return nil, err
	}

	var payload []byte
	if err := tx.QueryRow(
		ctx, `select "payload" from "confusion_matrix" where "run_id" = $1;`, runId,
	).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// no matrix logged. legitimate state, not an error.
			return nil, nil
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	matrix := &domain.ConfusionMatrix{}
	if err := json.Unmarshal(payload, matrix); err != nil {
		return nil, err
	}
	return matrix, nil
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
