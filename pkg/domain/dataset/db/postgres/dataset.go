package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	kpool "github.com/opst/trackfab/pkg/conn/db/postgres/pool"
	"github.com/opst/trackfab/pkg/domain"
	kdataset "github.com/opst/trackfab/pkg/domain/dataset/db"
	kpgerr "github.com/opst/trackfab/pkg/domain/errors/dberrors/postgres"
)

// a struct for DB operations related to logged dataset schemas
type datasetPG struct { // implements kdataset.DatasetInterface
	pool kpool.Pool
}

func New(pool kpool.Pool) *datasetPG {
	return &datasetPG{pool: pool}
}

var _ kdataset.DatasetInterface = &datasetPG{}

func (m *datasetPG) LogSchema(ctx context.Context, runId string, s domain.DataSchema) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := ensureRun(ctx, tx, runId); err != nil {
		return err
	}

	// replace columns atomically. delete cascades to columns.
	if _, err := tx.Exec(
		ctx, `delete from "data_schema" where "run_id" = $1;`, runId,
	); err != nil {
		return err
	}
	if _, err := tx.Exec(
		ctx, `insert into "data_schema" ("run_id") values ($1);`, runId,
	); err != nil {
		return err
	}

	for ordinal, col := range s.Columns {
		if _, err := tx.Exec(
			ctx,
			`
			insert into "data_schema_column" ("run_id", "ordinal", "name", "type")
			values ($1, $2, $3, $4);
			`,
			runId, ordinal, col.Name, string(col.Type),
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (m *datasetPG) GetSchema(ctx context.Context, runId string) (domain.DataSchema, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return domain.DataSchema{}, err
	}
	defer tx.Rollback(ctx)

	var found string
	if err := tx.QueryRow(
		ctx, `select "run_id" from "data_schema" where "run_id" = $1;`, runId,
	).Scan(&found); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DataSchema{}, kpgerr.Missing{
				Table: "data_schema", Identity: runId,
			}
		}
		return domain.DataSchema{}, err
	}

	rows, err := tx.Query(
		ctx,
		`
		select "name", "type" from "data_schema_column"
		where "run_id" = $1
		order by "ordinal"
		`,
		runId,
	)
	if err != nil {
		return domain.DataSchema{}, err
	}
	defer rows.Close()

	schema := domain.DataSchema{Columns: []domain.SchemaColumn{}}
	for rows.Next() {
		var name, typ string
		if err := rows.Scan(&name, &typ); err != nil {
			return domain.DataSchema{}, err
		}
		columnType, err := domain.AsColumnType(typ)
		if err != nil {
			return domain.DataSchema{}, err
		}
		schema.Columns = append(
			schema.Columns,
			domain.SchemaColumn{Name: name, Type: columnType},
		)
	}
	if err := rows.Err(); err != nil {
		return domain.DataSchema{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.DataSchema{}, err
	}

	return schema, nil
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
