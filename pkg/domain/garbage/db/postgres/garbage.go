package postgres

import (
	"context"

	kpool "github.com/opst/trackfab/pkg/conn/db/postgres/pool"
	kgarbage "github.com/opst/trackfab/pkg/domain/garbage/db"
)

type pgGarbage struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kgarbage.GarbageInterface {
	return &pgGarbage{pool: pool}
}

func (g *pgGarbage) Truncate(ctx context.Context) (int64, error) {
	tx, err := g.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	// children before parents, to be explicit about what is removed.
	// (FKs would cascade anyway.)
	tables := []string{
		"data_schema_column",
		"data_schema",
		"confusion_matrix",
		"hyperparameter",
		"metric",
		"run",
		"experiment",
	}

	var removed int64
	for _, table := range tables {
		tag, err := tx.Exec(ctx, `delete from "`+table+`";`)
		if err != nil {
			return 0, err
		}
		removed += tag.RowsAffected()
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
