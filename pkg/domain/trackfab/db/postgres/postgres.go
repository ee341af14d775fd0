package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	kpool "github.com/opst/trackfab/pkg/conn/db/postgres/pool"
	kdataset "github.com/opst/trackfab/pkg/domain/dataset/db"
	kpgdataset "github.com/opst/trackfab/pkg/domain/dataset/db/postgres"
	kevaluation "github.com/opst/trackfab/pkg/domain/evaluation/db"
	kpgevaluation "github.com/opst/trackfab/pkg/domain/evaluation/db/postgres"
	kexperiment "github.com/opst/trackfab/pkg/domain/experiment/db"
	kpgexperiment "github.com/opst/trackfab/pkg/domain/experiment/db/postgres"
	kgarbage "github.com/opst/trackfab/pkg/domain/garbage/db"
	kpggbg "github.com/opst/trackfab/pkg/domain/garbage/db/postgres"
	krun "github.com/opst/trackfab/pkg/domain/run/db"
	kpgrun "github.com/opst/trackfab/pkg/domain/run/db/postgres"
	kschema "github.com/opst/trackfab/pkg/domain/schema/db"
	kpgschema "github.com/opst/trackfab/pkg/domain/schema/db/postgres"
	dbInterface "github.com/opst/trackfab/pkg/domain/trackfab/db"
	xe "github.com/opst/trackfab/pkg/errors"
)

type trackDBPostgres struct {
	pool       *pgxpool.Pool
	experiment kexperiment.ExperimentInterface
	run        krun.RunInterface
	evaluation kevaluation.EvaluationInterface
	dataset    kdataset.DatasetInterface
	garbage    kgarbage.GarbageInterface
	schema     kschema.SchemaInterface
}

type Config struct {
	SchemaRepository string
}

func DefaultConfig() Config {
	return Config{}
}

type Option func(*Config) *Config

func WithSchemaRepository(repository string) Option {
	return func(c *Config) *Config {
		c.SchemaRepository = repository
		return c
	}
}

func New(
	ctx context.Context,
	url string,
	options ...Option,
) (dbInterface.TrackDatabase, error) {
	pool, err := pgxpool.Connect(ctx, url)
	if err != nil {
		return nil, xe.Wrap(err)
	}

	c := DefaultConfig()
	for _, option := range options {
		c = *option(&c)
	}

	p := kpool.Wrap(pool)
	var schema kschema.SchemaInterface = kpgschema.Null()
	if c.SchemaRepository != "" {
		schema = kpgschema.New(p, c.SchemaRepository)
	}

	return &trackDBPostgres{
		pool:       pool,
		experiment: kpgexperiment.New(p),
		run:        kpgrun.New(p),
		evaluation: kpgevaluation.New(p),
		dataset:    kpgdataset.New(p),
		garbage:    kpggbg.New(p),
		schema:     schema,
	}, nil
}

func (k *trackDBPostgres) Experiment() kexperiment.ExperimentInterface {
	return k.experiment
}

func (k *trackDBPostgres) Run() krun.RunInterface {
	return k.run
}

func (k *trackDBPostgres) Evaluation() kevaluation.EvaluationInterface {
	return k.evaluation
}

func (k *trackDBPostgres) Dataset() kdataset.DatasetInterface {
	return k.dataset
}

func (k *trackDBPostgres) Garbage() kgarbage.GarbageInterface {
	return k.garbage
}

func (k *trackDBPostgres) Schema() kschema.SchemaInterface {
	return k.schema
}

func (k *trackDBPostgres) Close() error {
	k.pool.Close()
	return nil
}
