package db

import (
	kdataset "github.com/opst/trackfab/pkg/domain/dataset/db"
	kevaluation "github.com/opst/trackfab/pkg/domain/evaluation/db"
	kexperiment "github.com/opst/trackfab/pkg/domain/experiment/db"
	kgarbage "github.com/opst/trackfab/pkg/domain/garbage/db"
	krun "github.com/opst/trackfab/pkg/domain/run/db"
	kschema "github.com/opst/trackfab/pkg/domain/schema/db"
)

type TrackDatabase interface {
	Experiment() kexperiment.ExperimentInterface
	Run() krun.RunInterface
	Evaluation() kevaluation.EvaluationInterface
	Dataset() kdataset.DatasetInterface
	Garbage() kgarbage.GarbageInterface
	Schema() kschema.SchemaInterface
	Close() error
}
