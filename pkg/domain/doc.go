package domain

// domain package contains the Domain Models and Interfaces for the trackfab application.
//
// `domain/trackfab/db` package aggregates the per-entity database interfaces.
// Entrypoints of applications should instantiate a TrackDatabase and use it to interact with the domain.
//
// `domain/ENTITY.go` has high-level entities (Domain Model types) and functions.
// For example, `domain/run.go` contains the `Run` entity.
//
// `domain/ENTITY` directory contains the "physical" representation of the domain entities in the RDB.
// For example, `domain/run/db` contains the database expression of the run entity described in `domain/run.go`.
//
// # Entities
//
// Core entities in the domain are:
//
// - `experiment`: A named grouping of training runs.
// Experiment names are unique; registering a name twice yields the same experiment.
//
// - `run`: One training attempt within an Experiment, together with its record:
// the git commit it was built from, how long training took,
// and the Metrics and HyperParameters logged against it.
// Metrics and HyperParameters are append-only logs bound to the Run's lifetime.
//
// And others:
//
// - `evaluation`: Evaluation artifacts of a Run. Currently the confusion matrix
// of a classification run. A Run has zero or one of them.
//
// - `dataset`: The captured column layout (name, type, count) of tabular data
// logged against a Run.
//
// - `garbage`: Administrative bulk cleanup removing all records across all
// entity tables. Not part of the steady-state contract.
//
// - `schema`: Database schema versioning and upgrade.
