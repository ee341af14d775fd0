package db

import "context"

type SchemaInterface interface {
	// current version of the database schema.
	//
	// 0 when the schema has never been applied.
	Version(ctx context.Context) (int, error)

	// apply schema versions newer than the current one,
	// from the configured schema repository.
	Upgrade(ctx context.Context) error

	// Context derives a context that is canceled when the database
	// schema turns out to be older than the schema repository.
	//
	// Servers run under this context so that they stop
	// (and get restarted against an upgraded schema) instead of
	// running against tables they do not understand.
	Context(ctx context.Context) (context.Context, context.CancelFunc)
}
