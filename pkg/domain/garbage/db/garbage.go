package db

import "context"

type GarbageInterface interface {
	// remove all records across all entity tables, in one transaction.
	//
	// This is an administrative maintenance operation,
	// not part of the steady-state contract.
	//
	// Returns
	//
	// - int64: count of removed records.
	//
	// - error
	Truncate(ctx context.Context) (int64, error)
}
