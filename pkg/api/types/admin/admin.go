package admin

// CleanupResult reports how many records a bulk cleanup removed,
// summed over all tables.
type CleanupResult struct {
	RemovedRecords int64 `json:"removedRecords"`
}

func (r *CleanupResult) Equal(o *CleanupResult) bool {
	if r == nil || o == nil {
		return r == nil && o == nil
	}
	return r.RemovedRecords == o.RemovedRecords
}
