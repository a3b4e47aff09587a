package model

import "time"

// Sample is one recorded pull-count observation for a repository.
// Samples are immutable once written; the persistent table is an ordered
// append-only sequence of them.
type Sample struct {
	Timestamp  time.Time
	Namespace  string
	Repository string
	PullCount  int64
}

// RepoSummary holds the derived growth statistics for a single repository
// over the loaded table.
type RepoSummary struct {
	Namespace  string
	Repository string

	// Current is the pull count of the latest sample, Initial the pull count
	// of the earliest sample present in the loaded table. The baseline is
	// always the earliest loaded sample, so pruning or rotating the table
	// externally moves the baseline with it.
	Current int64
	Initial int64
	Growth  int64

	// Hours is the elapsed time between the earliest and latest sample.
	// PerHour is Growth/Hours, defined as 0 when Hours is 0.
	Hours   float64
	PerHour float64

	LastUpdated time.Time
}
