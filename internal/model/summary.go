package model

import "time"

// PublishSummary captures metrics from a single registry publish run.
type PublishSummary struct {
	ReleaseID        string
	TableDigest      string
	AlreadyPublished bool
	Activated        bool
	RowsSelected     int64
	RowsCopied       int64
	DurationCheck    time.Duration
	DurationCopy     time.Duration
	DurationTotal    time.Duration
}
